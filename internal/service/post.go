package service

import (
	"context"
	"fmt"
	"time"

	"github.com/SkillSwap/feed-service/internal/dto"
	"github.com/SkillSwap/feed-service/internal/model"
	"github.com/SkillSwap/feed-service/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type postService struct {
	logger *zap.Logger
	store  *store.Store
	sync   *syncer
}

func newPostService(logger *zap.Logger, st *store.Store, sync *syncer) Post {
	return &postService{
		logger: logger,
		store:  st,
		sync:   sync,
	}
}

func (s *postService) Create(ctx context.Context, author model.Author, input dto.CreatePostRequest) (*model.Post, error) {
	if author.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: creating a post requires an acting user", store.ErrUnauthenticated)
	}

	var created *model.Post
	snap, err := s.store.Update(func(snap *store.Snapshot) (*store.Snapshot, error) {
		next, post, err := snap.CreatePost(
			author,
			input.Title,
			input.Content,
			input.Category,
			model.SkillLevel(input.SkillLevel),
			time.Now().UTC(),
		)
		created = post
		return next, err
	})
	if err != nil {
		return nil, err
	}

	s.sync.save(ctx, snap)
	s.logger.Sugar().Infof("user(%s) created post(%d)", author.ID.String(), created.ID)

	return created, nil
}

func (s *postService) Update(ctx context.Context, postID int64, input dto.EditPostRequest) (*model.Post, error) {
	patch := store.PostPatch{
		Title:    input.Title,
		Content:  input.Content,
		Category: input.Category,
	}
	if input.SkillLevel != nil {
		level := model.SkillLevel(*input.SkillLevel)
		patch.SkillLevel = &level
	}

	var updated *model.Post
	snap, err := s.store.Update(func(snap *store.Snapshot) (*store.Snapshot, error) {
		next, post, err := snap.UpdatePost(postID, patch)
		updated = post
		return next, err
	})
	if err != nil {
		return nil, err
	}

	s.sync.save(ctx, snap)

	return updated, nil
}

func (s *postService) Delete(ctx context.Context, postID int64) error {
	snap, err := s.store.Update(func(snap *store.Snapshot) (*store.Snapshot, error) {
		return snap.DeletePost(postID), nil
	})
	if err != nil {
		return err
	}

	s.sync.save(ctx, snap)

	return nil
}

func (s *postService) ToggleLike(ctx context.Context, postID int64, userID uuid.UUID) (*model.Post, error) {
	var updated *model.Post
	snap, err := s.store.Update(func(snap *store.Snapshot) (*store.Snapshot, error) {
		next, post, err := snap.ToggleLike(postID, userID)
		updated = post
		return next, err
	})
	if err != nil {
		return nil, err
	}

	s.sync.save(ctx, snap)

	return updated, nil
}

func (s *postService) AddComment(ctx context.Context, postID int64, author model.Author, input dto.CreateCommentRequest) (*model.Comment, error) {
	if author.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: commenting requires an acting user", store.ErrUnauthenticated)
	}

	var created *model.Comment
	snap, err := s.store.Update(func(snap *store.Snapshot) (*store.Snapshot, error) {
		next, comment, err := snap.AddComment(postID, author, input.Content, time.Now().UTC())
		created = comment
		return next, err
	})
	if err != nil {
		return nil, err
	}

	s.sync.save(ctx, snap)

	return created, nil
}
