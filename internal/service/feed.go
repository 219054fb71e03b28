package service

import (
	"context"
	"fmt"

	"github.com/SkillSwap/feed-service/internal/model"
	"github.com/SkillSwap/feed-service/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type feedService struct {
	logger *zap.Logger
	store  *store.Store
}

func newFeedService(logger *zap.Logger, st *store.Store) Feed {
	return &feedService{
		logger: logger,
		store:  st,
	}
}

func (s *feedService) Query(ctx context.Context, searchTerm string, mode store.SortMode) []*model.Post {
	return s.store.Snapshot().Query(searchTerm, mode)
}

func (s *feedService) Analytics(ctx context.Context, topContributors int) *model.Analytics {
	return s.store.Snapshot().Analytics(topContributors)
}

func (s *feedService) AuthorPosts(ctx context.Context, authorID uuid.UUID) []*model.Post {
	return s.store.Snapshot().PostsByAuthor(authorID)
}

func (s *feedService) FindPost(ctx context.Context, postID int64) (*model.Post, error) {
	post := s.store.Snapshot().FindPost(postID)
	if post == nil {
		return nil, fmt.Errorf("%w: post %d", store.ErrNotFound, postID)
	}
	return post, nil
}
