package service

import (
	"context"

	"github.com/SkillSwap/feed-service/internal/dto"
	"github.com/SkillSwap/feed-service/internal/model"
	"github.com/SkillSwap/feed-service/internal/repository"
	"github.com/SkillSwap/feed-service/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Feed interface {
	Query(ctx context.Context, searchTerm string, mode store.SortMode) []*model.Post
	Analytics(ctx context.Context, topContributors int) *model.Analytics
	AuthorPosts(ctx context.Context, authorID uuid.UUID) []*model.Post
	FindPost(ctx context.Context, postID int64) (*model.Post, error)
}

type Post interface {
	Create(ctx context.Context, author model.Author, input dto.CreatePostRequest) (*model.Post, error)
	Update(ctx context.Context, postID int64, input dto.EditPostRequest) (*model.Post, error)
	Delete(ctx context.Context, postID int64) error
	ToggleLike(ctx context.Context, postID int64, userID uuid.UUID) (*model.Post, error)
	AddComment(ctx context.Context, postID int64, author model.Author, input dto.CreateCommentRequest) (*model.Comment, error)
}

type User interface {
	Upsert(ctx context.Context, input dto.UpsertUserRequest) (*model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type Preferences interface {
	Theme(ctx context.Context) string
	SetTheme(ctx context.Context, theme string) error
	CurrentUser(ctx context.Context) (*model.User, error)
	SetCurrentUser(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	Feed
	Post
	User
	Preferences
}

func New(logger *zap.Logger, st *store.Store, kv repository.KV) *Service {
	sync := newSyncer(logger, kv)

	return &Service{
		Feed:        newFeedService(logger, st),
		Post:        newPostService(logger, st, sync),
		User:        newUserService(logger, st, sync),
		Preferences: newPreferencesService(logger, st, kv),
	}
}
