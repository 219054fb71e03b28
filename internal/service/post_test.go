package service

import (
	"context"
	"strings"
	"testing"

	"github.com/SkillSwap/feed-service/internal/dto"
	"github.com/SkillSwap/feed-service/internal/repository"
	"github.com/SkillSwap/feed-service/internal/seed"
	"github.com/SkillSwap/feed-service/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func testService(t *testing.T) (*Service, repository.KV) {
	t.Helper()

	kv := testKV(t)
	st := store.New(store.NewSnapshot(seed.Posts(), seed.Users()))

	return New(zap.NewNop(), st, kv), kv
}

func TestPostCreate_PersistsSnapshot(t *testing.T) {
	ctx := context.Background()
	services, kv := testService(t)
	author := seed.Users()[0].Author()

	created, err := services.Post.Create(ctx, author, dto.CreatePostRequest{
		Title:      "Testing in Go",
		Content:    "Table tests and testify",
		Category:   "Programming",
		SkillLevel: "intermediate",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(4), created.ID, "ids continue past the seed data")

	persisted, err := kv.Get(ctx, repository.POSTS_KEY)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(persisted, "Testing in Go"))
}

func TestPostCreate_RequiresActingUser(t *testing.T) {
	services, _ := testService(t)

	_, err := services.Post.Create(context.Background(), seed.Users()[0].Author(), dto.CreatePostRequest{Title: " ", Content: "c"})
	assert.ErrorIs(t, err, store.ErrValidation)

	var nobody = seed.Users()[0].Author()
	nobody.ID = uuid.Nil
	_, err = services.Post.Create(context.Background(), nobody, dto.CreatePostRequest{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, store.ErrUnauthenticated)
}

func TestPostToggleLike_RoundtripsThroughFeed(t *testing.T) {
	ctx := context.Background()
	services, _ := testService(t)
	userID := seed.Users()[3].ID

	post, err := services.Post.ToggleLike(ctx, 2, userID)
	assert.NoError(t, err)
	assert.Equal(t, 2, post.Likes)
	assert.True(t, post.LikedByUser(userID))

	post, err = services.Post.ToggleLike(ctx, 2, userID)
	assert.NoError(t, err)
	assert.Equal(t, 1, post.Likes)
	assert.False(t, post.LikedByUser(userID))

	_, err = services.Post.ToggleLike(ctx, 999, userID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostDelete_ThenFindPost(t *testing.T) {
	ctx := context.Background()
	services, _ := testService(t)

	assert.NoError(t, services.Post.Delete(ctx, 1))

	_, err := services.Feed.FindPost(ctx, 1)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.NoError(t, services.Post.Delete(ctx, 1), "repeated deletion stays silent")
}

func TestFeedQuery(t *testing.T) {
	ctx := context.Background()
	services, _ := testService(t)

	posts := services.Feed.Query(ctx, "", store.SortNewest)
	assert.Len(t, posts, 3)

	posts = services.Feed.Query(ctx, "design", store.SortNewest)
	assert.Len(t, posts, 1)
	assert.Equal(t, int64(2), posts[0].ID)
}

func TestUserUpsert(t *testing.T) {
	ctx := context.Background()
	services, _ := testService(t)

	user, err := services.User.Upsert(ctx, dto.UpsertUserRequest{
		Username:    "new_member",
		DisplayName: "New Member",
		Skills:      []string{"Go", "Go", "Rust"},
	})
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.JoinedAt.IsZero())
	assert.Equal(t, []string{"Go", "Rust"}, user.Skills)

	found, err := services.User.FindByID(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "new_member", found.Username)

	_, err = services.User.Upsert(ctx, dto.UpsertUserRequest{Username: "x", DisplayName: "Too Short"})
	assert.ErrorIs(t, err, store.ErrValidation)
}

func TestPreferences(t *testing.T) {
	ctx := context.Background()
	services, _ := testService(t)

	assert.Equal(t, "light", services.Preferences.Theme(ctx), "unset theme defaults to light")

	assert.NoError(t, services.Preferences.SetTheme(ctx, "dark"))
	assert.Equal(t, "dark", services.Preferences.Theme(ctx))

	assert.ErrorIs(t, services.Preferences.SetTheme(ctx, "solarized"), store.ErrValidation)

	_, err := services.Preferences.CurrentUser(ctx)
	assert.ErrorIs(t, err, store.ErrNotFound)

	userID := seed.Users()[1].ID
	assert.NoError(t, services.Preferences.SetCurrentUser(ctx, userID))
	current, err := services.Preferences.CurrentUser(ctx)
	assert.NoError(t, err)
	assert.Equal(t, userID, current.ID)

	assert.ErrorIs(t, services.Preferences.SetCurrentUser(ctx, uuid.New()), store.ErrNotFound)
}
