package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/SkillSwap/feed-service/internal/repository"
	"github.com/SkillSwap/feed-service/internal/repository/badgerrepo"
	"github.com/SkillSwap/feed-service/internal/seed"
	"github.com/SkillSwap/feed-service/internal/store"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func testKV(t *testing.T) repository.KV {
	t.Helper()

	kv, err := badgerrepo.Open(badgerrepo.Config{InMemory: true})
	assert.NoError(t, err)
	t.Cleanup(func() { kv.Close() })

	return kv
}

func TestSaveLoadRoundtrip(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	kv := testKV(t)

	original := store.NewSnapshot(seed.Posts(), seed.Users())
	newSyncer(logger, kv).save(ctx, original)

	loaded := LoadSnapshot(ctx, logger, kv)
	assert.Len(t, loaded.Posts, len(original.Posts))
	assert.Len(t, loaded.Users, len(original.Users))
	for i, p := range original.Posts {
		assert.Equal(t, p.ID, loaded.Posts[i].ID)
		assert.Equal(t, p.Title, loaded.Posts[i].Title)
		assert.Equal(t, p.Likes, loaded.Posts[i].Likes)
		assert.Equal(t, p.LikedBy, loaded.Posts[i].LikedBy)
		assert.Len(t, loaded.Posts[i].Comments, len(p.Comments))
	}
	for i, u := range original.Users {
		assert.Equal(t, u.ID, loaded.Users[i].ID)
		assert.Equal(t, u.Skills, loaded.Users[i].Skills)
	}
}

func TestLoadSnapshot_EmptyBackendSeeds(t *testing.T) {
	loaded := LoadSnapshot(context.Background(), zap.NewNop(), testKV(t))

	assert.Len(t, loaded.Posts, 3)
	assert.Len(t, loaded.Users, 4)
	assert.Equal(t, int64(3), loaded.Posts[0].ID, "the seed feed is most-recent-first")
}

func TestLoadSnapshot_MalformedDataFallsBackToSeed(t *testing.T) {
	ctx := context.Background()
	kv := testKV(t)

	assert.NoError(t, kv.Set(ctx, repository.POSTS_KEY, `{"not": "a post list"`))
	assert.NoError(t, kv.Set(ctx, repository.USERS_KEY, `[]`))

	loaded := LoadSnapshot(ctx, zap.NewNop(), kv)
	assert.Len(t, loaded.Posts, 3)
	assert.Len(t, loaded.Users, 4)
}

func TestLoadSnapshot_PartialDataFallsBackToSeed(t *testing.T) {
	ctx := context.Background()
	kv := testKV(t)

	postsJSON, err := json.Marshal(seed.Posts())
	assert.NoError(t, err)
	assert.NoError(t, kv.Set(ctx, repository.POSTS_KEY, string(postsJSON)))

	// users key missing entirely: nothing partially loaded may survive
	loaded := LoadSnapshot(ctx, zap.NewNop(), kv)
	assert.Len(t, loaded.Users, 4)
	assert.Len(t, loaded.Posts, 3)
}

func TestSeedLikesMatchLikedBy(t *testing.T) {
	for _, p := range seed.Posts() {
		assert.Len(t, p.LikedBy, p.Likes, "post %d", p.ID)
	}
}
