package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/SkillSwap/feed-service/internal/model"
	"github.com/SkillSwap/feed-service/internal/repository"
	"github.com/SkillSwap/feed-service/internal/seed"
	"github.com/SkillSwap/feed-service/internal/store"
	"go.uber.org/zap"
)

// syncer mirrors accepted snapshots to the durable backend. Writes are
// last-write-wins per key; a failed write is logged and the in-memory
// snapshot stays authoritative until the next mutation retries the mirror.
type syncer struct {
	logger *zap.Logger
	kv     repository.KV
}

func newSyncer(logger *zap.Logger, kv repository.KV) *syncer {
	return &syncer{
		logger: logger,
		kv:     kv,
	}
}

func (s *syncer) save(ctx context.Context, snap *store.Snapshot) {
	postsJSON, err := json.Marshal(snap.Posts)
	if err != nil {
		s.logger.Sugar().Errorf("failed to marshal posts for persistence: %s", err.Error())
		return
	}
	usersJSON, err := json.Marshal(snap.Users)
	if err != nil {
		s.logger.Sugar().Errorf("failed to marshal users for persistence: %s", err.Error())
		return
	}

	if err := s.kv.Set(ctx, repository.POSTS_KEY, string(postsJSON)); err != nil {
		s.logger.Sugar().Errorf("failed to persist posts: %s", err.Error())
	}
	if err := s.kv.Set(ctx, repository.USERS_KEY, string(usersJSON)); err != nil {
		s.logger.Sugar().Errorf("failed to persist users: %s", err.Error())
	}
}

// LoadSnapshot rehydrates the entity store from the durable backend. Absent
// or malformed data is a recoverable condition: the seed snapshot is used
// instead, with a warning, and nothing partially loaded is kept.
func LoadSnapshot(ctx context.Context, logger *zap.Logger, kv repository.KV) *store.Snapshot {
	posts, postsOK := loadCollection[[]*model.Post](ctx, logger, kv, repository.POSTS_KEY)
	users, usersOK := loadCollection[[]*model.User](ctx, logger, kv, repository.USERS_KEY)

	if !postsOK || !usersOK {
		logger.Sugar().Warnf("falling back to seed snapshot")
		return store.NewSnapshot(seed.Posts(), seed.Users())
	}

	return store.NewSnapshot(posts, users)
}

func loadCollection[T any](ctx context.Context, logger *zap.Logger, kv repository.KV, key string) (T, bool) {
	var collection T

	value, err := kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrKeyNotFound) {
			logger.Sugar().Warnf("failed to read %q from storage: %s", key, err.Error())
		}
		return collection, false
	}

	if err := json.Unmarshal([]byte(value), &collection); err != nil {
		logger.Sugar().Warnf("malformed %q payload in storage: %s", key, err.Error())
		return collection, false
	}

	return collection, true
}
