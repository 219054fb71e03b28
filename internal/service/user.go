package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/SkillSwap/feed-service/internal/dto"
	"github.com/SkillSwap/feed-service/internal/model"
	"github.com/SkillSwap/feed-service/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var usernameRegexp = regexp.MustCompile(`^[a-zA-Z0-9_]{3,}$`)

type userService struct {
	logger *zap.Logger
	store  *store.Store
	sync   *syncer
}

func newUserService(logger *zap.Logger, st *store.Store, sync *syncer) User {
	return &userService{
		logger: logger,
		store:  st,
		sync:   sync,
	}
}

func (s *userService) Upsert(ctx context.Context, input dto.UpsertUserRequest) (*model.User, error) {
	if !usernameRegexp.MatchString(input.Username) {
		return nil, fmt.Errorf("%w: username must be at least 3 characters of letters, numbers and underscores", store.ErrValidation)
	}

	user := input.ToModel()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.JoinedAt.IsZero() {
		user.JoinedAt = time.Now().UTC()
	}

	var stored *model.User
	snap, err := s.store.Update(func(snap *store.Snapshot) (*store.Snapshot, error) {
		next, u, err := snap.UpsertUser(user)
		stored = u
		return next, err
	})
	if err != nil {
		return nil, err
	}

	s.sync.save(ctx, snap)
	s.logger.Sugar().Infof("upserted user(%s)", stored.ID.String())

	return stored, nil
}

func (s *userService) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user := s.store.Snapshot().FindUser(id)
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", store.ErrNotFound, id.String())
	}

	return user, nil
}
