package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/SkillSwap/feed-service/internal/model"
	"github.com/SkillSwap/feed-service/internal/repository"
	"github.com/SkillSwap/feed-service/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultTheme = "light"

// preferencesService keeps the two small per-client values that share the
// backend with the collections: the theme and the current user identity.
type preferencesService struct {
	logger *zap.Logger
	store  *store.Store
	kv     repository.KV
}

func newPreferencesService(logger *zap.Logger, st *store.Store, kv repository.KV) Preferences {
	return &preferencesService{
		logger: logger,
		store:  st,
		kv:     kv,
	}
}

func (s *preferencesService) Theme(ctx context.Context) string {
	theme, err := s.kv.Get(ctx, repository.THEME_KEY)
	if err != nil {
		if !errors.Is(err, repository.ErrKeyNotFound) {
			s.logger.Sugar().Errorf("failed to read theme: %s", err.Error())
		}
		return defaultTheme
	}

	return theme
}

func (s *preferencesService) SetTheme(ctx context.Context, theme string) error {
	if theme != "light" && theme != "dark" {
		return fmt.Errorf("%w: theme must be light or dark", store.ErrValidation)
	}

	if err := s.kv.Set(ctx, repository.THEME_KEY, theme); err != nil {
		s.logger.Sugar().Errorf("failed to persist theme: %s", err.Error())
		return ErrInternal
	}

	return nil
}

func (s *preferencesService) CurrentUser(ctx context.Context) (*model.User, error) {
	value, err := s.kv.Get(ctx, repository.CURRENT_USER_KEY)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: no current user", store.ErrNotFound)
		}
		s.logger.Sugar().Errorf("failed to read current user: %s", err.Error())
		return nil, ErrInternal
	}

	id, err := uuid.Parse(value)
	if err != nil {
		s.logger.Sugar().Warnf("malformed current user id in storage: %s", err.Error())
		return nil, fmt.Errorf("%w: no current user", store.ErrNotFound)
	}

	user := s.store.Snapshot().FindUser(id)
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", store.ErrNotFound, id.String())
	}

	return user, nil
}

func (s *preferencesService) SetCurrentUser(ctx context.Context, id uuid.UUID) error {
	if s.store.Snapshot().FindUser(id) == nil {
		return fmt.Errorf("%w: user %s", store.ErrNotFound, id.String())
	}

	if err := s.kv.Set(ctx, repository.CURRENT_USER_KEY, id.String()); err != nil {
		s.logger.Sugar().Errorf("failed to persist current user: %s", err.Error())
		return ErrInternal
	}

	return nil
}
