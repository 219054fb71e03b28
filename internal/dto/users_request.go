package dto

import (
	"github.com/SkillSwap/feed-service/internal/model"
	"github.com/google/uuid"
)

type UpsertUserRequest struct {
	ID          *uuid.UUID         `json:"id"`
	Username    string             `json:"username" binding:"required,min=3"`
	DisplayName string             `json:"display_name" binding:"required"`
	Email       string             `json:"email"`
	Bio         string             `json:"bio"`
	AvatarURL   string             `json:"avatar_url"`
	Skills      []string           `json:"skills"`
	CurrentJob  *model.Job         `json:"current_job"`
	Education   []model.Education  `json:"education"`
	Experience  []model.Experience `json:"experience"`
	IsBot       bool               `json:"is_bot"`
}

func (r UpsertUserRequest) ToModel() *model.User {
	user := &model.User{
		Username:    r.Username,
		DisplayName: r.DisplayName,
		Email:       r.Email,
		Bio:         r.Bio,
		AvatarURL:   r.AvatarURL,
		Skills:      r.Skills,
		CurrentJob:  r.CurrentJob,
		Education:   r.Education,
		Experience:  r.Experience,
		IsBot:       r.IsBot,
	}
	if r.ID != nil {
		user.ID = *r.ID
	}

	return user
}
