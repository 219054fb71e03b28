package dto

import "github.com/google/uuid"

type SetThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

type SetCurrentUserRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
}
