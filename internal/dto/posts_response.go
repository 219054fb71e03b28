package dto

import "github.com/SkillSwap/feed-service/internal/model"

type GetPost struct {
	Post    model.Post `json:"post"`
	IsLiked bool       `json:"is_liked"`
}
