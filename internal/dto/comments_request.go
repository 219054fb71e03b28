package dto

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1"`
}
