package dto

type CreatePostRequest struct {
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content" binding:"required"`
	Category   string `json:"category"`
	SkillLevel string `json:"skill_level"`
}

type EditPostRequest struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	Category   *string `json:"category"`
	SkillLevel *string `json:"skill_level"`
}
