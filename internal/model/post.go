package model

import (
	"time"

	"github.com/google/uuid"
)

type SkillLevel string

const (
	SkillLevelBeginner     SkillLevel = "beginner"
	SkillLevelIntermediate SkillLevel = "intermediate"
	SkillLevelAdvanced     SkillLevel = "advanced"
	SkillLevelExpert       SkillLevel = "expert"
)

// Valid reports whether the level is one of the fixed enumeration values.
// The empty string passes too: skill level is an optional label.
func (l SkillLevel) Valid() bool {
	switch l {
	case "", SkillLevelBeginner, SkillLevelIntermediate, SkillLevelAdvanced, SkillLevelExpert:
		return true
	default:
		return false
	}
}

type Post struct {
	ID         int64       `json:"id"`
	Author     Author      `json:"author"`
	Title      string      `json:"title"`
	Content    string      `json:"content"`
	Category   string      `json:"category,omitempty"`
	SkillLevel SkillLevel  `json:"skill_level,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	Likes      int         `json:"likes"`
	LikedBy    []uuid.UUID `json:"liked_by"`
	Comments   []Comment   `json:"comments"`
}

func (p *Post) LikedByUser(userID uuid.UUID) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}

func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}

	clone := *p
	clone.LikedBy = append([]uuid.UUID(nil), p.LikedBy...)
	clone.Comments = append([]Comment(nil), p.Comments...)

	return &clone
}
