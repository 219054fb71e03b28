package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID    `json:"id"`
	Username       string       `json:"username"`
	DisplayName    string       `json:"display_name"`
	Email          string       `json:"email"`
	Bio            string       `json:"bio"`
	AvatarURL      string       `json:"avatar_url"`
	JoinedAt       time.Time    `json:"joined_at"`
	Skills         []string     `json:"skills"`
	PostsCount     int          `json:"posts_count"`
	FollowersCount int          `json:"followers_count"`
	FollowingCount int          `json:"following_count"`
	CurrentJob     *Job         `json:"current_job,omitempty"`
	Education      []Education  `json:"education,omitempty"`
	Experience     []Experience `json:"experience,omitempty"`
	IsBot          bool         `json:"is_bot,omitempty"`
}

type Job struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	Description string `json:"description"`
}

type Education struct {
	School      string `json:"school"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

type Experience struct {
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Location    string  `json:"location"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Description string  `json:"description"`
}

// Author is the denormalized snapshot of a user that posts and comments
// carry. It is captured once at creation time; later profile edits do not
// rewrite it.
type Author struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url"`
}

func (u *User) Author() Author {
	return Author{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
	}
}

func (u *User) Clone() *User {
	if u == nil {
		return nil
	}

	clone := *u
	clone.Skills = append([]string(nil), u.Skills...)
	clone.Education = append([]Education(nil), u.Education...)
	clone.Experience = append([]Experience(nil), u.Experience...)
	if u.CurrentJob != nil {
		job := *u.CurrentJob
		clone.CurrentJob = &job
	}

	return &clone
}
