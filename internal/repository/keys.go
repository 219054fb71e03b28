package repository

const (
	POSTS_KEY        = "posts"
	USERS_KEY        = "users"
	CURRENT_USER_KEY = "current_user"
	THEME_KEY        = "theme"
)
