package model

type Analytics struct {
	TotalPosts      int             `json:"total_posts"`
	TotalUsers      int             `json:"total_users"`
	TotalLikes      int             `json:"total_likes"`
	TotalComments   int             `json:"total_comments"`
	EngagementRate  float64         `json:"engagement_rate"`
	TopCategories   []CategoryCount `json:"top_categories"`
	TrendingSkills  []SkillCount    `json:"trending_skills"`
	TopContributors []Contributor   `json:"top_contributors"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// Contributor ranks a user by a weighted activity score: two points per
// post plus one per like collected on those posts.
type Contributor struct {
	Author Author `json:"author"`
	Posts  int    `json:"posts"`
	Likes  int    `json:"likes"`
	Score  int    `json:"score"`
}
