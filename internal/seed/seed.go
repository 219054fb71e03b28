// Package seed holds the default snapshot contents used when the durable
// backend is empty or unreadable at startup.
package seed

import (
	"time"

	"github.com/SkillSwap/feed-service/internal/model"
	"github.com/google/uuid"
)

var (
	alexID  = uuid.MustParse("0b7b5b46-8b2b-4f2e-9a3c-111111111111")
	sarahID = uuid.MustParse("2f1e9c04-3d6a-4d5b-8c7d-222222222222")
	mikeID  = uuid.MustParse("6a0d3e58-1c9f-4b8a-b6e5-333333333333")
	botID   = uuid.MustParse("9c4f7a12-5e8b-4c3d-a1f9-444444444444")
)

func Users() []*model.User {
	return []*model.User{
		{
			ID:          alexID,
			Username:    "alex_dev",
			DisplayName: "Alex Developer",
			Email:       "alex@example.com",
			Bio:         "Full-stack developer passionate about React and Node.js. Building the future of web applications.",
			JoinedAt:    time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
			Skills:      []string{"React", "Node.js", "Python", "JavaScript", "TypeScript", "MongoDB"},
			PostsCount:  12, FollowersCount: 234, FollowingCount: 89,
			CurrentJob: &model.Job{
				Title:       "Senior Full-Stack Developer",
				Company:     "TechCorp Inc.",
				Location:    "San Francisco, CA",
				StartDate:   "2022-03-01",
				Description: "Leading development of scalable web applications using React and Node.js",
			},
			Education: []model.Education{
				{
					School:      "Stanford University",
					Degree:      "Bachelor of Science in Computer Science",
					Field:       "Computer Science",
					StartDate:   "2018-09-01",
					EndDate:     "2022-06-01",
					Description: "Graduated Magna Cum Laude",
				},
			},
			Experience: []model.Experience{
				{
					Title:       "Senior Full-Stack Developer",
					Company:     "TechCorp Inc.",
					Location:    "San Francisco, CA",
					StartDate:   "2022-03-01",
					Description: "Leading development of scalable web applications",
				},
			},
		},
		{
			ID:          sarahID,
			Username:    "sarah_designer",
			DisplayName: "Sarah Designer",
			Email:       "sarah@example.com",
			Bio:         "UI/UX Designer creating beautiful digital experiences. Passionate about user-centered design.",
			JoinedAt:    time.Date(2023, 3, 22, 0, 0, 0, 0, time.UTC),
			Skills:      []string{"Figma", "Adobe XD", "Sketch", "Photoshop", "User Research", "Prototyping"},
			PostsCount:  8, FollowersCount: 156, FollowingCount: 67,
			CurrentJob: &model.Job{
				Title:       "Senior UI/UX Designer",
				Company:     "DesignStudio Pro",
				Location:    "New York, NY",
				StartDate:   "2021-08-01",
				Description: "Creating intuitive and beautiful user experiences for mobile and web applications",
			},
		},
		{
			ID:          mikeID,
			Username:    "mike_analyst",
			DisplayName: "Mike Data Analyst",
			Email:       "mike@example.com",
			Bio:         "Data analyst helping businesses make data-driven decisions. Expert in Python, SQL, and visualization.",
			JoinedAt:    time.Date(2023, 2, 10, 0, 0, 0, 0, time.UTC),
			Skills:      []string{"Python", "SQL", "Tableau", "Excel", "Machine Learning", "Statistics"},
			PostsCount:  15, FollowersCount: 189, FollowingCount: 45,
		},
		{
			ID:          botID,
			Username:    "ai_assistant",
			DisplayName: "AI Assistant Bot",
			Email:       "bot@skillswap.ai",
			Bio:         "I'm an AI assistant here to help you with your questions about SkillSwap!",
			JoinedAt:    time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			Skills:      []string{"AI", "Machine Learning", "Natural Language Processing"},
			FollowersCount: 999, FollowingCount: 1,
			IsBot: true,
		},
	}
}

// Posts returns the demo feed, most-recent-first, with like sets consistent
// with the like counters.
func Posts() []*model.Post {
	users := Users()
	alex := users[0].Author()
	sarah := users[1].Author()
	mike := users[2].Author()
	now := time.Now().UTC()

	return []*model.Post{
		{
			ID:         3,
			Author:     alex,
			Title:      "Building a React Component Library",
			Content:    "Just finished creating a comprehensive component library for our team. It includes buttons, modals, forms, and more. The key was making it both flexible and consistent. Would love to hear your thoughts on component architecture!",
			Category:   "Programming",
			SkillLevel: model.SkillLevelAdvanced,
			CreatedAt:  now.Add(-2 * time.Hour),
			Likes:      2,
			LikedBy:    []uuid.UUID{sarahID, mikeID},
			Comments: []model.Comment{
				{
					ID:        1,
					Author:    sarah,
					Content:   "Great work! Would love to see the documentation.",
					CreatedAt: now.Add(-1 * time.Hour),
				},
			},
		},
		{
			ID:         2,
			Author:     sarah,
			Title:      "Design System Best Practices",
			Content:    "After working on multiple projects, I've learned that consistency is key. Start with atomic design principles, document everything, version control your components, test with real users, and iterate based on feedback.",
			Category:   "Design",
			SkillLevel: model.SkillLevelIntermediate,
			CreatedAt:  now.Add(-4 * time.Hour),
			Likes:      1,
			LikedBy:    []uuid.UUID{alexID},
			Comments:   []model.Comment{},
		},
		{
			ID:         1,
			Author:     mike,
			Title:      "Data Visualization with Python",
			Content:    "Created an interactive dashboard using Plotly and Dash. The insights we discovered were game-changing for our business strategy. The key was asking the right questions and choosing the right visualization types.",
			Category:   "Data Science",
			SkillLevel: model.SkillLevelAdvanced,
			CreatedAt:  now.Add(-6 * time.Hour),
			Likes:      2,
			LikedBy:    []uuid.UUID{alexID, sarahID},
			Comments: []model.Comment{
				{
					ID:        2,
					Author:    alex,
					Content:   "Amazing insights! What data sources did you use?",
					CreatedAt: now.Add(-5 * time.Hour),
				},
			},
		},
	}
}
