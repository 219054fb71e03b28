package store

import (
	"math"
	"sort"

	"github.com/SkillSwap/feed-service/internal/model"
	"github.com/google/uuid"
)

const (
	topCategoriesLimit     = 5
	trendingSkillsLimit    = 8
	DefaultTopContributors = 5
)

// Analytics reduces the snapshot to aggregate engagement and trend figures.
// It is a pure recomputation over the current collections; callers that need
// caching can key on Snapshot.Version.
//
// Frequency tables are ranked by count descending, ties broken by first-seen
// order in the underlying sequence (posts for categories and contributors,
// users for skills).
func (s *Snapshot) Analytics(topContributors int) *model.Analytics {
	if topContributors <= 0 {
		topContributors = DefaultTopContributors
	}

	totalLikes := 0
	totalComments := 0
	for _, p := range s.Posts {
		totalLikes += p.Likes
		totalComments += len(p.Comments)
	}

	engagementRate := 0.0
	if len(s.Posts) > 0 {
		engagementRate = round1(float64(totalLikes+totalComments) / float64(len(s.Posts)))
	}

	return &model.Analytics{
		TotalPosts:      len(s.Posts),
		TotalUsers:      len(s.Users),
		TotalLikes:      totalLikes,
		TotalComments:   totalComments,
		EngagementRate:  engagementRate,
		TopCategories:   s.topCategories(),
		TrendingSkills:  s.trendingSkills(),
		TopContributors: s.TopContributors(topContributors),
	}
}

func (s *Snapshot) topCategories() []model.CategoryCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, p := range s.Posts {
		if p.Category == "" {
			continue
		}
		if _, ok := counts[p.Category]; !ok {
			firstSeen[p.Category] = i
		}
		counts[p.Category]++
	}

	table := make([]model.CategoryCount, 0, len(counts))
	for category, count := range counts {
		table = append(table, model.CategoryCount{Category: category, Count: count})
	}
	sort.SliceStable(table, func(i, j int) bool {
		if table[i].Count != table[j].Count {
			return table[i].Count > table[j].Count
		}
		return firstSeen[table[i].Category] < firstSeen[table[j].Category]
	})

	return truncate(table, topCategoriesLimit)
}

func (s *Snapshot) trendingSkills() []model.SkillCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0
	for _, u := range s.Users {
		for _, skill := range u.Skills {
			if _, ok := counts[skill]; !ok {
				firstSeen[skill] = order
			}
			counts[skill]++
			order++
		}
	}

	table := make([]model.SkillCount, 0, len(counts))
	for skill, count := range counts {
		table = append(table, model.SkillCount{Skill: skill, Count: count})
	}
	sort.SliceStable(table, func(i, j int) bool {
		if table[i].Count != table[j].Count {
			return table[i].Count > table[j].Count
		}
		return firstSeen[table[i].Skill] < firstSeen[table[j].Skill]
	})

	return truncate(table, trendingSkillsLimit)
}

// TopContributors ranks authors by 2*posts + likes over their posts.
func (s *Snapshot) TopContributors(n int) []model.Contributor {
	stats := make(map[uuid.UUID]*model.Contributor)
	firstSeen := make(map[uuid.UUID]int)
	for i, p := range s.Posts {
		c, ok := stats[p.Author.ID]
		if !ok {
			c = &model.Contributor{Author: p.Author}
			stats[p.Author.ID] = c
			firstSeen[p.Author.ID] = i
		}
		c.Posts++
		c.Likes += p.Likes
	}

	ranking := make([]model.Contributor, 0, len(stats))
	for _, c := range stats {
		c.Score = 2*c.Posts + c.Likes
		ranking = append(ranking, *c)
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].Score != ranking[j].Score {
			return ranking[i].Score > ranking[j].Score
		}
		return firstSeen[ranking[i].Author.ID] < firstSeen[ranking[j].Author.ID]
	})

	return truncate(ranking, n)
}

func truncate[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
