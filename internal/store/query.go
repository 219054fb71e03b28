package store

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SkillSwap/feed-service/internal/model"
)

type SortMode string

const (
	SortNewest        SortMode = "newest"
	SortOldest        SortMode = "oldest"
	SortMostLiked     SortMode = "most-liked"
	SortMostCommented SortMode = "most-commented"
)

// ParseSortMode maps a request parameter to a sort mode. Empty input falls
// back to newest-first, the feed default.
func ParseSortMode(s string) (SortMode, error) {
	switch mode := SortMode(strings.TrimSpace(s)); mode {
	case "":
		return SortNewest, nil
	case SortNewest, SortOldest, SortMostLiked, SortMostCommented:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: unknown sort mode %q", ErrValidation, s)
	}
}

// Query filters the post sequence by a free-text term and orders the result
// with one of four deterministic total orders. The snapshot is never
// modified; the returned slice is freshly allocated.
//
// A whitespace-only term matches everything. Otherwise the lowercased term
// must be a substring of the title, content, category, skill level or the
// author's username.
func (s *Snapshot) Query(searchTerm string, mode SortMode) []*model.Post {
	term := strings.ToLower(strings.TrimSpace(searchTerm))

	posts := make([]*model.Post, 0, len(s.Posts))
	for _, p := range s.Posts {
		if term == "" || matches(p, term) {
			posts = append(posts, p)
		}
	}

	sort.SliceStable(posts, less(mode, posts))

	return posts
}

func matches(p *model.Post, term string) bool {
	return strings.Contains(strings.ToLower(p.Title), term) ||
		strings.Contains(strings.ToLower(p.Content), term) ||
		(p.Category != "" && strings.Contains(strings.ToLower(p.Category), term)) ||
		(p.SkillLevel != "" && strings.Contains(strings.ToLower(string(p.SkillLevel)), term)) ||
		(p.Author.Username != "" && strings.Contains(strings.ToLower(p.Author.Username), term))
}

// newer is the primary tie-break everywhere: later creation wins, and equal
// timestamps fall back to the higher id, i.e. later insertion. Timestamps
// alone are not total because the clock resolution allows collisions.
func newer(a, b *model.Post) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

func less(mode SortMode, posts []*model.Post) func(i, j int) bool {
	switch mode {
	case SortOldest:
		return func(i, j int) bool { return newer(posts[j], posts[i]) }
	case SortMostLiked:
		return func(i, j int) bool {
			if posts[i].Likes != posts[j].Likes {
				return posts[i].Likes > posts[j].Likes
			}
			return newer(posts[i], posts[j])
		}
	case SortMostCommented:
		return func(i, j int) bool {
			if len(posts[i].Comments) != len(posts[j].Comments) {
				return len(posts[i].Comments) > len(posts[j].Comments)
			}
			return newer(posts[i], posts[j])
		}
	default: // SortNewest
		return func(i, j int) bool { return newer(posts[i], posts[j]) }
	}
}
