package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/SkillSwap/feed-service/internal/model"
	"github.com/google/uuid"
)

// Snapshot is an immutable point-in-time view of all posts and users.
// Posts are kept most-recent-first. Every mutation returns a fresh snapshot
// and leaves the receiver untouched, so concurrent readers never observe a
// partially-applied state.
type Snapshot struct {
	Posts   []*model.Post
	Users   []*model.User
	Version uint64

	nextPostID    int64
	nextCommentID int64
}

// NewSnapshot builds a snapshot from existing collections and derives the id
// counters from the highest ids present, so rehydrated data keeps allocating
// unique ids.
func NewSnapshot(posts []*model.Post, users []*model.User) *Snapshot {
	s := &Snapshot{
		Posts:         posts,
		Users:         users,
		nextPostID:    1,
		nextCommentID: 1,
	}

	for _, p := range posts {
		if p.ID >= s.nextPostID {
			s.nextPostID = p.ID + 1
		}
		for _, c := range p.Comments {
			if c.ID >= s.nextCommentID {
				s.nextCommentID = c.ID + 1
			}
		}
	}

	return s
}

func (s *Snapshot) FindPost(postID int64) *model.Post {
	for _, p := range s.Posts {
		if p.ID == postID {
			return p
		}
	}
	return nil
}

func (s *Snapshot) FindUser(userID uuid.UUID) *model.User {
	for _, u := range s.Users {
		if u.ID == userID {
			return u
		}
	}
	return nil
}

func (s *Snapshot) PostsByAuthor(userID uuid.UUID) []*model.Post {
	var posts []*model.Post
	for _, p := range s.Posts {
		if p.Author.ID == userID {
			posts = append(posts, p)
		}
	}
	return posts
}

// next copies the snapshot shell with a bumped version. The post and user
// slices still alias the receiver's backing arrays until replaced.
func (s *Snapshot) next() *Snapshot {
	return &Snapshot{
		Posts:         s.Posts,
		Users:         s.Users,
		Version:       s.Version + 1,
		nextPostID:    s.nextPostID,
		nextCommentID: s.nextCommentID,
	}
}

// replacePost returns a new post slice sharing every element except the one
// with the given id, which is swapped for the provided copy.
func (s *Snapshot) replacePost(updated *model.Post) []*model.Post {
	posts := make([]*model.Post, len(s.Posts))
	copy(posts, s.Posts)
	for i, p := range posts {
		if p.ID == updated.ID {
			posts[i] = updated
			break
		}
	}
	return posts
}

// CreatePost prepends a new post with a freshly allocated id, zero likes and
// no comments. Title and content must be non-empty after trimming.
func (s *Snapshot) CreatePost(author model.Author, title, content, category string, level model.SkillLevel, now time.Time) (*Snapshot, *model.Post, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return nil, nil, fmt.Errorf("%w: post title cannot be empty", ErrValidation)
	}
	if content == "" {
		return nil, nil, fmt.Errorf("%w: post content cannot be empty", ErrValidation)
	}
	if !level.Valid() {
		return nil, nil, fmt.Errorf("%w: unknown skill level %q", ErrValidation, level)
	}

	post := &model.Post{
		ID:         s.nextPostID,
		Author:     author,
		Title:      title,
		Content:    content,
		Category:   strings.TrimSpace(category),
		SkillLevel: level,
		CreatedAt:  now,
		Likes:      0,
		LikedBy:    []uuid.UUID{},
		Comments:   []model.Comment{},
	}

	next := s.next()
	next.Posts = append([]*model.Post{post}, s.Posts...)
	next.nextPostID++

	return next, post, nil
}

// PostPatch carries the editable post fields. Nil fields are left as-is;
// author, id, likes, comments and creation time are immutable after creation.
type PostPatch struct {
	Title      *string
	Content    *string
	Category   *string
	SkillLevel *model.SkillLevel
}

func (s *Snapshot) UpdatePost(postID int64, patch PostPatch) (*Snapshot, *model.Post, error) {
	existing := s.FindPost(postID)
	if existing == nil {
		return nil, nil, fmt.Errorf("%w: post %d", ErrNotFound, postID)
	}

	updated := existing.Clone()
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, nil, fmt.Errorf("%w: post title cannot be empty", ErrValidation)
		}
		updated.Title = title
	}
	if patch.Content != nil {
		content := strings.TrimSpace(*patch.Content)
		if content == "" {
			return nil, nil, fmt.Errorf("%w: post content cannot be empty", ErrValidation)
		}
		updated.Content = content
	}
	if patch.Category != nil {
		updated.Category = strings.TrimSpace(*patch.Category)
	}
	if patch.SkillLevel != nil {
		if !patch.SkillLevel.Valid() {
			return nil, nil, fmt.Errorf("%w: unknown skill level %q", ErrValidation, *patch.SkillLevel)
		}
		updated.SkillLevel = *patch.SkillLevel
	}

	next := s.next()
	next.Posts = s.replacePost(updated)

	return next, updated, nil
}

// DeletePost removes the post with the given id. A missing id is a no-op,
// not an error: deletion races are expected when the UI fires twice. The
// receiver itself is returned in that case so callers can detect the no-op
// by snapshot identity.
func (s *Snapshot) DeletePost(postID int64) *Snapshot {
	idx := -1
	for i, p := range s.Posts {
		if p.ID == postID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return s
	}

	posts := make([]*model.Post, 0, len(s.Posts)-1)
	posts = append(posts, s.Posts[:idx]...)
	posts = append(posts, s.Posts[idx+1:]...)

	next := s.next()
	next.Posts = posts

	return next
}

// ToggleLike flips the user's like on a post. Membership is decided from the
// current likedBy set, never from caller-supplied state, so a retried call
// cannot double-apply.
func (s *Snapshot) ToggleLike(postID int64, userID uuid.UUID) (*Snapshot, *model.Post, error) {
	if userID == uuid.Nil {
		return nil, nil, fmt.Errorf("%w: like requires an acting user", ErrUnauthenticated)
	}

	existing := s.FindPost(postID)
	if existing == nil {
		return nil, nil, fmt.Errorf("%w: post %d", ErrNotFound, postID)
	}

	updated := existing.Clone()
	if existing.LikedByUser(userID) {
		likedBy := make([]uuid.UUID, 0, len(existing.LikedBy)-1)
		for _, id := range existing.LikedBy {
			if id != userID {
				likedBy = append(likedBy, id)
			}
		}
		updated.LikedBy = likedBy
		updated.Likes--
	} else {
		updated.LikedBy = append(updated.LikedBy, userID)
		updated.Likes++
	}

	next := s.next()
	next.Posts = s.replacePost(updated)

	return next, updated, nil
}

// AddComment appends a comment to the end of the post's comment sequence.
// Comments are append-only and keep insertion order for display.
func (s *Snapshot) AddComment(postID int64, author model.Author, content string, now time.Time) (*Snapshot, *model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, nil, fmt.Errorf("%w: comment cannot be empty", ErrValidation)
	}

	existing := s.FindPost(postID)
	if existing == nil {
		return nil, nil, fmt.Errorf("%w: post %d", ErrNotFound, postID)
	}

	comment := model.Comment{
		ID:        s.nextCommentID,
		Author:    author,
		Content:   content,
		CreatedAt: now,
	}

	updated := existing.Clone()
	updated.Comments = append(updated.Comments, comment)

	next := s.next()
	next.Posts = s.replacePost(updated)
	next.nextCommentID++

	return next, &comment, nil
}

// UpsertUser replaces the user with a matching id, or inserts a new one.
// Skills are deduplicated case-sensitively, keeping first occurrence.
func (s *Snapshot) UpsertUser(user *model.User) (*Snapshot, *model.User, error) {
	if strings.TrimSpace(user.DisplayName) == "" {
		return nil, nil, fmt.Errorf("%w: display name cannot be empty", ErrValidation)
	}
	if strings.TrimSpace(user.Username) == "" {
		return nil, nil, fmt.Errorf("%w: username cannot be empty", ErrValidation)
	}

	stored := user.Clone()
	stored.DisplayName = strings.TrimSpace(stored.DisplayName)
	stored.Username = strings.TrimSpace(stored.Username)
	stored.Skills = dedupeSkills(stored.Skills)

	users := make([]*model.User, len(s.Users))
	copy(users, s.Users)

	replaced := false
	for i, u := range users {
		if u.ID == stored.ID {
			users[i] = stored
			replaced = true
			break
		}
	}
	if !replaced {
		users = append(users, stored)
	}

	next := s.next()
	next.Users = users

	return next, stored, nil
}

func dedupeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	deduped := make([]string, 0, len(skills))
	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		deduped = append(deduped, skill)
	}
	return deduped
}
