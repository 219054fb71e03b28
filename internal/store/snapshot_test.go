package store

import (
	"testing"
	"time"

	"github.com/SkillSwap/feed-service/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var (
	testAlice = model.Author{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Username: "alice", DisplayName: "Alice"}
	testBob   = model.Author{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Username: "bob", DisplayName: "Bob"}
)

func testSnapshot(t *testing.T) *Snapshot {
	t.Helper()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	snap := NewSnapshot(nil, nil)
	snap, _, err := snap.CreatePost(testAlice, "First post", "Hello world", "Programming", model.SkillLevelBeginner, now)
	assert.NoError(t, err)
	snap, _, err = snap.CreatePost(testBob, "Second post", "More content", "Design", "", now.Add(time.Hour))
	assert.NoError(t, err)

	return snap
}

func TestCreatePost(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	snap := NewSnapshot(nil, nil)

	next, post, err := snap.CreatePost(testAlice, "  Title  ", "Content", "Programming", model.SkillLevelAdvanced, now)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), post.ID)
	assert.Equal(t, "Title", post.Title)
	assert.Equal(t, testAlice, post.Author)
	assert.Equal(t, 0, post.Likes)
	assert.NotNil(t, post.LikedBy)
	assert.Empty(t, post.LikedBy)
	assert.NotNil(t, post.Comments)
	assert.Empty(t, post.Comments)

	next2, post2, err := next.CreatePost(testBob, "Another", "Content", "", "", now.Add(time.Minute))
	assert.NoError(t, err)
	assert.Equal(t, int64(2), post2.ID)
	assert.Equal(t, post2, next2.Posts[0], "new posts are prepended")
	assert.Equal(t, post, next2.Posts[1])

	assert.Empty(t, snap.Posts, "the original snapshot is untouched")
	assert.Equal(t, snap.Version+2, next2.Version)
}

func TestCreatePost_Validation(t *testing.T) {
	now := time.Now().UTC()
	snap := testSnapshot(t)

	_, _, err := snap.CreatePost(testAlice, "   ", "Content", "", "", now)
	assert.ErrorIs(t, err, ErrValidation)

	_, _, err = snap.CreatePost(testAlice, "Title", "", "", "", now)
	assert.ErrorIs(t, err, ErrValidation)

	_, _, err = snap.CreatePost(testAlice, "Title", "Content", "", model.SkillLevel("guru"), now)
	assert.ErrorIs(t, err, ErrValidation)

	assert.Len(t, snap.Posts, 2, "a rejected create leaves the snapshot as it was")
}

func TestUpdatePost(t *testing.T) {
	snap := testSnapshot(t)
	postID := snap.Posts[1].ID
	originalContent := snap.Posts[1].Content

	title := "Renamed"
	next, updated, err := snap.UpdatePost(postID, PostPatch{Title: &title})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, originalContent, updated.Content, "nil patch fields are left alone")
	assert.Equal(t, updated, next.FindPost(postID))
	assert.Equal(t, "First post", snap.FindPost(postID).Title, "the old snapshot keeps the old post")
}

func TestUpdatePost_Errors(t *testing.T) {
	snap := testSnapshot(t)

	_, _, err := snap.UpdatePost(999, PostPatch{})
	assert.ErrorIs(t, err, ErrNotFound)

	empty := " "
	_, _, err = snap.UpdatePost(snap.Posts[0].ID, PostPatch{Title: &empty})
	assert.ErrorIs(t, err, ErrValidation)

	bad := model.SkillLevel("wizard")
	_, _, err = snap.UpdatePost(snap.Posts[0].ID, PostPatch{SkillLevel: &bad})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeletePost(t *testing.T) {
	snap := testSnapshot(t)
	postID := snap.Posts[0].ID

	next := snap.DeletePost(postID)
	assert.Len(t, next.Posts, 1)
	assert.Nil(t, next.FindPost(postID))
	assert.NotNil(t, snap.FindPost(postID))

	again := next.DeletePost(postID)
	assert.Same(t, next, again, "deleting a missing post is a no-op")
}

func TestToggleLike(t *testing.T) {
	snap := testSnapshot(t)
	postID := snap.Posts[0].ID

	liked, post, err := snap.ToggleLike(postID, testAlice.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, post.Likes)
	assert.True(t, post.LikedByUser(testAlice.ID))
	assert.Len(t, post.LikedBy, post.Likes)

	// second like from another user stacks
	liked2, post2, err := liked.ToggleLike(postID, testBob.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, post2.Likes)
	assert.Len(t, post2.LikedBy, post2.Likes)

	// toggling again removes exactly this user's like
	unliked, post3, err := liked2.ToggleLike(postID, testAlice.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, post3.Likes)
	assert.False(t, post3.LikedByUser(testAlice.ID))
	assert.True(t, post3.LikedByUser(testBob.ID))
	assert.Len(t, post3.LikedBy, post3.Likes)
	assert.NotNil(t, unliked.FindPost(postID))

	assert.Equal(t, 0, snap.FindPost(postID).Likes, "earlier snapshots are unaffected")
}

func TestToggleLike_Errors(t *testing.T) {
	snap := testSnapshot(t)

	_, _, err := snap.ToggleLike(snap.Posts[0].ID, uuid.Nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, _, err = snap.ToggleLike(999, testAlice.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddComment(t *testing.T) {
	now := time.Now().UTC()
	snap := testSnapshot(t)
	postID := snap.Posts[0].ID

	next, comment, err := snap.AddComment(postID, testBob, "Nice one", now)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), comment.ID)
	assert.Equal(t, "Nice one", comment.Content)

	next2, comment2, err := next.AddComment(postID, testAlice, "Thanks!", now.Add(time.Minute))
	assert.NoError(t, err)
	assert.Equal(t, int64(2), comment2.ID)

	comments := next2.FindPost(postID).Comments
	assert.Len(t, comments, 2)
	assert.Equal(t, *comment, comments[0], "comments keep insertion order")
	assert.Equal(t, *comment2, comments[1])

	assert.Empty(t, snap.FindPost(postID).Comments)
}

func TestAddComment_Errors(t *testing.T) {
	now := time.Now().UTC()
	snap := testSnapshot(t)

	_, _, err := snap.AddComment(snap.Posts[0].ID, testBob, "  ", now)
	assert.ErrorIs(t, err, ErrValidation)

	_, _, err = snap.AddComment(999, testBob, "Hello", now)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpsertUser(t *testing.T) {
	snap := NewSnapshot(nil, nil)

	user := &model.User{
		ID:          testAlice.ID,
		Username:    "alice",
		DisplayName: " Alice ",
		Skills:      []string{"Go", " Go ", "React", "", "Go", "SQL"},
	}
	next, stored, err := snap.UpsertUser(user)
	assert.NoError(t, err)
	assert.Equal(t, "Alice", stored.DisplayName)
	assert.Equal(t, []string{"Go", "React", "SQL"}, stored.Skills)
	assert.Len(t, next.Users, 1)

	stored2 := stored.Clone()
	stored2.Bio = "Updated bio"
	next2, _, err := next.UpsertUser(stored2)
	assert.NoError(t, err)
	assert.Len(t, next2.Users, 1, "matching id replaces instead of appending")
	assert.Equal(t, "Updated bio", next2.FindUser(testAlice.ID).Bio)
	assert.Equal(t, "", next.FindUser(testAlice.ID).Bio)

	_, _, err = next2.UpsertUser(&model.User{ID: testBob.ID, Username: "bob"})
	assert.ErrorIs(t, err, ErrValidation)
	_, _, err = next2.UpsertUser(&model.User{ID: testBob.ID, DisplayName: "Bob"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewSnapshot_DerivesCounters(t *testing.T) {
	now := time.Now().UTC()
	posts := []*model.Post{
		{ID: 7, Author: testAlice, Title: "t", Content: "c", CreatedAt: now, Comments: []model.Comment{{ID: 4, Author: testBob, Content: "hi", CreatedAt: now}}},
	}
	snap := NewSnapshot(posts, nil)

	next, post, err := snap.CreatePost(testBob, "Fresh", "Content", "", "", now)
	assert.NoError(t, err)
	assert.Equal(t, int64(8), post.ID)

	_, comment, err := next.AddComment(post.ID, testAlice, "First", now)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), comment.ID)
}

func TestPostsByAuthor(t *testing.T) {
	snap := testSnapshot(t)

	posts := snap.PostsByAuthor(testAlice.ID)
	assert.Len(t, posts, 1)
	assert.Equal(t, "First post", posts[0].Title)

	assert.Empty(t, snap.PostsByAuthor(uuid.New()))
}
