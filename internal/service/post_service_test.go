package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/d60-Lab/gin-blog/internal/model"
	"github.com/d60-Lab/gin-blog/internal/repository"
)

func seedUser(t *testing.T, db *gorm.DB, email, name string) *model.User {
	t.Helper()
	u := &model.User{Email: email, Password: "h", Name: name}
	require.NoError(t, db.Create(u).Error)
	return u
}

func newPostService(db *gorm.DB, now func() time.Time) PostService {
	s := &postService{posts: repository.NewPostRepository(db), now: now}
	return s
}

var fixedNow = func() time.Time { return time.Date(2026, time.August, 5, 12, 0, 0, 0, time.UTC) }

func TestCreatePostSetsDateAndAuthor(t *testing.T) {
	db := setupTestDB(t)
	svc := newPostService(db, fixedNow)
	ctx := context.Background()
	author := seedUser(t, db, "a@example.com", "Jane Doe")

	post, err := svc.Create(ctx, author, PostInput{
		Title: "Hello", Subtitle: "sub", ImgURL: "https://example.com/x.png", Body: "<p>hi</p>",
	})
	require.NoError(t, err)

	assert.Equal(t, "August 05, 2026", post.Date)
	assert.Equal(t, author.ID, post.AuthorID)
	assert.Equal(t, "Jane Doe", post.AuthorName)

	got, err := svc.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", got.Title)
	assert.Equal(t, "sub", got.Subtitle)
	assert.Equal(t, "<p>hi</p>", got.Body)
	assert.Equal(t, "https://example.com/x.png", got.ImgURL)
}

func TestCreatePostDuplicateTitle(t *testing.T) {
	db := setupTestDB(t)
	svc := newPostService(db, fixedNow)
	ctx := context.Background()
	author := seedUser(t, db, "a@example.com", "Jane")

	_, err := svc.Create(ctx, author, PostInput{Title: "Hello", Subtitle: "s", ImgURL: "u", Body: "b"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, author, PostInput{Title: "Hello", Subtitle: "s2", ImgURL: "u2", Body: "b2"})
	assert.ErrorIs(t, err, ErrTitleTaken)
}

func TestUpdatePostOverwritesAuthorName(t *testing.T) {
	db := setupTestDB(t)
	svc := newPostService(db, fixedNow)
	ctx := context.Background()
	author := seedUser(t, db, "a@example.com", "Jane")
	editor := seedUser(t, db, "e@example.com", "Ed Itor")

	post, err := svc.Create(ctx, author, PostInput{Title: "Hello", Subtitle: "s", ImgURL: "u", Body: "b"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, post.ID, editor, PostInput{
		Title: "Hello v2", Subtitle: "s2", ImgURL: "u2", Body: "b2",
	})
	require.NoError(t, err)

	assert.Equal(t, post.ID, updated.ID)
	assert.Equal(t, post.Date, updated.Date, "date is immutable once set")
	assert.Equal(t, author.ID, updated.AuthorID, "FK never changes")
	assert.Equal(t, "Ed Itor", updated.AuthorName, "display name follows the editor")
	assert.Equal(t, "Hello v2", updated.Title)
	assert.Equal(t, "s2", updated.Subtitle)
	assert.Equal(t, "u2", updated.ImgURL)
	assert.Equal(t, "b2", updated.Body)
}

func TestUpdatePostTitleConflictAndMissing(t *testing.T) {
	db := setupTestDB(t)
	svc := newPostService(db, fixedNow)
	ctx := context.Background()
	author := seedUser(t, db, "a@example.com", "Jane")

	_, err := svc.Create(ctx, author, PostInput{Title: "One", Subtitle: "s", ImgURL: "u", Body: "b"})
	require.NoError(t, err)
	two, err := svc.Create(ctx, author, PostInput{Title: "Two", Subtitle: "s", ImgURL: "u", Body: "b"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, two.ID, author, PostInput{Title: "One", Subtitle: "s", ImgURL: "u", Body: "b"})
	assert.ErrorIs(t, err, ErrTitleTaken)

	_, err = svc.Update(ctx, 999, author, PostInput{Title: "X", Subtitle: "s", ImgURL: "u", Body: "b"})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDeletePost(t *testing.T) {
	db := setupTestDB(t)
	svc := newPostService(db, fixedNow)
	ctx := context.Background()
	author := seedUser(t, db, "a@example.com", "Jane")

	post, err := svc.Create(ctx, author, PostInput{Title: "One", Subtitle: "s", ImgURL: "u", Body: "b"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, post.ID))
	_, err = svc.Get(ctx, post.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, 999), ErrPostNotFound)

	// 删除后列表仍可用
	posts, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestCommentService(t *testing.T) {
	db := setupTestDB(t)
	postSvc := newPostService(db, fixedNow)
	commentSvc := NewCommentService(repository.NewCommentRepository(db), repository.NewPostRepository(db))
	ctx := context.Background()

	author := seedUser(t, db, "a@example.com", "Jane")
	commenter := seedUser(t, db, "b@example.com", "Bob")

	post, err := postSvc.Create(ctx, author, PostInput{Title: "One", Subtitle: "s", ImgURL: "u", Body: "b"})
	require.NoError(t, err)

	comment, err := commentSvc.Add(ctx, commenter, post.ID, "great read")
	require.NoError(t, err)
	assert.Equal(t, commenter.ID, comment.AuthorID)
	assert.Equal(t, post.ID, comment.PostID)

	_, err = commentSvc.Add(ctx, commenter, 999, "dangling")
	assert.ErrorIs(t, err, ErrPostNotFound)
}
