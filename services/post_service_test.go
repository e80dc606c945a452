package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapp/models"
	"blogapp/repository"
)

func TestCreatePost(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db, &stubMailer{})
	posts := NewPostService(repository.NewPostRepository(db))
	alice := registerUser(t, users, "alice", "a@x.com", "pw1")

	post, err := posts.Create(alice, "Hello", "World")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, post.UserID)
	assert.False(t, post.CreatedAt.IsZero())

	loaded, err := posts.Get(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", loaded.Author.Username)
}

func TestUpdatePostOwnership(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db, &stubMailer{})
	posts := NewPostService(repository.NewPostRepository(db))
	alice := registerUser(t, users, "alice", "a@x.com", "pw1")
	bob := registerUser(t, users, "bob", "b@x.com", "pw2")
	admin := registerUser(t, users, "root", "r@x.com", "pw3")
	makeAdmin(t, db, admin)

	post, err := posts.Create(alice, "Hello", "World")
	require.NoError(t, err)

	_, err = posts.Update(post.ID, bob, "Hacked", "Nope")
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := posts.Update(post.ID, alice, "Hello again", "World")
	require.NoError(t, err)
	assert.Equal(t, "Hello again", updated.Title)

	updated, err = posts.Update(post.ID, admin, "Moderated", "World")
	require.NoError(t, err)
	assert.Equal(t, "Moderated", updated.Title)

	_, err = posts.Update(9999, alice, "x", "y")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeletePostCascades(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db, &stubMailer{})
	posts := NewPostService(repository.NewPostRepository(db))
	comments := NewCommentService(repository.NewCommentRepository(db), repository.NewPostRepository(db))
	likes := NewLikeService(repository.NewLikeRepository(db), repository.NewPostRepository(db), repository.NewCommentRepository(db), nil)

	alice := registerUser(t, users, "alice", "a@x.com", "pw1")
	bob := registerUser(t, users, "bob", "b@x.com", "pw2")

	post, err := posts.Create(alice, "Hello", "World")
	require.NoError(t, err)
	comment, err := comments.Create(post.ID, bob, "nice one")
	require.NoError(t, err)

	_, _, err = likes.TogglePost(post.ID, bob)
	require.NoError(t, err)
	_, _, err = likes.ToggleComment(comment.ID, alice)
	require.NoError(t, err)

	require.NoError(t, posts.Delete(post.ID, alice))

	_, err = posts.Get(post.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	var commentCount, likeCount int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&commentCount).Error)
	require.NoError(t, db.Model(&models.Like{}).Count(&likeCount).Error)
	assert.Zero(t, commentCount)
	assert.Zero(t, likeCount)
}

func TestDeletePostOwnership(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db, &stubMailer{})
	posts := NewPostService(repository.NewPostRepository(db))
	alice := registerUser(t, users, "alice", "a@x.com", "pw1")
	bob := registerUser(t, users, "bob", "b@x.com", "pw2")
	admin := registerUser(t, users, "root", "r@x.com", "pw3")
	makeAdmin(t, db, admin)

	post, err := posts.Create(alice, "Hello", "World")
	require.NoError(t, err)

	assert.ErrorIs(t, posts.Delete(post.ID, bob), ErrForbidden)
	require.NoError(t, posts.Delete(post.ID, admin))
}

func TestFeedPagination(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db, &stubMailer{})
	posts := NewPostService(repository.NewPostRepository(db))
	alice := registerUser(t, users, "alice", "a@x.com", "pw1")

	for i := 0; i < 7; i++ {
		_, err := posts.Create(alice, "Post", "body")
		require.NoError(t, err)
	}

	first, total, err := posts.Feed(1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	assert.Len(t, first, PostsPerPage)

	second, _, err := posts.Feed(2)
	require.NoError(t, err)
	assert.Len(t, second, 2)

	// Newest first.
	assert.Greater(t, first[0].ID, first[1].ID)
}
