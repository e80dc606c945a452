package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapp/repository"
)

func TestCreateCommentOnMissingPost(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db, &stubMailer{})
	comments := NewCommentService(repository.NewCommentRepository(db), repository.NewPostRepository(db))
	alice := registerUser(t, users, "alice", "a@x.com", "pw1")

	_, err := comments.Create(9999, alice, "hello?")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAnyUserMayComment(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db, &stubMailer{})
	posts := NewPostService(repository.NewPostRepository(db))
	comments := NewCommentService(repository.NewCommentRepository(db), repository.NewPostRepository(db))
	alice := registerUser(t, users, "alice", "a@x.com", "pw1")
	bob := registerUser(t, users, "bob", "b@x.com", "pw2")

	post, err := posts.Create(alice, "Hello", "World")
	require.NoError(t, err)

	comment, err := comments.Create(post.ID, bob, "first!")
	require.NoError(t, err)
	assert.Equal(t, bob.ID, comment.UserID)

	list, err := comments.ForPost(post.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "bob", list[0].Author.Username)
}

func TestDeleteCommentAuthorOnly(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db, &stubMailer{})
	posts := NewPostService(repository.NewPostRepository(db))
	comments := NewCommentService(repository.NewCommentRepository(db), repository.NewPostRepository(db))
	alice := registerUser(t, users, "alice", "a@x.com", "pw1")
	bob := registerUser(t, users, "bob", "b@x.com", "pw2")
	admin := registerUser(t, users, "root", "r@x.com", "pw3")
	makeAdmin(t, db, admin)

	post, err := posts.Create(alice, "Hello", "World")
	require.NoError(t, err)
	comment, err := comments.Create(post.ID, bob, "mine")
	require.NoError(t, err)

	// No admin override on comments, unlike posts.
	assert.ErrorIs(t, comments.Delete(comment.ID, alice), ErrForbidden)
	assert.ErrorIs(t, comments.Delete(comment.ID, admin), ErrForbidden)
	require.NoError(t, comments.Delete(comment.ID, bob))

	_, err = comments.Create(post.ID, bob, "again")
	require.NoError(t, err)
	list, err := comments.ForPost(post.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
