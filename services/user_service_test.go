package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapp/models"
	"blogapp/repository"
)

func TestRegisterDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db, &stubMailer{})

	registerUser(t, svc, "alice", "a@x.com", "pw1")

	_, err := svc.Register("alice", "other@x.com", "pw2")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db, &stubMailer{})

	registerUser(t, svc, "alice", "a@x.com", "pw1")

	_, err := svc.Register("bob", "a@x.com", "pw2")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterHashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db, &stubMailer{})

	user := registerUser(t, svc, "alice", "a@x.com", "pw1")
	assert.NotEqual(t, "pw1", user.Password)
	assert.Equal(t, models.DefaultProfileImage, user.ImageFile)
	assert.False(t, user.Admin())
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db, &stubMailer{})
	registerUser(t, svc, "alice", "a@x.com", "pw1")

	user, err := svc.Authenticate("alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = svc.Authenticate("alice", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, err = svc.Authenticate("nobody", "pw1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db, &stubMailer{})
	alice := registerUser(t, svc, "alice", "a@x.com", "pw1")
	registerUser(t, svc, "bob", "b@x.com", "pw2")

	// Keeping her own name and email is not a collision.
	require.NoError(t, svc.UpdateProfile(alice, "alice", "a@x.com", ""))

	err := svc.UpdateProfile(alice, "bob", "a@x.com", "")
	assert.ErrorIs(t, err, ErrUsernameTaken)
	err = svc.UpdateProfile(alice, "alice", "b@x.com", "")
	assert.ErrorIs(t, err, ErrEmailTaken)

	require.NoError(t, svc.UpdateProfile(alice, "alice2", "a2@x.com", "https://img.example/alice.png"))
	updated, err := svc.ByUsername("alice2")
	require.NoError(t, err)
	assert.Equal(t, "a2@x.com", updated.Email)
	assert.Equal(t, "https://img.example/alice.png", updated.ImageFile)
}

func TestPasswordResetFlow(t *testing.T) {
	db := newTestDB(t)
	mailer := &stubMailer{}
	svc := newUserService(db, mailer)
	alice := registerUser(t, svc, "alice", "a@x.com", "pw1")

	require.NoError(t, svc.RequestPasswordReset("a@x.com"))
	assert.Equal(t, 1, mailer.sends)
	assert.Equal(t, "a@x.com", mailer.to)
	assert.Equal(t, "alice", mailer.name)
	require.Contains(t, mailer.link, "/resetpassword/")

	token := mailer.link[strings.LastIndex(mailer.link, "/")+1:]
	user, err := svc.VerifyResetToken(token)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, user.ID)

	require.NoError(t, svc.ResetPassword(user, "pw2"))
	_, err = svc.Authenticate("alice", "pw1")
	assert.ErrorIs(t, err, ErrWrongPassword)
	_, err = svc.Authenticate("alice", "pw2")
	assert.NoError(t, err)
}

func TestRequestPasswordResetUnknownEmail(t *testing.T) {
	db := newTestDB(t)
	mailer := &stubMailer{}
	svc := newUserService(db, mailer)

	err := svc.RequestPasswordReset("missing@x.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Zero(t, mailer.sends)
}
