package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"blogapp/auth"
	"blogapp/models"
	"blogapp/repository"
)

type stubMailer struct {
	to, link, name string
	sends          int
}

func (m *stubMailer) SendResetEmail(to, resetLink, displayName string) error {
	m.to, m.link, m.name = to, resetLink, displayName
	m.sends++
	return nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// One pooled connection, or each connection sees its own empty
	// in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Post{}, &models.Comment{}, &models.Like{},
	))
	return db
}

func newUserService(db *gorm.DB, mailer Mailer) *UserService {
	return NewUserService(
		repository.NewUserRepository(db),
		auth.NewTokenIssuer("test-secret"),
		mailer,
		"http://localhost:8080",
	)
}

func registerUser(t *testing.T, svc *UserService, username, email, password string) *models.User {
	t.Helper()
	user, err := svc.Register(username, email, password)
	require.NoError(t, err)
	return user
}

func makeAdmin(t *testing.T, db *gorm.DB, user *models.User) {
	t.Helper()
	user.IsAdmin = "True"
	require.NoError(t, db.Save(user).Error)
}
