package services

import (
	"time"

	"blogapp/auth"
	"blogapp/models"
	"blogapp/repository"
)

// ResetTokenTTL bounds password-reset links, matching the mail body's
// "expires in 1 hour" wording.
const ResetTokenTTL = time.Hour

// Mailer delivers password-reset mail.
type Mailer interface {
	SendResetEmail(to, resetLink, displayName string) error
}

type UserService struct {
	users   repository.UserRepository
	tokens  *auth.TokenIssuer
	mailer  Mailer
	baseURL string
}

func NewUserService(users repository.UserRepository, tokens *auth.TokenIssuer, mailer Mailer, baseURL string) *UserService {
	return &UserService{users: users, tokens: tokens, mailer: mailer, baseURL: baseURL}
}

// Register creates an account. Username and email uniqueness are enforced
// here; the plaintext password never leaves this call unhashed.
func (s *UserService) Register(username, email, password string) (*models.User, error) {
	taken, err := s.users.UsernameTaken(username, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}
	taken, err = s.users.EmailTaken(email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Username:  username,
		Email:     email,
		Password:  hashed,
		ImageFile: models.DefaultProfileImage,
		IsAdmin:   "False",
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks credentials. A missing user surfaces as ErrNotFound,
// a hash mismatch as ErrWrongPassword; neither creates a session.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.users.ByUsername(username)
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(user.Password, password) {
		return nil, ErrWrongPassword
	}
	return user, nil
}

func (s *UserService) ByID(id uint) (*models.User, error) {
	return s.users.ByID(id)
}

func (s *UserService) ByUsername(username string) (*models.User, error) {
	return s.users.ByUsername(username)
}

// UpdateProfile changes username/email, re-checking uniqueness against every
// other user. imageURL is applied only when non-empty.
func (s *UserService) UpdateProfile(user *models.User, username, email, imageURL string) error {
	taken, err := s.users.UsernameTaken(username, user.ID)
	if err != nil {
		return err
	}
	if taken {
		return ErrUsernameTaken
	}
	taken, err = s.users.EmailTaken(email, user.ID)
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailTaken
	}

	user.Username = username
	user.Email = email
	if imageURL != "" {
		user.ImageFile = imageURL
	}
	return s.users.Update(user)
}

// RequestPasswordReset issues a one-hour token for the account behind the
// given email and hands the reset mail to the dispatcher.
func (s *UserService) RequestPasswordReset(email string) error {
	user, err := s.users.ByEmail(email)
	if err != nil {
		return err
	}
	token, err := s.tokens.IssueResetToken(user.ID, ResetTokenTTL)
	if err != nil {
		return err
	}
	resetLink := s.baseURL + "/resetpassword/" + token
	return s.mailer.SendResetEmail(user.Email, resetLink, user.Username)
}

// VerifyResetToken resolves a reset token to its user. Any verification
// failure comes back as auth.ErrInvalidToken.
func (s *UserService) VerifyResetToken(token string) (*models.User, error) {
	userID, err := s.tokens.VerifyResetToken(token)
	if err != nil {
		return nil, err
	}
	return s.users.ByID(userID)
}

// ResetPassword stores a new hash for the user.
func (s *UserService) ResetPassword(user *models.User, newPassword string) error {
	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	return s.users.Update(user)
}
