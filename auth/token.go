package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken covers every verification failure: expired, tampered,
// wrong signing method or wrong purpose. Callers cannot tell them apart.
var ErrInvalidToken = errors.New("invalid token")

const (
	purposeReset   = "password_reset"
	purposeSession = "session"
)

type tokenClaims struct {
	UserID  uint   `json:"uid"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies user-bound tokens with the process secret.
type TokenIssuer struct {
	secret []byte
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret)}
}

// IssueResetToken creates a single-purpose password-reset token.
func (t *TokenIssuer) IssueResetToken(userID uint, ttl time.Duration) (string, error) {
	return t.issue(userID, purposeReset, ttl)
}

// VerifyResetToken returns the user id bound to a reset token.
func (t *TokenIssuer) VerifyResetToken(token string) (uint, error) {
	return t.verify(token, purposeReset)
}

// IssueSessionToken creates a login session token.
func (t *TokenIssuer) IssueSessionToken(userID uint, ttl time.Duration) (string, error) {
	return t.issue(userID, purposeSession, ttl)
}

// VerifySessionToken returns the user id bound to a session token.
func (t *TokenIssuer) VerifySessionToken(token string) (uint, error) {
	return t.verify(token, purposeSession)
}

func (t *TokenIssuer) issue(userID uint, purpose string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID:  userID,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

func (t *TokenIssuer) verify(token, purpose string) (uint, error) {
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(tk *jwt.Token) (interface{}, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !parsed.Valid || claims.Purpose != purpose || claims.UserID == 0 {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}
