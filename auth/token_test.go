package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flipByte(token string) string {
	b := []byte(token)
	i := len(b) / 2
	if b[i] == 'A' {
		b[i] = 'B'
	} else {
		b[i] = 'A'
	}
	return string(b)
}

func TestResetTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	token, err := issuer.IssueResetToken(42, time.Hour)
	require.NoError(t, err)

	userID, err := issuer.VerifyResetToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestExpiredAndTamperedAreIndistinguishable(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	expired, err := issuer.IssueResetToken(7, -time.Minute)
	require.NoError(t, err)
	_, errExpired := issuer.VerifyResetToken(expired)

	valid, err := issuer.IssueResetToken(7, time.Hour)
	require.NoError(t, err)
	_, errTampered := issuer.VerifyResetToken(flipByte(valid))

	assert.ErrorIs(t, errExpired, ErrInvalidToken)
	assert.ErrorIs(t, errTampered, ErrInvalidToken)
	assert.Equal(t, errExpired, errTampered)
}

func TestTokenPurposeIsolation(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	session, err := issuer.IssueSessionToken(7, time.Hour)
	require.NoError(t, err)
	_, err = issuer.VerifyResetToken(session)
	assert.ErrorIs(t, err, ErrInvalidToken)

	reset, err := issuer.IssueResetToken(7, time.Hour)
	require.NoError(t, err)
	_, err = issuer.VerifySessionToken(reset)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-a").IssueResetToken(7, time.Hour)
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret-b").VerifyResetToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
