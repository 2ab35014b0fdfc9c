package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerifyToken(t *testing.T) {
	t.Parallel()

	tok, err := IssueToken(7, "ana", []string{"MAESTRO"}, "secret")
	require.NoError(t, err)

	claims, err := VerifyToken(tok, "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "ana", claims.Username)
	assert.Equal(t, []string{"MAESTRO"}, claims.Roles)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, 5*time.Second)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := IssueToken(1, "ana", nil, "right-secret")
	require.NoError(t, err)

	_, err = VerifyToken(tok, "wrong-secret")
	require.Error(t, err)
}

func TestVerifyToken_Expired(t *testing.T) {
	t.Parallel()

	tok, err := issueToken(1, "ana", nil, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(tok, "secret")
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestVerifyToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := VerifyToken("not.a.jwt", "secret")
	require.Error(t, err)
}
