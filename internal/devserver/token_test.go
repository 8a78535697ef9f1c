package devserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("alice", secret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := ValidateToken(token, secret)
	require.NoError(t, err)
	require.Equal(t, "alice", username)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("alice", []byte("secret-a"), time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken(token, []byte("secret-b"))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpired(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("alice", secret, -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(token, secret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", []byte("test-secret"))
	require.ErrorIs(t, err, ErrInvalidToken)
}
