package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okunevd/streamhub/internal/common"
)

var testSecret = []byte("test-secret")

func TestAccessToken_RoundTrip(t *testing.T) {
	token, err := GenerateAccessToken("u-1", "a@x.com", "alice", testSecret, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAccessToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "alice", claims.Handle)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	token, err := GenerateRefreshToken("u-1", testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseRefreshToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	token, err := GenerateAccessToken("u-1", "a@x.com", "alice", testSecret, time.Minute)
	require.NoError(t, err)

	_, err = ParseAccessToken(token, []byte("other-secret"))
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestParseAccessToken_Expired(t *testing.T) {
	token, err := GenerateAccessToken("u-1", "a@x.com", "alice", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseAccessToken(token, testSecret)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestParseAccessToken_Malformed(t *testing.T) {
	_, err := ParseAccessToken("not-a-jwt", testSecret)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

// Refresh rotation stores the minted token and compare-and-swaps it on every
// rotation, so tokens minted for the same user within the same second must
// still differ.
func TestGeneratedTokensAreUnique(t *testing.T) {
	first, err := GenerateRefreshToken("u-1", testSecret, time.Hour)
	require.NoError(t, err)
	second, err := GenerateRefreshToken("u-1", testSecret, time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	a1, err := GenerateAccessToken("u-1", "a@x.com", "alice", testSecret, time.Minute)
	require.NoError(t, err)
	a2, err := GenerateAccessToken("u-1", "a@x.com", "alice", testSecret, time.Minute)
	require.NoError(t, err)
	assert.NotEqual(t, a1, a2)
}

func TestAccessAndRefreshSecretsAreNotInterchangeable(t *testing.T) {
	refresh, err := GenerateRefreshToken("u-1", []byte("refresh-secret"), time.Hour)
	require.NoError(t, err)

	_, err = ParseAccessToken(refresh, testSecret)
	assert.Error(t, err)
}
