package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("testpass123")
	require.NoError(t, err)
	assert.NotEqual(t, "testpass123", hash)
	assert.True(t, CheckPassword(hash, "testpass123"))
	assert.False(t, CheckPassword(hash, "wrongpassword"))
}

func TestTokenRoundTrip(t *testing.T) {
	tok, err := MakeToken("65f1c0ffee0000000000abcd", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(tok, "secret")
	require.NoError(t, err)
	assert.Equal(t, "65f1c0ffee0000000000abcd", claims.UserId)
	assert.NotEmpty(t, claims.ID)
}

func TestParseTokenRejects(t *testing.T) {
	tok, err := MakeToken("65f1c0ffee0000000000abcd", "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(tok, "other-secret")
	assert.Error(t, err, "wrong secret")

	expired, err := MakeToken("65f1c0ffee0000000000abcd", "secret", -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(expired, "secret")
	assert.Error(t, err, "expired token")

	_, err = ParseToken("not.a.token", "secret")
	assert.Error(t, err)
}
