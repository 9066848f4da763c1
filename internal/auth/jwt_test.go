package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", "booking-api", time.Hour)

	tok, exp, err := tm.Generate("u1", "admin")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := tm.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestParse_WrongSecret(t *testing.T) {
	tok, _, err := NewTokenManager("secret-a", "booking-api", time.Hour).Generate("u1", "user")
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", "booking-api", time.Hour).Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_WrongIssuer(t *testing.T) {
	tok, _, err := NewTokenManager("secret", "someone-else", time.Hour).Generate("u1", "user")
	require.NoError(t, err)

	_, err = NewTokenManager("secret", "booking-api", time.Hour).Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Expired(t *testing.T) {
	tm := NewTokenManager("secret", "booking-api", -time.Minute)
	tok, _, err := tm.Generate("u1", "user")
	require.NoError(t, err)

	_, err = tm.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)

	assert.NoError(t, VerifyPassword("hunter22", hash))
	assert.Error(t, VerifyPassword("wrong", hash))
}
