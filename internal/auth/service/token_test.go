package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenGenerator_GenerateAndValidate(t *testing.T) {
	tg := NewTokenGenerator("test-secret", time.Hour, 7*24*time.Hour)

	accessToken, refreshToken, err := tg.GenerateTokens(5, 42)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)

	userID, studentID, err := tg.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, 5, userID)
	assert.Equal(t, 42, studentID)

	assert.NoError(t, tg.ValidateRefreshToken(refreshToken))
}

func TestTokenGenerator_TokenTypesAreNotInterchangeable(t *testing.T) {
	tg := NewTokenGenerator("test-secret", time.Hour, 7*24*time.Hour)

	accessToken, refreshToken, err := tg.GenerateTokens(5, 42)
	require.NoError(t, err)

	_, _, err = tg.ValidateAccessToken(refreshToken)
	assert.Error(t, err)

	assert.Error(t, tg.ValidateRefreshToken(accessToken))
}

func TestTokenGenerator_RejectsWrongSecret(t *testing.T) {
	tg := NewTokenGenerator("test-secret", time.Hour, 7*24*time.Hour)
	other := NewTokenGenerator("other-secret", time.Hour, 7*24*time.Hour)

	accessToken, _, err := tg.GenerateTokens(5, 42)
	require.NoError(t, err)

	_, _, err = other.ValidateAccessToken(accessToken)
	assert.Error(t, err)
}

func TestTokenGenerator_RejectsExpiredToken(t *testing.T) {
	tg := NewTokenGenerator("test-secret", -time.Minute, 7*24*time.Hour)

	accessToken, _, err := tg.GenerateTokens(5, 42)
	require.NoError(t, err)

	_, _, err = tg.ValidateAccessToken(accessToken)
	assert.Error(t, err)
}

func TestTokenGenerator_RejectsGarbage(t *testing.T) {
	tg := NewTokenGenerator("test-secret", time.Hour, 7*24*time.Hour)

	_, _, err := tg.ValidateAccessToken("not-a-token")
	assert.Error(t, err)
}
