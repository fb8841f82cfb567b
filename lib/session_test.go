package lib

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParseSession(t *testing.T) {
	token, err := SignSession("top-secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseSession(token, "top-secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseSessionRejectsWrongSecret(t *testing.T) {
	token, err := SignSession("top-secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseSession(token, "another-secret")
	assert.True(t, errors.Is(err, ErrInvalidSession))
}

func TestParseSessionRejectsExpired(t *testing.T) {
	token, err := SignSession("top-secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseSession(token, "top-secret")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestParseSessionRejectsLegacyValue(t *testing.T) {
	_, err := ParseSession(LegacySessionValue, "top-secret")
	assert.ErrorIs(t, err, ErrInvalidSession)
}
