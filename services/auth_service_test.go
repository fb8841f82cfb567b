package services

import (
	"stonex_server/lib"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyPasswordPlainSecret(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.Password = "  granite  "
	as := NewAuthService(cfg, testLogger())

	assert.True(t, as.VerifyPassword("granite"))
	assert.True(t, as.VerifyPassword(" granite\n"))
	assert.False(t, as.VerifyPassword("marble"))
	assert.False(t, as.VerifyPassword(devFallbackPassword))
}

func TestVerifyPasswordDevFallback(t *testing.T) {
	cfg := testConfig()
	as := NewAuthService(cfg, testLogger())
	assert.True(t, as.VerifyPassword(devFallbackPassword))
	assert.False(t, as.VerifyPassword(""))

	cfg.Server.Environment = "production"
	assert.False(t, as.VerifyPassword(devFallbackPassword))
}

func TestVerifyPasswordHashWins(t *testing.T) {
	hash, err := lib.HashPassword("quartz", lib.ArgonParams{Memory: 8 * 1024, Time: 1, Threads: 1, KeyLen: 32, SaltLen: 16})
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Auth.Password = "granite"
	cfg.Auth.PasswordHash = hash
	as := NewAuthService(cfg, testLogger())

	assert.True(t, as.VerifyPassword(" quartz "))
	assert.False(t, as.VerifyPassword("granite"))

	cfg.Auth.PasswordHash = "not-a-hash"
	assert.False(t, as.VerifyPassword("quartz"))
}

func TestLegacySession(t *testing.T) {
	as := NewAuthService(testConfig(), testLogger())

	value, err := as.IssueSession()
	require.NoError(t, err)
	assert.Equal(t, "1", value)
	assert.True(t, as.ValidSession("1"))
	assert.False(t, as.ValidSession("0"))
	assert.False(t, as.ValidSession(""))
}

func TestSignedSession(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.SessionSecret = "s3cret"
	as := NewAuthService(cfg, testLogger())

	value, err := as.IssueSession()
	require.NoError(t, err)
	assert.NotEqual(t, "1", value)
	assert.True(t, as.ValidSession(value))
	assert.False(t, as.ValidSession("1"))

	cfg.Auth.SessionSecret = "rotated"
	assert.False(t, as.ValidSession(value))
}

func TestCookieOptions(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.CookieDomain = "bdstonex.com"
	as := NewAuthService(cfg, testLogger())

	assert.Equal(t, lib.CookieOptions{Secure: false, Domain: "bdstonex.com"}, as.CookieOptions())
	assert.Equal(t, 2*time.Hour, as.SessionTTL())

	cfg.Server.Environment = "production"
	assert.True(t, as.CookieOptions().Secure)
}
