package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "NODE_ENV", "CATALOG_FILE", "CATALOG_FEATURED_LIMIT",
		"AUTH_SESSION_TTL", "CACHE_ENABLED", "CLOUDINARY_API_BASE_URL",
	} {
		// Setenv restores the previous value after the test
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()

	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "data/granite.json", cfg.Catalog.FilePath)
	assert.Equal(t, 3, cfg.Catalog.FeaturedLimit)
	assert.Equal(t, 2*time.Hour, cfg.Auth.SessionTTL)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "https://api.cloudinary.com/v1_1", cfg.Media.BaseURL)
}

func TestLoadPrefersPublicMediaVariables(t *testing.T) {
	t.Setenv("NEXT_PUBLIC_CLOUDINARY_CLOUD_NAME", "public-cloud")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "server-cloud")
	t.Setenv("NEXT_PUBLIC_CLOUDINARY_UPLOAD_PRESET", "  ")
	t.Setenv("CLOUDINARY_UPLOAD_PRESET", "slabs")

	cfg := Load()

	assert.Equal(t, "public-cloud", cfg.Media.CloudName)
	assert.Equal(t, "slabs", cfg.Media.UploadPreset)
}

func TestLoadAdminPasswordFallback(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("NEXT_PUBLIC_ADMIN_PASSWORD", "from-public")

	assert.Equal(t, "from-public", Load().Auth.Password)

	t.Setenv("ADMIN_PASSWORD", "from-server")
	assert.Equal(t, "from-server", Load().Auth.Password)
}

func TestGetEnvAsTimeDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "90s")
	assert.Equal(t, 90*time.Second, getEnvAsTimeDuration("TEST_DURATION", time.Minute))

	t.Setenv("TEST_DURATION", "15")
	assert.Equal(t, 15*time.Second, getEnvAsTimeDuration("TEST_DURATION", time.Minute))

	t.Setenv("TEST_DURATION", "soon")
	assert.Equal(t, time.Minute, getEnvAsTimeDuration("TEST_DURATION", time.Minute))
}

func TestGetEnvAsSlice(t *testing.T) {
	t.Setenv("TEST_ORIGINS", "https://a.example, ,https://b.example ")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, getEnvAsSlice("TEST_ORIGINS", nil))

	assert.Equal(t, []string{"x"}, getEnvAsSlice("TEST_ORIGINS_MISSING", []string{"x"}))
}

func TestLoadBoundsFeaturedLimitAndSessionTTL(t *testing.T) {
	cases := []struct {
		limit   string
		ttl     string
		wantCap int
		wantTTL time.Duration
	}{
		{"2", "30m", 2, 30 * time.Minute},
		{"0", "0", 3, 2 * time.Hour},
		{"-1", "-5m", 3, 2 * time.Hour},
		{"10", "24h", 3, 2 * time.Hour},
	}

	for _, tc := range cases {
		t.Setenv("CATALOG_FEATURED_LIMIT", tc.limit)
		t.Setenv("AUTH_SESSION_TTL", tc.ttl)

		cfg := Load()
		assert.Equal(t, tc.wantCap, cfg.Catalog.FeaturedLimit, "limit %q", tc.limit)
		assert.Equal(t, tc.wantTTL, cfg.Auth.SessionTTL, "ttl %q", tc.ttl)
	}
}
