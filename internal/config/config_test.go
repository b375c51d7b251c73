package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	assert.Equal(t, "587", cfg.SMTP.Port)
	assert.Zero(t, cfg.ContactDelay)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ASSET_BASE_URL", "https://cdn.example")
	t.Setenv("CONTACT_DELAY", "1500ms")
	t.Setenv("SMTP_USER", "me@example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "https://cdn.example", cfg.AssetBaseURL)
	assert.Equal(t, 1500*time.Millisecond, cfg.ContactDelay)
	assert.Equal(t, "me@example.com", cfg.SMTP.User)
}

func TestLoadError(t *testing.T) {
	t.Setenv("CONTACT_DELAY", "soon")
	_, err := Load()
	require.ErrorContains(t, err, "parse env:")
}
