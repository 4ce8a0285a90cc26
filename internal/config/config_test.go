package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c := Load()
	require.NotNil(t, c)

	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, "translata.db", c.DBPath)
	assert.Equal(t, "", c.APIKey)
	assert.Equal(t, "translate-plus.p.rapidapi.com", c.APIHost)
	assert.Equal(t, 24*time.Hour, c.SessionLifetime)
	assert.Equal(t, "http://localhost:3000", c.AllowedOrigin)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TRANSLATA_ADDR", ":9999")
	t.Setenv("TRANSLATA_DB_PATH", "/tmp/t.db")
	t.Setenv("TRANSLATA_API_KEY", "k")
	t.Setenv("TRANSLATA_SESSION_SECRET", "s")
	t.Setenv("TRANSLATA_SESSION_LIFETIME", "30m")
	t.Setenv("TRANSLATA_ALLOWED_ORIGIN", "https://example.com")

	c := Load()

	assert.Equal(t, ":9999", c.Addr)
	assert.Equal(t, "/tmp/t.db", c.DBPath)
	assert.Equal(t, "k", c.APIKey)
	assert.Equal(t, "s", c.SessionSecret)
	assert.Equal(t, 30*time.Minute, c.SessionLifetime)
	assert.Equal(t, "https://example.com", c.AllowedOrigin)
}
