package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFailsWithoutSessionSecret(t *testing.T) {
	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingSessionSecret)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BLOG_SESSION_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "blog.db", cfg.Database.DSN)
	assert.Equal(t, "s3cret", cfg.Session.Secret)
	assert.Equal(t, "blogsession", cfg.Session.CookieName)
	assert.Equal(t, uint(1), cfg.Auth.AdminUserID)
	assert.Equal(t, 600000, cfg.Auth.HashIterations)
	assert.Equal(t, 8, cfg.Auth.SaltLength)
	assert.False(t, cfg.Telemetry.Enabled)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BLOG_SESSION_SECRET", "s3cret")
	t.Setenv("BLOG_DATABASE_DRIVER", "postgres")
	t.Setenv("BLOG_DATABASE_DSN", "host=db user=blog dbname=blog")
	t.Setenv("BLOG_AUTH_ADMIN_USER_ID", "7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "host=db user=blog dbname=blog", cfg.Database.DSN)
	assert.Equal(t, uint(7), cfg.Auth.AdminUserID)
}
