package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PG_DSN", "postgres://localhost:5432/tasks")
	t.Setenv("JWT_SECRET", "s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout.Duration())
	assert.Equal(t, 60*time.Second, cfg.HTTP.IdleTimeout.Duration())
	assert.Equal(t, "dev", cfg.App.Env)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, time.Duration(0), cfg.JWT.TTL.Duration())
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("PG_DSN", "postgres://localhost:5432/tasks")
	// t.Setenv registers the restore; unset to simulate a missing variable.
	t.Setenv("JWT_SECRET", "x")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	_, err := Load()
	assert.Error(t, err)
}

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"10s", 10 * time.Second},
		{"5m", 5 * time.Minute},
		{"10", 10 * time.Second},
		{`"10s"`, 10 * time.Second},
		{"'30'", 30 * time.Second},
	}
	for _, tc := range cases {
		got, err := parseDuration(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := parseDuration("")
	assert.Error(t, err)
	_, err = parseDuration("soon")
	assert.Error(t, err)
}
