package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) { return "", false }

func envMap(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadWith("", noEnv, nil)
	require.NoError(t, err)

	assert.Equal(t, "https://jsonplaceholder.typicode.com", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 10, cfg.MaxUsers)
	assert.Equal(t, 5, cfg.MaxPosts)
	assert.Equal(t, 4096, cfg.MaxInputSize)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.RedisURL)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeFile(t, "placeholder.yaml", `
base_url: http://file.local
timeout: 10s
max_posts: 3
debug: true
`)
	env := envMap(map[string]string{
		"PLACEHOLDER_TIMEOUT":   "2s",
		"PLACEHOLDER_NO_CLEAR":  "true",
		"PLACEHOLDER_MAX_POSTS": "4",
	})

	cfg, err := LoadWith(path, env, map[string]any{"max_posts": 2})
	require.NoError(t, err)

	assert.Equal(t, "http://file.local", cfg.BaseURL, "file over defaults")
	assert.Equal(t, 2*time.Second, cfg.Timeout, "env over file")
	assert.True(t, cfg.NoClear)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 2, cfg.MaxPosts, "overrides win")
}

func TestLoad_MaxInputSize(t *testing.T) {
	path := writeFile(t, "placeholder.yaml", "max_input_size: 512\n")

	cfg, err := LoadWith(path, noEnv, nil)
	require.NoError(t, err)
	assert.Equal(t, 512, cfg.MaxInputSize)

	env := envMap(map[string]string{"PLACEHOLDER_MAX_INPUT_SIZE": "256"})
	cfg, err = LoadWith(path, env, nil)
	require.NoError(t, err)
	assert.Equal(t, 256, cfg.MaxInputSize, "env over file")

	cfg, err = LoadWith(path, env, map[string]any{"max_input_size": 128})
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.MaxInputSize, "flags over env")
}

func TestLoad_JSONFile(t *testing.T) {
	path := writeFile(t, "placeholder.json", `{"redis_url": "redis://localhost:6379/0", "cache_ttl": "1m"}`)

	cfg, err := LoadWith(path, noEnv, nil)
	require.NoError(t, err)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
}

func TestLoad_ProcessEnvironment(t *testing.T) {
	t.Setenv("PLACEHOLDER_METRICS_ADDR", ":9090")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
	}{
		{"unknown key", map[string]any{"colour": "blue"}},
		{"bad duration", map[string]any{"timeout": "soon"}},
		{"negative timeout", map[string]any{"timeout": "-1s"}},
		{"bad base url", map[string]any{"base_url": "ftp://example.com"}},
		{"zero users", map[string]any{"max_users": 0}},
		{"zero input size", map[string]any{"max_input_size": 0}},
		{"non-numeric input size", map[string]any{"max_input_size": "big"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadWith("", noEnv, tt.overrides)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoad_FixturesSkipBaseURLCheck(t *testing.T) {
	cfg, err := LoadWith("", noEnv, map[string]any{"fixtures": "data.yaml", "base_url": ""})
	require.NoError(t, err)
	assert.Equal(t, "data.yaml", cfg.Fixtures)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := LoadWith(filepath.Join(t.TempDir(), "nope.yaml"), noEnv, nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
