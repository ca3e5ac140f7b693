package settings

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "localhost", s.Host)
	assert.Equal(t, 8080, s.Port)
	assert.Equal(t, "configs", s.ConfigDir)
	assert.Equal(t, 24*time.Hour, s.Sessions.TTL)
	assert.Equal(t, time.Hour, s.Sessions.CleanupInterval)
	assert.False(t, s.Ngrok.Enabled)
	assert.Equal(t, "localhost:8080", s.Addr())
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("PORT", "9191")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("NGROK_ENABLED", "true")
	t.Setenv("NGROK_DOMAIN", "puzzle.example.dev")

	s, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, 9191, s.Port)
	assert.Equal(t, 30*time.Minute, s.Sessions.TTL)
	assert.True(t, s.Ngrok.Enabled)
	assert.Equal(t, "puzzle.example.dev", s.Ngrok.Domain)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	yml := `host: 0.0.0.0
port: 7000
log-level: debug
sessions:
  ttl: 2h
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", s.Host)
	assert.Equal(t, 7000, s.Port)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, 2*time.Hour, s.Sessions.TTL)
	assert.Equal(t, time.Hour, s.Sessions.CleanupInterval)

	// The environment wins over the file
	t.Setenv("PORT", "7001")
	s, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7001, s.Port)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"port", "PORT", "70000"},
		{"ttl", "SESSION_TTL", "0s"},
		{"level", "LOG_LEVEL", "chatty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	s := &Settings{LogLevel: "warn", LogFormat: "json"}
	logger := s.NewLogger(&buf)

	logger.Info("hidden")
	logger.Warn("shown", "session", "ab12")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.HasPrefix(out, "{"), out)
	assert.Contains(t, out, `"session":"ab12"`)
}

func TestUsage(t *testing.T) {
	usage := Usage()
	assert.Contains(t, usage, "SESSION_TTL")
	assert.Contains(t, usage, "NGROK_AUTHTOKEN")
}
