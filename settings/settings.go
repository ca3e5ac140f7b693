// Package settings loads the server settings from an optional YAML file and
// the environment.
package settings

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Settings holds everything the server needs to start. Environment
// variables override values read from the file.
type Settings struct {
	Host      string `yaml:"host" env:"HOST" env-default:"localhost"`
	Port      int    `yaml:"port" env:"PORT" env-default:"8080"`
	ConfigDir string `yaml:"config-dir" env:"CONFIG_DIR" env-default:"configs"`
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log-format" env:"LOG_FORMAT" env-default:"text"`

	Sessions Sessions `yaml:"sessions"`
	Ngrok    Ngrok    `yaml:"ngrok"`
}

// Sessions controls pruning of idle sessions
type Sessions struct {
	TTL             time.Duration `yaml:"ttl" env:"SESSION_TTL" env-default:"24h"`
	CleanupInterval time.Duration `yaml:"cleanup-interval" env:"CLEANUP_INTERVAL" env-default:"1h"`
}

type Ngrok struct {
	Enabled   bool   `yaml:"enabled" env:"NGROK_ENABLED" env-default:"false"`
	AuthToken string `yaml:"authtoken" env:"NGROK_AUTHTOKEN"`
	Domain    string `yaml:"domain" env:"NGROK_DOMAIN"`
}

// Load reads path when it exists and the environment otherwise. An empty
// path skips the file.
func Load(path string) (*Settings, error) {
	s := &Settings{}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, s); err != nil {
				return nil, fmt.Errorf("read settings %s: %w", path, err)
			}
			return s, s.Validate()
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat settings %s: %w", path, err)
		}
	}

	if err := cleanenv.ReadEnv(s); err != nil {
		return nil, fmt.Errorf("read settings from environment: %w", err)
	}
	return s, s.Validate()
}

// Validate rejects settings the server cannot start with
func (s *Settings) Validate() error {
	if s.Port < 0 || s.Port > 65535 {
		return fmt.Errorf("port %d out of range", s.Port)
	}
	if s.Sessions.TTL <= 0 {
		return fmt.Errorf("session ttl must be positive, got %s", s.Sessions.TTL)
	}
	if s.Sessions.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup interval must be positive, got %s", s.Sessions.CleanupInterval)
	}
	if _, err := ParseLevel(s.LogLevel); err != nil {
		return err
	}
	return nil
}

// Addr is the host:port the HTTP server listens on
func (s *Settings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Usage describes every environment variable Settings reads
func Usage() string {
	text, err := cleanenv.GetDescription(&Settings{}, nil)
	if err != nil {
		return ""
	}
	return text
}

// ParseLevel maps a level name to a slog level
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
}

// NewLogger builds the process logger. Output goes to w, which must not be
// stdout when stdout carries the MCP stdio stream.
func (s *Settings) NewLogger(w io.Writer) *slog.Logger {
	level, _ := ParseLevel(s.LogLevel)
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(s.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
