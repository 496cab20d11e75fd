package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings carries the runtime knobs flagkit reads from the environment.
// All fields have defaults, so an empty environment yields a usable value.
type Settings struct {
	// HistoryCapacity bounds the per-namespace rollback history.
	HistoryCapacity int `env:"FLAGKIT_HISTORY_CAPACITY" envDefault:"10"`

	// LogLevel selects the minimum level for flagkit's structured logs.
	// One of "debug", "info", "warn", "error".
	LogLevel string `env:"FLAGKIT_LOG_LEVEL" envDefault:"info"`

	// DisabledNamespaces lists namespaces whose kill-switch is engaged at
	// startup, comma separated.
	DisabledNamespaces []string `env:"FLAGKIT_DISABLED_NAMESPACES" envSeparator:","`
}

// Load populates Settings from the process environment. When files are
// given they are loaded into the environment first; otherwise the default
// `.env` is attempted and silently skipped when absent.
func Load(files ...string) (Settings, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return Settings{}, errors.Join(ErrParsingConfig, err)
		}
	} else {
		// The default .env file is optional.
		_ = godotenv.Load()
	}

	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, errors.Join(ErrParsingConfig, err)
	}
	if err := s.validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// MustLoad works like Load but panics on failure. Intended for program
// startup where settings are required.
func MustLoad(files ...string) Settings {
	s, err := Load(files...)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load settings: %v", err))
	}
	return s
}

func (s Settings) validate() error {
	if s.HistoryCapacity < 0 {
		return errors.Join(ErrInvalidConfig,
			fmt.Errorf("history capacity must not be negative, got %d", s.HistoryCapacity))
	}
	if _, err := parseLevel(s.LogLevel); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}

// SlogLevel converts the configured log level into its slog equivalent.
// The level was validated during Load, so unknown values fall back to Info.
func (s Settings) SlogLevel() slog.Level {
	level, err := parseLevel(s.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(raw string) (slog.Level, error) {
	switch raw {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", raw)
	}
}
