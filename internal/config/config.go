package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/caarlos0/env/v6"

	"github.com/example/fixen/internal/db"
	"github.com/example/fixen/internal/logger"
)

// MinWidth is the narrowest screen the menu can be drawn on.
const MinWidth = 40

// Config holds the session settings. Values come from FIXEN_* environment
// variables; command-line flags override them.
type Config struct {
	Width     int    `env:"FIXEN_WIDTH" envDefault:"110"`
	Border    string `env:"FIXEN_BORDER" envDefault:"*"`
	NoColor   bool   `env:"FIXEN_NO_COLOR" envDefault:"false"`
	LogLevel  string `env:"FIXEN_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"FIXEN_LOG_FORMAT" envDefault:"console"`
	Operator  string `env:"FIXEN_OPERATOR" envDefault:"operator"`
	DSN       string `env:"FIXEN_DSN" envDefault:":memory:"`
}

// Load reads the configuration from the process environment. Callers apply
// their overrides and then call Validate.
func Load() (*Config, error) {
	return load(env.Options{})
}

// LoadFrom reads the configuration from the given variables only.
func LoadFrom(vars map[string]string) (*Config, error) {
	return load(env.Options{Environment: vars})
}

func load(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the settings can drive a session.
func (c *Config) Validate() error {
	if c.Width < MinWidth {
		return fmt.Errorf("width %d is below the minimum of %d", c.Width, MinWidth)
	}
	if utf8.RuneCountInString(c.Border) != 1 {
		return fmt.Errorf("border must be a single character, got %q", c.Border)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.LogFormat != logger.FormatConsole && c.LogFormat != logger.FormatJSON {
		return fmt.Errorf("log format must be %q or %q, got %q", logger.FormatConsole, logger.FormatJSON, c.LogFormat)
	}
	if !db.IsMemoryDSN(c.DSN) {
		return fmt.Errorf("dsn %q is not an in-memory database", c.DSN)
	}
	return nil
}
