package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	apperrors "wgpt/internal/infrastructure/errors"
)

// Config holds the shell configuration. Every field can be overridden from
// the environment with the WGPT_ prefix.
type Config struct {
	Environment string `env:"ENVIRONMENT"`
	LogLevel    string `env:"LOG_LEVEL"`

	// Window settings
	Title     string `env:"TITLE"`
	Width     int    `env:"WIDTH"`
	Height    int    `env:"HEIGHT"`
	MinWidth  int    `env:"MIN_WIDTH"`
	MinHeight int    `env:"MIN_HEIGHT"`

	// URL of the hosted page; the shell navigates there from its bootstrap page
	URL string `env:"URL"`

	// Badge glyph lookup: <BadgeDir>/<glyph>.ico, then <ResourceDir>/<BadgeDir>/<glyph>.ico
	BadgeDir    string `env:"BADGE_DIR"`
	ResourceDir string `env:"RESOURCE_DIR"`

	// Title-bar icon candidates in preference order
	TitleBarIcons []string `env:"TITLEBAR_ICONS" envSeparator:","`

	// Interval at which the injected script re-reads the page title
	TitlePollInterval time.Duration `env:"TITLE_POLL_INTERVAL"`

	// Native window lookup after startup
	WindowLookupAttempts int           `env:"WINDOW_LOOKUP_ATTEMPTS"`
	WindowLookupDelay    time.Duration `env:"WINDOW_LOOKUP_DELAY"`
}

// DefaultConfig returns the production defaults
func DefaultConfig() *Config {
	return &Config{
		Environment: "production",
		LogLevel:    "info",

		Title:     "WhatsappGPT",
		Width:     1200,
		Height:    800,
		MinWidth:  480,
		MinHeight: 360,

		URL: "https://web.whatsapp.com/",

		BadgeDir:    filepath.Join("icons", "badges"),
		ResourceDir: "resources",

		TitleBarIcons: []string{
			filepath.Join("icons", "icon_titlebar.ico"),
			filepath.Join("resources", "icons", "icon_titlebar.ico"),
		},

		TitlePollInterval: 1500 * time.Millisecond,

		WindowLookupAttempts: 8,
		WindowLookupDelay:    100 * time.Millisecond,
	}
}

// DevelopmentConfig returns defaults suited to running from the source tree
func DevelopmentConfig() *Config {
	config := DefaultConfig()
	config.Environment = "development"
	config.LogLevel = "debug"
	return config
}

// TestConfig returns a configuration with fast lookups and quiet logging
func TestConfig() *Config {
	config := DefaultConfig()
	config.Environment = "test"
	config.LogLevel = "error"
	config.URL = "about:blank"
	config.WindowLookupAttempts = 1
	config.WindowLookupDelay = time.Millisecond
	config.TitlePollInterval = 100 * time.Millisecond
	return config
}

// ConfigForEnvironment returns the preset for the named environment
func ConfigForEnvironment(environment string) *Config {
	switch environment {
	case "development":
		return DevelopmentConfig()
	case "test":
		return TestConfig()
	default:
		return DefaultConfig()
	}
}

// LoadFromEnvironment overrides fields from WGPT_* variables. Unset variables keep current values.
func (c *Config) LoadFromEnvironment() error {
	return c.loadFromEnvironment(nil)
}

func (c *Config) loadFromEnvironment(environ map[string]string) error {
	opts := env.Options{Prefix: "WGPT_"}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(c, opts); err != nil {
		return apperrors.NewShellError("config_load", fmt.Errorf("parse env: %w", err), apperrors.ErrCodeConfig)
	}
	return nil
}

// Load builds the configuration for environment and applies WGPT_* overrides.
// WGPT_ENVIRONMENT, when set, selects the preset before other overrides apply.
func Load(environment string) (*Config, error) {
	return load(environment, nil)
}

func load(environment string, environ map[string]string) (*Config, error) {
	var selector struct {
		Environment string `env:"ENVIRONMENT"`
	}
	opts := env.Options{Prefix: "WGPT_"}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&selector, opts); err != nil {
		return nil, apperrors.NewShellError("config_load", fmt.Errorf("parse env: %w", err), apperrors.ErrCodeConfig)
	}
	if selector.Environment != "" {
		environment = selector.Environment
	}

	config := ConfigForEnvironment(environment)
	if err := config.loadFromEnvironment(environ); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks that the configuration can drive the shell
func (c *Config) Validate() error {
	const op = "config_validate"

	if strings.TrimSpace(c.Title) == "" {
		return apperrors.HandleConfigError(op, "Title", "must not be empty")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return apperrors.HandleConfigError(op, "Width/Height", "must be positive")
	}
	if c.MinWidth < 0 || c.MinHeight < 0 {
		return apperrors.HandleConfigError(op, "MinWidth/MinHeight", "must not be negative")
	}
	if c.MinWidth > c.Width || c.MinHeight > c.Height {
		return apperrors.HandleConfigError(op, "MinWidth/MinHeight", "must not exceed the initial size")
	}

	if c.URL == "" {
		return apperrors.HandleConfigError(op, "URL", "must not be empty")
	}
	u, err := url.Parse(c.URL)
	if err != nil || u.Scheme == "" {
		return apperrors.HandleConfigError(op, "URL", "must be an absolute URL")
	}

	if c.BadgeDir == "" {
		return apperrors.HandleConfigError(op, "BadgeDir", "must not be empty")
	}
	if filepath.IsAbs(c.BadgeDir) || filepath.IsAbs(c.ResourceDir) {
		return apperrors.HandleConfigError(op, "BadgeDir/ResourceDir", "must be relative to the working or executable directory")
	}
	for _, p := range c.TitleBarIcons {
		if filepath.IsAbs(p) {
			return apperrors.HandleConfigError(op, "TitleBarIcons", "candidates must be relative paths")
		}
	}

	if c.TitlePollInterval < 100*time.Millisecond {
		return apperrors.HandleConfigError(op, "TitlePollInterval", "must be at least 100ms")
	}
	if c.WindowLookupAttempts < 1 {
		return apperrors.HandleConfigError(op, "WindowLookupAttempts", "must be at least 1")
	}
	if c.WindowLookupDelay <= 0 {
		return apperrors.HandleConfigError(op, "WindowLookupDelay", "must be positive")
	}

	return nil
}

// Clone returns a deep copy of the configuration
func (c *Config) Clone() *Config {
	clone := *c
	clone.TitleBarIcons = append([]string(nil), c.TitleBarIcons...)
	return &clone
}

// BadgeCandidates returns the ordered relative paths for a glyph file name:
// the primary badge directory first, the packaged-resource copy second.
func (c *Config) BadgeCandidates(file string) []string {
	primary := filepath.Join(c.BadgeDir, file)
	if c.ResourceDir == "" {
		return []string{primary}
	}
	return []string{primary, filepath.Join(c.ResourceDir, primary)}
}

// IsDevelopment returns true if the environment is set to development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsTest returns true if the environment is set to test
func (c *Config) IsTest() bool {
	return c.Environment == "test"
}
