// Package config loads the todoweb settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/joho/godotenv"

	"github.com/chetan-code/todoweb/internal/repository"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// FetchErrors controls what a page shows when its initial fetch fails.
type FetchErrors string

const (
	// FetchErrorsSilent renders the page with missing data and only logs.
	FetchErrorsSilent FetchErrors = "silent"
	// FetchErrorsNotice also shows a banner describing the failure.
	FetchErrorsNotice FetchErrors = "notice"
)

// Default configuration values.
const (
	DefaultAddr       = ":8080"
	DefaultAPITimeout = 10 * time.Second
)

type Config struct {
	// APIBaseURL is the absolute address of the todo API.
	APIBaseURL string

	// Addr is the listen address.
	Addr string

	// SessionKey signs the flash cookie. A random key is generated when
	// unset, so flashes do not survive a restart.
	SessionKey []byte

	// CookieSecure marks cookies Secure; enable behind HTTPS.
	CookieSecure bool

	FetchErrors FetchErrors

	// APITimeout bounds each call to the API.
	APITimeout time.Duration

	LogLevel slog.Level
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	//load env variables
	if err := godotenv.Load(); err != nil {
		slog.Info("env_file_not_loaded", "error", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from lookup, which has the signature of os.LookupEnv.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	cfg := &Config{
		APIBaseURL:  get("API_BASE_URL"),
		Addr:        get("ADDR"),
		FetchErrors: FetchErrors(strings.ToLower(get("FETCH_ERRORS"))),
	}
	if cfg.Addr == "" {
		if port := get("PORT"); port != "" {
			cfg.Addr = ":" + port
		}
	}
	if key := get("SESSION_KEY"); key != "" {
		cfg.SessionKey = []byte(key)
	}

	if v := get("COOKIE_SECURE"); v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: COOKIE_SECURE: %v", ErrInvalidConfig, err)
		}
		cfg.CookieSecure = secure
	}
	if v := get("API_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("%w: API_TIMEOUT: %v", ErrInvalidConfig, err)
		}
		cfg.APITimeout = d
	}
	if v := get("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("%w: LOG_LEVEL: %v", ErrInvalidConfig, err)
		}
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills in default values for zero-valued fields.
func (c *Config) applyDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.FetchErrors == "" {
		c.FetchErrors = FetchErrorsNotice
	}
	if c.APITimeout == 0 {
		c.APITimeout = DefaultAPITimeout
	}
	if len(c.SessionKey) == 0 {
		slog.Warn("session_key_generated", "reason", "SESSION_KEY not set")
		c.SessionKey = securecookie.GenerateRandomKey(32)
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, err := repository.ResolveURL(c.APIBaseURL, "/"); err != nil {
		return fmt.Errorf("%w: API_BASE_URL: %v", ErrInvalidConfig, err)
	}
	switch c.FetchErrors {
	case FetchErrorsSilent, FetchErrorsNotice:
	default:
		return fmt.Errorf("%w: FETCH_ERRORS must be %q or %q, got %q",
			ErrInvalidConfig, FetchErrorsSilent, FetchErrorsNotice, c.FetchErrors)
	}
	if c.APITimeout < 0 {
		return fmt.Errorf("%w: API_TIMEOUT must not be negative", ErrInvalidConfig)
	}
	if len(c.SessionKey) < 16 {
		return fmt.Errorf("%w: SESSION_KEY must be at least 16 bytes", ErrInvalidConfig)
	}
	return nil
}
