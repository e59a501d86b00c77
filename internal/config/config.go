package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/myrjola/detective/internal/errors"
)

// Prefix is prepended to every environment variable name read by [Parse].
const Prefix = "DETECTIVE_"

// Config holds the settings shared by the terminal and web shells. Every field has a default so that the
// game runs identically without any environment.
type Config struct {
	// SQLiteURL is the path to the SQLite database file or ":memory:".
	SQLiteURL string `env:"SQLITE_URL" envDefault:":memory:"`
	// Addr is the web shell listen address.
	Addr string `env:"ADDR" envDefault:"localhost:4000"`
	// PprofAddr enables the pprof server on the loopback interface when set, e.g. ":6060".
	PprofAddr string `env:"PPROF_ADDR"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	// LogFile is where the terminal shell writes logs. Empty discards them.
	LogFile string `env:"LOG_FILE"`
	// SecureCookies marks the web session and CSRF cookies Secure.
	SecureCookies bool `env:"SECURE_COOKIES" envDefault:"false"`
	// SessionLifetime bounds how long an idle web session survives.
	SessionLifetime time.Duration `env:"SESSION_LIFETIME" envDefault:"12h"`
	// CaseID selects the case loaded from the catalog database.
	CaseID string `env:"CASE_ID" envDefault:"museum-heist"`
}

// Parse populates a Config from environ, a map of environment variables such as the one returned by
// [env.ToMap]. Unset variables fall back to their defaults.
func Parse(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{ //nolint:exhaustruct // defaults are fine
		Environment: environ,
		Prefix:      Prefix,
	}); err != nil {
		return Config{}, errors.Wrap(err, "parse environment")
	}
	return cfg, nil
}

// Environ loads an optional .env file from the working directory and returns the process environment.
func Environ() (map[string]string, error) {
	// The .env file is a convenience for local development, missing is fine.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(err, "load .env")
	}
	return env.ToMap(os.Environ()), nil
}

// FromProcess parses the process environment including the optional .env file.
func FromProcess() (Config, error) {
	environ, err := Environ()
	if err != nil {
		return Config{}, err
	}
	return Parse(environ)
}
