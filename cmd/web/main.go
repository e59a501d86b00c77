package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/myrjola/detective/internal/casebook"
	"github.com/myrjola/detective/internal/config"
	"github.com/myrjola/detective/internal/errors"
	"github.com/myrjola/detective/internal/game"
	"github.com/myrjola/detective/internal/logging"
	"github.com/myrjola/detective/internal/pprofserver"
)

type application struct {
	logger         *slog.Logger
	controller     *game.Controller
	sessionManager *scs.SessionManager
	sessionLocks   *sessionLocks
	secureCookies  bool
}

// run starts the web shell and blocks until ctx is cancelled or the process is interrupted.
func run(ctx context.Context, logger *slog.Logger, environ map[string]string) error {
	var (
		cfg config.Config
		err error
	)
	if cfg, err = config.Parse(environ); err != nil {
		return errors.Wrap(err, "parse config")
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger = logger.With(slog.String("shell", "web"))

	db, catalog, err := casebook.Open(ctx, cfg.SQLiteURL, cfg.CaseID, logger)
	if err != nil {
		return errors.Wrap(err, "open case")
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.LogAttrs(ctx, slog.LevelError, "failed to close database", errors.SlogError(closeErr))
		}
	}()
	go db.StartDatabaseOptimizer(ctx, 24*time.Hour) //nolint:mnd // daily

	if cfg.PprofAddr != "" {
		// Listening on loopback only so that it's not open to the world.
		pprofserver.Launch(ctx, cfg.PprofAddr, logger)
	}

	store := sqlite3store.NewWithCleanupInterval(db.ReadWrite, 30*time.Minute) //nolint:mnd // 30 minutes
	defer store.StopCleanup()
	sessionManager := scs.New()
	sessionManager.Store = store
	sessionManager.Lifetime = cfg.SessionLifetime
	sessionManager.Cookie.Name = "detective_session"
	sessionManager.Cookie.Secure = cfg.SecureCookies

	app := application{
		logger:         logger,
		controller:     game.NewController(catalog, logger),
		sessionManager: sessionManager,
		sessionLocks:   newSessionLocks(),
		secureCookies:  cfg.SecureCookies,
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func main() {
	ctx := context.Background()
	environ, err := config.Environ()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	var cfg config.Config
	if cfg, err = config.Parse(environ); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := logging.NewTextLogger(os.Stdout, cfg.LogLevel)
	if err = run(ctx, logger, environ); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
