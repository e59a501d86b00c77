package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/myrjola/detective/internal/config"
	"github.com/myrjola/detective/internal/errors"
	"github.com/myrjola/detective/internal/game"
	"github.com/myrjola/detective/internal/sqlite"
	"github.com/myrjola/detective/internal/testhelpers"
)

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	var (
		err       error
		start     = time.Now()
		ctx       context.Context
		sqliteURL string
		ok        bool
		cancel    context.CancelFunc
	)
	ctx = context.Background()
	ctx, cancel = context.WithTimeout(ctx, 5*time.Second) //nolint:mnd // 5 seconds
	defer cancel()

	if sqliteURL, ok = os.LookupEnv(config.Prefix + "SQLITE_URL"); !ok {
		logger.LogAttrs(ctx, slog.LevelError, config.Prefix+"SQLITE_URL not set")
		os.Exit(1)
	}

	var db *sqlite.Database
	if db, err = sqlite.NewDatabase(ctx, sqliteURL, logger); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating database",
			slog.String("url", sqliteURL), errors.SlogError(err))
		os.Exit(1)
	}

	// Count the suspects of every case as a simple smoke test of the migrated schema and fixtures.
	rows, err := db.ReadOnly.QueryContext(ctx, `SELECT case_id, COUNT(*) FROM suspects GROUP BY case_id`)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error counting suspects", errors.SlogError(err))
		os.Exit(1)
	}
	cases := 0
	for rows.Next() {
		var (
			caseID string
			count  int
		)
		if err = rows.Scan(&caseID, &count); err != nil {
			logger.LogAttrs(ctx, slog.LevelError, "error scanning suspect count", errors.SlogError(err))
			os.Exit(1)
		}
		if count != game.SuspectCount {
			logger.LogAttrs(ctx, slog.LevelError, "wrong number of suspects",
				slog.String("case_id", caseID), slog.Int("count", count))
			os.Exit(1)
		}
		cases++
	}
	if err = rows.Err(); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error reading suspect counts", errors.SlogError(err))
		os.Exit(1)
	}
	_ = rows.Close()
	if cases == 0 {
		logger.LogAttrs(ctx, slog.LevelError, "no cases found, something is likely wrong")
		os.Exit(1)
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "case count", slog.Int("count", cases))

	if err = db.Close(); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error closing database", errors.SlogError(err))
		os.Exit(1)
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "Migration test successful 🙌", slog.Duration("duration", time.Since(start)))
	cancel()
	os.Exit(0)
}
