// Package casebook opens the case catalog the shells play.
package casebook

import (
	"context"
	"log/slog"

	"github.com/myrjola/detective/internal/errors"
	"github.com/myrjola/detective/internal/game"
	"github.com/myrjola/detective/internal/models"
	"github.com/myrjola/detective/internal/repositories"
	"github.com/myrjola/detective/internal/sqlite"
)

// Open connects to the SQLite database at url and builds the catalog of case caseID. The caller owns the
// returned database and must close it.
func Open(ctx context.Context, url string, caseID string, logger *slog.Logger) (*sqlite.Database, *game.Catalog, error) {
	var (
		db      *sqlite.Database
		c       *models.Case
		catalog *game.Catalog
		err     error
	)
	if db, err = sqlite.NewDatabase(ctx, url, logger); err != nil {
		return nil, nil, errors.Wrap(err, "open database")
	}
	if c, err = repositories.NewCaseRepository(db, logger).Get(ctx, caseID); err != nil {
		return nil, nil, errors.Join(errors.Wrap(err, "get case"), db.Close())
	}
	if catalog, err = game.NewCatalog(*c); err != nil {
		return nil, nil, errors.Join(errors.Wrap(err, "build catalog"), db.Close())
	}
	logger.LogAttrs(ctx, slog.LevelDebug, "catalog opened",
		slog.String("case_id", catalog.ID()),
		slog.Int("suspects", len(c.Suspects)),
		slog.Int("clues", len(c.Clues)))
	return db, catalog, nil
}
