package repositories

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/myrjola/detective/internal/errors"
	"github.com/myrjola/detective/internal/models"
	"github.com/myrjola/detective/internal/sqlite"
)

// ErrCaseNotFound is returned when the catalog has no case with the requested ID.
var ErrCaseNotFound = errors.NewSentinel("case not found")

// CaseRepository reads the case catalog.
type CaseRepository struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewCaseRepository(dbs *sqlite.Database, logger *slog.Logger) *CaseRepository {
	return &CaseRepository{
		db:     sqlx.NewDb(dbs.ReadOnly, "sqlite3"),
		logger: logger.With(slog.String("source", "CaseRepository")),
	}
}

// Get reads the case with its clues and suspects in display order.
func (r *CaseRepository) Get(ctx context.Context, caseID string) (*models.Case, error) {
	var (
		c   models.Case
		err error
	)

	stmt := `SELECT id, title, culprit_id, welcome, intro, clues_heading, suspects_heading, accuse_prompt,
       correct_display, correct_notice, incorrect_display, incorrect_notice, notes_saved, notes_failed,
       farewell, missing_name
FROM cases
WHERE id = ?`
	if err = r.db.GetContext(ctx, &c, stmt, caseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(ErrCaseNotFound, "read case", slog.String("case_id", caseID))
		}
		return nil, errors.Wrap(err, "read case", slog.String("case_id", caseID))
	}

	stmt = `SELECT position, description FROM clues WHERE case_id = ? ORDER BY position`
	if err = r.db.SelectContext(ctx, &c.Clues, stmt, caseID); err != nil {
		return nil, errors.Wrap(err, "query clues", slog.String("case_id", caseID))
	}

	stmt = `SELECT id, position, name, role, dossier FROM suspects WHERE case_id = ? ORDER BY position`
	if err = r.db.SelectContext(ctx, &c.Suspects, stmt, caseID); err != nil {
		return nil, errors.Wrap(err, "query suspects", slog.String("case_id", caseID))
	}

	r.logger.LogAttrs(ctx, slog.LevelDebug, "read case",
		slog.String("case_id", caseID),
		slog.Int("clues", len(c.Clues)),
		slog.Int("suspects", len(c.Suspects)))

	return &c, nil
}
