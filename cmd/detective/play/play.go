// Package play runs the game in the terminal.
package play

import (
	"context"
	"io"
	"log/slog"

	"github.com/myrjola/detective/internal/casebook"
	"github.com/myrjola/detective/internal/config"
	"github.com/myrjola/detective/internal/errors"
	"github.com/myrjola/detective/internal/game"
	"github.com/myrjola/detective/internal/logging"
	"github.com/myrjola/detective/ui/terminal"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "game",
	Title: "Game",
}

// NewCommand creates the play command. cfg is read when the command runs so that flags have been applied.
func NewCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "play",
		GroupID: Group.ID,
		Short:   "Play the case",
		Long:    `Opens the case file in a full-screen terminal interface. The game always exits with status 0.`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Run(cmd.Context(), *cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// Run plays one game on in and out.
func Run(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) error {
	var (
		logger   *slog.Logger
		closeLog func() error
		err      error
	)
	if logger, closeLog, err = logging.NewFileLogger(cfg.LogFile, cfg.LogLevel); err != nil {
		return errors.Wrap(err, "create logger")
	}
	defer func() {
		_ = closeLog()
	}()
	logger = logger.With(slog.String("shell", "terminal"))

	db, catalog, err := casebook.Open(ctx, cfg.SQLiteURL, cfg.CaseID, logger)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failed to open case", errors.SlogError(err))
		return errors.Wrap(err, "open case")
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.LogAttrs(ctx, slog.LevelError, "failed to close database", errors.SlogError(closeErr))
		}
	}()

	if err = terminal.Run(ctx, game.NewController(catalog, logger), logger, in, out); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "terminal shell failed", errors.SlogError(err))
		return errors.Wrap(err, "run terminal shell")
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "game over")
	return nil
}
