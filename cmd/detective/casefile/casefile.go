// Package casefile prints the case material without starting a game.
package casefile

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/myrjola/detective/internal/casebook"
	"github.com/myrjola/detective/internal/config"
	"github.com/myrjola/detective/internal/errors"
	"github.com/myrjola/detective/internal/logging"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "case",
	Title: "Case files",
}

func NewCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "casefile",
		GroupID: Group.ID,
		Short:   "Print the clues and suspect stories",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, closeLog, err := logging.NewFileLogger(cfg.LogFile, cfg.LogLevel)
			if err != nil {
				return errors.Wrap(err, "create logger")
			}
			defer func() {
				_ = closeLog()
			}()
			return printCaseFile(cmd.Context(), *cfg, logger, cmd.OutOrStdout())
		},
	}
}

func printCaseFile(ctx context.Context, cfg config.Config, logger *slog.Logger, out io.Writer) error {
	db, catalog, err := casebook.Open(ctx, cfg.SQLiteURL, cfg.CaseID, logger)
	if err != nil {
		return errors.Wrap(err, "open case")
	}
	defer func() {
		_ = db.Close()
	}()
	if _, err = fmt.Fprintf(out, "%s\n\n%s\n%s", catalog.Title(), catalog.CluesText(), catalog.SuspectsText()); err != nil {
		return errors.Wrap(err, "print case file")
	}
	return nil
}
