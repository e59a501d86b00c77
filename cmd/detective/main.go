package main

import (
	"context"
	"fmt"
	"os"

	"github.com/myrjola/detective/cmd/detective/casefile"
	"github.com/myrjola/detective/cmd/detective/play"
	"github.com/myrjola/detective/internal/config"
	"github.com/myrjola/detective/internal/errors"
	"github.com/spf13/cobra"
)

func newRootCommand(cfg *config.Config) *cobra.Command {
	var logLevel string
	playCmd := play.NewCommand(cfg)
	rootCmd := &cobra.Command{
		Use:   "detective",
		Short: "Solve the museum heist in your terminal",
		Long: `A detective game: read the clues, question the suspects, and accuse the thief.
Running detective without a command starts the game.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("log-level") {
				return nil
			}
			if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
				return errors.Wrap(err, "parse log level")
			}
			return nil
		},
		RunE: playCmd.RunE,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.SQLiteURL, "sqlite-url", cfg.SQLiteURL, "catalog database file or :memory:")
	flags.StringVar(&cfg.CaseID, "case", cfg.CaseID, "case to play")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "append logs to this file instead of discarding them")
	flags.StringVar(&logLevel, "log-level", cfg.LogLevel.String(), "one of debug, info, warn, error")

	rootCmd.AddGroup(play.Group)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddGroup(casefile.Group)
	rootCmd.AddCommand(casefile.NewCommand(cfg))
	return rootCmd
}

func main() {
	cfg, err := config.FromProcess()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err = newRootCommand(&cfg).ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
