package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/myrjola/detective/internal/e2etest"
	"github.com/myrjola/detective/internal/errors"
	"github.com/myrjola/detective/internal/game"
	"github.com/myrjola/detective/internal/logging"
)

// PlayCase solves the case the way the first detective did: a wrong guess after the right one and a polite exit.
func PlayCase(client *e2etest.Client) error {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()
	var (
		doc *goquery.Document
		err error
	)

	if _, err = client.Start(ctx, "Smoke"); err != nil {
		return errors.Wrap(err, "start session")
	}
	if _, err = client.Act(ctx, game.KindStartCase); err != nil {
		return errors.Wrap(err, "start case")
	}
	if doc, err = client.Accuse(ctx, "zweli"); err != nil {
		return errors.Wrap(err, "accuse guard")
	}
	if notice := e2etest.Notice(doc); notice != "🎉 Congratulations, Detective Smoke! You solved the case!" {
		return errors.New("unexpected verdict", slog.String("notice", notice))
	}
	if doc, err = client.Accuse(ctx, "thembelani"); err != nil {
		return errors.Wrap(err, "accuse curator")
	}
	if display := e2etest.Display(doc); display != "❌ Wrong choice, Detective Smoke! The real thief got away. Try again." {
		return errors.New("unexpected display", slog.String("display", display))
	}
	if _, err = client.Act(ctx, game.KindExit); err != nil {
		return errors.Wrap(err, "exit")
	}
	return nil
}

func main() {
	logger := logging.NewTextLogger(os.Stdout, slog.LevelDebug)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		url      = "https://" + hostname
		client   *e2etest.Client
		err      error
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", url))

	if client, err = e2etest.NewClient(url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", errors.SlogError(err))
		os.Exit(1)
	}
	if err = PlayCase(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error playing case", errors.SlogError(err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌")
	os.Exit(0)
}
