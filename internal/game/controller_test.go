package game_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/detective/internal/game"
	"github.com/stretchr/testify/require"
)

const (
	introAlex     = "📍 Crime Scene: A priceless painting was stolen from the museum.\nDetective Alex, you must find out who did it!\n"
	correctAlex   = "✅ Correct, Detective Alex! Zwelibanzi Ntanzi disabled the cameras and stole the painting."
	incorrectAlex = "❌ Wrong choice, Detective Alex! The real thief got away. Try again."
)

func TestController_Dispatch(t *testing.T) {
	c := newTestController(t)
	catalog := c.Catalog()
	welcome := startSession(t, c, "Alex")

	tests := []struct {
		name       string
		action     game.Action
		want       game.Session
		wantNotice *game.Notice
		terminate  bool
	}{
		{
			name:   "start case",
			action: game.StartCase(),
			want:   game.Session{DetectiveName: "Alex", DisplayText: introAlex},
		},
		{
			name:   "view clues",
			action: game.ViewClues(),
			want:   game.Session{DetectiveName: "Alex", DisplayText: catalog.CluesText()},
		},
		{
			name:   "question suspects",
			action: game.QuestionSuspects(),
			want:   game.Session{DetectiveName: "Alex", DisplayText: catalog.SuspectsText()},
		},
		{
			name:   "accuse culprit",
			action: game.Accuse("zweli"),
			want: game.Session{
				DetectiveName: "Alex",
				DisplayText:   correctAlex,
				Outcome:       game.OutcomeCorrect,
			},
			wantNotice: &game.Notice{
				Kind: game.NoticeSuccess,
				Text: "🎉 Congratulations, Detective Alex! You solved the case!",
			},
		},
		{
			name:   "accuse curator",
			action: game.Accuse("thembelani"),
			want: game.Session{
				DetectiveName: "Alex",
				DisplayText:   incorrectAlex,
				Outcome:       game.OutcomeIncorrect,
			},
			wantNotice: &game.Notice{
				Kind: game.NoticeWarning,
				Text: "😞 Wrong suspect! Give it another shot, Detective Alex.",
			},
		},
		{
			name:   "cancelled accusation",
			action: game.CancelAccusation(),
			want:   welcome,
		},
		{
			name:   "unknown suspect",
			action: game.Accuse("butler"),
			want:   welcome,
		},
		{
			name:   "cancelled save",
			action: game.SaveNotes(nil),
			want:   welcome,
		},
		{
			name:   "exit",
			action: game.Exit(),
			want:   welcome,
			wantNotice: &game.Notice{
				Kind: game.NoticeInfo,
				Text: "Thanks for playing! Goodbye, Detective Alex.",
			},
			terminate: true,
		},
		{
			name:   "unknown action",
			action: game.Action{Kind: 42},
			want:   welcome,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, effect := c.Dispatch(context.Background(), welcome, tt.action)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("session mismatch (-want +got):\n%s", diff)
			}
			require.Equal(t, tt.wantNotice, effect.Notice)
			require.Equal(t, tt.terminate, effect.Terminate)
			require.NoError(t, effect.Err)
		})
	}
}

func TestController_viewsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t)
	s := startSession(t, c, "Alex")

	s, _ = c.Dispatch(ctx, s, game.ViewClues())
	clues := s.DisplayText
	s, _ = c.Dispatch(ctx, s, game.ViewClues())
	require.Equal(t, clues, s.DisplayText)

	s, _ = c.Dispatch(ctx, s, game.QuestionSuspects())
	suspects := s.DisplayText
	require.NotEqual(t, clues, suspects)
	s, _ = c.Dispatch(ctx, s, game.QuestionSuspects())
	require.Equal(t, suspects, s.DisplayText)

	s, _ = c.Dispatch(ctx, s, game.ViewClues())
	require.Equal(t, clues, s.DisplayText)
}

func TestController_resolvedGameStaysOpen(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t)
	s := startSession(t, c, "Alex")

	s, _ = c.Dispatch(ctx, s, game.Accuse("tevin"))
	require.Equal(t, game.OutcomeIncorrect, s.Outcome)

	s, _ = c.Dispatch(ctx, s, game.ViewClues())
	require.Equal(t, c.Catalog().CluesText(), s.DisplayText)
	require.Equal(t, game.OutcomeIncorrect, s.Outcome, "views keep the verdict")

	s, _ = c.Dispatch(ctx, s, game.Accuse("zweli"))
	require.Equal(t, game.OutcomeCorrect, s.Outcome)
	require.Equal(t, correctAlex, s.DisplayText)

	s, _ = c.Dispatch(ctx, s, game.StartCase())
	require.Equal(t, introAlex, s.DisplayText)
	require.Equal(t, game.OutcomeCorrect, s.Outcome)
}

func TestController_playthrough(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t)
	s := startSession(t, c, "Alex")
	require.Equal(t, "Welcome, Detective Alex! Press 'Start Case' to begin.\n", s.DisplayText)

	s, _ = c.Dispatch(ctx, s, game.StartCase())
	require.Equal(t, introAlex, s.DisplayText)

	s, _ = c.Dispatch(ctx, s, game.ViewClues())
	require.Contains(t, s.DisplayText, "- Glove with initials 'M.T.'\n")

	s, _ = c.Dispatch(ctx, s, game.Accuse("tevin"))
	require.Equal(t, incorrectAlex, s.DisplayText)

	s, _ = c.Dispatch(ctx, s, game.Accuse("zweli"))
	require.Equal(t, correctAlex, s.DisplayText)

	path := filepath.Join(t.TempDir(), "notes.txt")
	s, effect := c.Dispatch(ctx, s, game.SaveNotes(game.FileDestination(path)))
	require.NotNil(t, effect.Notice)
	require.Equal(t, game.NoticeSuccess, effect.Notice.Kind)
	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, correctAlex, string(contents))

	_, effect = c.Dispatch(ctx, s, game.Exit())
	require.True(t, effect.Terminate)
	require.Equal(t, "Thanks for playing! Goodbye, Detective Alex.", effect.Notice.Text)
}

func TestController_saveNotes(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t)
	s := startSession(t, c, "Alex")
	s, _ = c.Dispatch(ctx, s, game.QuestionSuspects())

	path := filepath.Join(t.TempDir(), "suspects.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale notes that are much longer than anything else"), 0o600))

	dest := game.FileDestination(path)
	got, effect := c.Dispatch(ctx, s, game.SaveNotes(dest))
	require.Equal(t, s, got, "saving must not change the session")
	require.NoError(t, effect.Err)
	require.Equal(t, &game.Notice{
		Kind: game.NoticeSuccess,
		Text: "✅ Notes saved successfully to:\n" + path,
	}, effect.Notice)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, s.DisplayText, string(contents), "notes replace the file byte for byte")
}

type failingDestination struct {
	openErr  error
	writeErr error
}

func (d failingDestination) Open() (io.WriteCloser, error) {
	if d.openErr != nil {
		return nil, d.openErr
	}
	return failingWriter{err: d.writeErr}, nil
}

func (d failingDestination) String() string { return "flaky disk" }

type failingWriter struct {
	err error
}

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func (w failingWriter) Close() error { return nil }

func TestController_saveNotesFailure(t *testing.T) {
	missingDir := filepath.Join(t.TempDir(), "missing", "notes.txt")

	tests := []struct {
		name        string
		destination game.Destination
		wantText    string
	}{
		{
			name:        "missing directory",
			destination: game.FileDestination(missingDir),
			wantText:    "⚠️ Error saving file:\nopen " + missingDir + ": no such file or directory",
		},
		{
			name:        "open fails",
			destination: failingDestination{openErr: errors.New("permission denied")},
			wantText:    "⚠️ Error saving file:\npermission denied",
		},
		{
			name:        "write fails",
			destination: failingDestination{writeErr: errors.New("disk full")},
			wantText:    "⚠️ Error saving file:\ndisk full",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			c := newTestController(t)
			s := startSession(t, c, "Alex")
			s, _ = c.Dispatch(ctx, s, game.StartCase())

			got, effect := c.Dispatch(ctx, s, game.SaveNotes(tt.destination))
			require.Equal(t, s, got, "failed save must leave the display unchanged")
			require.False(t, effect.Terminate)
			require.ErrorIs(t, effect.Err, game.ErrFileWrite)
			require.Equal(t, &game.Notice{Kind: game.NoticeError, Text: tt.wantText}, effect.Notice)
		})
	}
}

func TestFileDestination_String(t *testing.T) {
	dest := game.FileDestination(game.DefaultNotesName)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(wd, game.DefaultNotesName), dest.String())
}
