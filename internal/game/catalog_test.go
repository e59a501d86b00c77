package game_test

import (
	"context"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/detective/internal/game"
	"github.com/myrjola/detective/internal/models"
	"github.com/myrjola/detective/internal/repositories"
	"github.com/myrjola/detective/internal/sqlite"
	"github.com/myrjola/detective/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *models.Case)
		wantErr bool
	}{
		{
			name:   "museum heist",
			mutate: func(*models.Case) {},
		},
		{
			name: "two suspects",
			mutate: func(c *models.Case) {
				c.Suspects = c.Suspects[:2]
			},
			wantErr: true,
		},
		{
			name: "four suspects",
			mutate: func(c *models.Case) {
				c.Suspects = append(c.Suspects, models.Suspect{ID: "extra", Position: 4, Name: "Extra"})
			},
			wantErr: true,
		},
		{
			name: "culprit outside line-up",
			mutate: func(c *models.Case) {
				c.CulpritID = "butler"
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := museumHeist()
			tt.mutate(&c)
			catalog, err := game.NewCatalog(c)
			if tt.wantErr {
				require.ErrorIs(t, err, game.ErrInvalidCatalog)
				require.Nil(t, catalog)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "museum-heist", catalog.ID())
		})
	}
}

func TestCatalog_panels(t *testing.T) {
	catalog, err := game.NewCatalog(museumHeist())
	require.NoError(t, err)

	require.Equal(t, "🔍 Clues:\n"+
		"- Broken window\n"+
		"- Footprint size 10\n"+
		"- Glove with initials 'M.T.'\n"+
		"- Security footage glitch\n", catalog.CluesText())

	want := "👤 Suspect Stories:\n\n" +
		"1. Zwelibanzi Ntanzi - Security Guard:\n" +
		"Zweli was the night guard on duty during the theft. He was recently reprimanded for sleeping on the job.\n" +
		"\n" +
		"2. Thembelani Tshaka - Art Curator:\n" +
		"Thembelani has been under pressure to increase museum attendance and has access to security codes.\n" +
		"\n" +
		"3. Tevin Monayi - Janitor:\n" +
		"Tevin was seen near the restricted area but claims he was cleaning. His gloves were found near the scene.\n"
	if diff := cmp.Diff(want, catalog.SuspectsText()); diff != "" {
		t.Errorf("SuspectsText() mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalog_Suspects(t *testing.T) {
	catalog, err := game.NewCatalog(museumHeist())
	require.NoError(t, err)

	suspects := catalog.Suspects()
	require.Len(t, suspects, game.SuspectCount)
	require.Equal(t, []string{"zweli", "thembelani", "tevin"},
		[]string{suspects[0].ID, suspects[1].ID, suspects[2].ID})

	suspects[0].Name = "Tampered"
	require.Equal(t, "Zwelibanzi Ntanzi", catalog.Suspects()[0].Name, "line-up must not be mutable from outside")

	s, ok := catalog.Suspect("tevin")
	require.True(t, ok)
	require.Equal(t, "Janitor", s.Role)
	_, ok = catalog.Suspect("butler")
	require.False(t, ok)
}

func TestCatalog_Evaluate(t *testing.T) {
	catalog, err := game.NewCatalog(museumHeist())
	require.NoError(t, err)

	tests := []struct {
		suspectID string
		want      game.Outcome
	}{
		{suspectID: "zweli", want: game.OutcomeCorrect},
		{suspectID: "thembelani", want: game.OutcomeIncorrect},
		{suspectID: "tevin", want: game.OutcomeIncorrect},
	}
	for _, tt := range tests {
		t.Run(tt.suspectID, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, catalog.Evaluate(tt.suspectID))
			require.Equal(t, tt.want, catalog.Evaluate(tt.suspectID), "verdict must not depend on history")
		})
	}
}

func TestCatalog_seededDatabase(t *testing.T) {
	ctx := context.Background()
	logger := testhelpers.NewLogger(io.Discard)
	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	got, err := repositories.NewCaseRepository(db, logger).Get(ctx, "museum-heist")
	require.NoError(t, err)
	if diff := cmp.Diff(museumHeist(), *got); diff != "" {
		t.Errorf("seeded case mismatch (-want +got):\n%s", diff)
	}
}
