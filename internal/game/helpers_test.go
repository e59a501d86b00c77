package game_test

import (
	"io"
	"testing"

	"github.com/myrjola/detective/internal/game"
	"github.com/myrjola/detective/internal/models"
	"github.com/myrjola/detective/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

func museumHeist() models.Case {
	return models.Case{
		ID:        "museum-heist",
		Title:     "🕵️ Museum Detective",
		CulpritID: "zweli",
		Messages: models.Messages{
			Welcome:          "Welcome, Detective {detective}! Press 'Start Case' to begin.\n",
			Intro:            "📍 Crime Scene: A priceless painting was stolen from the museum.\nDetective {detective}, you must find out who did it!\n",
			CluesHeading:     "🔍 Clues:",
			SuspectsHeading:  "👤 Suspect Stories:",
			AccusePrompt:     "Who do you accuse?",
			CorrectDisplay:   "✅ Correct, Detective {detective}! Zwelibanzi Ntanzi disabled the cameras and stole the painting.",
			CorrectNotice:    "🎉 Congratulations, Detective {detective}! You solved the case!",
			IncorrectDisplay: "❌ Wrong choice, Detective {detective}! The real thief got away. Try again.",
			IncorrectNotice:  "😞 Wrong suspect! Give it another shot, Detective {detective}.",
			NotesSaved:       "✅ Notes saved successfully to:\n{destination}",
			NotesFailed:      "⚠️ Error saving file:\n{error}",
			Farewell:         "Thanks for playing! Goodbye, Detective {detective}.",
			MissingName:      "You must enter a name to play!",
		},
		Clues: []models.Clue{
			{Position: 1, Description: "Broken window"},
			{Position: 2, Description: "Footprint size 10"},
			{Position: 3, Description: "Glove with initials 'M.T.'"},
			{Position: 4, Description: "Security footage glitch"},
		},
		Suspects: []models.Suspect{
			{
				ID:       "zweli",
				Position: 1,
				Name:     "Zwelibanzi Ntanzi",
				Role:     "Security Guard",
				Dossier: "Zweli was the night guard on duty during the theft. " +
					"He was recently reprimanded for sleeping on the job.",
			},
			{
				ID:       "thembelani",
				Position: 2,
				Name:     "Thembelani Tshaka",
				Role:     "Art Curator",
				Dossier: "Thembelani has been under pressure to increase museum attendance " +
					"and has access to security codes.",
			},
			{
				ID:       "tevin",
				Position: 3,
				Name:     "Tevin Monayi",
				Role:     "Janitor",
				Dossier: "Tevin was seen near the restricted area but claims he was cleaning. " +
					"His gloves were found near the scene.",
			},
		},
	}
}

func newTestController(t *testing.T) *game.Controller {
	t.Helper()
	catalog, err := game.NewCatalog(museumHeist())
	require.NoError(t, err)
	return game.NewController(catalog, testhelpers.NewLogger(io.Discard))
}

func startSession(t *testing.T, c *game.Controller, name string) game.Session {
	t.Helper()
	s, err := game.NewSession(c.Catalog(), name)
	require.NoError(t, err)
	return s
}
