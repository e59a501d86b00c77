package game

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/myrjola/detective/internal/errors"
	"github.com/myrjola/detective/internal/models"
)

// SuspectCount is the size of the fixed suspect line-up.
const SuspectCount = 3

// ErrInvalidCatalog is returned when case content cannot back a game.
var ErrInvalidCatalog = errors.NewSentinel("invalid catalog")

// Catalog is the immutable content of a case. It is safe for concurrent use.
type Catalog struct {
	id        string
	title     string
	culpritID string
	messages  models.Messages
	suspects  []models.Suspect
	clues     string
	stories   string
}

// NewCatalog validates c and renders the name-independent panels once.
func NewCatalog(c models.Case) (*Catalog, error) {
	if len(c.Suspects) != SuspectCount {
		return nil, errors.Wrap(ErrInvalidCatalog, "wrong number of suspects",
			slog.String("case_id", c.ID), slog.Int("suspects", len(c.Suspects)))
	}
	if !slices.ContainsFunc(c.Suspects, func(s models.Suspect) bool { return s.ID == c.CulpritID }) {
		return nil, errors.Wrap(ErrInvalidCatalog, "culprit is not a suspect",
			slog.String("case_id", c.ID), slog.String("culprit_id", c.CulpritID))
	}

	var clues strings.Builder
	clues.WriteString(c.CluesHeading)
	clues.WriteString("\n")
	for _, clue := range c.Clues {
		fmt.Fprintf(&clues, "- %s\n", clue.Description)
	}

	stories := make([]string, len(c.Suspects))
	for i, s := range c.Suspects {
		stories[i] = fmt.Sprintf("%d. %s - %s:\n%s\n", i+1, s.Name, s.Role, s.Dossier)
	}

	return &Catalog{
		id:        c.ID,
		title:     c.Title,
		culpritID: c.CulpritID,
		messages:  c.Messages,
		suspects:  slices.Clone(c.Suspects),
		clues:     clues.String(),
		stories:   c.SuspectsHeading + "\n\n" + strings.Join(stories, "\n"),
	}, nil
}

// ID identifies the case.
func (c *Catalog) ID() string { return c.id }

// Title is the window title of the case.
func (c *Catalog) Title() string { return c.title }

// Suspects returns the line-up in display order.
func (c *Catalog) Suspects() []models.Suspect {
	return slices.Clone(c.suspects)
}

// Suspect looks up a suspect by ID.
func (c *Catalog) Suspect(id string) (models.Suspect, bool) {
	i := slices.IndexFunc(c.suspects, func(s models.Suspect) bool { return s.ID == id })
	if i == -1 {
		return models.Suspect{}, false
	}
	return c.suspects[i], true
}

// Evaluate is the accusation verdict: Correct iff suspectID names the culprit.
func (c *Catalog) Evaluate(suspectID string) Outcome {
	if suspectID == c.culpritID {
		return OutcomeCorrect
	}
	return OutcomeIncorrect
}

// CluesText is the clue list panel.
func (c *Catalog) CluesText() string { return c.clues }

// SuspectsText is the concatenated dossiers panel.
func (c *Catalog) SuspectsText() string { return c.stories }

// AccusePrompt is the question shown above the suspect choices.
func (c *Catalog) AccusePrompt() string { return c.messages.AccusePrompt }

// MissingNameText is shown when the game is started without a detective name.
func (c *Catalog) MissingNameText() string { return c.messages.MissingName }

func (c *Catalog) welcomeText(name string) string { return fill(c.messages.Welcome, name) }

func (c *Catalog) introText(name string) string { return fill(c.messages.Intro, name) }

func fill(text, detective string, pairs ...string) string {
	return strings.NewReplacer(append([]string{"{detective}", detective}, pairs...)...).Replace(text)
}
