package game

import (
	"log/slog"
	"strings"

	"github.com/myrjola/detective/internal/errors"
)

// ErrInput is returned when a session is started without a detective name.
var ErrInput = errors.NewSentinel("detective name is required")

// Outcome is the verdict of the latest accusation.
type Outcome int

const (
	OutcomeUnresolved Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUnresolved:
		return "unresolved"
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// Session is everything that changes while a detective plays. Sessions are values: the controller returns a new
// one for every action and shells hold on to the latest.
type Session struct {
	DetectiveName string
	DisplayText   string
	Outcome       Outcome
}

// NewSession starts a session for the trimmed name showing the welcome message.
func NewSession(catalog *Catalog, name string) (Session, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Session{}, errors.Wrap(ErrInput, "start session", slog.String("case_id", catalog.ID()))
	}
	return Session{
		DetectiveName: name,
		DisplayText:   catalog.welcomeText(name),
		Outcome:       OutcomeUnresolved,
	}, nil
}
