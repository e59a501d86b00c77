package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/myrjola/detective/internal/errors"
	"github.com/myrjola/detective/internal/logging"
)

type handler func(c *Controller, ctx context.Context, s Session, a Action) (Session, Effect)

var handlers = map[Kind]handler{
	KindStartCase:        (*Controller).startCase,
	KindViewClues:        (*Controller).viewClues,
	KindQuestionSuspects: (*Controller).questionSuspects,
	KindAccuse:           (*Controller).accuse,
	KindSaveNotes:        (*Controller).saveNotes,
	KindExit:             (*Controller).exit,
}

// Controller applies actions to sessions. It holds no per-session state and is safe for concurrent use.
type Controller struct {
	catalog *Catalog
	logger  *slog.Logger
}

func NewController(catalog *Catalog, logger *slog.Logger) *Controller {
	return &Controller{
		catalog: catalog,
		logger:  logger,
	}
}

// Catalog is the case content the controller plays.
func (c *Controller) Catalog() *Catalog {
	return c.catalog
}

// Dispatch applies a to s and returns the next session with the effect the shell must carry out.
func (c *Controller) Dispatch(ctx context.Context, s Session, a Action) (Session, Effect) {
	ctx = logging.WithAttrs(ctx,
		slog.String("action", a.Kind.String()),
		slog.String("detective", s.DetectiveName))

	h, ok := handlers[a.Kind]
	if !ok {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "unknown action ignored", slog.Int("kind", int(a.Kind)))
		return s, Effect{}
	}
	next, effect := h(c, ctx, s, a)
	c.logger.LogAttrs(ctx, slog.LevelDebug, "action dispatched", slog.String("outcome", next.Outcome.String()))
	return next, effect
}

func (c *Controller) startCase(_ context.Context, s Session, _ Action) (Session, Effect) {
	s.DisplayText = c.catalog.introText(s.DetectiveName)
	return s, Effect{}
}

func (c *Controller) viewClues(_ context.Context, s Session, _ Action) (Session, Effect) {
	s.DisplayText = c.catalog.CluesText()
	return s, Effect{}
}

func (c *Controller) questionSuspects(_ context.Context, s Session, _ Action) (Session, Effect) {
	s.DisplayText = c.catalog.SuspectsText()
	return s, Effect{}
}

func (c *Controller) accuse(ctx context.Context, s Session, a Action) (Session, Effect) {
	if a.SuspectID == "" {
		return s, Effect{}
	}
	if _, ok := c.catalog.Suspect(a.SuspectID); !ok {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "accused unknown suspect", slog.String("suspect_id", a.SuspectID))
		return s, Effect{}
	}

	m := c.catalog.messages
	s.Outcome = c.catalog.Evaluate(a.SuspectID)
	c.logger.LogAttrs(ctx, slog.LevelInfo, "accusation made",
		slog.String("suspect_id", a.SuspectID),
		slog.String("outcome", s.Outcome.String()))
	if s.Outcome == OutcomeCorrect {
		s.DisplayText = fill(m.CorrectDisplay, s.DetectiveName)
		return s, Effect{Notice: &Notice{Kind: NoticeSuccess, Text: fill(m.CorrectNotice, s.DetectiveName)}}
	}
	s.DisplayText = fill(m.IncorrectDisplay, s.DetectiveName)
	return s, Effect{Notice: &Notice{Kind: NoticeWarning, Text: fill(m.IncorrectNotice, s.DetectiveName)}}
}

func (c *Controller) saveNotes(ctx context.Context, s Session, a Action) (Session, Effect) {
	if a.Destination == nil {
		return s, Effect{}
	}

	m := c.catalog.messages
	destination := a.Destination.String()
	if cause := writeNotes(a.Destination, s.DisplayText); cause != nil {
		err := errors.Wrap(fmt.Errorf("%w: %w", ErrFileWrite, cause), "save notes",
			slog.String("destination", destination))
		c.logger.LogAttrs(ctx, slog.LevelError, "failed to save notes", errors.SlogError(err))
		return s, Effect{
			Notice: &Notice{Kind: NoticeError, Text: fill(m.NotesFailed, s.DetectiveName, "{error}", cause.Error())},
			Err:    err,
		}
	}
	c.logger.LogAttrs(ctx, slog.LevelInfo, "notes saved", slog.String("destination", destination))
	return s, Effect{
		Notice: &Notice{Kind: NoticeSuccess, Text: fill(m.NotesSaved, s.DetectiveName, "{destination}", destination)},
	}
}

func (c *Controller) exit(_ context.Context, s Session, _ Action) (Session, Effect) {
	return s, Effect{
		Notice:    &Notice{Kind: NoticeInfo, Text: fill(c.catalog.messages.Farewell, s.DetectiveName)},
		Terminate: true,
	}
}
