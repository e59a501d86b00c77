// Package terminal is the full-screen terminal shell of the game.
package terminal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/myrjola/detective/internal/errors"
	"github.com/myrjola/detective/internal/game"
)

type screen int

const (
	screenName screen = iota
	screenMain
	screenAccuse
	screenSave
	screenNotice
)

const (
	defaultWidth  = 80
	defaultHeight = 12
	// chromeHeight is the number of lines around the display: title, borders, buttons, and help.
	chromeHeight = 7
)

// Model is the bubbletea model of one game. The session advances only on the update loop.
type Model struct {
	ctx        context.Context
	controller *game.Controller
	logger     *slog.Logger

	screen  screen
	session game.Session

	name    textinput.Model
	path    textinput.Model
	display viewport.Model

	focus  int
	choice int

	notice    *game.Notice
	terminate bool
	// farewell is the last notice of a finished game, printed after the screen is restored.
	farewell string
}

// New creates a model that starts with the name prompt.
func New(ctx context.Context, controller *game.Controller, logger *slog.Logger) Model {
	name := textinput.New()
	name.Placeholder = "Sherlock"
	name.Focus()

	path := textinput.New()
	path.CharLimit = 4096

	return Model{
		ctx:        ctx,
		controller: controller,
		logger:     logger,
		screen:     screenName,
		session:    game.Session{},
		name:       name,
		path:       path,
		display:    viewport.New(defaultWidth, defaultHeight),
		focus:      0,
		choice:     0,
		notice:     nil,
		terminate:  false,
		farewell:   "",
	}
}

// Run plays one game on the given terminal and returns once the detective has left.
func Run(ctx context.Context, controller *game.Controller, logger *slog.Logger, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(New(ctx, controller, logger),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return errors.Wrap(err, "run terminal program")
	}
	if m, ok := final.(Model); ok && m.farewell != "" {
		if _, err = fmt.Fprintln(out, m.farewell); err != nil {
			return errors.Wrap(err, "print farewell")
		}
	}
	return nil
}

// Session is the latest session. It is the zero value until a name has been entered.
func (m Model) Session() game.Session {
	return m.session
}

// Farewell is the message that ended the game, if it has ended.
func (m Model) Farewell() string {
	return m.farewell
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.display.Width = max(msg.Width-4, 20)
		m.display.Height = max(msg.Height-chromeHeight, 3)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.interrupt()
		}
		switch m.screen {
		case screenName:
			return m.updateName(msg)
		case screenMain:
			return m.updateMain(msg)
		case screenAccuse:
			return m.updateAccuse(msg)
		case screenSave:
			return m.updateSave(msg)
		case screenNotice:
			return m.updateNotice(msg)
		}
	}

	var cmd tea.Cmd
	switch m.screen {
	case screenName:
		m.name, cmd = m.name.Update(msg)
	case screenSave:
		m.path, cmd = m.path.Update(msg)
	case screenMain, screenAccuse, screenNotice:
	}
	return m, cmd
}

func (m Model) updateName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		session, err := game.NewSession(m.controller.Catalog(), m.name.Value())
		if err != nil {
			return m.declineName(err)
		}
		m.logger.LogAttrs(m.ctx, slog.LevelInfo, "session started", slog.String("detective", session.DetectiveName))
		m.session = session
		m.name.Blur()
		m.screen = screenMain
		m.display.SetContent(session.DisplayText)
		return m, nil
	case tea.KeyEsc:
		return m.declineName(game.ErrInput)
	default:
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}
}

// interrupt quits at once. Leaving before a name was given still tells the player why the game did not start.
func (m Model) interrupt() (tea.Model, tea.Cmd) {
	switch {
	case m.screen == screenName:
		m.logger.LogAttrs(m.ctx, slog.LevelInfo, "no detective name given", errors.SlogError(game.ErrInput))
		m.farewell = m.controller.Catalog().MissingNameText()
	case m.screen == screenNotice && m.terminate:
		m.farewell = m.notice.Text
	}
	return m, tea.Quit
}

func (m Model) declineName(err error) (tea.Model, tea.Cmd) {
	m.logger.LogAttrs(m.ctx, slog.LevelInfo, "no detective name given", errors.SlogError(err))
	m.name.Blur()
	m.screen = screenNotice
	m.notice = &game.Notice{Kind: game.NoticeWarning, Text: m.controller.Catalog().MissingNameText()}
	m.terminate = true
	return m, nil
}

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "tab", "right", "l":
		m.focus = (m.focus + 1) % len(game.Kinds)
		return m, nil
	case "shift+tab", "left", "h":
		m.focus = (m.focus + len(game.Kinds) - 1) % len(game.Kinds)
		return m, nil
	case "enter", " ":
		return m.trigger(game.Kinds[m.focus])
	case "1", "2", "3", "4", "5", "6":
		m.focus = int(key[0] - '1')
		return m.trigger(game.Kinds[m.focus])
	default:
		var cmd tea.Cmd
		m.display, cmd = m.display.Update(msg)
		return m, cmd
	}
}

// trigger opens the prompt of kind or dispatches it directly when it needs no answer.
func (m Model) trigger(kind game.Kind) (tea.Model, tea.Cmd) {
	switch kind {
	case game.KindAccuse:
		m.screen = screenAccuse
		m.choice = 0
		return m, nil
	case game.KindSaveNotes:
		m.screen = screenSave
		m.path.SetValue(game.DefaultNotesName)
		m.path.CursorEnd()
		return m, m.path.Focus()
	case game.KindStartCase, game.KindViewClues, game.KindQuestionSuspects, game.KindExit:
	}
	return m.dispatch(game.Action{Kind: kind, SuspectID: "", Destination: nil})
}

func (m Model) updateAccuse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	suspects := m.controller.Catalog().Suspects()
	switch key := msg.String(); key {
	case "up", "k", "shift+tab":
		m.choice = (m.choice + len(suspects) - 1) % len(suspects)
	case "down", "j", "tab":
		m.choice = (m.choice + 1) % len(suspects)
	case "1", "2", "3":
		if i := int(key[0] - '1'); i < len(suspects) {
			m.choice = i
		}
	case "enter":
		m.screen = screenMain
		return m.dispatch(game.Accuse(suspects[m.choice].ID))
	case "esc":
		m.screen = screenMain
		return m.dispatch(game.CancelAccusation())
	}
	return m, nil
}

func (m Model) updateSave(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.path.Blur()
		m.screen = screenMain
		path := strings.TrimSpace(m.path.Value())
		if path == "" {
			return m.dispatch(game.SaveNotes(nil))
		}
		return m.dispatch(game.SaveNotes(game.FileDestination(path)))
	case tea.KeyEsc:
		m.path.Blur()
		m.screen = screenMain
		return m.dispatch(game.SaveNotes(nil))
	default:
		var cmd tea.Cmd
		m.path, cmd = m.path.Update(msg)
		return m, cmd
	}
}

func (m Model) updateNotice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", " ", "q":
		if m.terminate {
			m.farewell = m.notice.Text
			return m, tea.Quit
		}
		m.notice = nil
		m.screen = screenMain
	}
	return m, nil
}

func (m Model) dispatch(action game.Action) (tea.Model, tea.Cmd) {
	next, effect := m.controller.Dispatch(m.ctx, m.session, action)
	if next.DisplayText != m.session.DisplayText {
		m.display.SetContent(next.DisplayText)
		m.display.GotoTop()
	}
	m.session = next
	if effect.Notice != nil {
		m.screen = screenNotice
		m.notice = effect.Notice
		m.terminate = effect.Terminate
		return m, nil
	}
	if effect.Terminate {
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.controller.Catalog().Title()))
	b.WriteString("\n\n")
	switch m.screen {
	case screenName:
		b.WriteString(promptStyle.Render("Enter your detective name:"))
		b.WriteString("\n")
		b.WriteString(m.name.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter start • esc quit"))
	case screenMain:
		b.WriteString(m.viewDisplay())
		b.WriteString("\n")
		b.WriteString(m.viewButtons())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("←/→ select • enter press • 1-6 shortcut • ↑/↓ scroll"))
	case screenAccuse:
		b.WriteString(promptStyle.Render(m.controller.Catalog().AccusePrompt()))
		b.WriteString("\n\n")
		for i, s := range m.controller.Catalog().Suspects() {
			line := fmt.Sprintf("%d. %s (%s)", i+1, s.Name, s.Role)
			if i == m.choice {
				b.WriteString(cursorStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ choose • enter accuse • esc cancel"))
	case screenSave:
		b.WriteString(promptStyle.Render("Save notes to:"))
		b.WriteString("\n")
		b.WriteString(m.path.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter save • esc cancel"))
	case screenNotice:
		b.WriteString(noticeStyle.BorderForeground(noticeColors[m.notice.Kind]).Render(m.notice.Text))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter ok"))
	}
	return b.String()
}

func (m Model) viewDisplay() string {
	return displayStyle.BorderForeground(outcomeColors[m.session.Outcome]).Render(m.display.View())
}

func (m Model) viewButtons() string {
	buttons := make([]string, len(game.Kinds))
	for i, kind := range game.Kinds {
		label := fmt.Sprintf("%d %s", i+1, kind.Label())
		if i == m.focus {
			buttons[i] = focusedButtonStyle.Render(label)
		} else {
			buttons[i] = buttonStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}
