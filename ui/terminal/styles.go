package terminal

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/myrjola/detective/internal/game"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	focusedButtonStyle = buttonStyle.
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("62")).
				Bold(true)

	promptStyle = lipgloss.NewStyle().Bold(true)

	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	noticeStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(1, 2)
)

var outcomeColors = map[game.Outcome]lipgloss.Color{
	game.OutcomeUnresolved: lipgloss.Color("63"),
	game.OutcomeCorrect:    lipgloss.Color("42"),
	game.OutcomeIncorrect:  lipgloss.Color("205"),
}

var noticeColors = map[game.NoticeKind]lipgloss.Color{
	game.NoticeInfo:    lipgloss.Color("63"),
	game.NoticeSuccess: lipgloss.Color("42"),
	game.NoticeWarning: lipgloss.Color("214"),
	game.NoticeError:   lipgloss.Color("196"),
}
