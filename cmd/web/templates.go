package main

import (
	"net/http"

	"github.com/myrjola/detective/internal/contexthelpers"
	"github.com/myrjola/detective/internal/game"
)

type BaseTemplateData struct {
	Title       string
	CurrentPath string
}

func (app *application) newBaseTemplateData(r *http.Request) BaseTemplateData {
	return BaseTemplateData{
		Title:       app.controller.Catalog().Title(),
		CurrentPath: contexthelpers.CurrentPath(r.Context()),
	}
}

type nameTemplateData struct {
	BaseTemplateData
	Name    string
	Message string
}

type actionButton struct {
	Label    string
	Method   string
	Action   string
	Shortcut int
}

type gameTemplateData struct {
	BaseTemplateData
	Detective string
	Display   string
	Outcome   string
	Notice    *game.Notice
	Buttons   []actionButton
}

// actionButtons lays out the six triggers. Accusation opens its prompt page and saving notes downloads them.
func actionButtons() []actionButton {
	buttons := make([]actionButton, len(game.Kinds))
	for i, kind := range game.Kinds {
		b := actionButton{
			Label:    kind.Label(),
			Method:   http.MethodPost,
			Action:   "/actions/" + kind.String(),
			Shortcut: i + 1,
		}
		switch kind {
		case game.KindAccuse:
			b.Method = http.MethodGet
			b.Action = "/accuse"
		case game.KindSaveNotes:
			b.Action = "/notes"
		case game.KindStartCase, game.KindViewClues, game.KindQuestionSuspects, game.KindExit:
		}
		buttons[i] = b
	}
	return buttons
}

type suspectOption struct {
	ID      string
	Label   string
	Checked bool
}

type accuseTemplateData struct {
	BaseTemplateData
	Prompt   string
	Suspects []suspectOption
}

type farewellTemplateData struct {
	BaseTemplateData
	Message string
}
