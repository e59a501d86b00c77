package main

import (
	"fmt"
	"net/http"

	"github.com/myrjola/detective/internal/game"
)

// accuseForm is the accusation prompt. The first suspect is preselected.
func (app *application) accuseForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := app.loadSession(r.Context()); !ok {
		redirectHome(w, r)
		return
	}

	catalog := app.controller.Catalog()
	suspects := catalog.Suspects()
	options := make([]suspectOption, len(suspects))
	for i, s := range suspects {
		options[i] = suspectOption{
			ID:      s.ID,
			Label:   fmt.Sprintf("%s (%s)", s.Name, s.Role),
			Checked: i == 0,
		}
	}
	app.render(w, r, http.StatusOK, "accuse", accuseTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
		Prompt:           catalog.AccusePrompt(),
		Suspects:         options,
	})
}

// accuse answers the prompt. The Cancel button leaves the game as it was.
func (app *application) accuse(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	action := game.CancelAccusation()
	if r.PostForm.Get("intent") != "cancel" {
		action = game.Accuse(r.PostForm.Get("suspect"))
	}
	app.dispatch(w, r, action)
}
