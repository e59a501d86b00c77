package main

import (
	"net/http"
)

// home shows the name prompt to new players and the game to everyone else.
func (app *application) home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s, ok := app.loadSession(ctx)
	if !ok {
		app.render(w, r, http.StatusOK, "name", nameTemplateData{
			BaseTemplateData: app.newBaseTemplateData(r),
			Name:             "",
			Message:          "",
		})
		return
	}

	app.render(w, r, http.StatusOK, "game", gameTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
		Detective:        s.DetectiveName,
		Display:          s.DisplayText,
		Outcome:          s.Outcome.String(),
		Notice:           app.popNotice(ctx),
		Buttons:          actionButtons(),
	})
}
