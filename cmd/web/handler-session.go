package main

import (
	"log/slog"
	"net/http"

	"github.com/myrjola/detective/internal/errors"
	"github.com/myrjola/detective/internal/game"
)

// startSession opens the case for the detective named in the form.
func (app *application) startSession(w http.ResponseWriter, r *http.Request) {
	var (
		ctx = r.Context()
		s   game.Session
		err error
	)
	if err = r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	name := r.PostForm.Get("name")
	if s, err = game.NewSession(app.controller.Catalog(), name); err != nil {
		if !errors.Is(err, game.ErrInput) {
			app.serverError(w, r, errors.Wrap(err, "new session"))
			return
		}
		app.logger.LogAttrs(ctx, slog.LevelInfo, "no detective name given", errors.SlogError(err))
		app.render(w, r, http.StatusUnprocessableEntity, "name", nameTemplateData{
			BaseTemplateData: app.newBaseTemplateData(r),
			Name:             name,
			Message:          app.controller.Catalog().MissingNameText(),
		})
		return
	}

	// A new detective gets a new session token so that a planted token cannot follow the game.
	if err = app.sessionManager.RenewToken(ctx); err != nil {
		app.serverError(w, r, errors.Wrap(err, "renew session token"))
		return
	}
	app.storeSession(ctx, s)
	app.logger.LogAttrs(ctx, slog.LevelInfo, "session started", slog.String("detective", s.DetectiveName))
	redirectHome(w, r)
}
