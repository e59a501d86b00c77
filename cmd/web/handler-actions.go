package main

import (
	"net/http"
	"slices"

	"github.com/myrjola/detective/internal/errors"
	"github.com/myrjola/detective/internal/game"
)

// directKinds are the triggers that need no answer from the detective.
var directKinds = []game.Kind{game.KindStartCase, game.KindViewClues, game.KindQuestionSuspects, game.KindExit}

// action dispatches one of the direct triggers named in the URL.
func (app *application) action(w http.ResponseWriter, r *http.Request) {
	kind, ok := game.ParseKind(r.PathValue("action"))
	if !ok || !slices.Contains(directKinds, kind) {
		app.notFound(w, r)
		return
	}
	app.dispatch(w, r, game.Action{Kind: kind, SuspectID: "", Destination: nil})
}

// dispatch applies action to the browser's game and sends the browser back to the game page.
func (app *application) dispatch(w http.ResponseWriter, r *http.Request, action game.Action) {
	ctx := r.Context()
	s, ok := app.loadSession(ctx)
	if !ok {
		redirectHome(w, r)
		return
	}

	next, effect := app.controller.Dispatch(ctx, s, action)
	if effect.Terminate {
		// Only this detective leaves, the server keeps serving the others.
		if err := app.sessionManager.Destroy(ctx); err != nil {
			app.serverError(w, r, errors.Wrap(err, "destroy session"))
			return
		}
		message := ""
		if effect.Notice != nil {
			message = effect.Notice.Text
		}
		app.render(w, r, http.StatusOK, "farewell", farewellTemplateData{
			BaseTemplateData: app.newBaseTemplateData(r),
			Message:          message,
		})
		return
	}

	app.storeSession(ctx, next)
	app.flash(ctx, effect)
	redirectHome(w, r)
}
