package main

import (
	"net/http"

	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	session := alice.New(app.serializeSession, app.sessionManager.LoadAndSave, app.noSurf, commonContext)

	mux.Handle("GET /{$}", session.ThenFunc(app.home))
	mux.Handle("POST /session", session.ThenFunc(app.startSession))
	mux.Handle("POST /actions/{action}", session.ThenFunc(app.action))
	mux.Handle("GET /accuse", session.ThenFunc(app.accuseForm))
	mux.Handle("POST /accuse", session.ThenFunc(app.accuse))
	mux.Handle("POST /notes", session.ThenFunc(app.notes))

	mux.HandleFunc("GET /api/healthy", app.healthy)

	standard := alice.New(app.recoverPanic, app.logRequest, secureHeaders)
	return standard.Then(mux)
}
