package main

import (
	"context"

	"github.com/myrjola/detective/internal/game"
)

const (
	detectiveSessionKey  = "detective"
	displaySessionKey    = "display"
	outcomeSessionKey    = "outcome"
	noticeSessionKey     = "notice"
	noticeKindSessionKey = "notice_kind"
)

// loadSession reads the game session of the browser. The boolean is false before a name has been entered.
func (app *application) loadSession(ctx context.Context) (game.Session, bool) {
	name := app.sessionManager.GetString(ctx, detectiveSessionKey)
	if name == "" {
		return game.Session{}, false
	}
	return game.Session{
		DetectiveName: name,
		DisplayText:   app.sessionManager.GetString(ctx, displaySessionKey),
		Outcome:       game.Outcome(app.sessionManager.GetInt(ctx, outcomeSessionKey)),
	}, true
}

func (app *application) storeSession(ctx context.Context, s game.Session) {
	app.sessionManager.Put(ctx, detectiveSessionKey, s.DetectiveName)
	app.sessionManager.Put(ctx, displaySessionKey, s.DisplayText)
	app.sessionManager.Put(ctx, outcomeSessionKey, int(s.Outcome))
}

// flash keeps the notice of effect for the next page load.
func (app *application) flash(ctx context.Context, effect game.Effect) {
	if effect.Notice == nil {
		return
	}
	app.sessionManager.Put(ctx, noticeSessionKey, effect.Notice.Text)
	app.sessionManager.Put(ctx, noticeKindSessionKey, int(effect.Notice.Kind))
}

func (app *application) popNotice(ctx context.Context) *game.Notice {
	text := app.sessionManager.PopString(ctx, noticeSessionKey)
	kind := app.sessionManager.PopInt(ctx, noticeKindSessionKey)
	if text == "" {
		return nil
	}
	return &game.Notice{Kind: game.NoticeKind(kind), Text: text}
}
