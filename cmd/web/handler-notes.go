package main

import (
	"bytes"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/myrjola/detective/internal/game"
)

// downloadDestination collects the notes so that they can be sent to the browser as a file.
type downloadDestination struct {
	name string
	buf  bytes.Buffer
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func (d *downloadDestination) Open() (io.WriteCloser, error) {
	d.buf.Reset()
	return nopWriteCloser{Writer: &d.buf}, nil
}

func (d *downloadDestination) String() string {
	return d.name
}

// notes downloads the current display as a text file.
func (app *application) notes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s, ok := app.loadSession(ctx)
	if !ok {
		redirectHome(w, r)
		return
	}

	dest := &downloadDestination{name: game.DefaultNotesName, buf: bytes.Buffer{}}
	_, effect := app.controller.Dispatch(ctx, s, game.SaveNotes(dest))
	if effect.Err != nil {
		app.flash(ctx, effect)
		redirectHome(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": dest.name}))
	w.Header().Set("Content-Length", strconv.Itoa(dest.buf.Len()))
	_, _ = dest.buf.WriteTo(w)
}
