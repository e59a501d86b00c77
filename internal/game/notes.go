package game

import (
	"io"
	"os"
	"path/filepath"

	"github.com/myrjola/detective/internal/errors"
)

// ErrFileWrite marks a failure to write the investigation notes.
var ErrFileWrite = errors.NewSentinel("file write error")

// DefaultNotesName is the suggested file name for saved notes.
const DefaultNotesName = "investigation-notes.txt"

// Destination receives the investigation notes.
type Destination interface {
	// Open returns a writer that replaces the previous contents of the destination.
	Open() (io.WriteCloser, error)
	// String describes the destination to the detective.
	String() string
}

// FileDestination is a path on the local file system.
type FileDestination string

func (d FileDestination) Open() (io.WriteCloser, error) {
	f, err := os.Create(string(d))
	if err != nil {
		return nil, err //nolint:wrapcheck // shown to the detective as is.
	}
	return f, nil
}

// String is the absolute path when it can be resolved.
func (d FileDestination) String() string {
	abs, err := filepath.Abs(string(d))
	if err != nil {
		return string(d)
	}
	return abs
}

// writeNotes writes text to dest byte for byte. The returned error is left bare because its text is shown to the
// detective.
func writeNotes(dest Destination, text string) (err error) {
	var w io.WriteCloser
	if w, err = dest.Open(); err != nil {
		return err
	}
	defer func() {
		if closeErr := w.Close(); err == nil && closeErr != nil {
			err = closeErr
		}
	}()
	_, err = io.WriteString(w, text)
	return err
}
