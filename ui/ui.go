// Package ui holds the user interfaces of the game: the HTML templates of the web shell and, in subpackages, the
// terminal shell.
package ui

import "embed"

// Files are the HTML templates. Pages live in templates/pages/<name>/ and define a "page" template rendered by
// templates/base.gohtml.
//
//go:embed templates
var Files embed.FS
