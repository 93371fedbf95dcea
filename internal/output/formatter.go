// Package output renders analysis reports for the CLI in text or JSON
// form.
package output

import (
	"io"

	"github.com/readably/readably/internal/analyze"
)

// Report pairs one analyzed source with its result. Path is "<stdin>"
// for piped input.
type Report struct {
	Path   string
	Result analyze.Result
}

// Formatter defines the interface for rendering reports.
type Formatter interface {
	Format(w io.Writer, reports []Report) error
}
