// Package log provides the verbose progress logger for the CLI.
package log

import (
	"fmt"
	"io"
)

// prefix matches the CLI's error-message prefix so verbose output and
// errors read uniformly on stderr.
const prefix = "readably: "

// Logger writes prefixed progress messages when enabled.
type Logger struct {
	enabled bool
	w       io.Writer
}

// New returns a Logger writing to w. When enabled is false every
// method is a no-op.
func New(enabled bool, w io.Writer) *Logger {
	return &Logger{enabled: enabled, w: w}
}

// Printf writes one prefixed, newline-terminated message.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || !l.enabled {
		return
	}
	_, _ = fmt.Fprintf(l.w, prefix+format+"\n", args...)
}
