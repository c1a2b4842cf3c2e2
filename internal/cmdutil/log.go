// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"github.com/rs/zerolog"
)

// NewLogger returns the console logger used for per-line warnings and
// fatal reports. quiet raises the threshold so only errors get through.
func NewLogger(w io.Writer, quiet bool) zerolog.Logger {
	lvl := zerolog.WarnLevel
	if quiet {
		lvl = zerolog.ErrorLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(lvl).
		With().Timestamp().Logger()
}
