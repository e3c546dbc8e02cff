package cmdutil

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// NewLogger builds the stderr console logger used by the binaries.
// level is a zerolog level name; quiet forces error and verbose forces debug.
func NewLogger(dst io.Writer, level string, quiet, verbose bool) (zerolog.Logger, error) {
	lvl := zerolog.WarnLevel
	if level != "" {
		l, err := zerolog.ParseLevel(level)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("log level: %w", err)
		}
		lvl = l
	}
	switch {
	case quiet:
		lvl = zerolog.ErrorLevel
	case verbose:
		lvl = zerolog.DebugLevel
	}
	cw := zerolog.ConsoleWriter{Out: dst, NoColor: true, TimeFormat: time.TimeOnly}
	return zerolog.New(cw).Level(lvl).With().Timestamp().Logger(), nil
}
