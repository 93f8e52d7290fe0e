// Package log provides the global zerolog logger shared by the CLIs.
package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var logger = New(os.Stderr)

func init() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
}

// New creates a console logger writing to w.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).With().Timestamp().Logger()
}

// Logger returns the global logger.
func Logger() *zerolog.Logger {
	return &logger
}

// SetOutput redirects the global logger to w.
func SetOutput(w io.Writer) {
	logger = New(w)
}

// SetLevel sets the minimum global log level.
func SetLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

// SetLevelString parses a level name (debug, info, warn, error) and applies it.
func SetLevelString(s string) error {
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return err
	}
	SetLevel(level)
	return nil
}

// Debug starts a new debug level message.
func Debug() *zerolog.Event {
	return logger.Debug()
}

// Info starts a new info level message.
func Info() *zerolog.Event {
	return logger.Info()
}

// Warn starts a new warn level message.
func Warn() *zerolog.Event {
	return logger.Warn()
}

// Error starts a new error level message.
func Error() *zerolog.Event {
	return logger.Error()
}
