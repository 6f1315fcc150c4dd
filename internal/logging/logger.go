// Package logging provides structured logging for the TUI. Stdout belongs
// to the terminal UI, so all logs go to a file under the user's config
// directory.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// New opens (or creates) the log file at path and returns a logger writing
// to it. The returned closer must be closed on shutdown.
func New(path string) (zerolog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	logger := zerolog.New(file).
		With().
		Timestamp().
		Logger().
		Level(zerolog.DebugLevel)
	return logger, file, nil
}

// Discard returns a logger that drops everything. Used when the log file
// cannot be opened and in tests.
func Discard() zerolog.Logger {
	return zerolog.Nop()
}
