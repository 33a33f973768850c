// Package logging sets up the application-wide structured logger.
//
// The TUI owns the terminal, so logs go to a file only; with no file
// configured the logger is a no-op.
package logging

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// New opens the log file and returns a logger writing to it.
// An empty path returns a disabled logger and no file handle.
func New(level, path string) (zerolog.Logger, *os.File, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	if path == "" {
		return zerolog.Nop(), nil, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := zerolog.New(f).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	return logger, f, nil
}
