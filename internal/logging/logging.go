// Package logging builds the zerolog loggers used by the client, the CLI and
// the development store.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a timestamped logger writing to w at the given level.
// An empty level means info.
func New(level string, w io.Writer) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if strings.TrimSpace(level) != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// Console returns a human-readable writer for terminals.
func Console(out io.Writer) io.Writer {
	return zerolog.ConsoleWriter{Out: out, TimeFormat: time.DateTime}
}

// Open builds a logger that appends to file, or writes to fallback when file
// is empty. The returned closer releases the file and is always non-nil.
func Open(level, file string, fallback io.Writer) (zerolog.Logger, io.Closer, error) {
	if file == "" {
		log, err := New(level, fallback)
		return log, nopCloser{}, err
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to open log file: %w", err)
	}
	log, err := New(level, f)
	if err != nil {
		f.Close()
		return zerolog.Nop(), nopCloser{}, err
	}
	return log, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
