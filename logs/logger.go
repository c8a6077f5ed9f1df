// package logs builds the CLI's structured logger: human-readable text on
// stderr, optionally fanned out to a JSON log file.
package logs

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

type Options struct {
	// Level is one of debug, info, warn or error. Empty means warn.
	Level string
	// File, when set, receives every record as a JSON line.
	File   string
	Stderr io.Writer
}

var level = new(slog.LevelVar)

// SetLevel changes the level of every logger built by New.
func SetLevel(name string) error {
	switch strings.ToLower(name) {
	case "debug":
		level.Set(slog.LevelDebug)
	case "info":
		level.Set(slog.LevelInfo)
	case "", "warn":
		level.Set(slog.LevelWarn)
	case "error":
		level.Set(slog.LevelError)
	default:
		return fmt.Errorf("unknown log level %q", name)
	}
	return nil
}

// New returns the logger and a func that closes the log file, if one was
// opened.
func New(opts Options) (*slog.Logger, func() error, error) {
	if err := SetLevel(opts.Level); err != nil {
		return nil, nil, err
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	handlerOpts := &slog.HandlerOptions{
		Level: level,
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(stderr, handlerOpts),
	}
	closer := func() error { return nil }
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, err
		}
		handlers = append(handlers, slog.NewJSONHandler(f, handlerOpts))
		closer = f.Close
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	}), closer, nil
}
