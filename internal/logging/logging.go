// Package logging builds the structured diagnostic logger for a session.
// Records go to the console writer as text and, optionally, to a log file
// as JSON. Command output shown to the user is not logging.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	slogmulti "github.com/samber/slog-multi"

	"github.com/mesh-intelligence/todo/pkg/types"
)

// Options configures New.
type Options struct {
	// Level is one of debug, info, warn, error. Empty means warn.
	Level string
	// File, when set, receives JSON records appended to it.
	File string
	// Console receives text records. Nil disables console logging.
	Console io.Writer
	// SessionID is attached to every record as "session".
	SessionID string
}

// ParseLevel maps a configured level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case types.LogLevelDebug:
		return slog.LevelDebug, nil
	case types.LogLevelInfo:
		return slog.LevelInfo, nil
	case "", types.LogLevelWarn:
		return slog.LevelWarn, nil
	case types.LogLevelError:
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", types.ErrLogLevelUnknown, name)
	}
}

// New builds a logger from opts. The returned closer releases the log file
// and must be called when the session ends.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}
	level := new(slog.LevelVar)
	level.Set(lvl)
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handlers []slog.Handler
	if opts.Console != nil {
		handlers = append(handlers, slog.NewTextHandler(opts.Console, handlerOpts))
	}

	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		f, err := openLogFile(opts.File)
		if err != nil {
			return nil, nil, err
		}
		handlers = append(handlers, slog.NewJSONHandler(f, handlerOpts))
		closer = f
	}

	var handler slog.Handler = slog.DiscardHandler
	if len(handlers) > 0 {
		handler = slogmulti.Fanout(handlers...)
	}

	logger := slog.New(handler)
	if opts.SessionID != "" {
		logger = logger.With("session", opts.SessionID)
	}
	return logger, closer, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// NewSessionID returns a time-ordered identifier for one run of the REPL.
func NewSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
