package command

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mesh-intelligence/todo/internal/console"
	"github.com/mesh-intelligence/todo/internal/logging"
	"github.com/mesh-intelligence/todo/internal/snapshot"
	"github.com/mesh-intelligence/todo/pkg/types"
)

// Options configures a Session. Store and Console are required; the other
// fields default to discarding their output.
type Options struct {
	Store   *snapshot.Store
	Console console.Console
	Out     io.Writer
	ErrOut  io.Writer
	Logger  *slog.Logger
}

// Session owns the in-memory state of one REPL run. Commands report
// results on Out and problems on ErrOut; the Logger only receives
// diagnostics.
type Session struct {
	state   *types.State
	store   *snapshot.Store
	console console.Console
	out     io.Writer
	errOut  io.Writer
	logger  *slog.Logger
}

// NewSession returns a Session with empty state. It returns ErrNoStore or
// ErrNoConsole when a required option is missing.
func NewSession(opts Options) (*Session, error) {
	if opts.Store == nil {
		return nil, types.ErrNoStore
	}
	if opts.Console == nil {
		return nil, types.ErrNoConsole
	}
	s := &Session{
		state:   types.NewState(),
		store:   opts.Store,
		console: opts.Console,
		out:     opts.Out,
		errOut:  opts.ErrOut,
		logger:  opts.Logger,
	}
	if s.out == nil {
		s.out = io.Discard
	}
	if s.errOut == nil {
		s.errOut = io.Discard
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}
	return s, nil
}

// State returns the session state. Callers must not retain it across
// Execute calls.
func (s *Session) State() *types.State {
	return s.state
}

// Execute applies c to the session state. User-facing outcomes, including
// failures such as a missing state file, are reported on the session
// writers and yield a nil error. A non-nil error means args did not satisfy
// c (a *MissingArgError) or the console failed.
func (s *Session) Execute(c Command, args Args) error {
	if err := c.Validate(args); err != nil {
		s.logger.Error("command rejected", "command", c.Key(), "error", err)
		return err
	}
	s.logger.Debug("execute", "command", c.Key(), "entries", s.state.Len())

	switch c {
	case Help:
		s.help()
	case List:
		s.list()
	case Add:
		s.add(args.Name, args.Description)
	case Remove:
		s.remove(args.Index)
	case Clear:
		s.clear()
	case Save:
		s.save()
	case Load:
		return s.load()
	case Exit:
		return s.exit()
	default:
		return fmt.Errorf("%w: %s", types.ErrUnknownCommand, c)
	}
	return nil
}

func (s *Session) help() {
	for _, c := range All() {
		fmt.Fprintf(s.out, "%s (%s) : %s\n", c.Name(), c.Key(), c.Description())
	}
}

// list prints each entry with its sorted rank rather than its position.
// Remove takes the position, so the two disagree for unsorted lists.
func (s *Session) list() {
	if s.state.IsEmpty() {
		fmt.Fprintln(s.out, "Nothing to list")
		return
	}
	ranks, missing := s.state.Ranks()
	if missing > 0 {
		fmt.Fprintln(s.errOut, "Failed to get index of entry!")
		s.logger.Error("entry missing from sorted view", "missing", missing)
	}
	for i, e := range s.state.Entries {
		fmt.Fprintf(s.out, "%d - %s: %s\n", ranks[i], e.Name, e.Description)
	}
}

func (s *Session) add(name, description string) {
	s.state.Append(types.NewEntry(name, description))
}

func (s *Session) remove(index int) {
	removed, err := s.state.RemoveAt(index)
	if err != nil {
		fmt.Fprintf(s.errOut, "No todo entry found at index %d\n", index)
		return
	}
	fmt.Fprintf(s.out, "Removed entry %s\n", removed.Name)
}

func (s *Session) clear() {
	if s.state.IsEmpty() {
		fmt.Fprintln(s.out, "Nothing to clear")
		return
	}
	n := s.state.Clear()
	noun := "entries"
	if n == 1 {
		noun = "entry"
	}
	fmt.Fprintf(s.out, "%d %s cleared\n", n, noun)
}
