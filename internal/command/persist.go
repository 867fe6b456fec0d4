package command

import (
	"errors"
	"fmt"
	"io"

	"github.com/mesh-intelligence/todo/internal/console"
	"github.com/mesh-intelligence/todo/pkg/types"
)

const (
	overridePrompt = "Override current entries? (y/n)"
	unsavedPrompt  = "A save file exists, but you have unsaved data. Are you sure you want to quit? (y/n)"
)

func (s *Session) save() {
	if s.state.IsEmpty() {
		fmt.Fprintln(s.out, "Nothing to save")
		return
	}
	if err := s.store.Write(s.state); err != nil {
		fmt.Fprintf(s.errOut, "Failed to save state to a file: %v\n", err)
		s.logger.Info("save failed", "path", s.store.Path(), "error", err)
		return
	}
	if !s.store.Exists() {
		fmt.Fprintf(s.errOut, "State file %s is missing after save\n", s.store.Path())
		return
	}
	fmt.Fprintf(s.out, "Saved state data to %s\n", s.store.Path())
}

// load replaces the entries with the saved ones. A read or parse failure
// does not stop the routine early: the user may still be asked to confirm,
// but no change is made afterwards.
func (s *Session) load() error {
	if !s.store.Exists() {
		fmt.Fprintln(s.errOut, "No state data file found at that location")
		return nil
	}

	abort := false
	saved, err := s.store.Read()
	if err != nil {
		fmt.Fprintf(s.errOut, "Failed to load state data from file: %v\n", err)
		s.logger.Info("load failed", "path", s.store.Path(), "error", err)
		abort = true
		saved = types.NewState()
	}

	switch v := saved.CompareVersion(); {
	case v < 0:
		fmt.Fprintln(s.errOut, "This save file has an old manifest version, and may not load correctly")
	case v > 0:
		fmt.Fprintln(s.errOut, "This save file has been created with a newer version, and may not load correctly")
	}

	if !s.state.IsEmpty() && !types.EqualEntries(saved.Entries, s.state.Entries) {
		yes, err := s.confirm(overridePrompt)
		if err != nil || !yes {
			return err
		}
	}

	if abort {
		fmt.Fprintln(s.errOut, "Due to one or more previous errors, no changes will be made")
		return nil
	}

	s.state.Replace(saved.Entries)
	fmt.Fprintf(s.out, "Loaded %d entries from state file\n", s.state.Len())
	return nil
}

// exit sets the exit flag unless the state file holds different entries
// and the user declines to quit. An unreadable state file is treated as
// empty without telling the user.
func (s *Session) exit() error {
	if s.store.Exists() {
		saved, err := s.store.Read()
		if err != nil {
			s.logger.Debug("exit check treats state file as empty", "path", s.store.Path(), "error", err)
			saved = types.NewState()
		}
		if !types.EqualEntries(saved.Entries, s.state.Entries) {
			yes, err := s.confirm(unsavedPrompt)
			if err != nil || !yes {
				return err
			}
		}
	}
	s.state.Exit = true
	return nil
}

// confirm asks a yes/no question. End of input counts as no.
func (s *Session) confirm(question string) (bool, error) {
	yes, err := console.Confirm(s.console, s.errOut, question)
	if errors.Is(err, io.EOF) {
		s.logger.Debug("input ended during confirmation", "question", question)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("confirm: %w", err)
	}
	return yes, nil
}
