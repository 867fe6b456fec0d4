package command

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Prompts shown by the REPL.
const (
	Banner            = "Todo Tracker"
	PromptCommand     = "Enter a command:"
	PromptName        = "Name of todo entry:"
	PromptDescription = "Description of todo entry:"
	PromptIndex       = "Index of entry to remove:"
)

// Run reads and executes commands until Exit succeeds, input ends, or ctx
// is cancelled. Only console failures and cancellation are returned; every
// command problem is reported to the user and the loop continues.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, Banner)

	for !s.state.Exit {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := s.console.ReadLine(PromptCommand)
		if errors.Is(err, io.EOF) {
			s.logger.Info("input ended", "entries", s.state.Len())
			return nil
		}
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}

		c, err := Parse(line)
		if err != nil {
			fmt.Fprintln(s.errOut, "Unknown command")
			s.logger.Debug("unknown command", "input", line)
			continue
		}

		args, err := s.collectArgs(c)
		if errors.Is(err, io.EOF) {
			s.logger.Info("input ended", "command", c.Key())
			return nil
		}
		if err != nil {
			var indexErr *invalidIndexError
			if errors.As(err, &indexErr) {
				fmt.Fprintf(s.errOut, "Invalid index %q\n", indexErr.text)
				continue
			}
			return err
		}

		if err := s.Execute(c, args); err != nil {
			var missing *MissingArgError
			if errors.As(err, &missing) {
				fmt.Fprintln(s.errOut, err)
				continue
			}
			return err
		}
	}
	return nil
}

// invalidIndexError wraps a ParseIndex failure with the text entered.
type invalidIndexError struct {
	text string
	err  error
}

func (e *invalidIndexError) Error() string { return e.err.Error() }
func (e *invalidIndexError) Unwrap() error { return e.err }

// collectArgs prompts for the fields c needs.
func (s *Session) collectArgs(c Command) (Args, error) {
	switch c {
	case Add:
		name, err := s.console.ReadLine(PromptName)
		if err != nil {
			return Args{}, err
		}
		description, err := s.console.ReadLine(PromptDescription)
		if err != nil {
			return Args{}, err
		}
		return AddArgs(name, description), nil
	case Remove:
		text, err := s.console.ReadLine(PromptIndex)
		if err != nil {
			return Args{}, err
		}
		index, err := ParseIndex(text)
		if err != nil {
			return Args{}, &invalidIndexError{text: text, err: err}
		}
		return RemoveArgs(index), nil
	default:
		return NoArgs(), nil
	}
}
