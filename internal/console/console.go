// Package console reads prompted lines from the user.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/chzyer/readline"
)

// Console prints a prompt and returns the next input line with trailing
// whitespace removed. ReadLine returns io.EOF once input is exhausted.
type Console interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// TrimLine removes trailing whitespace, including the line terminator.
func TrimLine(line string) string {
	return strings.TrimRightFunc(line, unicode.IsSpace)
}

// Lines is a Console over a plain reader. Prompts are written on their own
// line to out. It suits piped input and tests. Lines may be of any length.
type Lines struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLines returns a Lines console reading from r and prompting on out.
func NewLines(r io.Reader, out io.Writer) *Lines {
	return &Lines{
		reader: bufio.NewReader(r),
		out:    out,
	}
}

// ReadLine implements Console. A final line without a terminator is
// returned before io.EOF.
func (l *Lines) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprintln(l.out, prompt)
	}
	line, err := l.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return TrimLine(line), nil
}

// Close implements Console. The underlying reader is owned by the caller.
func (l *Lines) Close() error {
	return nil
}

// inputMarker is shown by readline on the input line itself.
const inputMarker = "> "

// ReadlineOptions configures an interactive console.
type ReadlineOptions struct {
	// HistoryFile persists entered lines between runs. Empty disables
	// history.
	HistoryFile string
	Out         io.Writer
	ErrOut      io.Writer
}

// Readline is an interactive Console with line editing and history.
type Readline struct {
	rl  *readline.Instance
	out io.Writer
}

// NewReadline opens an interactive console on the process terminal.
func NewReadline(opts ReadlineOptions) (*Readline, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      inputMarker,
		HistoryFile: opts.HistoryFile,
		Stdout:      opts.Out,
		Stderr:      opts.ErrOut,
	})
	if err != nil {
		return nil, fmt.Errorf("open readline: %w", err)
	}
	return &Readline{rl: rl, out: opts.Out}, nil
}

// ReadLine implements Console. Ctrl-C and Ctrl-D both end input.
func (r *Readline) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprintln(r.out, prompt)
	}
	line, err := r.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return TrimLine(line), nil
}

// Close restores the terminal and flushes history.
func (r *Readline) Close() error {
	return r.rl.Close()
}
