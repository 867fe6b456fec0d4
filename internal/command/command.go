// Package command parses and executes the todo REPL commands against a
// session's in-memory state.
package command

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/todo/pkg/types"
)

// Command is one of the REPL commands. The set is closed; input that names
// no command fails to parse instead of producing a placeholder value.
type Command int

// Commands in the order Help lists them.
const (
	Help Command = iota
	List
	Add
	Remove
	Clear
	Save
	Load
	Exit
)

type info struct {
	key         string
	name        string
	description string
}

var commands = [...]info{
	Help:   {"help", "Help", "Displays a help message"},
	List:   {"list", "List", "Lists all todo entries"},
	Add:    {"add", "Add", "Adds a new todo entry"},
	Remove: {"remove", "Remove", "Removes a todo entry by its index"},
	Clear:  {"clear", "Clear", "Clears all todo entries"},
	Save:   {"save", "Save", "Saves the current todo entries to a file"},
	Load:   {"load", "Load", "Loads the todo entries from a file"},
	Exit:   {"exit", "Exit", "Exits the program"},
}

// keywords maps every accepted spelling to its command.
var keywords = buildKeywords()

func buildKeywords() map[string]Command {
	m := make(map[string]Command, 3*len(commands))
	for _, c := range All() {
		key := c.Key()
		m[key] = c
		m[strings.ToUpper(key[:1])+key[1:]] = c
		m[strings.ToUpper(key)] = c
	}
	return m
}

// All returns every command in declaration order.
func All() []Command {
	all := make([]Command, len(commands))
	for i := range commands {
		all[i] = Command(i)
	}
	return all
}

// Parse maps a line to a command. The keyword must match exactly in
// lowercase, Titlecase or UPPERCASE; "aDD" is not Add. Unmatched input
// returns ErrUnknownCommand.
func Parse(line string) (Command, error) {
	if c, ok := keywords[line]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", types.ErrUnknownCommand, line)
}

func (c Command) info() info {
	if c < 0 || int(c) >= len(commands) {
		return info{}
	}
	return commands[c]
}

// Key returns the canonical lowercase keyword.
func (c Command) Key() string { return c.info().key }

// Name returns the display name.
func (c Command) Name() string { return c.info().name }

// Description returns a one-line summary of what the command does.
func (c Command) Description() string { return c.info().description }

// String implements fmt.Stringer.
func (c Command) String() string {
	if name := c.Name(); name != "" {
		return name
	}
	return fmt.Sprintf("Command(%d)", int(c))
}
