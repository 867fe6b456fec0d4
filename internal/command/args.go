package command

import (
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/todo/pkg/types"
)

type field uint8

const (
	fieldName field = 1 << iota
	fieldDescription
	fieldIndex
)

var fieldNames = map[field]string{
	fieldName:        "name",
	fieldDescription: "description",
	fieldIndex:       "index",
}

// required lists the Args fields each command needs.
var required = map[Command][]field{
	Add:    {fieldName, fieldDescription},
	Remove: {fieldIndex},
}

// Args carries the extra input a command needs beyond its keyword. Build it
// with NoArgs, AddArgs or RemoveArgs.
type Args struct {
	Name        string
	Description string
	Index       int
	set         field
}

// NoArgs returns Args with no fields present.
func NoArgs() Args {
	return Args{}
}

// AddArgs returns Args for Add.
func AddArgs(name, description string) Args {
	return Args{
		Name:        name,
		Description: description,
		set:         fieldName | fieldDescription,
	}
}

// RemoveArgs returns Args for Remove.
func RemoveArgs(index int) Args {
	return Args{Index: index, set: fieldIndex}
}

func (a Args) has(f field) bool {
	return a.set&f != 0
}

// MissingArgError reports a command executed without a field it requires.
type MissingArgError struct {
	Command Command
	Field   string
}

func (e *MissingArgError) Error() string {
	return fmt.Sprintf("%s requires %s", e.Command.Key(), e.Field)
}

// Unwrap returns ErrMissingArg.
func (e *MissingArgError) Unwrap() error {
	return types.ErrMissingArg
}

// Validate checks that args holds every field c requires.
func (c Command) Validate(args Args) error {
	for _, f := range required[c] {
		if !args.has(f) {
			return &MissingArgError{Command: c, Field: fieldNames[f]}
		}
	}
	return nil
}

// ParseIndex converts a prompted index line to a list position. Anything
// but a non-negative decimal integer returns ErrInvalidIndex.
func ParseIndex(text string) (int, error) {
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", types.ErrInvalidIndex, text)
	}
	return n, nil
}
