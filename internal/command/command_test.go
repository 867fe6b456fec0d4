package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/todo/pkg/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Command
		wantErr bool
	}{
		{input: "help", want: Help},
		{input: "Help", want: Help},
		{input: "HELP", want: Help},
		{input: "list", want: List},
		{input: "add", want: Add},
		{input: "Add", want: Add},
		{input: "ADD", want: Add},
		{input: "remove", want: Remove},
		{input: "Remove", want: Remove},
		{input: "CLEAR", want: Clear},
		{input: "Save", want: Save},
		{input: "load", want: Load},
		{input: "EXIT", want: Exit},
		{input: "aDD", wantErr: true},
		{input: "ReMove", wantErr: true},
		{input: "foo", wantErr: true},
		{input: "", wantErr: true},
		{input: " add", wantErr: true},
		{input: "add list", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, types.ErrUnknownCommand)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllIsDeclarationOrder(t *testing.T) {
	assert.Equal(t, []Command{Help, List, Add, Remove, Clear, Save, Load, Exit}, All())
}

func TestCommandText(t *testing.T) {
	for _, c := range All() {
		t.Run(c.Name(), func(t *testing.T) {
			assert.NotEmpty(t, c.Key())
			assert.NotEmpty(t, c.Description())
			assert.Equal(t, c.Name(), c.String())

			parsed, err := Parse(c.Key())
			require.NoError(t, err)
			assert.Equal(t, c, parsed, "key must parse back to the command")
		})
	}

	assert.Equal(t, "remove", Remove.Key())
	assert.Equal(t, "Removes a todo entry by its index", Remove.Description())
}

func TestCommandOutOfRange(t *testing.T) {
	c := Command(99)

	assert.Empty(t, c.Key())
	assert.Equal(t, "Command(99)", c.String())
}
