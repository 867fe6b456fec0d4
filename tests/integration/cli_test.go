package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain builds the todo binary once before running tests.
func TestMain(m *testing.M) {
	projectRoot, err := FindProjectRoot()
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}

	tmpDir, err := os.MkdirTemp("", "todo-test-*")
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}
	binPath := filepath.Join(tmpDir, "todo")
	SetTodoBin(binPath)

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/todo")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		SetBuildErr(&BuildError{Err: err, Output: string(output)})
		os.Exit(1)
	}

	code := m.Run()

	os.RemoveAll(tmpDir)
	os.Exit(code)
}

func TestVersion(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunTodo(nil, "version")

	assert.True(t, strings.HasPrefix(result.Stdout, "todo v"))
}

func TestAddListSaveAcrossRuns(t *testing.T) {
	env := NewTestEnv(t)

	first := env.MustRunTodo([]string{
		"add", "write report", "due friday",
		"Add", "buy milk", "",
		"save",
		"exit",
	})
	assert.Contains(t, first.Stdout, "Saved state data to ")
	require.FileExists(t, env.StatePath())

	second := env.MustRunTodo([]string{"list", "load", "list", "exit"})
	assert.Contains(t, second.Stdout, "Nothing to list\n")
	assert.Contains(t, second.Stdout, "Loaded 2 entries from state file\n")
	assert.Contains(t, second.Stdout, "0 - buy milk: \n")
	assert.Contains(t, second.Stdout, "1 - write report: due friday\n")
}

func TestExitAsksWhenUnsaved(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunTodo([]string{"add", "a", "b", "save", "exit"})

	result := env.MustRunTodo([]string{"add", "c", "d", "exit", "n", "exit", "y"})

	assert.Equal(t, 2, strings.Count(result.Stdout, "Are you sure you want to quit? (y/n)"))
}

func TestRemoveInvalidIndex(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunTodo([]string{"add", "a", "b", "remove", "x", "remove", "5", "remove", "0", "list", "exit"})

	assert.Contains(t, result.Stderr, `Invalid index "x"`)
	assert.Contains(t, result.Stderr, "No todo entry found at index 5")
	assert.Contains(t, result.Stdout, "Removed entry a\n")
	assert.Contains(t, result.Stdout, "Nothing to list\n")
}

func TestCorruptStateFileRefusesLoad(t *testing.T) {
	env := NewTestEnv(t)
	require.NoError(t, os.WriteFile(env.StatePath(), []byte("not: [valid"), 0o644))

	result := env.MustRunTodo([]string{"add", "a", "b", "load", "y", "list", "exit", "y"})

	assert.Contains(t, result.Stderr, "Failed to load state data from file")
	assert.Contains(t, result.Stderr, "Due to one or more previous errors, no changes will be made")
	assert.Contains(t, result.Stdout, "0 - a: b\n")
}

func TestEndOfInputExitsCleanly(t *testing.T) {
	env := NewTestEnv(t)

	result := env.RunTodo([]string{"add", "a", "b"})

	assert.Equal(t, 0, result.ExitCode)
	assert.NoFileExists(t, env.StatePath())
}

func TestUnknownFlagExitCode(t *testing.T) {
	env := NewTestEnv(t)

	result := env.RunTodo(nil, "--no-such-flag")

	assert.Equal(t, 1, result.ExitCode)
}

func TestInitWritesConfig(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunTodo(nil, "init")

	assert.Contains(t, result.Stdout, "Wrote ")
	assert.FileExists(t, filepath.Join(env.Config, "config.yaml"))
}
