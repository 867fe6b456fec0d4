package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/todo/internal/snapshot"
	"github.com/mesh-intelligence/todo/pkg/types"
)

// runResult holds the streams captured from one root command execution.
type runResult struct {
	stdout string
	stderr string
	err    error
}

// runTodo executes the root command in a fresh working directory view with
// the given stdin. The config directory is isolated under t.TempDir.
func runTodo(t *testing.T, configDir, stdin string, args ...string) runResult {
	t.Helper()
	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config-dir", configDir}, args...))

	err := root.Execute()
	return runResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestVersionCommand(t *testing.T) {
	res := runTodo(t, t.TempDir(), "", "version")

	require.NoError(t, res.err)
	assert.Equal(t, "todo v"+Version+"\nmodule: "+modulePath+"\n", res.stdout)
}

func TestInitWritesDefaultConfigOnce(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "nested", "config")
	configPath := filepath.Join(configDir, configFileExt)

	res := runTodo(t, configDir, "", "init")
	require.NoError(t, res.err)
	assert.Equal(t, "Wrote "+configPath+"\n", res.stdout)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "log_level: warn")

	require.NoError(t, os.WriteFile(configPath, []byte("log_level: debug\n"), 0o644))
	res = runTodo(t, configDir, "", "init")
	require.NoError(t, res.err)
	assert.Equal(t, configPath+" already exists\n", res.stdout)

	data, err = os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, "log_level: debug\n", string(data), "init must not overwrite")
}

func TestSessionPipedInput(t *testing.T) {
	dir := chdirTemp(t)

	res := runTodo(t, t.TempDir(), "add\nbuy milk\ntwo litres\nlist\nsave\nexit\n")

	require.NoError(t, res.err)
	assert.True(t, strings.HasPrefix(res.stdout, "Todo Tracker\nEnter a command:\n"))
	assert.Contains(t, res.stdout, "0 - buy milk: two litres\n")
	assert.Contains(t, res.stdout, "Saved state data to ")
	assert.Empty(t, res.stderr)

	saved, err := snapshot.NewStore(dir).Read()
	require.NoError(t, err)
	assert.Equal(t, []types.Entry{types.NewEntry("buy milk", "two litres")}, saved.Entries)
}

func TestSessionLoadsFromWorkingDirectory(t *testing.T) {
	dir := chdirTemp(t)
	st := types.NewState()
	st.Append(types.NewEntry("from", "disk"))
	require.NoError(t, snapshot.NewStore(dir).Write(st))

	res := runTodo(t, t.TempDir(), "load\nlist\nexit\n")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Loaded 1 entries from state file\n")
	assert.Contains(t, res.stdout, "0 - from: disk\n")
}

func TestSessionUnknownCommandGoesToStderr(t *testing.T) {
	chdirTemp(t)

	res := runTodo(t, t.TempDir(), "foo\nexit\n")

	require.NoError(t, res.err)
	assert.Equal(t, "Unknown command\n", res.stderr)
}

func TestSessionRejectsPositionalArgs(t *testing.T) {
	chdirTemp(t)

	res := runTodo(t, t.TempDir(), "", "extra")

	require.Error(t, res.err)
	assert.Equal(t, exitUserError, exitCode(res.err))
}

func TestSessionLogFile(t *testing.T) {
	chdirTemp(t)
	logPath := filepath.Join(t.TempDir(), "logs", "todo.jsonl")

	res := runTodo(t, t.TempDir(), "help\nexit\n", "--log-level", "info", "--log-file", logPath)

	require.NoError(t, res.err)
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"session started"`)
	assert.Contains(t, string(data), `"msg":"session ended"`)
	assert.Contains(t, string(data), `"session":`)
}

func TestSessionInvalidLogLevelIsUserError(t *testing.T) {
	chdirTemp(t)

	res := runTodo(t, t.TempDir(), "exit\n", "--log-level", "loud")

	require.Error(t, res.err)
	assert.ErrorIs(t, res.err, types.ErrLogLevelUnknown)
	assert.Equal(t, exitUserError, exitCode(res.err))
}

func TestSessionUnwritableLogFileIsSystemError(t *testing.T) {
	chdirTemp(t)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	res := runTodo(t, t.TempDir(), "exit\n", "--log-file", filepath.Join(blocker, "todo.log"))

	require.Error(t, res.err)
	assert.Equal(t, exitSysError, exitCode(res.err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitUserError, exitCode(errors.New("bad flag")))
	assert.Equal(t, exitSysError, exitCode(sysErrorf("disk: %w", os.ErrPermission)))
	assert.ErrorIs(t, sysErrorf("disk: %w", os.ErrPermission), os.ErrPermission)
}
