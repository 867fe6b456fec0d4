// Package integration provides end-to-end tests that drive the built todo
// binary over stdin.
package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var (
	// todoBin is the path to the built todo binary.
	todoBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetTodoBin sets the path to the todo binary (called from TestMain).
func SetTodoBin(path string) {
	todoBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv is an isolated working directory and config directory. The state
// file lives in WorkDir because todo always saves to the current directory.
type TestEnv struct {
	t       *testing.T
	WorkDir string
	Config  string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build todo: %v", buildErr)
	}
	if todoBin == "" {
		t.Fatal("todo binary not built (todoBin is empty)")
	}

	tempDir := t.TempDir()
	workDir := filepath.Join(tempDir, "work")
	configDir := filepath.Join(tempDir, "config")
	for _, dir := range []string{workDir, configDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}

	return &TestEnv{t: t, WorkDir: workDir, Config: configDir}
}

// StatePath returns the location of the state file for this environment.
func (e *TestEnv) StatePath() string {
	return filepath.Join(e.WorkDir, "state.ron")
}

// CmdResult holds the result of a todo execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunTodo executes the todo binary with the given input lines on stdin.
func (e *TestEnv) RunTodo(input []string, args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config}, args...)
	cmd := exec.Command(todoBin, allArgs...)
	cmd.Dir = e.WorkDir
	cmd.Env = append(os.Environ(), "TODO_LOG_LEVEL=", "TODO_LOG_FILE=", "TODO_HISTORY_FILE=")
	if len(input) > 0 {
		cmd.Stdin = strings.NewReader(strings.Join(input, "\n") + "\n")
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run todo: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunTodo executes todo and fails the test if it returns non-zero.
func (e *TestEnv) MustRunTodo(input []string, args ...string) CmdResult {
	e.t.Helper()
	result := e.RunTodo(input, args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("todo %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}
