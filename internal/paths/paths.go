// Package paths resolves the configuration directory, the readline history
// file, and the directory holding the state file.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// appName names the per-user configuration directory.
const appName = "todo"

// HistoryFileName is the default readline history file inside the config
// directory.
const HistoryFileName = "history"

// EnvConfigDir overrides the configuration directory.
const EnvConfigDir = "TODO_CONFIG_DIR"

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
	workDir       func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
	workDir:       os.Getwd,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/todo (fallback ~/.config/todo)
// macOS:   ~/Library/Application Support/todo
// Windows: %APPDATA%/todo
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > TODO_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveHistoryFile returns the configured history file made absolute, or
// HistoryFileName inside configDir when none is configured.
func ResolveHistoryFile(configValue, configDir string) (string, error) {
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	return filepath.Join(configDir, HistoryFileName), nil
}

// ResolveLogFile makes a configured log file path absolute. An empty value
// stays empty and disables file logging.
func ResolveLogFile(configValue string) (string, error) {
	if configValue == "" {
		return "", nil
	}
	return filepath.Abs(configValue)
}

// StateDir returns the directory that holds the state file: always the
// current working directory.
func StateDir() (string, error) {
	return platformDir.workDir()
}
