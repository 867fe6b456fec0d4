// Package cli implements the todo command-line interface: the root command
// runs the interactive session, with init and version subcommands.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	logLevel  string
	logFile   string
}

var flags rootFlags

// Flag names bound into the viper configuration.
const (
	flagLogLevel = "log-level"
	flagLogFile  = "log-file"
)

// NewRootCmd creates the top-level "todo" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "todo",
		Short: "An interactive todo list",
		Long: "todo keeps a list of named entries in memory and reads commands\n" +
			"(help, list, add, remove, clear, save, load, exit) one line at a time.\n" +
			"Entries are saved to state.ron in the current directory.",
		Args:    cobra.NoArgs,
		Version: Version,
		RunE:    runSession,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/todo)")
	root.PersistentFlags().StringVar(&flags.logLevel, flagLogLevel, "", "log level: debug, info, warn, error (default: warn)")
	root.PersistentFlags().StringVar(&flags.logFile, flagLogFile, "", "append JSON logs to this file")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())

	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		return exitCode(err)
	}
	return exitSuccess
}

// systemError marks failures of the environment (files, terminal) rather
// than of the user's input.
type systemError struct {
	err error
}

func (e *systemError) Error() string { return e.err.Error() }
func (e *systemError) Unwrap() error { return e.err }

func sysErrorf(format string, args ...any) error {
	return &systemError{err: fmt.Errorf(format, args...)}
}

// exitCode maps an error returned by a command to the process exit code.
func exitCode(err error) int {
	var se *systemError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}

