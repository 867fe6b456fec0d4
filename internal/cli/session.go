package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/todo/internal/command"
	"github.com/mesh-intelligence/todo/internal/console"
	"github.com/mesh-intelligence/todo/internal/logging"
	"github.com/mesh-intelligence/todo/internal/paths"
	"github.com/mesh-intelligence/todo/internal/snapshot"
)

// runSession loads configuration and runs the REPL over the command's
// standard streams.
func runSession(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return sysErrorf("resolve config dir: %w", err)
	}

	cfg, err := loadConfig(cmd, configDir)
	if err != nil {
		return err
	}

	logFile, err := paths.ResolveLogFile(cfg.LogFile)
	if err != nil {
		return sysErrorf("resolve log file: %w", err)
	}
	logger, closer, err := logging.New(logging.Options{
		Level:     cfg.LogLevel,
		File:      logFile,
		Console:   cmd.ErrOrStderr(),
		SessionID: logging.NewSessionID(),
	})
	if err != nil {
		return sysErrorf("open log: %w", err)
	}
	defer closer.Close()

	stateDir, err := paths.StateDir()
	if err != nil {
		return sysErrorf("resolve working directory: %w", err)
	}

	historyFile, err := paths.ResolveHistoryFile(cfg.HistoryFile, configDir)
	if err != nil {
		return sysErrorf("resolve history file: %w", err)
	}
	con, err := openConsole(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), historyFile)
	if err != nil {
		return sysErrorf("open console: %w", err)
	}
	defer con.Close()

	store := snapshot.NewStore(stateDir)
	logger.Info("session started", "state_file", store.Path(), "config_dir", configDir)

	session, err := command.NewSession(command.Options{
		Store:   store,
		Console: con,
		Out:     cmd.OutOrStdout(),
		ErrOut:  cmd.ErrOrStderr(),
		Logger:  logger,
	})
	if err != nil {
		return sysErrorf("start session: %w", err)
	}
	if err := session.Run(cmd.Context()); err != nil {
		return sysErrorf("run session: %w", err)
	}
	logger.Info("session ended", "entries", session.State().Len())
	return nil
}

// openConsole uses readline when in is a terminal and a plain line reader
// otherwise.
func openConsole(in io.Reader, out, errOut io.Writer, historyFile string) (console.Console, error) {
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return console.NewReadline(console.ReadlineOptions{
			HistoryFile: historyFile,
			Out:         out,
			ErrOut:      errOut,
		})
	}
	return console.NewLines(in, out), nil
}
