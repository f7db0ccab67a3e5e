// Package cmd implements the taskmanager command line.
package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hamidafilali-design/Taskmanager/internal/config"
	"github.com/hamidafilali-design/Taskmanager/internal/logging"
	"github.com/hamidafilali-design/Taskmanager/internal/todo"
	"github.com/hamidafilali-design/Taskmanager/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// errNoTerminal is returned when the menu is started without a terminal.
var errNoTerminal = errors.New("interactive mode needs a terminal; use list, add or done instead")

// app carries state shared by all commands of one invocation.
type app struct {
	cfg    *config.Config
	logger *log.Logger
}

// Run executes the taskmanager CLI.
func Run(ctx context.Context, args []string) error {
	root := newRootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "taskmanager",
		Short: "Track your tasks from the terminal",
		Long: `taskmanager keeps a list of tasks in a JSON file.

Run it without a command for the interactive menu, or use the commands
below to script it.`,
		Version:           Version,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runInteractive,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.SetVersionTemplate("taskmanager version {{.Version}}\n")
	config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newListCmd(a),
		newAddCmd(a),
		newDoneCmd(a),
		newValidateCmd(a),
		newConfigCmd(a),
		newLogsCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads configuration and builds the stderr logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg
	a.logger = logging.New(cmd.ErrOrStderr(), a.logOptions())
	a.logger.Debug("Configuration loaded", "tasks_file", cfg.TasksFile, "files", cfg.Files)
	return nil
}

func (a *app) logOptions() logging.Options {
	return logging.OptionsFromConfig(a.cfg.LogLevel, a.cfg.LogFormat, a.cfg.LogTimestamps, a.cfg.LogCaller)
}

func (a *app) openStore(logger *log.Logger) (*todo.Store, error) {
	store, err := todo.NewStore(a.cfg.TasksFile,
		todo.WithSchemaPath(a.cfg.SchemaFile),
		todo.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("opening task file: %w", err)
	}
	return store, nil
}

// runInteractive starts the menu. The menu owns the terminal, so its log
// goes to a session file instead of stderr.
func (a *app) runInteractive(cmd *cobra.Command, _ []string) error {
	if !ui.IsTTY(cmd.OutOrStdout()) {
		return errNoTerminal
	}

	logger := logging.Discard()
	runLog, err := logging.NewRunLogger(a.cfg.LogDir, a.cfg.TasksFile)
	if err != nil {
		a.logger.Warn("Session log disabled", "err", err)
	} else {
		defer runLog.Close()
		opts := a.logOptions()
		opts.ReportTimestamp = true
		logger = logging.New(runLog.Writer(), opts)
	}

	store, err := a.openStore(logger)
	if err != nil {
		return err
	}
	tasks := store.Load()
	logger.Info("Session started", "path", store.Path(), "tasks", len(tasks))

	err = ui.Run(cmd.Context(), store, tasks,
		ui.WithLogger(logger),
		ui.WithInput(cmd.InOrStdin()),
		ui.WithOutput(cmd.OutOrStdout()),
	)
	logger.Info("Session ended")
	return err
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		// No configuration needed.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "taskmanager version %s\n", Version)
			return nil
		},
	}
}
