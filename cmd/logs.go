package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hamidafilali-design/Taskmanager/internal/logging"
)

func newLogsCmd(a *app) *cobra.Command {
	var (
		lines  int
		follow bool
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the latest interactive session log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			logDir, err := logging.FindLogDir(a.cfg.LogDir, a.cfg.TasksFile)
			if err != nil {
				return fmt.Errorf("finding log directory: %w", err)
			}
			logPath, err := logging.FindLatestLog(logDir)
			if err != nil {
				return fmt.Errorf("finding latest log: %w", err)
			}
			if logPath == "" {
				fmt.Fprintln(out, "No log files found.")
				return nil
			}

			fmt.Fprintf(out, "Tailing: %s\n", logPath)
			if follow {
				fmt.Fprintln(out, "(Ctrl+C to stop)")
			}
			fmt.Fprintln(out)

			return logging.TailLog(cmd.Context(), out, logPath, lines, follow)
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 20, "Number of lines to show (0 = all)")
	cmd.Flags().BoolVar(&follow, "follow", false, "Keep printing new lines as they are written")
	return cmd
}
