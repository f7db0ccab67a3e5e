package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hamidafilali-design/Taskmanager/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long:  "Show every configuration value and where it came from: default, user file, project file, environment or flag.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, field := range config.Fields() {
				printLabelValue(out, field, a.cfg.Value(field), string(a.cfg.Source(field)))
			}
			if len(a.cfg.Files) > 0 {
				fmt.Fprintln(out)
				printHeader(out, "Config files")
				for _, f := range a.cfg.Files {
					fmt.Fprintf(out, "  %s\n", f)
				}
			}
			return nil
		},
	}
}
