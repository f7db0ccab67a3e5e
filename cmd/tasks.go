package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hamidafilali-design/Taskmanager/internal/todo"
	"github.com/hamidafilali-design/Taskmanager/internal/ui"
	"github.com/hamidafilali-design/Taskmanager/internal/utils"
)

func newListCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show all tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.openStore(a.logger)
			if err != nil {
				return err
			}
			tasks := store.Load()

			if asJSON {
				data, err := json.MarshalIndent(tasks, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding tasks: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Render(tasks, 0))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the task list as JSON")
	return cmd
}

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <description...>",
		Short: "Add a task",
		Long:  "Add a task. All arguments are joined with spaces to form the description.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(a.logger)
			if err != nil {
				return err
			}
			tasks := store.Load()
			before := len(tasks)

			tasks, err = todo.Add(store, tasks, strings.Join(args, " "))
			if err != nil {
				return err
			}
			if len(tasks) > before {
				printSuccess(cmd.OutOrStdout(), ui.MsgAdded)
				a.logger.Debug("Task added", "position", len(tasks))
			}
			return nil
		},
	}
}

func newDoneCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <position>",
		Short: "Mark a task as completed",
		Long: `Mark the task at the given 1-based position as completed.
Positions outside the list are ignored.

A negative position reads as a flag; put -- before it:

  taskmanager done -- -1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := utils.ParsePosition(args[0])
			if err != nil {
				return err
			}

			store, err := a.openStore(a.logger)
			if err != nil {
				return err
			}
			tasks := store.Load()
			inRange := todo.InRange(tasks, position)

			if _, err := todo.MarkDone(store, tasks, position); err != nil {
				return err
			}
			if inRange {
				printSuccess(cmd.OutOrStdout(), ui.MsgMarked)
			} else {
				a.logger.Debug("Position out of range", "position", position, "tasks", len(tasks))
			}
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w (for a negative position use: done -- <position>)", err)
	})
	return cmd
}
