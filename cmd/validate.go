package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the task file against its schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.openStore(a.logger)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			result, err := store.Validate()
			if errors.Is(err, fs.ErrNotExist) {
				printWarning(out, store.Path()+" does not exist yet; it will be created on the first change")
				return nil
			}
			if err != nil {
				return err
			}

			if !result.Valid {
				printHeader(out, store.Path()+" is invalid:")
				for _, e := range result.Errors {
					printError(out, e.Error())
				}
				return fmt.Errorf("task file has %d error(s)", len(result.Errors))
			}

			tasks, err := store.Read()
			if err != nil {
				return err
			}
			printSuccess(out, fmt.Sprintf("%s: ok (%d tasks)", store.Path(), len(tasks)))
			return nil
		},
	}
}
