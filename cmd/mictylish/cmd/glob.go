package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mictylish/internal/builtin"
)

func (a *app) newGlobCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "glob pattern",
		Short: "List the paths matching a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := builtin.Glob(args[0])
			if err != nil {
				return err
			}
			for _, m := range matches {
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}
			return nil
		},
	}
}
