package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mclog "github.com/msto63/mictylish/foundation/core/log"
)

func (a *app) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file|-]",
		Short: "Parse a script and report naming errors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, name, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			program, diags, err := a.engine.CheckSource(source)
			if err != nil {
				a.report(cmd, err, source, name)
				return errReported
			}
			for _, d := range diags {
				a.report(cmd, d, source, name)
			}
			if len(diags) > 0 {
				a.logger.Debug("check failed", mclog.Fields{"source": name, "errors": len(diags)})
				return errReported
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d statements)\n", name, len(program.Stmts))
			return nil
		},
	}
}
