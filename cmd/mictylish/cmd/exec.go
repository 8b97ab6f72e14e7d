package cmd

import (
	"github.com/spf13/cobra"

	mclog "github.com/msto63/mictylish/foundation/core/log"
	"github.com/msto63/mictylish/internal/runtime"
)

func (a *app) newExecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec -- program [args...]",
		Short: "Run a program with literal arguments",
		Long: `Run a program directly, without a shell. Arguments are passed as given,
so no quoting, globbing or variable expansion takes place.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := runtime.NewCommandSpec(args[0]).WithArgs(args[1:]...)

			runner := runtime.NewRunner(a.logger)
			runner.Stdout = cmd.OutOrStdout()
			runner.Stderr = cmd.ErrOrStderr()

			result, err := runner.Run(cmd.Context(), spec)
			if err != nil {
				return err
			}

			if !result.Success() {
				a.logger.Debug("command exited", mclog.Fields{"command": spec.String(), "exit_code": result.ExitCode})
				return &exitError{code: result.ExitCode}
			}
			return nil
		},
	}
}
