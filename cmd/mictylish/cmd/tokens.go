package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newTokensCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tokens [file|-]",
		Short: "Print the token stream of a script",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			source, name, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			toks, err := a.engine.Tokenize(source)
			if err != nil {
				a.report(cmd, err, source, name)
				return errReported
			}

			out := cmd.OutOrStdout()
			if format != "text" {
				return output(out, format, toks)
			}
			for _, tok := range toks {
				fmt.Fprintln(out, tok.String())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text|json|yaml")
	return cmd
}
