package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/mictylish/foundation/lang/ast"
)

func (a *app) newParseCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Print the syntax tree of a script",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			source, name, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			program, err := a.engine.Parse(source)
			if err != nil {
				a.report(cmd, err, source, name)
				return errReported
			}

			dump := ast.ToDump(program)
			if format != "text" {
				return output(cmd.OutOrStdout(), format, dump)
			}
			writeTree(cmd.OutOrStdout(), dump, 0)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text|json|yaml")
	return cmd
}

// writeTree prints one node per line, children indented by two spaces
func writeTree(w io.Writer, d ast.Dump, depth int) {
	parts := []string{d.Type}
	if d.Mutable {
		parts = append(parts, "mut")
	}
	if d.Name != "" {
		parts = append(parts, d.Name)
	}
	switch v := d.Value.(type) {
	case string:
		parts = append(parts, strconv.Quote(v))
	case nil:
	default:
		parts = append(parts, fmt.Sprint(v))
	}
	parts = append(parts, "@"+d.Span.String())

	fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), strings.Join(parts, " "))
	for _, child := range d.Children {
		writeTree(w, child, depth+1)
	}
}
