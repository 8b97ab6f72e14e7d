package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	mcerror "github.com/msto63/mictylish/foundation/core/error"
	"github.com/msto63/mictylish/foundation/lang/diag"
)

const stdinName = "<stdin>"

// readSource reads the named file, or stdin for "-" and no argument
func readSource(cmd *cobra.Command, args []string) (source, name string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", mcerror.Wrap(err, "failed to read stdin").
				WithCode(mcerror.CodeInvalidInput).
				WithOperation("cmd.readSource")
		}
		return string(data), stdinName, nil
	}

	name = args[0]
	data, err := os.ReadFile(name)
	if err != nil {
		code := mcerror.CodeInvalidInput
		if os.IsNotExist(err) {
			code = mcerror.CodeNotFound
		}
		return "", "", mcerror.Wrap(err, "failed to read source").
			WithCode(code).
			WithOperation("cmd.readSource").
			WithDetail("path", name)
	}
	return string(data), name, nil
}

// useColor decides whether diagnostics written to w get ANSI colors
func (a *app) useColor(w io.Writer) bool {
	switch a.colorMode {
	case "always":
		return true
	case "never":
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// report renders a diagnostic to stderr
func (a *app) report(cmd *cobra.Command, err error, source, name string) {
	w := cmd.ErrOrStderr()
	diag.NewRenderer(w, a.useColor(w)).Write(w, err, source, name)
}

// output writes v in the structured format named by format
func output(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return mcerror.New(fmt.Sprintf("unknown format %q (want text, json or yaml)", format)).
			WithCode(mcerror.CodeInvalidInput).
			WithOperation("cmd.output")
	}
}

func checkFormat(format string) error {
	switch format {
	case "text", "json", "yaml":
		return nil
	}
	return mcerror.New(fmt.Sprintf("unknown format %q (want text, json or yaml)", format)).
		WithCode(mcerror.CodeInvalidInput).
		WithOperation("cmd.output")
}
