package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/mictylish/foundation/core/config"
	mcerror "github.com/msto63/mictylish/foundation/core/error"
	mclog "github.com/msto63/mictylish/foundation/core/log"
	"github.com/msto63/mictylish/foundation/lang"
)

// app holds the flags and the objects built from them before any
// subcommand runs
type app struct {
	cfgFile   string
	verbose   bool
	logLevel  string
	logFormat string
	colorMode string

	settings config.Settings
	logger   *mclog.Logger
	engine   *lang.Engine
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "mictylish",
		Short: "mictylish - scripting language front end",
		Long: `mictylish tokenizes, parses and checks mictylish scripts.

Commands:
  tokens   - print the token stream
  parse    - print the syntax tree
  check    - report naming errors
  repl     - interactive shell
  exec     - run a program with literal arguments
  glob     - expand a filesystem pattern`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./mictylish.toml or the user config dir)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: trace|debug|info|warn|error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: json|text|console|logfmt")
	flags.StringVar(&a.colorMode, "color", "auto", "colored diagnostics: auto|always|never")

	root.AddCommand(
		a.newTokensCmd(),
		a.newParseCmd(),
		a.newCheckCmd(),
		a.newReplCmd(),
		a.newExecCmd(),
		a.newGlobCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI with os.Args
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil && !errors.Is(err, errReported) {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

// setup loads settings, applies flag overrides and builds the logger and
// the engine
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	settings, err := config.LoadSettings(a.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Root().PersistentFlags()
	if flags.Changed("log-level") {
		settings.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		settings.Log.Format = a.logFormat
	}
	if a.verbose {
		settings.Log.Level = "debug"
	}
	if err := settings.Validate(); err != nil {
		return mcerror.Wrap(err, "invalid flags").
			WithCode(mcerror.CodeInvalidInput).
			WithOperation("cmd.setup")
	}
	switch a.colorMode {
	case "auto", "always", "never":
	default:
		return mcerror.New(fmt.Sprintf("invalid --color %q (want auto, always or never)", a.colorMode)).
			WithCode(mcerror.CodeInvalidInput).
			WithOperation("cmd.setup")
	}

	level, _ := mclog.ParseLevel(settings.Log.Level)
	format, _ := mclog.ParseFormat(settings.Log.Format)
	a.logger = mclog.NewWithConfig(mclog.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "mictylish",
	})
	mclog.SetDefault(a.logger)

	a.settings = settings
	a.engine = lang.New(lang.Options{
		Logger:         a.logger,
		MaxSourceBytes: settings.Parser.MaxSourceBytes,
	})

	a.logger.Debug("settings loaded", mclog.Fields{
		"config":           a.cfgFile,
		"max_source_bytes": settings.Parser.MaxSourceBytes,
	})
	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
}

// ExitCode maps an error returned by Execute to a process exit status
func ExitCode(err error) int {
	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	if err != nil {
		return 1
	}
	return 0
}

// errReported marks errors whose message was already written
var errReported = errors.New("reported")

// exitError carries a specific exit status. The message has been printed
// already.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }
func (e *exitError) Is(target error) bool {
	return target == errReported
}
