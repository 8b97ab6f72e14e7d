package cmd

import (
	"github.com/spf13/cobra"

	mclog "github.com/msto63/mictylish/foundation/core/log"
	"github.com/msto63/mictylish/internal/repl"
)

func (a *app) newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive shell",
		Long: `Start the interactive shell.

Each line is parsed and checked against the names defined by earlier lines.
Type :help inside the shell for commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			history, err := a.openHistory()
			if err != nil {
				return err
			}
			defer history.Close()

			session := repl.NewSession(a.engine, a.settings.REPL.Prompt, a.logger)
			a.logger.Info("repl started", mclog.Fields{"session": session.ID()})

			return repl.Run(cmd.Context(), repl.Config{
				Session:      session,
				History:      history,
				HistoryLimit: a.settings.REPL.HistoryLimit,
				Logger:       a.logger,
			})
		},
	}
}

// openHistory opens the configured history database, or an in-memory
// store when no path is set
func (a *app) openHistory() (repl.HistoryStore, error) {
	path, err := a.settings.HistoryFile()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return repl.NewMemoryHistory(), nil
	}
	return repl.NewSQLiteHistory(path)
}
