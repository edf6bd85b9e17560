package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/shell"
)

func newShellCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive shell (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cfg)
		},
	}
}

func runShell(cfg *config.Config) error {
	restore, err := redirectLog(cfg.Logging.File)
	if err != nil {
		return err
	}
	defer restore()

	a, err := openApp(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return shell.Run(cfg, a.stores())
}
