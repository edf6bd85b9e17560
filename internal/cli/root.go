package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/bookshelf/internal/config"
)

// NewRootCommand builds the command tree. Running the binary without a
// subcommand starts the interactive shell.
func NewRootCommand(version, commit string) *cobra.Command {
	cfg := config.NewConfig()

	root := &cobra.Command{
		Use:           "bookshelf",
		Short:         "Personal book tracker",
		Long:          "Track books, reading sessions and notes in a local SQLite database.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cfg)
		},
	}
	root.PersistentFlags().StringVar(&cfg.Database.Path, "db", cfg.Database.Path, "Path to the SQLite database file")

	root.AddCommand(
		newShellCommand(cfg),
		newKindleImportCommand(cfg),
		newExportCommand(cfg),
		newAuthorsCommand(cfg),
		newVersionCommand(version, commit),
	)
	return root
}

// Execute runs the command tree against os.Args.
func Execute(version, commit string) error {
	return NewRootCommand(version, commit).Execute()
}

func newKindleImportCommand(cfg *config.Config) *cobra.Command {
	opts := NewKindleImportCommand()
	cmd := &cobra.Command{
		Use:   "import-kindle",
		Short: "Import highlights and notes from a Kindle My Clippings.txt file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.Run(cfg, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&opts.ClippingsPath, "file", "", "Path to My Clippings.txt (required)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "List every parsed book")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Parse without writing to the database")
	cmd.MarkFlagRequired("file")
	return cmd
}

func newExportCommand(cfg *config.Config) *cobra.Command {
	opts := NewExportCommand()
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export books, sessions and notes as Markdown files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.Run(cfg, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&opts.Dir, "dir", "", "Output directory (defaults to the export_dir setting)")
	cmd.Flags().UintVar(&opts.BookID, "book", 0, "Export a single book by id")
	return cmd
}

func newVersionCommand(version, commit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bookshelf %s (commit %s)\n", version, commit)
		},
	}
}
