package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrlokans/bookshelf/internal/config"
)

func newAuthorsCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "authors",
		Short: "List the distinct authors in the library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listAuthors(cfg, cmd.OutOrStdout())
		},
	}
}

func listAuthors(cfg *config.Config, out io.Writer) error {
	a, err := openApp(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	authors, err := a.books.GetUniqueAuthors()
	if err != nil {
		return err
	}
	if len(authors) == 0 {
		fmt.Fprintln(out, "No authors yet.")
		return nil
	}
	for _, author := range authors {
		fmt.Fprintln(out, author)
	}
	return nil
}
