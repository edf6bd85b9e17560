package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/importers"
	"github.com/mrlokans/bookshelf/internal/kindle"
)

// KindleImportCommand imports highlights and notes from Kindle My Clippings.txt
type KindleImportCommand struct {
	ClippingsPath string
	Verbose       bool
	DryRun        bool
}

func NewKindleImportCommand() *KindleImportCommand {
	return &KindleImportCommand{}
}

func (cmd *KindleImportCommand) Run(cfg *config.Config, out io.Writer) error {
	if cmd.ClippingsPath == "" {
		return fmt.Errorf("required flag --file not provided")
	}

	file, err := os.Open(cmd.ClippingsPath)
	if err != nil {
		return fmt.Errorf("failed to open clippings file: %w", err)
	}
	defer file.Close()

	books, err := kindle.NewParser().Parse(file)
	if err != nil {
		return fmt.Errorf("failed to parse clippings: %w", err)
	}
	if len(books) == 0 {
		fmt.Fprintln(out, "No highlights or notes found in clippings file")
		return nil
	}

	total := 0
	for _, book := range books {
		total += len(book.Notes)
	}
	fmt.Fprintf(out, "Found %d books with %d notes\n", len(books), total)

	if cmd.Verbose {
		for i, book := range books {
			fmt.Fprintf(out, "%d. %q by %s (%d notes)\n", i+1, book.Title, book.Author, len(book.Notes))
		}
	}

	if cmd.DryRun {
		fmt.Fprintln(out, "Dry run complete. Use without --dry-run to import.")
		return nil
	}

	a, err := openApp(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := importers.NewPipeline(a.books, a.notes).ImportBooks(books)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Imported %d notes (%d already present), %d books created, %d matched\n",
		result.NotesImported, result.NotesSkipped, result.BooksCreated, result.BooksMatched)
	return nil
}
