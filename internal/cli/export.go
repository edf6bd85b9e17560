package cli

import (
	"fmt"
	"io"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/exporters"
)

// ExportCommand writes the library, or a single book, as Markdown files.
type ExportCommand struct {
	Dir    string
	BookID uint
}

func NewExportCommand() *ExportCommand {
	return &ExportCommand{}
}

type exportLibrary struct {
	*app
}

var _ exporters.Library = exportLibrary{}

func (l exportLibrary) GetAllBooks() ([]entities.Book, error) {
	return l.books.GetAllBooks()
}

func (l exportLibrary) GetBookByID(id uint) (*entities.Book, error) {
	return l.books.GetBookByID(id)
}

func (l exportLibrary) GetSessionsForBook(bookID uint) ([]entities.ReadingSession, error) {
	return l.sessions.GetSessionsForBook(bookID)
}

func (l exportLibrary) GetNotesForBook(bookID uint) ([]entities.Note, error) {
	return l.notes.GetNotesForBook(bookID)
}

func (cmd *ExportCommand) Run(cfg *config.Config, out io.Writer) error {
	a, err := openApp(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	dir := cmd.Dir
	if dir == "" {
		if dir, err = a.settings.GetValue(entities.SettingKeyExportDir, cfg.Export.Dir); err != nil {
			return err
		}
	}

	exporter := exporters.NewMarkdownExporter(exportLibrary{a}, dir)

	var result exporters.ExportResult
	if cmd.BookID != 0 {
		result, err = exporter.ExportBook(cmd.BookID)
	} else {
		result, err = exporter.ExportAll()
	}
	if err != nil {
		return err
	}

	for _, name := range result.Files {
		fmt.Fprintf(out, "  %s\n", name)
	}
	fmt.Fprintf(out, "Exported %d books to %s (%d failed)\n", result.BooksProcessed, dir, result.BooksFailed)
	return nil
}
