package exporters

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/natefinch/atomic"

	"github.com/mrlokans/bookshelf/internal/dates"
	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/utils"
)

// MarkdownExporter writes one Markdown file per book into Dir. Files are
// replaced atomically, so an interrupted export never leaves a truncated
// note behind.
type MarkdownExporter struct {
	Dir     string
	library Library
	now     func() time.Time
}

func NewMarkdownExporter(library Library, dir string) *MarkdownExporter {
	return &MarkdownExporter{
		Dir:     dir,
		library: library,
		now:     time.Now,
	}
}

// ExportAll exports every book in the library.
func (e *MarkdownExporter) ExportAll() (ExportResult, error) {
	books, err := e.library.GetAllBooks()
	if err != nil {
		return ExportResult{}, err
	}
	return e.export(books)
}

// ExportBook exports a single book.
func (e *MarkdownExporter) ExportBook(id uint) (ExportResult, error) {
	book, err := e.library.GetBookByID(id)
	if err != nil {
		return ExportResult{}, err
	}
	return e.export([]entities.Book{*book})
}

func (e *MarkdownExporter) export(books []entities.Book) (ExportResult, error) {
	var result ExportResult

	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return result, fmt.Errorf("failed to create export directory: %w", err)
	}

	used := make(map[string]bool, len(books))
	for _, book := range books {
		name := utils.BookFilename(book.Title, book.Author)
		if used[name] {
			name = strings.TrimSuffix(name, ".md") + fmt.Sprintf(" (%d).md", book.ID)
		}
		used[name] = true

		sessions, notes, err := e.exportBook(book, filepath.Join(e.Dir, name))
		if err != nil {
			log.Printf("[EXPORT] Failed to export book %d %q: %v", book.ID, book.Title, err)
			result.BooksFailed++
			continue
		}

		result.BooksProcessed++
		result.SessionsProcessed += sessions
		result.NotesProcessed += notes
		result.Files = append(result.Files, name)
	}

	log.Printf("[EXPORT] %d books exported to %s, %d failed", result.BooksProcessed, e.Dir, result.BooksFailed)
	return result, nil
}

func (e *MarkdownExporter) exportBook(book entities.Book, path string) (int, int, error) {
	sessions, err := e.library.GetSessionsForBook(book.ID)
	if err != nil {
		return 0, 0, err
	}
	notes, err := e.library.GetNotesForBook(book.ID)
	if err != nil {
		return 0, 0, err
	}

	content := GenerateMarkdown(&book, sessions, notes, e.now())
	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return 0, 0, err
	}
	return len(sessions), len(notes), nil
}

// GenerateMarkdown renders a book with YAML front matter followed by its
// reading sessions and notes.
func GenerateMarkdown(book *entities.Book, sessions []entities.ReadingSession, notes []entities.Note, exportedAt time.Time) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "---\n")
	fmt.Fprintf(&builder, "content_type: book\n")
	fmt.Fprintf(&builder, "exported_at: %s\n", exportedAt.Format(time.DateOnly))
	fmt.Fprintf(&builder, "title: %s\n", quote(book.Title))
	fmt.Fprintf(&builder, "author: %s\n", quote(book.Author))
	if isbn := book.ISBNValue(); isbn != "" {
		fmt.Fprintf(&builder, "isbn: %s\n", quote(isbn))
	}
	fmt.Fprintf(&builder, "type: %s\n", book.Type)
	fmt.Fprintf(&builder, "status: %s\n", book.Status)
	if book.Publisher != "" {
		fmt.Fprintf(&builder, "publisher: %s\n", quote(book.Publisher))
	}
	if book.PublicationYear > 0 {
		fmt.Fprintf(&builder, "publication_year: %d\n", book.PublicationYear)
	}
	if book.Pages > 0 {
		fmt.Fprintf(&builder, "pages: %d\n", book.Pages)
	}
	fmt.Fprintf(&builder, "tags: [books, %s]\n", book.Status)
	fmt.Fprintf(&builder, "---\n\n")
	fmt.Fprintf(&builder, "# %s\n\n", book.Title)

	if len(sessions) > 0 {
		fmt.Fprintf(&builder, "## Reading sessions\n\n")
		for _, s := range sessions {
			end := "in progress"
			if s.EndDate != nil {
				end = dates.Format(*s.EndDate)
			}
			fmt.Fprintf(&builder, "- %s → %s", dates.Format(s.StartDate), end)
			if s.Completed {
				fmt.Fprintf(&builder, " (completed)")
			}
			if s.SessionNotes != "" {
				fmt.Fprintf(&builder, ": %s", s.SessionNotes)
			}
			fmt.Fprintf(&builder, "\n")
		}
		fmt.Fprintf(&builder, "\n")
	}

	if len(notes) > 0 {
		fmt.Fprintf(&builder, "## Notes\n\n")
		for _, n := range notes {
			heading := n.Type.DisplayName()
			if n.Title != "" {
				heading += ": " + n.Title
			}
			fmt.Fprintf(&builder, "### %s\n\n", heading)
			if n.Type == entities.NoteTypeHighlight || n.Type == entities.NoteTypeQuote {
				fmt.Fprintf(&builder, "> %s\n\n", strings.ReplaceAll(n.Content, "\n", "\n> "))
			} else {
				fmt.Fprintf(&builder, "%s\n\n", n.Content)
			}
			if n.PageNumber > 0 {
				fmt.Fprintf(&builder, "*Page %d*\n\n", n.PageNumber)
			}
		}
	}

	return builder.String()
}

var yamlEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func quote(s string) string {
	return `"` + yamlEscaper.Replace(s) + `"`
}
