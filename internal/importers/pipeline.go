package importers

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/mrlokans/bookshelf/internal/apperr"
	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/kindle"
)

// BookStore is the subset of the books repository the pipeline needs.
type BookStore interface {
	FindBookByTitleAndAuthor(title, author string) (*entities.Book, error)
	CreateBook(book *entities.Book) error
}

// NoteStore is the subset of the notes repository the pipeline needs.
type NoteStore interface {
	AddNote(note *entities.Note) error
	ExistsByExternalID(bookID uint, externalID string) (bool, error)
}

// Result summarizes one import run.
type Result struct {
	BooksCreated  int
	BooksMatched  int
	NotesImported int
	NotesSkipped  int
}

// Pipeline handles the common import workflow:
// parse → find or create book → deduplicate → save.
type Pipeline struct {
	books BookStore
	notes NoteStore
}

// NewPipeline creates a new import pipeline.
func NewPipeline(books BookStore, notes NoteStore) *Pipeline {
	return &Pipeline{books: books, notes: notes}
}

// ImportKindle parses a Kindle clippings file and imports its notes.
func (p *Pipeline) ImportKindle(r io.Reader) (Result, error) {
	books, err := kindle.NewParser().Parse(r)
	if err != nil {
		return Result{}, err
	}
	return p.ImportBooks(books)
}

// ImportBooks imports pre-grouped books. It stops at the first storage
// error; books handled before it stay imported.
func (p *Pipeline) ImportBooks(books []kindle.Book) (Result, error) {
	var result Result

	for _, parsed := range books {
		book, created, err := p.findOrCreate(parsed.Title, parsed.Author)
		if err != nil {
			return result, fmt.Errorf("import %q: %w", parsed.Title, err)
		}
		if created {
			result.BooksCreated++
		} else {
			result.BooksMatched++
		}

		for _, note := range parsed.Notes {
			if note.ExternalID != "" {
				exists, err := p.notes.ExistsByExternalID(book.ID, note.ExternalID)
				if err != nil {
					return result, err
				}
				if exists {
					result.NotesSkipped++
					continue
				}
			}

			note.BookID = book.ID
			if err := p.notes.AddNote(&note); err != nil {
				return result, fmt.Errorf("import note for %q: %w", parsed.Title, err)
			}
			result.NotesImported++
		}
	}

	log.Printf("[IMPORT] %d books created, %d matched, %d notes imported, %d skipped",
		result.BooksCreated, result.BooksMatched, result.NotesImported, result.NotesSkipped)

	return result, nil
}

func (p *Pipeline) findOrCreate(title, author string) (*entities.Book, bool, error) {
	book, err := p.books.FindBookByTitleAndAuthor(title, author)
	if err == nil {
		return book, false, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, false, err
	}

	book = &entities.Book{
		Title:  title,
		Author: author,
		Type:   entities.BookTypeEbook,
	}
	if err := p.books.CreateBook(book); err != nil {
		return nil, false, err
	}
	return book, true, nil
}
