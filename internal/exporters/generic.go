package exporters

import "github.com/mrlokans/bookshelf/internal/entities"

// Library is the read side of the repositories an export needs.
type Library interface {
	GetAllBooks() ([]entities.Book, error)
	GetBookByID(id uint) (*entities.Book, error)
	GetSessionsForBook(bookID uint) ([]entities.ReadingSession, error)
	GetNotesForBook(bookID uint) ([]entities.Note, error)
}

type ExportResult struct {
	BooksProcessed    int      `json:"books_processed"`
	SessionsProcessed int      `json:"sessions_processed"`
	NotesProcessed    int      `json:"notes_processed"`
	BooksFailed       int      `json:"books_failed"`
	Files             []string `json:"files"`
}
