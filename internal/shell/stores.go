package shell

import (
	"time"

	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// BookStore defines the book operations the shell performs.
type BookStore interface {
	CreateBook(book *entities.Book) error
	GetAllBooks() ([]entities.Book, error)
	GetBookByID(id uint) (*entities.Book, error)
	FindBookByTitleAndAuthor(title, author string) (*entities.Book, error)
	SearchBooks(query string) ([]entities.Book, error)
	UpdateBook(id uint, update books.BookUpdate) (*entities.Book, error)
	UpdateStatus(id uint, status entities.ReadingStatus) error
	DeleteBook(id uint) error
	GetUniqueAuthors() ([]string, error)
	NoteCounts() (map[uint]int64, error)
	GetStats() (books.Stats, error)
}

// SessionStore defines the reading session operations the shell performs.
type SessionStore interface {
	StartSession(bookID uint, start time.Time, notes string) (*entities.ReadingSession, error)
	EndCurrentSession(bookID uint, end time.Time, completed bool, notes string) (*entities.ReadingSession, error)
	GetCurrentSession(bookID uint) (*entities.ReadingSession, error)
	GetSessionsForBook(bookID uint) ([]entities.ReadingSession, error)
}

// NoteStore defines the note operations the shell performs.
type NoteStore interface {
	AddNote(note *entities.Note) error
	GetNoteByID(id uint) (*entities.Note, error)
	GetNotesForBook(bookID uint) ([]entities.Note, error)
	DeleteNote(id uint) error
	ExistsByExternalID(bookID uint, externalID string) (bool, error)
}

// SettingStore defines the settings operations the shell performs.
type SettingStore interface {
	GetValue(key, fallback string) (string, error)
	SetSetting(key, value string) error
}

// Stores bundles the repositories behind the shell.
type Stores struct {
	Books    BookStore
	Sessions SessionStore
	Notes    NoteStore
	Settings SettingStore
}

// library exposes the stores as the read interface of the exporter.
type library struct {
	BookStore
	SessionStore
	NoteStore
}
