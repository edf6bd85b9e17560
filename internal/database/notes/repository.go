// Package notes provides database operations for notes attached to books.
//
// Notes are immutable once written: the repository offers creation,
// lookup and deletion only.
package notes

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// Repository handles all note database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new notes repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AddNote validates and stores a note for an existing book.
func (r *Repository) AddNote(note *entities.Note) error {
	note.Title = strings.TrimSpace(note.Title)
	note.Content = strings.TrimSpace(note.Content)
	if err := entities.Validate(note); err != nil {
		return err
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := database.RequireBook(tx, note.BookID); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(note).Error
	})
	return database.Translate(err, "book", note.BookID)
}

// GetNoteByID retrieves a single note.
func (r *Repository) GetNoteByID(id uint) (*entities.Note, error) {
	var note entities.Note
	if err := r.db.First(&note, id).Error; err != nil {
		return nil, database.Translate(err, "note", id)
	}
	return &note, nil
}

// GetNotesForBook returns the notes of a book, newest first. A missing book
// is reported as apperr.ErrNotFound.
func (r *Repository) GetNotesForBook(bookID uint) ([]entities.Note, error) {
	if err := database.RequireBook(r.db, bookID); err != nil {
		return nil, err
	}

	var notes []entities.Note
	err := r.db.Where("book_id = ?", bookID).
		Order("created_at DESC, id DESC").
		Find(&notes).Error
	return notes, err
}

// DeleteNote removes a note.
func (r *Repository) DeleteNote(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&entities.Note{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return database.Translate(err, "note", id)
}

// ExistsByExternalID reports whether a book already holds a note imported
// under externalID.
func (r *Repository) ExistsByExternalID(bookID uint, externalID string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Note{}).
		Where("book_id = ? AND external_id = ?", bookID, externalID).
		Count(&count).Error
	return count > 0, err
}
