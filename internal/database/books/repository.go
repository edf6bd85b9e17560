// Package books provides database operations for book management.
//
// This package implements the BookStore interface defined in internal/shell.
//
// # Interface Implementation
//
//	var _ shell.BookStore = (*Repository)(nil)
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetBookByID(123)
//	authors, err := repo.GetUniqueAuthors()
package books

import (
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// BookUpdate carries a partial update. Nil fields are left untouched; an
// empty ISBN clears it.
type BookUpdate struct {
	Title           *string
	Author          *string
	ISBN            *string
	Type            *entities.BookType
	Status          *entities.ReadingStatus
	Publisher       *string
	PublicationYear *int
	Pages           *int
}

// Stats summarizes the library contents.
type Stats struct {
	Books          int64
	Sessions       int64
	ActiveSessions int64
	Notes          int64
	ByStatus       map[entities.ReadingStatus]int64
}

// normalize trims text fields, turns an empty ISBN into NULL and fills
// enum defaults.
func normalize(book *entities.Book) {
	book.Title = strings.TrimSpace(book.Title)
	book.Author = strings.TrimSpace(book.Author)
	book.Publisher = strings.TrimSpace(book.Publisher)
	if book.ISBN != nil {
		isbn := strings.TrimSpace(*book.ISBN)
		if isbn == "" {
			book.ISBN = nil
		} else {
			book.ISBN = &isbn
		}
	}
	if book.Type == "" {
		book.Type = entities.BookTypePhysical
	}
	if book.Status == "" {
		book.Status = entities.StatusUnread
	}
}

// CreateBook validates and inserts a book. Nothing is written when
// validation fails.
func (r *Repository) CreateBook(book *entities.Book) error {
	normalize(book)
	if err := entities.Validate(book); err != nil {
		return err
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(book).Error
	})
	return database.Translate(err, "book", book.ID)
}

// GetAllBooks retrieves all books ordered by title.
func (r *Repository) GetAllBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Order("title COLLATE NOCASE ASC, id ASC").Find(&books).Error
	return books, err
}

// GetBookByID retrieves a book by its ID.
func (r *Repository) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.First(&book, id).Error; err != nil {
		return nil, database.Translate(err, "book", id)
	}
	return &book, nil
}

// FindBookByTitleAndAuthor retrieves a book by exact title and author.
func (r *Repository) FindBookByTitleAndAuthor(title, author string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Where("title = ? AND author = ?", title, author).First(&book).Error
	if err != nil {
		return nil, database.Translate(err, "book", 0)
	}
	return &book, nil
}

// SearchBooks searches books by title or author (case-insensitive partial match).
func (r *Repository) SearchBooks(query string) ([]entities.Book, error) {
	var books []entities.Book
	searchPattern := "%" + strings.TrimSpace(query) + "%"
	err := r.db.
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(author) LIKE LOWER(?)", searchPattern, searchPattern).
		Order("title COLLATE NOCASE ASC, id ASC").
		Find(&books).Error
	return books, err
}

// UpdateBook applies a partial update and returns the stored book.
func (r *Repository) UpdateBook(id uint, update BookUpdate) (*entities.Book, error) {
	var book entities.Book

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&book, id).Error; err != nil {
			return err
		}

		applyUpdate(&book, update)
		normalize(&book)
		if err := entities.Validate(&book); err != nil {
			return err
		}

		return tx.Save(&book).Error
	})
	if err != nil {
		return nil, database.Translate(err, "book", id)
	}
	return &book, nil
}

func applyUpdate(book *entities.Book, update BookUpdate) {
	if update.Title != nil {
		book.Title = *update.Title
	}
	if update.Author != nil {
		book.Author = *update.Author
	}
	if update.ISBN != nil {
		isbn := *update.ISBN
		book.ISBN = &isbn
	}
	if update.Type != nil {
		book.Type = *update.Type
	}
	if update.Status != nil {
		book.Status = *update.Status
	}
	if update.Publisher != nil {
		book.Publisher = *update.Publisher
	}
	if update.PublicationYear != nil {
		book.PublicationYear = *update.PublicationYear
	}
	if update.Pages != nil {
		book.Pages = *update.Pages
	}
}

// UpdateStatus sets the reading status of a book.
func (r *Repository) UpdateStatus(id uint, status entities.ReadingStatus) error {
	_, err := r.UpdateBook(id, BookUpdate{Status: &status})
	return err
}

// DeleteBook removes a book together with its reading sessions and notes.
func (r *Repository) DeleteBook(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var book entities.Book
		if err := tx.First(&book, id).Error; err != nil {
			return err
		}
		if err := tx.Where("book_id = ?", id).Delete(&entities.Note{}).Error; err != nil {
			return err
		}
		if err := tx.Where("book_id = ?", id).Delete(&entities.ReadingSession{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Book{}, id).Error
	})
	return database.Translate(err, "book", id)
}

// GetUniqueAuthors returns every distinct author, compared case-sensitively,
// in ascending order.
func (r *Repository) GetUniqueAuthors() ([]string, error) {
	var authors []string
	err := r.db.Model(&entities.Book{}).Distinct().Order("author ASC").Pluck("author", &authors).Error
	return authors, err
}

// NoteCounts returns the number of notes per book id. Books without notes
// are absent from the map.
func (r *Repository) NoteCounts() (map[uint]int64, error) {
	var rows []struct {
		BookID uint
		Count  int64
	}
	err := r.db.Model(&entities.Note{}).
		Select("book_id, COUNT(*) AS count").
		Group("book_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.BookID] = row.Count
	}
	return counts, nil
}

// GetStats returns totals across the library.
func (r *Repository) GetStats() (Stats, error) {
	stats := Stats{ByStatus: make(map[entities.ReadingStatus]int64)}

	if err := r.db.Model(&entities.Book{}).Count(&stats.Books).Error; err != nil {
		return stats, err
	}
	if err := r.db.Model(&entities.ReadingSession{}).Count(&stats.Sessions).Error; err != nil {
		return stats, err
	}
	if err := r.db.Model(&entities.ReadingSession{}).Where("end_date IS NULL").Count(&stats.ActiveSessions).Error; err != nil {
		return stats, err
	}
	if err := r.db.Model(&entities.Note{}).Count(&stats.Notes).Error; err != nil {
		return stats, err
	}

	var rows []struct {
		Status entities.ReadingStatus
		Count  int64
	}
	err := r.db.Model(&entities.Book{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return stats, err
	}
	for _, row := range rows {
		stats.ByStatus[row.Status] = row.Count
	}
	return stats, nil
}
