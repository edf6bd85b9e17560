// Package sessions provides database operations for reading sessions.
//
// A session is open while its end date is unset. Ending a session that has
// already ended is rejected with apperr.ErrConstraint rather than
// overwriting the recorded end date.
//
// # Usage
//
//	repo := sessions.NewRepository(db)
//	s, err := repo.StartSession(bookID, dates.Today(), "")
//	s, err = repo.EndSession(s.ID, dates.Today(), true, "loved it")
package sessions

import (
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/bookshelf/internal/apperr"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/dates"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// Repository handles all reading session database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new sessions repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// StartSession opens a new session on a book and marks the book as being
// read. A session already open on the same book is closed on the new
// session's start date.
func (r *Repository) StartSession(bookID uint, start time.Time, notes string) (*entities.ReadingSession, error) {
	if start.IsZero() {
		return nil, apperr.Validation("start date is required")
	}
	start = dates.Day(start)

	session := &entities.ReadingSession{
		BookID:       bookID,
		StartDate:    start,
		SessionNotes: strings.TrimSpace(notes),
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := database.RequireBook(tx, bookID); err != nil {
			return err
		}

		open, err := findOpen(tx, bookID)
		if err != nil {
			return err
		}
		if open != nil {
			if start.Before(open.StartDate) {
				return apperr.Validation("start date %s precedes the open session started %s",
					start.Format(time.DateOnly), open.StartDate.Format(time.DateOnly))
			}
			open.EndDate = &start
			if err := tx.Omit(clause.Associations).Save(open).Error; err != nil {
				return err
			}
		}

		if err := tx.Omit(clause.Associations).Create(session).Error; err != nil {
			return err
		}
		return setBookStatus(tx, bookID, entities.StatusReading)
	})
	if err != nil {
		return nil, database.Translate(err, "book", bookID)
	}
	return session, nil
}

// EndSession closes the session with the given id. When completed is set
// the book is marked finished.
func (r *Repository) EndSession(sessionID uint, end time.Time, completed bool, notes string) (*entities.ReadingSession, error) {
	var session entities.ReadingSession

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&session, sessionID).Error; err != nil {
			return err
		}
		return closeSession(tx, &session, end, completed, notes)
	})
	if err != nil {
		return nil, database.Translate(err, "reading session", sessionID)
	}
	return &session, nil
}

// EndCurrentSession closes the open session of a book.
func (r *Repository) EndCurrentSession(bookID uint, end time.Time, completed bool, notes string) (*entities.ReadingSession, error) {
	var session *entities.ReadingSession

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := database.RequireBook(tx, bookID); err != nil {
			return err
		}

		open, err := findOpen(tx, bookID)
		if err != nil {
			return err
		}
		if open == nil {
			return apperr.NotFound("open reading session for book", bookID)
		}

		session = open
		return closeSession(tx, session, end, completed, notes)
	})
	if err != nil {
		return nil, database.Translate(err, "book", bookID)
	}
	return session, nil
}

func closeSession(tx *gorm.DB, session *entities.ReadingSession, end time.Time, completed bool, notes string) error {
	if !session.InProgress() {
		return apperr.Constraint("reading session %d already ended on %s",
			session.ID, session.EndDate.Format(time.DateOnly))
	}
	if end.IsZero() {
		return apperr.Validation("end date is required")
	}
	end = dates.Day(end)
	if end.Before(session.StartDate) {
		return apperr.Validation("end date %s precedes start date %s",
			end.Format(time.DateOnly), session.StartDate.Format(time.DateOnly))
	}

	session.EndDate = &end
	session.Completed = completed
	if notes = strings.TrimSpace(notes); notes != "" {
		session.SessionNotes = notes
	}
	if err := tx.Omit(clause.Associations).Save(session).Error; err != nil {
		return err
	}

	if completed {
		return setBookStatus(tx, session.BookID, entities.StatusFinished)
	}
	return nil
}

func findOpen(tx *gorm.DB, bookID uint) (*entities.ReadingSession, error) {
	var open entities.ReadingSession
	err := tx.Where("book_id = ? AND end_date IS NULL", bookID).
		Order("start_date DESC, id DESC").
		Limit(1).
		Find(&open).Error
	if err != nil {
		return nil, err
	}
	if open.ID == 0 {
		return nil, nil
	}
	return &open, nil
}

func setBookStatus(tx *gorm.DB, bookID uint, status entities.ReadingStatus) error {
	return tx.Model(&entities.Book{}).Where("id = ?", bookID).Update("status", status).Error
}

// GetSessionByID retrieves a single session.
func (r *Repository) GetSessionByID(id uint) (*entities.ReadingSession, error) {
	var session entities.ReadingSession
	if err := r.db.First(&session, id).Error; err != nil {
		return nil, database.Translate(err, "reading session", id)
	}
	return &session, nil
}

// GetCurrentSession returns the open session of a book.
func (r *Repository) GetCurrentSession(bookID uint) (*entities.ReadingSession, error) {
	open, err := findOpen(r.db, bookID)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, apperr.NotFound("open reading session for book", bookID)
	}
	return open, nil
}

// GetSessionsForBook returns all sessions of a book, newest first. A missing
// book is reported as apperr.ErrNotFound.
func (r *Repository) GetSessionsForBook(bookID uint) ([]entities.ReadingSession, error) {
	if err := database.RequireBook(r.db, bookID); err != nil {
		return nil, err
	}

	var sessions []entities.ReadingSession
	err := r.db.Where("book_id = ?", bookID).
		Order("start_date DESC, id DESC").
		Find(&sessions).Error
	return sessions, err
}
