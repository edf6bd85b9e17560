package entities

import (
	"time"
)

type BookType string

const (
	BookTypePhysical  BookType = "physical"
	BookTypeEbook     BookType = "ebook"
	BookTypeAudiobook BookType = "audiobook"
)

// BookTypes lists the accepted book types in display order.
var BookTypes = []BookType{BookTypePhysical, BookTypeEbook, BookTypeAudiobook}

func (t BookType) DisplayName() string {
	switch t {
	case BookTypePhysical:
		return "Physical"
	case BookTypeEbook:
		return "E-book"
	case BookTypeAudiobook:
		return "Audiobook"
	default:
		return string(t)
	}
}

type ReadingStatus string

const (
	StatusUnread    ReadingStatus = "unread"
	StatusReading   ReadingStatus = "reading"
	StatusFinished  ReadingStatus = "finished"
	StatusAbandoned ReadingStatus = "abandoned"
)

// ReadingStatuses lists the accepted statuses in display order.
var ReadingStatuses = []ReadingStatus{StatusUnread, StatusReading, StatusFinished, StatusAbandoned}

func (s ReadingStatus) DisplayName() string {
	switch s {
	case StatusUnread:
		return "Unread"
	case StatusReading:
		return "Reading"
	case StatusFinished:
		return "Finished"
	case StatusAbandoned:
		return "Abandoned"
	default:
		return string(s)
	}
}

type NoteType string

const (
	NoteTypeReview    NoteType = "review"
	NoteTypeHighlight NoteType = "highlight"
	NoteTypeThought   NoteType = "thought"
	NoteTypeQuote     NoteType = "quote"
)

// NoteTypes lists the accepted note types in display order.
var NoteTypes = []NoteType{NoteTypeReview, NoteTypeHighlight, NoteTypeThought, NoteTypeQuote}

func (t NoteType) DisplayName() string {
	switch t {
	case NoteTypeReview:
		return "Review"
	case NoteTypeHighlight:
		return "Highlight"
	case NoteTypeThought:
		return "Thought"
	case NoteTypeQuote:
		return "Quote"
	default:
		return string(t)
	}
}

// Book is a single title tracked in the library. Reading sessions and notes
// reference their book; the book itself holds no child collections.
type Book struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	Title           string        `gorm:"index;size:512;not null" json:"title" validate:"required,max=512"`
	Author          string        `gorm:"index;size:256;not null" json:"author" validate:"required,max=256"`
	ISBN            *string       `gorm:"uniqueIndex;size:20" json:"isbn,omitempty" validate:"omitempty,max=20"`
	Type            BookType      `gorm:"size:20;not null;default:'physical'" json:"type" validate:"required,oneof=physical ebook audiobook"`
	Status          ReadingStatus `gorm:"index;size:20;not null;default:'unread'" json:"status" validate:"required,oneof=unread reading finished abandoned"`
	Publisher       string        `gorm:"size:256" json:"publisher,omitempty" validate:"max=256"`
	PublicationYear int           `json:"publication_year,omitempty" validate:"gte=0,lte=9999"`
	Pages           int           `json:"pages,omitempty" validate:"gte=0"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// ISBNValue returns the ISBN or an empty string when unset.
func (b *Book) ISBNValue() string {
	if b.ISBN == nil {
		return ""
	}
	return *b.ISBN
}

// ReadingSession records one stretch of reading a book. A nil EndDate means
// the session is still in progress.
type ReadingSession struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	BookID       uint       `gorm:"index;not null" json:"book_id"`
	Book         Book       `gorm:"foreignKey:BookID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-" validate:"-"`
	StartDate    time.Time  `gorm:"not null" json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Completed    bool       `gorm:"default:false" json:"completed"`
	SessionNotes string     `gorm:"type:text" json:"session_notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// InProgress reports whether the session has not been ended yet.
func (s *ReadingSession) InProgress() bool {
	return s.EndDate == nil
}

// Note is a typed free-text annotation attached to a book.
type Note struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	BookID     uint      `gorm:"index;not null" json:"book_id"`
	Book       Book      `gorm:"foreignKey:BookID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-" validate:"-"`
	Type       NoteType  `gorm:"size:20;not null" json:"type" validate:"required,oneof=review highlight thought quote"`
	Title      string    `gorm:"size:255" json:"title,omitempty" validate:"max=255"`
	Content    string    `gorm:"type:text;not null" json:"content" validate:"required"`
	PageNumber int       `json:"page_number,omitempty" validate:"gte=0"`
	ExternalID string    `gorm:"index;size:256" json:"external_id,omitempty"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

func (Book) TableName() string {
	return "books"
}

func (ReadingSession) TableName() string {
	return "reading_sessions"
}

func (Note) TableName() string {
	return "notes"
}
