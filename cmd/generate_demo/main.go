// Command generate_demo creates a demo database with sample data from public domain books.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/database/notes"
	"github.com/mrlokans/bookshelf/internal/database/sessions"
	"github.com/mrlokans/bookshelf/internal/dates"
	"github.com/mrlokans/bookshelf/internal/entities"
)

const defaultDemoDatabasePath = "./demo/demo.db"

// demoSession is expressed in days before today so the demo always looks recent.
type demoSession struct {
	StartDaysAgo int
	EndDaysAgo   int // -1 leaves the session open
	Completed    bool
	Notes        string
}

type demoBook struct {
	Book     entities.Book
	Sessions []demoSession
	Notes    []entities.Note
}

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	bookRepo := books.NewRepository(db.DB)
	sessionRepo := sessions.NewRepository(db.DB)
	noteRepo := notes.NewRepository(db.DB)
	today := dates.Today()

	for _, demo := range getPublicDomainBooks() {
		book := demo.Book
		if err := bookRepo.CreateBook(&book); err != nil {
			log.Printf("Failed to save book %s: %v", book.Title, err)
			continue
		}

		for _, s := range demo.Sessions {
			started, err := sessionRepo.StartSession(book.ID, today.AddDate(0, 0, -s.StartDaysAgo), s.Notes)
			if err != nil {
				log.Printf("Failed to start session for %s: %v", book.Title, err)
				continue
			}
			if s.EndDaysAgo < 0 {
				continue
			}
			if _, err := sessionRepo.EndSession(started.ID, today.AddDate(0, 0, -s.EndDaysAgo), s.Completed, ""); err != nil {
				log.Printf("Failed to end session for %s: %v", book.Title, err)
			}
		}

		for _, n := range demo.Notes {
			note := n
			note.BookID = book.ID
			if err := noteRepo.AddNote(&note); err != nil {
				log.Printf("Failed to add note to %s: %v", book.Title, err)
			}
		}

		log.Printf("Saved: %s by %s (%d sessions, %d notes)", book.Title, book.Author, len(demo.Sessions), len(demo.Notes))
	}

	log.Println("Demo database generated successfully!")
}

func highlight(page int, text string) entities.Note {
	return entities.Note{Type: entities.NoteTypeHighlight, PageNumber: page, Content: text}
}

func getPublicDomainBooks() []demoBook {
	return []demoBook{
		{
			Book: entities.Book{
				Title:           "Meditations",
				Author:          "Marcus Aurelius",
				Type:            entities.BookTypePhysical,
				PublicationYear: 180,
				Pages:           254,
			},
			Sessions: []demoSession{
				{StartDaysAgo: 60, EndDaysAgo: 45, Notes: "Books I-IV"},
				{StartDaysAgo: 30, EndDaysAgo: 12, Completed: true},
			},
			Notes: []entities.Note{
				highlight(17, "You have power over your mind - not outside events. Realize this, and you will find strength."),
				highlight(38, "The happiness of your life depends upon the quality of your thoughts."),
				highlight(112, "Waste no more time arguing about what a good man should be. Be one."),
				{Type: entities.NoteTypeReview, Title: "Reread", Content: "Short entries, best read a few pages at a time."},
			},
		},
		{
			Book: entities.Book{
				Title:           "Letters from a Stoic",
				Author:          "Seneca",
				Type:            entities.BookTypeEbook,
				PublicationYear: 65,
			},
			Sessions: []demoSession{
				{StartDaysAgo: 9, EndDaysAgo: -1},
			},
			Notes: []entities.Note{
				highlight(0, "We suffer more often in imagination than in reality."),
				{Type: entities.NoteTypeThought, Content: "Letter XIII pairs well with Meditations book II."},
			},
		},
		{
			Book: entities.Book{
				Title:           "Pride and Prejudice",
				Author:          "Jane Austen",
				Type:            entities.BookTypeAudiobook,
				Publisher:       "T. Egerton",
				PublicationYear: 1813,
			},
			Sessions: []demoSession{
				{StartDaysAgo: 120, EndDaysAgo: 101, Completed: true},
			},
			Notes: []entities.Note{
				{Type: entities.NoteTypeQuote, Content: "It is a truth universally acknowledged, that a single man in possession of a good fortune, must be in want of a wife."},
			},
		},
		{
			Book: entities.Book{
				Title:           "War and Peace",
				Author:          "Leo Tolstoy",
				Type:            entities.BookTypePhysical,
				PublicationYear: 1869,
				Pages:           1225,
			},
			Sessions: []demoSession{
				{StartDaysAgo: 200, EndDaysAgo: 170, Notes: "Stopped after volume one"},
			},
		},
		{
			Book: entities.Book{
				Title:           "Crime and Punishment",
				Author:          "Fyodor Dostoevsky",
				Type:            entities.BookTypeEbook,
				PublicationYear: 1866,
			},
		},
		{
			Book: entities.Book{
				Title:           "Frankenstein",
				Author:          "Mary Shelley",
				Type:            entities.BookTypePhysical,
				PublicationYear: 1818,
				Pages:           280,
			},
			Sessions: []demoSession{
				{StartDaysAgo: 40, EndDaysAgo: 33, Completed: true},
			},
			Notes: []entities.Note{
				highlight(52, "Beware; for I am fearless, and therefore powerful."),
				{Type: entities.NoteTypeReview, Content: "The frame narrative holds up better than expected."},
			},
		},
	}
}
