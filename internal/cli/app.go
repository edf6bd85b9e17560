package cli

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/database/notes"
	"github.com/mrlokans/bookshelf/internal/database/sessions"
	"github.com/mrlokans/bookshelf/internal/database/settings"
	"github.com/mrlokans/bookshelf/internal/shell"
)

// app holds the opened database and the repositories built on it.
type app struct {
	db       *database.Database
	books    *books.Repository
	sessions *sessions.Repository
	notes    *notes.Repository
	settings *settings.Repository
}

func openApp(cfg *config.Config) (*app, error) {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &app{
		db:       db,
		books:    books.NewRepository(db.DB),
		sessions: sessions.NewRepository(db.DB),
		notes:    notes.NewRepository(db.DB),
		settings: settings.NewRepository(db.DB),
	}, nil
}

func (a *app) stores() shell.Stores {
	return shell.Stores{
		Books:    a.books,
		Sessions: a.sessions,
		Notes:    a.notes,
		Settings: a.settings,
	}
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		log.Printf("[DB] Failed to close database: %v", err)
	}
}

// redirectLog sends the standard logger to path so log lines do not
// interleave with the interactive display. It returns a function that
// restores stderr.
func redirectLog(path string) (func(), error) {
	if path == "" {
		return func() {}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)

	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}, nil
}
