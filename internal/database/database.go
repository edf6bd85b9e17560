package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookshelf/internal/apperr"
	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// uriPathEscaper escapes the characters SQLite treats as URI delimiters in
// the path part of a file: DSN.
var uriPathEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens (or creates) the SQLite database at dbPath with SQL
// logging disabled.
func NewDatabase(dbPath string) (*Database, error) {
	return Open(config.Database{Path: dbPath, LogLevel: config.DBLogSilent})
}

// Open opens (or creates) the database described by cfg, enables foreign key
// enforcement and migrates the schema.
func Open(cfg config.Database) (*Database, error) {
	// Ensure directory exists so first-run succeeds.
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	// Cascading deletes rely on SQLite enforcing foreign keys on every connection.
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=1", uriPathEscaper.Replace(cfg.Path))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.Book{},
		&entities.ReadingSession{},
		&entities.Note{},
		&entities.Setting{},
	)
	if err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("[DB] Database initialized successfully at %s", cfg.Path)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func closeQuietly(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

func gormLogLevel(level config.DBLogLevel) logger.LogLevel {
	switch level {
	case config.DBLogInfo:
		return logger.Info
	case config.DBLogWarn:
		return logger.Warn
	case config.DBLogError:
		return logger.Error
	default:
		return logger.Silent
	}
}

// Translate maps driver and ORM errors onto apperr kinds. entity and id name
// the row the caller was looking for and are only used for NotFound.
func Translate(err error, entity string, id uint) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, apperr.ErrValidation) || errors.Is(err, apperr.ErrNotFound) || errors.Is(err, apperr.ErrConstraint) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(entity, id)
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique:
			return apperr.Constraint("%s already exists: %v", entity, sqliteErr)
		case sqlite3.ErrConstraintForeignKey:
			return apperr.Constraint("%s references a missing row: %v", entity, sqliteErr)
		case sqlite3.ErrConstraintNotNull:
			return apperr.Validation("%s is missing a required field: %v", entity, sqliteErr)
		default:
			return apperr.Constraint("%s: %v", entity, sqliteErr)
		}
	}
	return err
}

// RequireBook returns apperr.ErrNotFound unless a book with id exists. Child
// repositories call it inside their transaction before writing.
func RequireBook(tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.Model(&entities.Book{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apperr.NotFound("book", id)
	}
	return nil
}
