// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, foreign keys, migrations, error translation
//	├── books/           # Book CRUD, author corpus, search, stats
//	├── sessions/        # Reading session lifecycle
//	├── notes/           # Notes attached to books
//	└── settings/        # Application settings
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	db, err := database.NewDatabase("./book_library.db")
//
//	booksRepo := books.NewRepository(db.DB)
//	sessionsRepo := sessions.NewRepository(db.DB)
//
//	book, err := booksRepo.GetBookByID(123)
//	session, err := sessionsRepo.StartSession(book.ID, start, "")
//
// # Integrity
//
// Reading sessions and notes carry a foreign key to books with ON DELETE
// CASCADE, and the connection is opened with foreign keys enforced. Book
// deletion additionally removes children explicitly inside one transaction,
// so the outcome does not depend on the pragma alone.
//
// Every mutating repository method runs inside gorm's Transaction helper:
// the transaction commits when the callback returns nil and rolls back on an
// error or panic. Errors leave the package already mapped to apperr kinds.
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Register the entity in Open's AutoMigrate call
//  5. Add compile-time interface check: var _ SomeInterface = (*Repository)(nil)
package database
