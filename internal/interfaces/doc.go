// Package interfaces documents the core abstractions used throughout the application.
//
// Consumers declare the narrow interfaces they need next to the code that uses
// them; the repositories under internal/database satisfy them implicitly.
//
// # Interface Categories
//
// ## Shell
//
//   - BookStore, SessionStore, NoteStore, SettingStore (internal/shell/stores.go)
//
// ## Import Pipeline
//
//   - BookStore, NoteStore (internal/importers/pipeline.go)
//
// ## Export
//
//   - Library: read access to books, sessions and notes (internal/exporters/generic.go)
//
// # Adding a New Import Source
//
//  1. Parse the source into []kindle.Book groups (title, author, notes), giving
//     each note a deterministic ExternalID so re-imports are skipped.
//
//  2. Hand the groups to importers.Pipeline.ImportBooks.
//
//  3. Expose it as a cobra subcommand in internal/cli.
//
// # Adding a New Database Domain
//
//  1. Create sub-package: internal/database/<domain>/
//
//  2. Define repository:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Register the entity with AutoMigrate in database.Open.
//
//  4. Add compile-time check:
//
//     var _ shell.SomeStore = (*Repository)(nil)
//
// # Compile-Time Interface Checks
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces
