package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/database/notes"
	"github.com/mrlokans/bookshelf/internal/database/sessions"
	"github.com/mrlokans/bookshelf/internal/database/settings"
	"github.com/mrlokans/bookshelf/internal/importers"
	"github.com/mrlokans/bookshelf/internal/shell"
)

// =============================================================================
// Shell
// =============================================================================

var _ shell.BookStore = (*books.Repository)(nil)
var _ shell.SessionStore = (*sessions.Repository)(nil)
var _ shell.NoteStore = (*notes.Repository)(nil)
var _ shell.SettingStore = (*settings.Repository)(nil)

// =============================================================================
// Import Pipeline
// =============================================================================

var _ importers.BookStore = (*books.Repository)(nil)
var _ importers.NoteStore = (*notes.Repository)(nil)
