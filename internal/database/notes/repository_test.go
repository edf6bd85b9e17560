package notes

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/apperr"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB, func()) {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "notes.db"))
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}
	return NewRepository(db.DB), db.DB, cleanup
}

func seedBook(t *testing.T, db *gorm.DB, title string) *entities.Book {
	t.Helper()
	book := &entities.Book{Title: title, Author: "Marcus Aurelius"}
	require.NoError(t, db.Create(book).Error)
	return book
}

func TestRepository_AddNote(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	book := seedBook(t, db, "Meditations")

	note := &entities.Note{
		BookID:     book.ID,
		Type:       entities.NoteTypeQuote,
		Title:      " Book II ",
		Content:    "  The impediment to action advances action.  ",
		PageNumber: 17,
	}
	require.NoError(t, repo.AddNote(note))
	assert.NotZero(t, note.ID)

	stored, err := repo.GetNoteByID(note.ID)
	require.NoError(t, err)
	assert.Equal(t, "Book II", stored.Title)
	assert.Equal(t, "The impediment to action advances action.", stored.Content)
	assert.Equal(t, entities.NoteTypeQuote, stored.Type)
	assert.Equal(t, 17, stored.PageNumber)
}

func TestRepository_AddNote_Errors(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	book := seedBook(t, db, "Meditations")

	tests := []struct {
		name string
		note entities.Note
		want error
	}{
		{"missing book", entities.Note{BookID: book.ID + 1, Type: entities.NoteTypeThought, Content: "x"}, apperr.ErrNotFound},
		{"empty content", entities.Note{BookID: book.ID, Type: entities.NoteTypeThought, Content: "   "}, apperr.ErrValidation},
		{"unknown type", entities.Note{BookID: book.ID, Type: "doodle", Content: "x"}, apperr.ErrValidation},
		{"negative page", entities.Note{BookID: book.ID, Type: entities.NoteTypeReview, Content: "x", PageNumber: -3}, apperr.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note := tt.note
			assert.ErrorIs(t, repo.AddNote(&note), tt.want)
		})
	}

	var n int64
	require.NoError(t, db.Model(&entities.Note{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestRepository_GetNotesForBook_NewestFirst(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	book := seedBook(t, db, "Meditations")
	other := seedBook(t, db, "Letters")

	for _, content := range []string{"first", "second", "third"} {
		require.NoError(t, repo.AddNote(&entities.Note{BookID: book.ID, Type: entities.NoteTypeThought, Content: content}))
	}
	require.NoError(t, repo.AddNote(&entities.Note{BookID: other.ID, Type: entities.NoteTypeThought, Content: "elsewhere"}))

	list, err := repo.GetNotesForBook(book.ID)
	require.NoError(t, err)

	var contents []string
	for _, n := range list {
		contents = append(contents, n.Content)
	}
	assert.Equal(t, []string{"third", "second", "first"}, contents)
}

func TestRepository_DeleteNote(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	book := seedBook(t, db, "Meditations")
	keep := &entities.Note{BookID: book.ID, Type: entities.NoteTypeReview, Content: "keep"}
	drop := &entities.Note{BookID: book.ID, Type: entities.NoteTypeReview, Content: "drop"}
	require.NoError(t, repo.AddNote(keep))
	require.NoError(t, repo.AddNote(drop))

	require.NoError(t, repo.DeleteNote(drop.ID))

	_, err := repo.GetNoteByID(drop.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = repo.GetNoteByID(keep.ID)
	assert.NoError(t, err)

	assert.ErrorIs(t, repo.DeleteNote(drop.ID), apperr.ErrNotFound)
}

func TestRepository_ExistsByExternalID(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	book := seedBook(t, db, "Meditations")
	other := seedBook(t, db, "Letters")
	require.NoError(t, repo.AddNote(&entities.Note{
		BookID: book.ID, Type: entities.NoteTypeHighlight, Content: "x", ExternalID: "kindle-abc",
	}))

	exists, err := repo.ExistsByExternalID(book.ID, "kindle-abc")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByExternalID(other.ID, "kindle-abc")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRepository_GetNotesForBook_MissingBook(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	list, err := repo.GetNotesForBook(404)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Nil(t, list)
}
