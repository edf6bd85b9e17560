package sessions

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/apperr"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB, func()) {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}
	return NewRepository(db.DB), db.DB, cleanup
}

func seedBook(t *testing.T, db *gorm.DB) *entities.Book {
	t.Helper()
	book := &entities.Book{Title: "Middlemarch", Author: "George Eliot"}
	require.NoError(t, db.Create(book).Error)
	return book
}

func bookStatus(t *testing.T, db *gorm.DB, id uint) entities.ReadingStatus {
	t.Helper()
	var book entities.Book
	require.NoError(t, db.First(&book, id).Error)
	return book.Status
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRepository_StartSession(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	book := seedBook(t, db)

	session, err := repo.StartSession(book.ID, time.Date(2024, 3, 1, 21, 15, 0, 0, time.UTC), " chapter one ")
	require.NoError(t, err)

	assert.NotZero(t, session.ID)
	assert.True(t, session.InProgress())
	assert.Equal(t, day(2024, 3, 1), session.StartDate)
	assert.Equal(t, "chapter one", session.SessionNotes)
	assert.Equal(t, entities.StatusReading, bookStatus(t, db, book.ID))
}

func TestRepository_StartSession_Errors(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.StartSession(404, day(2024, 3, 1), "")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	book := seedBook(t, db)
	_, err = repo.StartSession(book.ID, time.Time{}, "")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	var n int64
	require.NoError(t, db.Model(&entities.ReadingSession{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestRepository_StartSession_ClosesOpenSession(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	book := seedBook(t, db)

	first, err := repo.StartSession(book.ID, day(2024, 3, 1), "")
	require.NoError(t, err)
	second, err := repo.StartSession(book.ID, day(2024, 3, 10), "")
	require.NoError(t, err)

	closed, err := repo.GetSessionByID(first.ID)
	require.NoError(t, err)
	require.NotNil(t, closed.EndDate)
	assert.True(t, day(2024, 3, 10).Equal(*closed.EndDate))
	assert.False(t, closed.Completed)

	current, err := repo.GetCurrentSession(book.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)
}

func TestRepository_StartSession_BeforeOpenSession(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	book := seedBook(t, db)

	open, err := repo.StartSession(book.ID, day(2024, 3, 10), "")
	require.NoError(t, err)

	_, err = repo.StartSession(book.ID, day(2024, 3, 1), "")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	// Rolled back: the open session is untouched.
	stored, err := repo.GetSessionByID(open.ID)
	require.NoError(t, err)
	assert.True(t, stored.InProgress())
}

func TestRepository_EndSession(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	book := seedBook(t, db)
	session, err := repo.StartSession(book.ID, day(2024, 3, 1), "started")
	require.NoError(t, err)

	ended, err := repo.EndSession(session.ID, day(2024, 3, 20), true, "wonderful")
	require.NoError(t, err)

	require.NotNil(t, ended.EndDate)
	assert.True(t, day(2024, 3, 20).Equal(*ended.EndDate))
	assert.True(t, ended.Completed)
	assert.Equal(t, "wonderful", ended.SessionNotes)
	assert.Equal(t, entities.StatusFinished, bookStatus(t, db, book.ID))
}

func TestRepository_EndSession_SameDay(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	book := seedBook(t, db)
	session, err := repo.StartSession(book.ID, day(2024, 3, 1), "")
	require.NoError(t, err)

	ended, err := repo.EndSession(session.ID, day(2024, 3, 1), false, "")
	require.NoError(t, err)
	assert.False(t, ended.Completed)
	assert.Equal(t, entities.StatusReading, bookStatus(t, db, book.ID))
}

func TestRepository_EndSession_BeforeStart(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	book := seedBook(t, db)
	session, err := repo.StartSession(book.ID, day(2024, 3, 10), "")
	require.NoError(t, err)

	_, err = repo.EndSession(session.ID, day(2024, 3, 9), true, "")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	stored, err := repo.GetSessionByID(session.ID)
	require.NoError(t, err)
	assert.True(t, stored.InProgress())
	assert.Equal(t, entities.StatusReading, bookStatus(t, db, book.ID))
}

func TestRepository_EndSession_AlreadyEnded(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	book := seedBook(t, db)
	session, err := repo.StartSession(book.ID, day(2024, 3, 1), "")
	require.NoError(t, err)
	_, err = repo.EndSession(session.ID, day(2024, 3, 5), false, "")
	require.NoError(t, err)

	_, err = repo.EndSession(session.ID, day(2024, 3, 9), true, "")
	assert.ErrorIs(t, err, apperr.ErrConstraint)

	stored, err := repo.GetSessionByID(session.ID)
	require.NoError(t, err)
	assert.True(t, day(2024, 3, 5).Equal(*stored.EndDate))
	assert.False(t, stored.Completed)
}

func TestRepository_EndSession_NotFound(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.EndSession(77, day(2024, 3, 1), false, "")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRepository_EndCurrentSession(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	book := seedBook(t, db)

	_, err := repo.EndCurrentSession(book.ID, day(2024, 3, 1), false, "")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	started, err := repo.StartSession(book.ID, day(2024, 3, 1), "")
	require.NoError(t, err)

	ended, err := repo.EndCurrentSession(book.ID, day(2024, 3, 2), true, "")
	require.NoError(t, err)
	assert.Equal(t, started.ID, ended.ID)

	_, err = repo.GetCurrentSession(book.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRepository_GetSessionsForBook(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	book := seedBook(t, db)
	other := &entities.Book{Title: "Emma", Author: "Jane Austen"}
	require.NoError(t, db.Create(other).Error)

	for _, d := range []int{1, 15, 8} {
		s, err := repo.StartSession(book.ID, day(2024, 4, d), "")
		require.NoError(t, err)
		_, err = repo.EndSession(s.ID, day(2024, 4, d), false, "")
		require.NoError(t, err)
	}
	_, err := repo.StartSession(other.ID, day(2024, 4, 2), "")
	require.NoError(t, err)

	list, err := repo.GetSessionsForBook(book.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.True(t, day(2024, 4, 15).Equal(list[0].StartDate))
	assert.True(t, day(2024, 4, 8).Equal(list[1].StartDate))
	assert.True(t, day(2024, 4, 1).Equal(list[2].StartDate))
}

func TestRepository_GetSessionsForBook_MissingBook(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	list, err := repo.GetSessionsForBook(404)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Nil(t, list)
}
