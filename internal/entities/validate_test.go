package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/apperr"
)

func validBook() *Book {
	return &Book{
		Title:  "Dune",
		Author: "Frank Herbert",
		Type:   BookTypePhysical,
		Status: StatusUnread,
	}
}

func TestValidate_Book(t *testing.T) {
	require.NoError(t, Validate(validBook()))

	tests := []struct {
		name    string
		mutate  func(b *Book)
		message string
	}{
		{"empty title", func(b *Book) { b.Title = "" }, "validation: title is required"},
		{"empty author", func(b *Book) { b.Author = "" }, "validation: author is required"},
		{"bad type", func(b *Book) { b.Type = "scroll" }, "validation: type must be one of: physical, ebook, audiobook"},
		{"bad status", func(b *Book) { b.Status = "lost" }, "validation: status must be one of: unread, reading, finished, abandoned"},
		{"negative pages", func(b *Book) { b.Pages = -1 }, "validation: pages must be at least 0"},
		{"year out of range", func(b *Book) { b.PublicationYear = 12000 }, "validation: publication year must be at most 9999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBook()
			tt.mutate(b)

			err := Validate(b)

			require.Error(t, err)
			assert.True(t, errors.Is(err, apperr.ErrValidation))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestValidate_NoteIgnoresBookAssociation(t *testing.T) {
	note := &Note{BookID: 1, Type: NoteTypeQuote, Content: "It is by will alone"}

	assert.NoError(t, Validate(note))

	note.Content = ""
	assert.EqualError(t, Validate(note), "validation: content is required")
}

func TestParseEnums(t *testing.T) {
	bt, err := ParseBookType("E-book")
	require.NoError(t, err)
	assert.Equal(t, BookTypeEbook, bt)

	st, err := ParseReadingStatus("FINISHED")
	require.NoError(t, err)
	assert.Equal(t, StatusFinished, st)

	nt, err := ParseNoteType(" quote ")
	require.NoError(t, err)
	assert.Equal(t, NoteTypeQuote, nt)

	_, err = ParseBookType("scroll")
	assert.True(t, errors.Is(err, apperr.ErrValidation))
	_, err = ParseReadingStatus("")
	assert.True(t, errors.Is(err, apperr.ErrValidation))
	_, err = ParseNoteType("rant")
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}
