package shell

import (
	"strings"

	"github.com/mrlokans/bookshelf/internal/entities"
)

func (s *Shell) cmdNote(args []string) error {
	id, rest, err := s.idArg(args, "Book ID")
	if err != nil {
		return err
	}
	book, err := s.stores.Books.GetBookByID(id)
	if err != nil {
		return err
	}

	typeText := strings.Join(rest, " ")
	if typeText == "" {
		if typeText, err = s.ask("Type (review/highlight/thought/quote)", string(entities.NoteTypeThought)); err != nil {
			return err
		}
	}
	noteType, err := entities.ParseNoteType(typeText)
	if err != nil {
		return err
	}

	note := &entities.Note{BookID: book.ID, Type: noteType}
	if note.Title, err = s.ask("Title (optional)", ""); err != nil {
		return err
	}
	if note.Content, err = s.ask("Content", ""); err != nil {
		return err
	}
	if note.PageNumber, err = s.askInt("Page (optional)", 0); err != nil {
		return err
	}

	if err := s.stores.Notes.AddNote(note); err != nil {
		return err
	}
	s.printf("Added %s note %d to %q.\n", strings.ToLower(noteType.DisplayName()), note.ID, book.Title)
	return nil
}

func (s *Shell) cmdNotes(args []string) error {
	id, _, err := s.idArg(args, "Book ID")
	if err != nil {
		return err
	}
	if _, err := s.stores.Books.GetBookByID(id); err != nil {
		return err
	}

	list, err := s.stores.Notes.GetNotesForBook(id)
	if err != nil {
		return err
	}
	s.renderNotes(list)
	return nil
}

func (s *Shell) cmdRemoveNote(args []string) error {
	id, _, err := s.idArg(args, "Note ID")
	if err != nil {
		return err
	}
	note, err := s.stores.Notes.GetNoteByID(id)
	if err != nil {
		return err
	}

	ok, err := s.confirm("Delete " + strings.ToLower(note.Type.DisplayName()) + " note \"" + truncate(oneLine(note.Content), 40) + "\"?")
	if err != nil {
		return err
	}
	if !ok {
		s.printf("Kept.\n")
		return nil
	}

	if err := s.stores.Notes.DeleteNote(id); err != nil {
		return err
	}
	s.printf("Deleted note %d.\n", id)
	return nil
}
