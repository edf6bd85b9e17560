package shell

import (
	"errors"
	"strconv"
	"strings"

	"github.com/mrlokans/bookshelf/internal/apperr"
	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/entities"
)

func (s *Shell) cmdList(args []string) error {
	list, err := s.stores.Books.GetAllBooks()
	if err != nil {
		return err
	}

	if len(args) > 0 {
		status, err := entities.ParseReadingStatus(strings.Join(args, " "))
		if err != nil {
			return err
		}
		filtered := list[:0]
		for _, b := range list {
			if b.Status == status {
				filtered = append(filtered, b)
			}
		}
		list = filtered
	}

	counts, err := s.stores.Books.NoteCounts()
	if err != nil {
		return err
	}
	s.renderBooks(list, counts)
	return nil
}

func (s *Shell) cmdSearch(args []string) error {
	query := strings.Join(args, " ")
	if query == "" {
		var err error
		if query, err = s.ask("Search", ""); err != nil {
			return err
		}
	}

	list, err := s.stores.Books.SearchBooks(query)
	if err != nil {
		return err
	}
	counts, err := s.stores.Books.NoteCounts()
	if err != nil {
		return err
	}
	s.renderBooks(list, counts)
	return nil
}

func (s *Shell) cmdAdd([]string) error {
	book := &entities.Book{}
	var err error

	if book.Title, err = s.ask("Title", ""); err != nil {
		return err
	}
	if book.Author, err = s.askAuthor(""); err != nil {
		return err
	}

	isbn, err := s.ask("ISBN (optional)", "")
	if err != nil {
		return err
	}
	book.ISBN = &isbn

	defType, err := s.stores.Settings.GetValue(entities.SettingKeyDefaultBookType, string(entities.BookTypePhysical))
	if err != nil {
		return err
	}
	if book.Type, err = s.askBookType(entities.BookType(defType)); err != nil {
		return err
	}
	if book.Publisher, err = s.ask("Publisher (optional)", ""); err != nil {
		return err
	}
	if book.PublicationYear, err = s.askInt("Publication year (optional)", 0); err != nil {
		return err
	}
	if book.Pages, err = s.askInt("Pages (optional)", 0); err != nil {
		return err
	}

	if err := s.stores.Books.CreateBook(book); err != nil {
		return err
	}
	s.printf("Added book %d: %s by %s\n", book.ID, book.Title, book.Author)
	return nil
}

func (s *Shell) askAuthor(initial string) (string, error) {
	authors, err := s.stores.Books.GetUniqueAuthors()
	if err != nil {
		return "", err
	}
	author, err := s.prompt.PickAuthor("Author", authors, initial)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(author), nil
}

func (s *Shell) askBookType(def entities.BookType) (entities.BookType, error) {
	text, err := s.ask("Type (physical/ebook/audiobook)", string(def))
	if err != nil {
		return "", err
	}
	if text == "" {
		return def, nil
	}
	return entities.ParseBookType(text)
}

func (s *Shell) cmdShow(args []string) error {
	id, _, err := s.idArg(args, "Book ID")
	if err != nil {
		return err
	}
	book, err := s.stores.Books.GetBookByID(id)
	if err != nil {
		return err
	}

	s.printf("%s\n", book.Title)
	s.printf("  Author:     %s\n", book.Author)
	if isbn := book.ISBNValue(); isbn != "" {
		s.printf("  ISBN:       %s\n", isbn)
	}
	s.printf("  Type:       %s\n", book.Type.DisplayName())
	s.printf("  Status:     %s\n", book.Status.DisplayName())
	if book.Publisher != "" {
		s.printf("  Publisher:  %s\n", book.Publisher)
	}
	if book.PublicationYear > 0 {
		s.printf("  Published:  %d\n", book.PublicationYear)
	}
	if book.Pages > 0 {
		s.printf("  Pages:      %d\n", book.Pages)
	}
	s.printf("  Added:      %s\n", s.formatDate(book.CreatedAt))

	current, err := s.stores.Sessions.GetCurrentSession(id)
	switch {
	case err == nil:
		s.printf("  Reading since %s\n", s.formatDate(current.StartDate))
	case !errors.Is(err, apperr.ErrNotFound):
		return err
	}

	sessions, err := s.stores.Sessions.GetSessionsForBook(id)
	if err != nil {
		return err
	}
	notes, err := s.stores.Notes.GetNotesForBook(id)
	if err != nil {
		return err
	}
	s.printf("  %d reading sessions, %d notes\n", len(sessions), len(notes))
	return nil
}

func (s *Shell) cmdEdit(args []string) error {
	id, _, err := s.idArg(args, "Book ID")
	if err != nil {
		return err
	}
	book, err := s.stores.Books.GetBookByID(id)
	if err != nil {
		return err
	}

	var update books.BookUpdate

	title, err := s.ask("Title", book.Title)
	if err != nil {
		return err
	}
	if title != book.Title {
		update.Title = &title
	}

	author, err := s.askAuthor(book.Author)
	if err != nil {
		return err
	}
	if author != book.Author {
		update.Author = &author
	}

	isbn, err := s.ask("ISBN (- to clear)", book.ISBNValue())
	if err != nil {
		return err
	}
	if isbn == "-" {
		isbn = ""
	}
	if isbn != book.ISBNValue() {
		update.ISBN = &isbn
	}

	bookType, err := s.askBookType(book.Type)
	if err != nil {
		return err
	}
	if bookType != book.Type {
		update.Type = &bookType
	}

	publisher, err := s.ask("Publisher", book.Publisher)
	if err != nil {
		return err
	}
	if publisher != book.Publisher {
		update.Publisher = &publisher
	}

	year, err := s.askInt("Publication year", book.PublicationYear)
	if err != nil {
		return err
	}
	if year != book.PublicationYear {
		update.PublicationYear = &year
	}

	pages, err := s.askInt("Pages", book.Pages)
	if err != nil {
		return err
	}
	if pages != book.Pages {
		update.Pages = &pages
	}

	if update == (books.BookUpdate{}) {
		s.printf("Nothing changed.\n")
		return nil
	}

	updated, err := s.stores.Books.UpdateBook(id, update)
	if err != nil {
		return err
	}
	s.printf("Updated book %d: %s by %s\n", updated.ID, updated.Title, updated.Author)
	return nil
}

func (s *Shell) cmdStatus(args []string) error {
	id, rest, err := s.idArg(args, "Book ID")
	if err != nil {
		return err
	}

	text := strings.Join(rest, " ")
	if text == "" {
		if text, err = s.ask("Status (unread/reading/finished/abandoned)", ""); err != nil {
			return err
		}
	}
	status, err := entities.ParseReadingStatus(text)
	if err != nil {
		return err
	}

	if err := s.stores.Books.UpdateStatus(id, status); err != nil {
		return err
	}
	s.printf("Book %d is now %s.\n", id, status.DisplayName())
	return nil
}

func (s *Shell) cmdDelete(args []string) error {
	id, _, err := s.idArg(args, "Book ID")
	if err != nil {
		return err
	}
	book, err := s.stores.Books.GetBookByID(id)
	if err != nil {
		return err
	}
	sessions, err := s.stores.Sessions.GetSessionsForBook(id)
	if err != nil {
		return err
	}
	notes, err := s.stores.Notes.GetNotesForBook(id)
	if err != nil {
		return err
	}

	ok, err := s.confirm(
		"Delete \"" + book.Title + "\" with " + plural(len(sessions), "session") + " and " + plural(len(notes), "note") + "?")
	if err != nil {
		return err
	}
	if !ok {
		s.printf("Kept.\n")
		return nil
	}

	if err := s.stores.Books.DeleteBook(id); err != nil {
		return err
	}
	s.printf("Deleted book %d.\n", id)
	return nil
}

func (s *Shell) cmdAuthors([]string) error {
	authors, err := s.stores.Books.GetUniqueAuthors()
	if err != nil {
		return err
	}
	if len(authors) == 0 {
		s.printf("No authors.\n")
		return nil
	}
	for _, a := range authors {
		s.printf("%s\n", a)
	}
	return nil
}

func (s *Shell) cmdStats([]string) error {
	stats, err := s.stores.Books.GetStats()
	if err != nil {
		return err
	}

	s.printf("Books:    %d\n", stats.Books)
	for _, status := range entities.ReadingStatuses {
		s.printf("  %-10s %d\n", status.DisplayName(), stats.ByStatus[status])
	}
	s.printf("Sessions: %d (%d open)\n", stats.Sessions, stats.ActiveSessions)
	s.printf("Notes:    %d\n", stats.Notes)
	return nil
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}
