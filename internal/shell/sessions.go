package shell

import (
	"strings"
	"time"

	"github.com/mrlokans/bookshelf/internal/dates"
)

func (s *Shell) cmdStart(args []string) error {
	id, rest, err := s.idArg(args, "Book ID")
	if err != nil {
		return err
	}
	book, err := s.stores.Books.GetBookByID(id)
	if err != nil {
		return err
	}

	dateText := strings.Join(rest, " ")
	if dateText == "" {
		dateText = "today"
	}
	start, err := s.askDateOrArg(dateText, len(rest) > 0, "Start date")
	if err != nil {
		return err
	}

	session, err := s.stores.Sessions.StartSession(id, start, "")
	if err != nil {
		return err
	}
	s.printf("Started reading %q on %s (session %d).\n", book.Title, s.formatDate(session.StartDate), session.ID)
	return nil
}

func (s *Shell) cmdEnd(args []string) error {
	id, rest, err := s.idArg(args, "Book ID")
	if err != nil {
		return err
	}
	if _, err := s.stores.Sessions.GetCurrentSession(id); err != nil {
		return err
	}

	dateText := strings.Join(rest, " ")
	if dateText == "" {
		dateText = "today"
	}
	end, err := s.askDateOrArg(dateText, len(rest) > 0, "End date")
	if err != nil {
		return err
	}

	completed, err := s.confirm("Finished the book?")
	if err != nil {
		return err
	}
	notes, err := s.ask("Session notes (optional)", "")
	if err != nil {
		return err
	}

	session, err := s.stores.Sessions.EndCurrentSession(id, end, completed, notes)
	if err != nil {
		return err
	}
	s.printf("Ended session %d on %s.\n", session.ID, s.formatDate(*session.EndDate))
	return nil
}

// askDateOrArg parses a date given on the command line, or asks for one
// with text as the default.
func (s *Shell) askDateOrArg(text string, given bool, label string) (time.Time, error) {
	if given {
		return dates.Parse(text, s.now())
	}
	return s.askDate(label, text)
}

func (s *Shell) cmdSessions(args []string) error {
	id, _, err := s.idArg(args, "Book ID")
	if err != nil {
		return err
	}
	if _, err := s.stores.Books.GetBookByID(id); err != nil {
		return err
	}

	list, err := s.stores.Sessions.GetSessionsForBook(id)
	if err != nil {
		return err
	}
	s.renderSessions(list)
	return nil
}
