package shell

import (
	"strconv"
	"strings"
	"time"

	"github.com/mrlokans/bookshelf/internal/apperr"
	"github.com/mrlokans/bookshelf/internal/dates"
)

func (s *Shell) ask(label, def string) (string, error) {
	text, err := s.prompt.Prompt(label, def)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// askInt reads an optional non-negative number. Blank input yields def.
func (s *Shell) askInt(label string, def int) (int, error) {
	defText := ""
	if def > 0 {
		defText = strconv.Itoa(def)
	}
	text, err := s.ask(label, defText)
	if err != nil || text == "" {
		return def, err
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, apperr.Validation("%s must be a number, got %q", strings.ToLower(label), text)
	}
	return n, nil
}

func (s *Shell) askDate(label, def string) (time.Time, error) {
	text, err := s.ask(label, def)
	if err != nil {
		return time.Time{}, err
	}
	return dates.Parse(text, s.now())
}

func (s *Shell) confirm(question string) (bool, error) {
	answer, err := s.ask(question+" [y/N]", "")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// idArg takes the id from the first argument or asks for it.
func (s *Shell) idArg(args []string, label string) (uint, []string, error) {
	var text string
	if len(args) > 0 {
		text, args = args[0], args[1:]
	} else {
		var err error
		if text, err = s.ask(label, ""); err != nil {
			return 0, nil, err
		}
	}

	id, err := strconv.ParseUint(text, 10, 64)
	if err != nil || id == 0 {
		return 0, nil, apperr.Validation("%s must be a positive number, got %q", strings.ToLower(label), text)
	}
	return uint(id), args, nil
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
