package shell

import (
	"errors"
	"io"
	"os"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/mrlokans/bookshelf/internal/autocomplete"
)

// ErrAborted is returned by a Prompter when the user cancels the form with
// Ctrl-C or end of input.
var ErrAborted = errors.New("aborted")

// Prompter asks the user for field values.
type Prompter interface {
	// Prompt asks for a line of text, offering def as an editable default.
	Prompt(label, def string) (string, error)
	// PickAuthor asks for an author name with suggestions from authors.
	PickAuthor(label string, authors []string, initial string) (string, error)
}

// linePrompter reads fields with liner and, on a real terminal, lets the
// author picker take over the screen.
type linePrompter struct {
	line   *liner.State
	picker *picker
	limit  int
}

func newLinePrompter(line *liner.State, limit int) *linePrompter {
	p := &linePrompter{line: line, limit: limit}
	if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		p.picker = newPicker(os.Stdin, os.Stdout, limit)
	}
	return p
}

func (p *linePrompter) Prompt(label, def string) (string, error) {
	var (
		text string
		err  error
	)
	if def == "" {
		text, err = p.line.Prompt(label + ": ")
	} else {
		text, err = p.line.PromptWithSuggestion(label+": ", def, -1)
	}
	if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
		return "", ErrAborted
	}
	return text, err
}

func (p *linePrompter) PickAuthor(label string, authors []string, initial string) (string, error) {
	if p.picker != nil {
		return p.picker.Pick(label, authors, initial)
	}

	// Without a terminal fall back to tab completion on the plain prompt.
	p.line.SetCompleter(func(text string) []string {
		suggestions := autocomplete.Filter(text, authors)
		if p.limit > 0 && len(suggestions) > p.limit {
			suggestions = suggestions[:p.limit]
		}
		return suggestions
	})
	defer p.line.SetCompleter(completeCommand)

	return p.Prompt(label, initial)
}
