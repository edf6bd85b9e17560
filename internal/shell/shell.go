// Package shell implements the interactive terminal interface.
//
// The shell is a line-oriented REPL: every command maps onto one or a few
// repository calls, prints the result and returns to the prompt. Errors are
// printed with their kind and never end the session.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/peterh/liner"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/dates"
)

type Shell struct {
	cfg    *config.Config
	stores Stores
	prompt Prompter
	out    io.Writer
	now    func() time.Time
}

// New creates a shell that reads answers from prompt and writes to out.
func New(cfg *config.Config, stores Stores, prompt Prompter, out io.Writer) *Shell {
	return &Shell{
		cfg:    cfg,
		stores: stores,
		prompt: prompt,
		out:    out,
		now:    time.Now,
	}
}

// Run starts the REPL on the process terminal and blocks until the user
// quits.
func Run(cfg *config.Config, stores Stores) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(completeCommand)
	line.SetTabCompletionStyle(liner.TabPrints)

	if f, err := os.Open(cfg.Shell.HistoryFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer saveHistory(line, cfg.Shell.HistoryFile)

	prompter := newLinePrompter(line, cfg.Shell.SuggestionLimit)
	s := New(cfg, stores, prompter, os.Stdout)

	fmt.Fprintln(s.out, "bookshelf - personal book tracker")
	fmt.Fprintln(s.out, "Type 'help' for available commands.")
	fmt.Fprintln(s.out)

	for {
		input, err := line.Prompt("bookshelf> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out, "\nBye!")
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if s.Execute(input) {
			fmt.Fprintln(s.out, "Bye!")
			return nil
		}
	}
}

func saveHistory(line *liner.State, path string) {
	if path == "" {
		return
	}
	if f, err := os.Create(path); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
}

// Execute runs one command line and reports whether the user asked to quit.
func (s *Shell) Execute(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return false
	}
	name, args := strings.ToLower(parts[0]), parts[1:]

	if name == "quit" || name == "exit" || name == "q" {
		return true
	}

	cmd, ok := lookup(name)
	if !ok {
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", name)
		return false
	}

	if err := cmd.run(s, args); err != nil {
		s.fail(err)
	}
	return false
}

func (s *Shell) fail(err error) {
	if errors.Is(err, ErrAborted) {
		fmt.Fprintln(s.out, "Cancelled.")
		return
	}
	fmt.Fprintf(s.out, "Error: %v\n", err)
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) formatDate(t time.Time) string {
	return dates.FormatWith(t, s.cfg.Shell.DateDisplayFormat)
}

func (s *Shell) today() time.Time {
	return dates.Day(s.now())
}
