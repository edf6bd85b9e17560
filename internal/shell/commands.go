package shell

import (
	"sort"
	"strings"
)

type command struct {
	name    string
	aliases []string
	usage   string
	help    string
	run     func(s *Shell, args []string) error
}

var commands []command

func init() {
	commands = []command{
		{name: "list", aliases: []string{"ls"}, usage: "list [status]", help: "List books, optionally only those with a status", run: (*Shell).cmdList},
		{name: "search", aliases: []string{"find"}, usage: "search <text>", help: "Find books by title or author", run: (*Shell).cmdSearch},
		{name: "add", usage: "add", help: "Add a book", run: (*Shell).cmdAdd},
		{name: "show", aliases: []string{"info"}, usage: "show <book>", help: "Show a book with its current session", run: (*Shell).cmdShow},
		{name: "edit", usage: "edit <book>", help: "Edit the fields of a book", run: (*Shell).cmdEdit},
		{name: "status", usage: "status <book> [status]", help: "Set the reading status of a book", run: (*Shell).cmdStatus},
		{name: "delete", aliases: []string{"rm"}, usage: "delete <book>", help: "Delete a book with its sessions and notes", run: (*Shell).cmdDelete},
		{name: "start", usage: "start <book> [date]", help: "Start a reading session (date defaults to today)", run: (*Shell).cmdStart},
		{name: "end", aliases: []string{"finish"}, usage: "end <book> [date]", help: "End the open reading session of a book", run: (*Shell).cmdEnd},
		{name: "sessions", usage: "sessions <book>", help: "List the reading sessions of a book", run: (*Shell).cmdSessions},
		{name: "note", usage: "note <book> [type]", help: "Add a note to a book", run: (*Shell).cmdNote},
		{name: "notes", usage: "notes <book>", help: "List the notes of a book", run: (*Shell).cmdNotes},
		{name: "rmnote", usage: "rmnote <note>", help: "Delete a note", run: (*Shell).cmdRemoveNote},
		{name: "authors", usage: "authors", help: "List known authors", run: (*Shell).cmdAuthors},
		{name: "stats", usage: "stats", help: "Show library totals", run: (*Shell).cmdStats},
		{name: "export", usage: "export [dir]", help: "Export every book as Markdown", run: (*Shell).cmdExport},
		{name: "import", usage: "import <My Clippings.txt>", help: "Import Kindle highlights and notes", run: (*Shell).cmdImport},
		{name: "set", usage: "set [key value]", help: "Show or change settings", run: (*Shell).cmdSet},
		{name: "help", aliases: []string{"?"}, usage: "help", help: "Show this help", run: (*Shell).cmdHelp},
	}
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
		for _, alias := range c.aliases {
			if alias == name {
				return c, true
			}
		}
	}
	return command{}, false
}

// completeCommand completes the command name at the start of the line.
func completeCommand(line string) []string {
	if strings.Contains(line, " ") {
		return nil
	}

	prefix := strings.ToLower(line)
	var out []string
	for _, c := range commands {
		if strings.HasPrefix(c.name, prefix) {
			out = append(out, c.name)
		}
	}
	if strings.HasPrefix("quit", prefix) {
		out = append(out, "quit")
	}
	sort.Strings(out)
	return out
}

func (s *Shell) cmdHelp([]string) error {
	s.printf("Commands:\n")
	for _, c := range commands {
		s.printf("  %-28s %s\n", c.usage, c.help)
	}
	s.printf("  %-28s %s\n", "quit", "Leave the shell")
	s.printf("\nDates accept 2024-01-15, January 15, 2024, 01/15/2024, today, yesterday,\n")
	s.printf("tomorrow, N days ago, next <weekday> and last <weekday>.\n")
	return nil
}
