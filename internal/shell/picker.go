package shell

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/mrlokans/bookshelf/internal/autocomplete"
)

// picker is a full-keyboard suggestion prompt. It puts the terminal into
// raw mode, feeds keystrokes into an autocomplete.Model and redraws the
// suggestion panel below the input line after each key.
//
//	↑/↓, Ctrl-P/Ctrl-N, Tab   move the highlight
//	Enter                     take the highlighted suggestion or the typed text
//	Esc                       hide suggestions and keep the typed text
//	Ctrl-C                    abort the whole form
type picker struct {
	in    *os.File
	out   io.Writer
	limit int
}

func newPicker(in *os.File, out io.Writer, limit int) *picker {
	return &picker{in: in, out: out, limit: limit}
}

func (p *picker) Pick(label string, candidates []string, initial string) (string, error) {
	fd := int(p.in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("enter raw mode: %w", err)
	}
	defer term.Restore(fd, state)

	width := 80
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		width = w
	}

	prompt := label + ": "
	ed := newPickerEditor(candidates, initial, p.limit)
	buf := make([]byte, 32)

	for {
		p.draw(prompt, ed, width)

		n, err := p.in.Read(buf)
		if err != nil {
			p.finish(prompt, "")
			return "", ErrAborted
		}
		if aborted := ed.apply(decodeKey(buf[:n])); aborted {
			p.finish(prompt, "")
			return "", ErrAborted
		}
		if value, done := ed.result(); done {
			p.finish(prompt, value)
			return value, nil
		}
	}
}

func (p *picker) draw(prompt string, ed *pickerEditor, width int) {
	var b strings.Builder

	b.WriteString("\r\x1b[J")
	b.WriteString(prompt)
	b.WriteString(string(ed.input))

	lines := panelLines(ed.model, width)
	for i, line := range lines {
		b.WriteString("\r\n")
		if i == ed.model.Highlighted() {
			b.WriteString("\x1b[7m" + line + "\x1b[0m")
		} else {
			b.WriteString(line)
		}
	}

	if len(lines) > 0 {
		fmt.Fprintf(&b, "\x1b[%dA", len(lines))
	}
	b.WriteString("\r")
	if col := runewidth.StringWidth(prompt + string(ed.input)); col > 0 {
		fmt.Fprintf(&b, "\x1b[%dC", col)
	}

	io.WriteString(p.out, b.String())
}

func (p *picker) finish(prompt, value string) {
	io.WriteString(p.out, "\r\x1b[J"+prompt+value+"\r\n")
}

// panelLines renders the suggestion panel. The highlighted suggestion is
// marked with "> ".
func panelLines(m *autocomplete.Model, width int) []string {
	if !m.PanelVisible() {
		return nil
	}

	suggestions := m.Suggestions()
	if len(suggestions) == 0 {
		return []string{"  (no matches)"}
	}

	lines := make([]string, len(suggestions))
	for i, s := range suggestions {
		marker := "  "
		if i == m.Highlighted() {
			marker = "> "
		}
		lines[i] = marker + runewidth.Truncate(s, width-len(marker)-1, "…")
	}
	return lines
}

type keyKind int

const (
	keyIgnore keyKind = iota
	keyText
	keyBackspace
	keyClear
	keyUp
	keyDown
	keyEnter
	keyEscape
	keyInterrupt
)

type key struct {
	kind keyKind
	text string
}

// decodeKey interprets one read from a raw terminal. Arrow keys arrive as a
// single escape sequence; a lone ESC byte is the escape key itself.
func decodeKey(b []byte) key {
	if len(b) == 0 {
		return key{kind: keyIgnore}
	}

	switch b[0] {
	case 3, 4: // Ctrl-C, Ctrl-D
		return key{kind: keyInterrupt}
	case '\r', '\n':
		return key{kind: keyEnter}
	case 127, 8:
		return key{kind: keyBackspace}
	case 21: // Ctrl-U
		return key{kind: keyClear}
	case 16: // Ctrl-P
		return key{kind: keyUp}
	case 14, '\t': // Ctrl-N
		return key{kind: keyDown}
	case 27:
		if len(b) == 1 {
			return key{kind: keyEscape}
		}
		if len(b) >= 3 && (b[1] == '[' || b[1] == 'O') {
			switch b[2] {
			case 'A':
				return key{kind: keyUp}
			case 'B':
				return key{kind: keyDown}
			}
		}
		return key{kind: keyIgnore}
	}

	if !utf8.Valid(b) {
		return key{kind: keyIgnore}
	}
	text := strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, string(b))
	if text == "" {
		return key{kind: keyIgnore}
	}
	return key{kind: keyText, text: text}
}

// pickerEditor couples the typed text with the autocomplete model.
type pickerEditor struct {
	model *autocomplete.Model
	input []rune
}

func newPickerEditor(candidates []string, initial string, limit int) *pickerEditor {
	ed := &pickerEditor{
		model: autocomplete.New(candidates, autocomplete.WithLimit(limit)),
		input: []rune(initial),
	}
	ed.model.SetInput(initial)
	return ed
}

// apply feeds one key into the model and reports whether the user aborted.
func (ed *pickerEditor) apply(k key) bool {
	switch k.kind {
	case keyInterrupt:
		return true
	case keyText:
		ed.input = append(ed.input, []rune(k.text)...)
		ed.model.SetInput(string(ed.input))
	case keyBackspace:
		if len(ed.input) > 0 {
			ed.input = ed.input[:len(ed.input)-1]
			ed.model.SetInput(string(ed.input))
		}
	case keyClear:
		ed.input = nil
		ed.model.SetInput("")
	case keyUp:
		ed.model.Up()
	case keyDown:
		ed.model.Down()
	case keyEnter:
		ed.model.Confirm()
	case keyEscape:
		ed.model.Cancel()
	}
	return false
}

// result returns the field value once the model reached a terminal state.
// A dismissed picker keeps the text as typed.
func (ed *pickerEditor) result() (string, bool) {
	switch ed.model.State() {
	case autocomplete.Selected:
		value, _ := ed.model.Value()
		return value, true
	case autocomplete.Dismissed:
		return ed.model.Input(), true
	default:
		return "", false
	}
}
