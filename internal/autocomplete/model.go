package autocomplete

import "strings"

type State int

const (
	Idle State = iota
	Filtering
	Navigating
	Selected
	Dismissed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Filtering:
		return "filtering"
	case Navigating:
		return "navigating"
	case Selected:
		return "selected"
	case Dismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state only changes through Reset.
func (s State) Terminal() bool {
	return s == Selected || s == Dismissed
}

// Option configures a Model.
type Option func(*Model)

// WithLimit caps the number of suggestions. Zero or less means unlimited.
func WithLimit(n int) Option {
	return func(m *Model) {
		m.limit = n
	}
}

// Model is the selection state machine for one input field. Navigation is
// clamped at both ends of the suggestion list; it never wraps around.
type Model struct {
	candidates  []string
	limit       int
	state       State
	input       string
	suggestions []string
	highlighted int
	value       string
}

// New creates a model in the Idle state over the given candidates.
func New(candidates []string, opts ...Option) *Model {
	m := &Model{
		candidates:  candidates,
		highlighted: -1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetInput replaces the typed text and recomputes the suggestions. Any
// highlight is dropped.
func (m *Model) SetInput(text string) {
	if m.state.Terminal() {
		return
	}
	m.input = text
	m.highlighted = -1

	if strings.TrimSpace(text) == "" {
		m.state = Idle
		m.suggestions = nil
		return
	}

	m.state = Filtering
	m.suggestions = Filter(text, m.candidates)
	if m.limit > 0 && len(m.suggestions) > m.limit {
		m.suggestions = m.suggestions[:m.limit]
	}
}

// Down highlights the next suggestion, or the first one when nothing is
// highlighted yet.
func (m *Model) Down() {
	if !m.navigable() {
		return
	}
	if m.highlighted < len(m.suggestions)-1 {
		m.highlighted++
	}
	m.state = Navigating
}

// Up highlights the previous suggestion. It does nothing while no
// suggestion is highlighted.
func (m *Model) Up() {
	if !m.navigable() || m.highlighted < 0 {
		return
	}
	if m.highlighted > 0 {
		m.highlighted--
	}
	m.state = Navigating
}

func (m *Model) navigable() bool {
	return (m.state == Filtering || m.state == Navigating) && len(m.suggestions) > 0
}

// Confirm commits the highlighted suggestion, or the typed text verbatim
// when nothing is highlighted.
func (m *Model) Confirm() {
	if m.state.Terminal() {
		return
	}
	if m.state == Navigating && m.highlighted >= 0 {
		m.value = m.suggestions[m.highlighted]
	} else {
		m.value = m.input
	}
	m.state = Selected
}

// Cancel hides the suggestions and leaves the typed text as it is.
func (m *Model) Cancel() {
	if m.state.Terminal() {
		return
	}
	m.state = Dismissed
	m.highlighted = -1
}

// Reset returns the model to Idle with empty input.
func (m *Model) Reset() {
	m.state = Idle
	m.input = ""
	m.suggestions = nil
	m.highlighted = -1
	m.value = ""
}

// SetCandidates swaps the candidate corpus and resets the model.
func (m *Model) SetCandidates(candidates []string) {
	m.candidates = candidates
	m.Reset()
}

func (m *Model) State() State {
	return m.state
}

func (m *Model) Input() string {
	return m.input
}

// Suggestions returns the current suggestion list. It is empty outside
// Filtering and Navigating.
func (m *Model) Suggestions() []string {
	if m.state != Filtering && m.state != Navigating {
		return nil
	}
	return m.suggestions
}

// Highlighted returns the index of the highlighted suggestion or -1.
func (m *Model) Highlighted() int {
	return m.highlighted
}

// PanelVisible reports whether a suggestion panel should be drawn. An empty
// candidate corpus never shows one; a query without matches shows an empty
// panel.
func (m *Model) PanelVisible() bool {
	if len(m.candidates) == 0 {
		return false
	}
	return m.state == Filtering || m.state == Navigating
}

// Value returns the committed value once the model reached Selected.
func (m *Model) Value() (string, bool) {
	if m.state != Selected {
		return "", false
	}
	return m.value, true
}
