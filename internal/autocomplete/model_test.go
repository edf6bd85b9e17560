package autocomplete

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

var authors = []string{"Alice Munro", "Bob Dylan", "Donald Barthelme", "Alan Moore"}

func TestModel_StartsIdle(t *testing.T) {
	m := New(authors)

	assert.Equal(t, Idle, m.State())
	assert.False(t, m.PanelVisible())
	assert.Equal(t, -1, m.Highlighted())
	assert.Empty(t, m.Suggestions())
}

func TestModel_SurroundingWhitespaceIgnoredForMatching(t *testing.T) {
	m := New(authors)

	m.SetInput("moore ")
	assert.Equal(t, Filtering, m.State())
	if diff := cmp.Diff([]string{"Alan Moore"}, m.Suggestions()); diff != "" {
		t.Errorf("suggestions mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "moore ", m.Input())

	m.SetInput("   ")
	assert.Equal(t, Idle, m.State())
	assert.False(t, m.PanelVisible())
}

func TestModel_TypingFilters(t *testing.T) {
	m := New(authors)

	m.SetInput("al")
	assert.Equal(t, Filtering, m.State())
	assert.True(t, m.PanelVisible())
	if diff := cmp.Diff([]string{"Alan Moore", "Alice Munro", "Donald Barthelme"}, m.Suggestions()); diff != "" {
		t.Errorf("suggestions mismatch (-want +got):\n%s", diff)
	}

	m.SetInput("ali")
	if diff := cmp.Diff([]string{"Alice Munro"}, m.Suggestions()); diff != "" {
		t.Errorf("suggestions mismatch (-want +got):\n%s", diff)
	}

	m.SetInput("")
	assert.Equal(t, Idle, m.State())
	assert.False(t, m.PanelVisible())
}

func TestModel_NavigationClamps(t *testing.T) {
	m := New(authors)
	m.SetInput("al")

	m.Up()
	assert.Equal(t, Filtering, m.State(), "up with nothing highlighted is a no-op")
	assert.Equal(t, -1, m.Highlighted())

	m.Down()
	assert.Equal(t, Navigating, m.State())
	assert.Equal(t, 0, m.Highlighted())

	m.Down()
	m.Down()
	m.Down()
	assert.Equal(t, 2, m.Highlighted(), "down stops at the last suggestion")

	m.Up()
	m.Up()
	m.Up()
	assert.Equal(t, 0, m.Highlighted(), "up stops at the first suggestion")
}

func TestModel_ConfirmHighlighted(t *testing.T) {
	m := New(authors)
	m.SetInput("al")
	m.Down()
	m.Down()

	m.Confirm()

	assert.Equal(t, Selected, m.State())
	value, ok := m.Value()
	assert.True(t, ok)
	assert.Equal(t, "Alice Munro", value)
	assert.False(t, m.PanelVisible())
}

func TestModel_ConfirmTypedText(t *testing.T) {
	m := New(authors)
	m.SetInput("  Ursula K. Le Guin")

	m.Confirm()

	value, ok := m.Value()
	assert.True(t, ok)
	assert.Equal(t, "  Ursula K. Le Guin", value, "typed text is kept verbatim")
}

func TestModel_TypingDropsHighlight(t *testing.T) {
	m := New(authors)
	m.SetInput("a")
	m.Down()

	m.SetInput("al")
	assert.Equal(t, Filtering, m.State())
	assert.Equal(t, -1, m.Highlighted())

	m.Confirm()
	value, _ := m.Value()
	assert.Equal(t, "al", value)
}

func TestModel_Cancel(t *testing.T) {
	m := New(authors)
	m.SetInput("bo")
	m.Down()

	m.Cancel()

	assert.Equal(t, Dismissed, m.State())
	assert.Equal(t, "bo", m.Input())
	assert.False(t, m.PanelVisible())
	assert.Empty(t, m.Suggestions())
	_, ok := m.Value()
	assert.False(t, ok)
}

func TestModel_TerminalStatesIgnoreEvents(t *testing.T) {
	m := New(authors)
	m.SetInput("bo")
	m.Cancel()

	m.SetInput("al")
	m.Down()
	m.Confirm()
	assert.Equal(t, Dismissed, m.State())
	assert.Equal(t, "bo", m.Input())

	m.Reset()
	assert.Equal(t, Idle, m.State())
	assert.Empty(t, m.Input())

	m.SetInput("bo")
	m.Confirm()
	m.Cancel()
	assert.Equal(t, Selected, m.State())
}

func TestModel_EmptyCandidatesNeverShowPanel(t *testing.T) {
	m := New(nil)

	m.SetInput("anything")
	assert.Equal(t, Filtering, m.State())
	assert.False(t, m.PanelVisible())

	m.Down()
	assert.Equal(t, Filtering, m.State())

	m.Confirm()
	value, _ := m.Value()
	assert.Equal(t, "anything", value)
}

func TestModel_NoMatchesShowEmptyPanel(t *testing.T) {
	m := New(authors)

	m.SetInput("zzz")

	assert.Equal(t, Filtering, m.State())
	assert.True(t, m.PanelVisible())
	assert.Empty(t, m.Suggestions())

	m.Down()
	assert.Equal(t, -1, m.Highlighted())
}

func TestModel_WithLimit(t *testing.T) {
	m := New(authors, WithLimit(2))

	m.SetInput("a")

	assert.Len(t, m.Suggestions(), 2)
}

func TestModel_SetCandidates(t *testing.T) {
	m := New(authors)
	m.SetInput("al")
	m.Confirm()

	m.SetCandidates([]string{"Zadie Smith"})

	assert.Equal(t, Idle, m.State())
	m.SetInput("smith")
	if diff := cmp.Diff([]string{"Zadie Smith"}, m.Suggestions()); diff != "" {
		t.Errorf("suggestions mismatch (-want +got):\n%s", diff)
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "navigating", Navigating.String())
	assert.True(t, Selected.Terminal())
	assert.False(t, Filtering.Terminal())
}
