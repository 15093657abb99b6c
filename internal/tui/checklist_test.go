package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/travellog/internal/checklist"
	"github.com/Makepad-fr/travellog/internal/model"
)

func trip() []model.Item {
	return []model.Item{
		{ID: 1, Label: "Pack bags"},
		{ID: 2, Label: "Book flight", Completed: true},
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestChecklistViewShowsSuppliedItems(t *testing.T) {
	v := NewChecklistView(trip(), 80, 20)

	assert.Equal(t, trip(), checklist.Extract(v.Rows()))
	out := v.View()
	assert.Contains(t, out, "Pack bags")
	assert.Contains(t, out, "Book flight")
}

func TestChecklistViewToggleEmitsIntentOnly(t *testing.T) {
	v := NewChecklistView(trip(), 80, 20)
	v.Select(1)

	v, cmd := v.Update(runes(" "))
	require.NotNil(t, cmd)
	assert.Equal(t, ToggleMsg{ID: 2}, cmd())

	// controlled: nothing changes until the owner re-supplies items
	assert.Equal(t, trip(), checklist.Extract(v.Rows()))

	next, _ := checklist.Toggle(trip(), 2)
	v.SetItems(next)
	assert.False(t, v.Rows()[1].Checked)
	assert.Equal(t, trip()[0], checklist.Extract(v.Rows())[0])
}

func TestChecklistViewEmptyListEmitsNothing(t *testing.T) {
	v := NewChecklistView(nil, 80, 20)

	_, cmd := v.Update(runes(" "))
	assert.Nil(t, cmd)
	_, cmd = v.Update(runes("d"))
	assert.Nil(t, cmd)
}

func TestChecklistViewRemoveAndUndoIntents(t *testing.T) {
	v := NewChecklistView(trip(), 80, 20)

	v, cmd := v.Update(runes("d"))
	require.NotNil(t, cmd)
	assert.Equal(t, RemoveMsg{ID: 1}, cmd())
	assert.Len(t, v.Rows(), 2)

	_, cmd = v.Update(runes("u"))
	require.NotNil(t, cmd)
	assert.Equal(t, UndoMsg{}, cmd())
}

func TestChecklistViewAddFlow(t *testing.T) {
	v := NewChecklistView(trip(), 80, 20)

	v, _ = v.Update(runes("a"))
	assert.True(t, v.Capturing())

	// empty label is rejected inside the view
	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.True(t, v.Capturing())
	assert.Contains(t, v.View(), "Label cannot be empty")

	v, _ = v.Update(runes("Buy adapters"))
	v, cmd = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, AddMsg{Label: "Buy adapters"}, cmd())
	assert.False(t, v.Capturing())
	assert.Len(t, v.Rows(), 2)
}

func TestChecklistViewEditFlow(t *testing.T) {
	v := NewChecklistView(trip(), 80, 20)
	v.Select(1)

	v, _ = v.Update(runes("e"))
	assert.True(t, v.Capturing())
	assert.True(t, strings.Contains(v.View(), "Edit item"))

	v, _ = v.Update(runes(" (return)"))
	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, RenameMsg{ID: 2, Label: "Book flight (return)"}, cmd())
}

func TestChecklistViewEscCancelsInput(t *testing.T) {
	v := NewChecklistView(trip(), 80, 20)

	v, _ = v.Update(runes("a"))
	v, _ = v.Update(runes("half typed"))
	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.False(t, v.Capturing())
	assert.NotContains(t, v.View(), "half typed")
}
