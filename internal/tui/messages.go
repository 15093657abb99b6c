package tui

import tea "github.com/charmbracelet/bubbletea"

// Intent messages emitted by ChecklistView. The view never applies them
// itself; the owner does and re-supplies the items.
type (
	ToggleMsg struct{ ID int }
	RemoveMsg struct{ ID int }
	AddMsg    struct{ Label string }
	RenameMsg struct {
		ID    int
		Label string
	}
	UndoMsg struct{}
)

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
