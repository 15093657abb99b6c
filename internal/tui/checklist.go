package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/travellog/internal/checklist"
	"github.com/Makepad-fr/travellog/internal/model"
	"github.com/Makepad-fr/travellog/internal/ui"
)

// rowItem adapts a rendered row to bubbles/list.Item
type rowItem struct{ checklist.Row }

func (r rowItem) FilterValue() string { return r.Label }

// Custom delegate to control how rows render (single line)
type rowDelegate struct{}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(rowItem)
	if !ok {
		return
	}
	th := ui.Current()
	box := th.Muted.Render(th.Box(false))
	label := r.Label
	if r.Checked {
		box = th.Success.Render(th.Box(true))
		label = th.Done.Render(label)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = th.Selected.Render(">") + " "
	}
	fmt.Fprint(w, prefix+box+" "+label)
}

type keyMap struct {
	Toggle, Remove, Add, Edit, Undo key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Toggle: key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle")),
		Remove: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Undo:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
	}
}

type inputMode int

const (
	inputNone inputMode = iota
	inputAdd
	inputEdit
)

// ChecklistView is a controlled list: it renders whatever items it was last
// given and turns key presses into intent messages.
type ChecklistView struct {
	list     list.Model
	keys     keyMap
	input    textinput.Model
	mode     inputMode
	editID   int
	inputErr string
}

func NewChecklistView(items []model.Item, width, height int) ChecklistView {
	l := list.New(toListItems(items), rowDelegate{}, width, height)
	th := ui.Current()
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = th.Title
	l.Styles.HelpStyle = th.Muted
	l.Styles.PaginationStyle = th.Muted
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	// d and u belong to delete/undo here
	l.KeyMap.NextPage.SetKeys("right", "l", "pgdown", "f")
	l.KeyMap.PrevPage.SetKeys("left", "h", "pgup", "b")

	keys := defaultKeys()
	extra := func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Add, keys.Edit, keys.Remove, keys.Undo}
	}
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	return ChecklistView{list: l, keys: keys, input: ti}
}

// SetItems re-supplies the source of truth. The cursor is pulled back onto
// the last row when the list shrank underneath it.
func (v *ChecklistView) SetItems(items []model.Item) tea.Cmd {
	cmd := v.list.SetItems(toListItems(items))
	if n := len(v.list.VisibleItems()); n > 0 && v.list.Index() >= n {
		v.list.Select(n - 1)
	}
	return cmd
}

// Rows returns what the view currently displays, in order.
func (v ChecklistView) Rows() []checklist.Row {
	items := v.list.Items()
	rows := make([]checklist.Row, 0, len(items))
	for _, it := range items {
		if r, ok := it.(rowItem); ok {
			rows = append(rows, r.Row)
		}
	}
	return rows
}

func (v *ChecklistView) SetTitle(title string) { v.list.Title = title }

func (v *ChecklistView) SetSize(width, height int) {
	if v.mode != inputNone {
		height -= 4
	}
	v.list.SetSize(width, height)
}

// Select moves the cursor to the row at index.
func (v *ChecklistView) Select(index int) { v.list.Select(index) }

// Capturing reports whether key presses are consumed by text entry.
func (v ChecklistView) Capturing() bool {
	return v.mode != inputNone || v.list.FilterState() == list.Filtering
}

// Filtered reports whether a filter is narrowing the visible rows.
func (v ChecklistView) Filtered() bool {
	return v.list.FilterState() == list.FilterApplied
}

func (v ChecklistView) selected() (checklist.Row, bool) {
	r, ok := v.list.SelectedItem().(rowItem)
	return r.Row, ok
}

func (v ChecklistView) Update(msg tea.Msg) (ChecklistView, tea.Cmd) {
	if v.mode != inputNone {
		return v.updateInput(msg)
	}

	if km, ok := msg.(tea.KeyMsg); ok && v.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(km, v.keys.Toggle):
			if r, ok := v.selected(); ok {
				return v, emit(ToggleMsg{ID: r.ID})
			}
			return v, nil
		case key.Matches(km, v.keys.Remove):
			if r, ok := v.selected(); ok {
				return v, emit(RemoveMsg{ID: r.ID})
			}
			return v, nil
		case key.Matches(km, v.keys.Undo):
			return v, emit(UndoMsg{})
		case key.Matches(km, v.keys.Add):
			v.startInput(inputAdd, 0, "", "New item...")
			return v, textinput.Blink
		case key.Matches(km, v.keys.Edit):
			if r, ok := v.selected(); ok {
				v.startInput(inputEdit, r.ID, r.Label, "Edit item...")
				return v, textinput.Blink
			}
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v *ChecklistView) startInput(mode inputMode, id int, value, placeholder string) {
	v.mode = mode
	v.editID = id
	v.inputErr = ""
	v.input.SetValue(value)
	v.input.CursorEnd()
	v.input.Placeholder = placeholder
	v.input.Focus()
}

func (v *ChecklistView) stopInput() {
	v.mode = inputNone
	v.inputErr = ""
	v.input.SetValue("")
	v.input.Blur()
}

func (v ChecklistView) updateInput(msg tea.Msg) (ChecklistView, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			label := strings.TrimSpace(v.input.Value())
			if label == "" {
				v.inputErr = "Label cannot be empty"
				return v, nil
			}
			var intent tea.Msg = AddMsg{Label: label}
			if v.mode == inputEdit {
				intent = RenameMsg{ID: v.editID, Label: label}
			}
			v.stopInput()
			return v, emit(intent)
		case "esc":
			v.stopInput()
			return v, nil
		}
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v ChecklistView) View() string {
	content := v.list.View()
	if v.mode == inputNone {
		return content
	}
	th := ui.Current()
	title := "Add item"
	if v.mode == inputEdit {
		title = "Edit item"
	}
	if v.inputErr != "" {
		title += ": " + th.Error.Render(v.inputErr)
	}
	return content + "\n" + ui.PanelString(title+"\n"+v.input.View())
}

func toListItems(items []model.Item) []list.Item {
	rows := checklist.Render(items)
	li := make([]list.Item, len(rows))
	for i, r := range rows {
		li[i] = rowItem{r}
	}
	return li
}
