package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Makepad-fr/travellog/internal/checklist"
	"github.com/Makepad-fr/travellog/internal/model"
	"github.com/Makepad-fr/travellog/internal/ui"
)

// Saver persists the owner's checklist after every accepted change.
type Saver interface {
	Save(items []model.Item) error
}

// Page is the route metadata shown above the checklist.
type Page struct {
	Title       string
	Description string
}

type removal struct {
	at   int
	item model.Item
}

// header: title, description, blank line
const headerLines = 3

// App owns the checklist. It applies intents from ChecklistView, saves, and
// re-supplies the result.
type App struct {
	page   Page
	user   string
	items  []model.Item
	view   ChecklistView
	saver  Saver
	logger *zap.Logger

	status    string
	statusErr bool
	undo      *removal
	changed   bool
}

func NewApp(page Page, user string, items []model.Item, saver Saver, logger *zap.Logger) App {
	if logger == nil {
		logger = zap.NewNop()
	}
	owned := make([]model.Item, len(items))
	copy(owned, items)

	a := App{
		page:   page,
		user:   user,
		items:  owned,
		view:   NewChecklistView(owned, 76, 20),
		saver:  saver,
		logger: logger,
	}
	a.refreshTitle()
	return a
}

// Items returns a copy of the current sequence.
func (a App) Items() []model.Item {
	out := make([]model.Item, len(a.items))
	copy(out, a.items)
	return out
}

// Changed reports whether any change was saved during the session.
func (a App) Changed() bool { return a.changed }

func (a App) Init() tea.Cmd { return nil }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.view.SetSize(msg.Width-4, msg.Height-headerLines-4)
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "q":
			if !a.view.Capturing() {
				return a, tea.Quit
			}
		case "esc":
			if !a.view.Capturing() && !a.view.Filtered() {
				return a, tea.Quit
			}
		}

	case ToggleMsg:
		next, ok := checklist.Toggle(a.items, msg.ID)
		if !ok {
			a.logger.Debug("toggle ignored", zap.Int("id", msg.ID))
			return a, nil
		}
		cmd := a.commit(next, "toggled")
		return a, cmd

	case RemoveMsg:
		at, ok := checklist.Find(a.items, msg.ID)
		if !ok {
			a.logger.Debug("remove ignored", zap.Int("id", msg.ID))
			return a, nil
		}
		next, removed, _ := checklist.Remove(a.items, msg.ID)
		cmd := a.commit(next, "removed")
		if !a.statusErr {
			a.undo = &removal{at: at, item: removed}
		}
		return a, cmd

	case AddMsg:
		next, _, err := checklist.Add(a.items, msg.Label)
		if err != nil {
			a.setError(err)
			return a, nil
		}
		cmd := a.commit(next, "added")
		return a, cmd

	case RenameMsg:
		next, err := checklist.Rename(a.items, msg.ID, msg.Label)
		if err != nil {
			a.setError(err)
			return a, nil
		}
		cmd := a.commit(next, "renamed")
		return a, cmd

	case UndoMsg:
		if a.undo == nil {
			return a, nil
		}
		it := a.undo.item
		if _, taken := checklist.Find(a.items, it.ID); taken {
			it.ID = checklist.NextID(a.items)
		}
		cmd := a.commit(checklist.Insert(a.items, a.undo.at, it), "restored")
		if !a.statusErr {
			a.undo = nil
		}
		return a, cmd
	}

	var cmd tea.Cmd
	a.view, cmd = a.view.Update(msg)
	return a, cmd
}

// commit saves next and, only if that succeeds, makes it the current state.
func (a *App) commit(next []model.Item, verb string) tea.Cmd {
	if a.saver != nil {
		if err := a.saver.Save(next); err != nil {
			a.logger.Error("save checklist", zap.Error(err))
			a.setError(fmt.Errorf("save failed: %w", err))
			return nil
		}
	}
	a.items = next
	a.changed = true
	a.status, a.statusErr = verb, false
	a.logger.Debug("checklist updated", zap.String("op", verb), zap.Int("items", len(next)))
	a.refreshTitle()
	return a.view.SetItems(next)
}

func (a *App) setError(err error) {
	a.status, a.statusErr = err.Error(), true
}

func (a *App) refreshTitle() {
	th := ui.Current()
	done, pending := checklist.Stats(a.items)
	a.view.SetTitle(fmt.Sprintf("Checklist   %s %d  %s %d  %s %d",
		th.Success.Render(th.SymDone), done,
		th.Pending.Render(th.SymPending), pending,
		th.Accent.Render("Total"), len(a.items),
	))
}

func (a App) View() string {
	th := ui.Current()
	var b strings.Builder
	b.WriteString(th.Title.Render(a.page.Title))
	if a.user != "" {
		b.WriteString(th.Muted.Render("  by " + a.user))
	}
	b.WriteString("\n")
	b.WriteString(th.Muted.Render(a.page.Description))
	b.WriteString("\n\n")
	b.WriteString(a.view.View())
	if a.status != "" {
		style := th.Success
		if a.statusErr {
			style = th.Error
		}
		b.WriteString("\n" + style.Render(a.status))
	}
	return ui.PanelString(b.String())
}

// Run starts the interactive program and returns the owner's final state.
func Run(ctx context.Context, app App) (App, error) {
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return app, err
	}
	fa, ok := final.(App)
	if !ok {
		return app, nil
	}
	return fa, nil
}
