package checklist

import (
	"fmt"

	"github.com/Makepad-fr/travellog/internal/model"
	"github.com/Makepad-fr/travellog/internal/ui"
)

// maxLabelWidth bounds labels in one-shot listings; the TUI wraps instead.
const maxLabelWidth = 80

// Row is one rendered line of the visual list.
type Row struct {
	ID      int
	Label   string
	Checked bool
}

// Render projects items to rows, one per item, in order.
func Render(items []model.Item) []Row {
	rows := make([]Row, len(items))
	for i, it := range items {
		rows[i] = Row{ID: it.ID, Label: it.Label, Checked: it.Completed}
	}
	return rows
}

// Extract reads the displayed state back out of rows.
func Extract(rows []Row) []model.Item {
	items := make([]model.Item, len(rows))
	for i, r := range rows {
		items[i] = model.Item{ID: r.ID, Label: r.Label, Completed: r.Checked}
	}
	return items
}

// Lines formats rows as "<id>. <box> <label>" using the theme.
func Lines(rows []Row, th ui.Theme) []string {
	if len(rows) == 0 {
		return []string{th.Muted.Render("no items")}
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		box := th.Muted.Render(th.Box(false))
		label := truncate(r.Label, maxLabelWidth)
		if r.Checked {
			box = th.Success.Render(th.Box(true))
			label = th.Done.Render(label)
		}
		out = append(out, fmt.Sprintf("%s %s %s", th.Muted.Render(fmt.Sprintf("%2d.", r.ID)), box, label))
	}
	return out
}

// Grouped splits rows into pending and done sections.
func Grouped(rows []Row, th ui.Theme) []string {
	var pend, done []Row
	for _, r := range rows {
		if r.Checked {
			done = append(done, r)
		} else {
			pend = append(pend, r)
		}
	}
	section := func(title string, rs []Row) []string {
		lines := []string{th.Accent.Render(title)}
		if len(rs) == 0 {
			return append(lines, th.Muted.Render("(none)"))
		}
		return append(lines, Lines(rs, th)...)
	}
	lines := section("Pending", pend)
	lines = append(lines, "")
	return append(lines, section("Done", done)...)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
