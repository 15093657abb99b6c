package checklist

import (
	"regexp"
	"strings"

	"github.com/Makepad-fr/travellog/internal/model"
)

const (
	boxUnchecked = "- [ ]"
	boxChecked   = "- [x]"
	codeFence    = "```"
)

var checkboxLine = regexp.MustCompile(`^\s*[-*] \[([ xX])\] (.+)$`)

// ParsedBox is a checkbox read from markdown.
type ParsedBox struct {
	Label   string
	Checked bool
}

// Markdown renders items as a GitHub task list, one line per item.
func Markdown(items []model.Item) string {
	var sb strings.Builder
	for _, it := range items {
		box := boxUnchecked
		if it.Completed {
			box = boxChecked
		}
		sb.WriteString(box + " " + NormalizeLabel(it.Label) + "\n")
	}
	return sb.String()
}

// ParseMarkdown extracts task-list checkboxes line by line. Lines inside
// fenced code blocks are skipped; inline code in a label is kept as written.
func ParseMarkdown(src string) []ParsedBox {
	var out []ParsedBox
	inFence := false
	for _, line := range strings.Split(src, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), codeFence) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		m := checkboxLine.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}
		label := NormalizeLabel(m[2])
		if label == "" {
			continue
		}
		out = append(out, ParsedBox{Label: label, Checked: strings.EqualFold(m[1], "x")})
	}
	return out
}

// Import appends parsed boxes with fresh ids.
func Import(items []model.Item, boxes []ParsedBox) []model.Item {
	out := clone(items)
	next := NextID(items)
	for _, b := range boxes {
		out = append(out, model.Item{ID: next, Label: NormalizeLabel(b.Label), Completed: b.Checked})
		next++
	}
	return out
}
