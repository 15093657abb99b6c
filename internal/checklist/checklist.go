// Package checklist holds the checklist state transitions. Every function is
// pure: inputs are never mutated and a fresh slice is returned, so the caller
// that owns the sequence stays the single source of truth.
package checklist

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Makepad-fr/travellog/internal/model"
)

var (
	ErrDuplicateID = errors.New("duplicate item id")
	ErrInvalidID   = errors.New("invalid item id")
	ErrEmptyLabel  = errors.New("empty label")
	ErrNotFound    = errors.New("item not found")
)

// Find returns the index of the item with the given id.
func Find(items []model.Item, id int) (int, bool) {
	for i, it := range items {
		if it.ID == id {
			return i, true
		}
	}
	return -1, false
}

// Toggle returns a copy of items with the completion flag of id inverted.
// An unknown id yields an equal copy and false.
func Toggle(items []model.Item, id int) ([]model.Item, bool) {
	out := clone(items)
	i, ok := Find(out, id)
	if !ok {
		return out, false
	}
	out[i].Completed = !out[i].Completed
	return out, true
}

// Validate checks that every id is positive and unique.
func Validate(items []model.Item) error {
	seen := make(map[int]struct{}, len(items))
	for _, it := range items {
		if it.ID < 1 {
			return fmt.Errorf("%w: %d", ErrInvalidID, it.ID)
		}
		if _, dup := seen[it.ID]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateID, it.ID)
		}
		seen[it.ID] = struct{}{}
	}
	return nil
}

// NextID returns one past the highest id in use.
func NextID(items []model.Item) int {
	highest := 0
	for _, it := range items {
		if it.ID > highest {
			highest = it.ID
		}
	}
	return highest + 1
}

// Add appends a pending item with a fresh id.
func Add(items []model.Item, label string) ([]model.Item, model.Item, error) {
	label = NormalizeLabel(label)
	if label == "" {
		return clone(items), model.Item{}, ErrEmptyLabel
	}
	it := model.Item{ID: NextID(items), Label: label}
	return append(clone(items), it), it, nil
}

// Insert places it at position at (clamped). Used to undo a removal.
func Insert(items []model.Item, at int, it model.Item) []model.Item {
	if at < 0 {
		at = 0
	}
	if at > len(items) {
		at = len(items)
	}
	out := make([]model.Item, 0, len(items)+1)
	out = append(out, items[:at]...)
	out = append(out, it)
	return append(out, items[at:]...)
}

// Remove drops the item with the given id and returns it.
func Remove(items []model.Item, id int) ([]model.Item, model.Item, bool) {
	i, ok := Find(items, id)
	if !ok {
		return clone(items), model.Item{}, false
	}
	out := make([]model.Item, 0, len(items)-1)
	out = append(out, items[:i]...)
	out = append(out, items[i+1:]...)
	return out, items[i], true
}

// Rename replaces the label of id.
func Rename(items []model.Item, id int, label string) ([]model.Item, error) {
	label = NormalizeLabel(label)
	if label == "" {
		return clone(items), ErrEmptyLabel
	}
	out := clone(items)
	i, ok := Find(out, id)
	if !ok {
		return out, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	out[i].Label = label
	return out, nil
}

// NormalizeLabel collapses all whitespace runs, newlines included, to single
// spaces so a label always fits on one line.
func NormalizeLabel(label string) string {
	return strings.Join(strings.Fields(label), " ")
}

// Stats counts completed and pending items.
func Stats(items []model.Item) (done, pending int) {
	for _, it := range items {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

func clone(items []model.Item) []model.Item {
	out := make([]model.Item, len(items))
	copy(out, items)
	return out
}
