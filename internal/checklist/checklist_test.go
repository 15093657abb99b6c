package checklist

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/travellog/internal/model"
)

func trip() []model.Item {
	return []model.Item{
		{ID: 1, Label: "Pack bags", Completed: false},
		{ID: 2, Label: "Book flight", Completed: true},
	}
}

func TestToggleKnownID(t *testing.T) {
	got, ok := Toggle(trip(), 1)
	require.True(t, ok)

	want := []model.Item{
		{ID: 1, Label: "Pack bags", Completed: true},
		{ID: 2, Label: "Book flight", Completed: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Toggle(1) mismatch (-want +got):\n%s", diff)
	}
}

func TestToggleUnknownIDIsNoop(t *testing.T) {
	got, ok := Toggle(trip(), 99)
	assert.False(t, ok)
	assert.Equal(t, trip(), got)
}

func TestToggleDoesNotMutateInput(t *testing.T) {
	in := trip()
	_, _ = Toggle(in, 1)
	assert.Equal(t, trip(), in)
}

func TestToggleChangesExactlyOneRow(t *testing.T) {
	in := []model.Item{
		{ID: 4, Label: "Visa"},
		{ID: 7, Label: "Insurance", Completed: true},
		{ID: 9, Label: "Adapters"},
	}
	for _, it := range in {
		out, ok := Toggle(in, it.ID)
		require.True(t, ok)

		before, after := Render(in), Render(out)
		changed := 0
		for i := range before {
			if before[i] != after[i] {
				changed++
				assert.Equal(t, it.ID, after[i].ID)
			}
		}
		assert.Equal(t, 1, changed, "toggling id %d", it.ID)
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	once, _ := Toggle(trip(), 2)
	twice, _ := Toggle(once, 2)
	assert.Equal(t, trip(), twice)
}

func TestToggleEmpty(t *testing.T) {
	got, ok := Toggle(nil, 1)
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(trip()))
	require.NoError(t, Validate(nil))

	err := Validate([]model.Item{{ID: 1}, {ID: 3}, {ID: 1}})
	assert.ErrorIs(t, err, ErrDuplicateID)

	err = Validate([]model.Item{{ID: 0, Label: "zero"}})
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestAddAssignsNextID(t *testing.T) {
	items := []model.Item{{ID: 3, Label: "a"}, {ID: 8, Label: "b"}}

	got, added, err := Add(items, "  Buy adapters ")
	require.NoError(t, err)
	assert.Equal(t, model.Item{ID: 9, Label: "Buy adapters"}, added)
	assert.Len(t, got, 3)
	assert.Len(t, items, 2)

	_, added, err = Add(items, "Renew\n  passport\t soon")
	require.NoError(t, err)
	assert.Equal(t, "Renew passport soon", added.Label)

	_, _, err = Add(items, "   ")
	assert.ErrorIs(t, err, ErrEmptyLabel)

	assert.Equal(t, 1, NextID(nil))
}

func TestRemoveAndInsertRoundTrip(t *testing.T) {
	in := []model.Item{{ID: 1, Label: "a"}, {ID: 2, Label: "b"}, {ID: 3, Label: "c"}}

	out, removed, ok := Remove(in, 2)
	require.True(t, ok)
	assert.Equal(t, model.Item{ID: 2, Label: "b"}, removed)
	assert.Equal(t, []model.Item{{ID: 1, Label: "a"}, {ID: 3, Label: "c"}}, out)

	restored := Insert(out, 1, removed)
	assert.Equal(t, in, restored)

	_, _, ok = Remove(in, 42)
	assert.False(t, ok)

	assert.Equal(t, []model.Item{{ID: 3}}, Insert(nil, 10, model.Item{ID: 3}))
}

func TestRename(t *testing.T) {
	got, err := Rename(trip(), 2, "Book return flight")
	require.NoError(t, err)
	assert.Equal(t, "Book return flight", got[1].Label)
	assert.Equal(t, "Book flight", trip()[1].Label)

	got, err = Rename(trip(), 1, "Pack\nbags")
	require.NoError(t, err)
	assert.Equal(t, "Pack bags", got[0].Label)

	_, err = Rename(trip(), 5, "x")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Rename(trip(), 1, "")
	assert.ErrorIs(t, err, ErrEmptyLabel)
}

func TestStats(t *testing.T) {
	done, pending := Stats(trip())
	assert.Equal(t, 1, done)
	assert.Equal(t, 1, pending)
}
