package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/travellog/internal/checklist"
	"github.com/Makepad-fr/travellog/internal/model"
)

func TestLoadMissingFileIsEmpty(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "checklist.json"))
	require.NoError(t, err)

	items, err := s.Load()
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "trip.json")
	s, err := New(path)
	require.NoError(t, err)

	want := []model.Item{
		{ID: 1, Label: "Pack bags"},
		{ID: 2, Label: "Book flight", Completed: true},
	}
	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"label": "Book flight"`)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestSaveRejectsDuplicateIDs(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "c.json"))
	require.NoError(t, err)

	err = s.Save([]model.Item{{ID: 1}, {ID: 1}})
	assert.ErrorIs(t, err, checklist.ErrDuplicateID)
	_, statErr := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoadRejectsBadFiles(t *testing.T) {
	dir := t.TempDir()

	corrupt := filepath.Join(dir, "corrupt.json")
	require.NoError(t, os.WriteFile(corrupt, []byte("{not json"), 0o644))
	s, _ := New(corrupt)
	_, err := s.Load()
	assert.ErrorContains(t, err, "json unmarshal")

	dup := filepath.Join(dir, "dup.json")
	require.NoError(t, os.WriteFile(dup, []byte(`[{"id":2,"label":"a"},{"id":2,"label":"b"}]`), 0o644))
	s, _ = New(dup)
	_, err = s.Load()
	assert.ErrorIs(t, err, checklist.ErrDuplicateID)
}

func TestNewDefaultsToWorkingDirectory(t *testing.T) {
	s, err := New("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFileName, filepath.Base(s.Path()))
}
