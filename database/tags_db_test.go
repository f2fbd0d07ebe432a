package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTagNames(t *testing.T) {
	testCases := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"nil input", nil, []string{}},
		{"empty input", []string{}, []string{}},
		{"trims whitespace", []string{" a ", "\tb\n"}, []string{"a", "b"}},
		{"drops empties", []string{"", "  ", "a"}, []string{"a"}},
		{"dedup keeps first occurrence", []string{"b", "a", "b"}, []string{"b", "a"}},
		{"trimmed duplicates collapse", []string{"a", "a ", " a"}, []string{"a"}},
		{"case-sensitive", []string{"a", "A"}, []string{"a", "A"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, normalizeTagNames(tc.input))
		})
	}
}

func TestListTagNamesEmptyStore(t *testing.T) {
	store := newTestStore(t)

	names, err := store.ListTagNames()
	require.NoError(t, err)
	require.NotNil(t, names)
	assert.Empty(t, names)
}

func TestListTagNamesSortedAcrossNotes(t *testing.T) {
	store := newTestStore(t)

	_, err := store.CreateNote("one", "x", nil, []string{"zebra", "apple"})
	require.NoError(t, err)
	_, err = store.CreateNote("two", "x", nil, []string{"mango", "apple"})
	require.NoError(t, err)

	names, err := store.ListTagNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "mango", "zebra"}, names)

	again, err := store.ListTagNames()
	require.NoError(t, err)
	assert.Equal(t, names, again)
}

func TestTagsSharedBetweenNotes(t *testing.T) {
	store := newTestStore(t)

	first, err := store.CreateNote("one", "x", nil, []string{"shared"})
	require.NoError(t, err)
	second, err := store.CreateNote("two", "x", nil, []string{"shared"})
	require.NoError(t, err)

	assert.Equal(t, []string{"shared"}, first.Tags)
	assert.Equal(t, []string{"shared"}, second.Tags)

	// One tag row backs both associations.
	names, err := store.ListTagNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"shared"}, names)

	// Removing one note leaves the other's association intact.
	require.NoError(t, store.DeleteNote(first.ID))
	got, err := store.GetNoteByID(second.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"shared"}, got.Tags)
}
