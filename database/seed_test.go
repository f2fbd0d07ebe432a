package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedSampleNotes(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SeedSampleNotes())

	notes, err := store.ListNotes("", "", "")
	require.NoError(t, err)
	require.Len(t, notes, 3)

	names, err := store.ListTagNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"errands", "getting-started", "ideas", "list", "welcome", "work"}, names)

	byTag, err := store.ListNotes("", "errands", "")
	require.NoError(t, err)
	require.Len(t, byTag, 1)
	assert.Equal(t, "Grocery List", byTag[0].Title)
}

func TestSeedSampleNotesIdempotent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SeedSampleNotes())
	require.NoError(t, store.SeedSampleNotes())

	notes, err := store.ListNotes("", "", "")
	require.NoError(t, err)
	assert.Len(t, notes, 3)
}

func TestSeedSampleNotesSkipsNonEmptyStore(t *testing.T) {
	store := newTestStore(t)

	_, err := store.CreateNote("Existing", "x", nil, nil)
	require.NoError(t, err)

	require.NoError(t, store.SeedSampleNotes())

	notes, err := store.ListNotes("", "", "")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Existing", notes[0].Title)
}

func TestSeededTagsSurviveNoteDeletion(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SeedSampleNotes())

	grocery, err := store.ListNotes("", "errands", "")
	require.NoError(t, err)
	require.Len(t, grocery, 1)
	require.NoError(t, store.DeleteNote(grocery[0].ID))

	names, err := store.ListTagNames()
	require.NoError(t, err)
	assert.Contains(t, names, "errands")
	assert.Contains(t, names, "list")
}
