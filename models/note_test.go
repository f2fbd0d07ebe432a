package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNotePayloadValidate(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	testCases := []struct {
		name    string
		payload CreateNotePayload
		wantErr string
	}{
		{
			name:    "missing title",
			payload: CreateNotePayload{Content: strPtr("x")},
			wantErr: "title is required and must be a string",
		},
		{
			name:    "empty title",
			payload: CreateNotePayload{Title: strPtr(""), Content: strPtr("x")},
			wantErr: "title cannot be empty",
		},
		{
			name:    "whitespace title",
			payload: CreateNotePayload{Title: strPtr("   "), Content: strPtr("x")},
			wantErr: "title cannot be empty",
		},
		{
			name:    "missing content",
			payload: CreateNotePayload{Title: strPtr("t")},
			wantErr: "content is required and must be a string",
		},
		{
			name:    "empty content is allowed",
			payload: CreateNotePayload{Title: strPtr("t"), Content: strPtr("")},
		},
		{
			name:    "valid",
			payload: CreateNotePayload{Title: strPtr("t"), Content: strPtr("c"), Tags: []string{"a"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.payload.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.wantErr, validationErr.Message)
		})
	}
}

func TestUpdateNotePayloadValidate(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("empty payload rejected", func(t *testing.T) {
		payload := UpdateNotePayload{}
		var validationErr *ValidationError
		require.ErrorAs(t, payload.Validate(), &validationErr)
		assert.Equal(t, "no fields provided for update", validationErr.Message)
	})

	t.Run("whitespace title rejected", func(t *testing.T) {
		payload := UpdateNotePayload{Title: strPtr("  ")}
		var validationErr *ValidationError
		require.ErrorAs(t, payload.Validate(), &validationErr)
		assert.Equal(t, "title cannot be empty", validationErr.Message)
	})

	t.Run("single field suffices", func(t *testing.T) {
		assert.NoError(t, (&UpdateNotePayload{Content: strPtr("x")}).Validate())

		tags := TagList{}
		assert.NoError(t, (&UpdateNotePayload{Tags: &tags}).Validate())

		assert.NoError(t, (&UpdateNotePayload{Category: NullableString{Set: true}}).Validate())
	})
}

func TestNullableStringUnmarshal(t *testing.T) {
	t.Run("absent key", func(t *testing.T) {
		var payload UpdateNotePayload
		require.NoError(t, json.Unmarshal([]byte(`{"title":"t"}`), &payload))
		assert.False(t, payload.Category.Set)
		assert.Nil(t, payload.Category.Value)
	})

	t.Run("explicit null", func(t *testing.T) {
		var payload UpdateNotePayload
		require.NoError(t, json.Unmarshal([]byte(`{"category":null}`), &payload))
		assert.True(t, payload.Category.Set)
		assert.Nil(t, payload.Category.Value)
	})

	t.Run("string value", func(t *testing.T) {
		var payload UpdateNotePayload
		require.NoError(t, json.Unmarshal([]byte(`{"category":"work"}`), &payload))
		assert.True(t, payload.Category.Set)
		require.NotNil(t, payload.Category.Value)
		assert.Equal(t, "work", *payload.Category.Value)
	})

	t.Run("wrong type", func(t *testing.T) {
		var payload UpdateNotePayload
		assert.Error(t, json.Unmarshal([]byte(`{"category":5}`), &payload))
	})
}

func TestTagListUnmarshal(t *testing.T) {
	t.Run("string elements", func(t *testing.T) {
		var payload CreateNotePayload
		require.NoError(t, json.Unmarshal([]byte(`{"title":"t","content":"c","tags":["a","b"]}`), &payload))
		assert.Equal(t, TagList{"a", "b"}, payload.Tags)
	})

	t.Run("null element rejected", func(t *testing.T) {
		var payload CreateNotePayload
		err := json.Unmarshal([]byte(`{"title":"t","content":"c","tags":["a",null]}`), &payload)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "null")
	})

	t.Run("null element rejected on update", func(t *testing.T) {
		var payload UpdateNotePayload
		assert.Error(t, json.Unmarshal([]byte(`{"tags":[null]}`), &payload))
	})

	t.Run("non-string element rejected", func(t *testing.T) {
		var payload CreateNotePayload
		assert.Error(t, json.Unmarshal([]byte(`{"title":"t","content":"c","tags":[1]}`), &payload))
	})

	t.Run("non-array rejected", func(t *testing.T) {
		var payload CreateNotePayload
		assert.Error(t, json.Unmarshal([]byte(`{"title":"t","content":"c","tags":"a"}`), &payload))
	})
}

func TestNoteJSONShape(t *testing.T) {
	note := Note{ID: 1, Title: "t", Content: "c", Tags: []string{}}

	data, err := json.Marshal(note)
	require.NoError(t, err)

	decoded := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Category stays present as null, tags as an empty array.
	assert.Equal(t, "null", string(decoded["category"]))
	assert.Equal(t, "[]", string(decoded["tags"]))
	assert.Contains(t, decoded, "created_at")
	assert.Contains(t, decoded, "updated_at")
}
