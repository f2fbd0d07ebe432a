package models

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// Note represents a user-created note as returned on the wire.
type Note struct {
	ID        int64     `json:"id" readOnly:"true"`
	Title     string    `json:"title" binding:"required"`
	Content   string    `json:"content"`
	Category  *string   `json:"category"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at" readOnly:"true"`
	UpdatedAt time.Time `json:"updated_at" readOnly:"true"`
}

// NullableString distinguishes a JSON field that is absent from one explicitly
// set to null. Set is true whenever the key appeared in the payload.
type NullableString struct {
	Set   bool
	Value *string
}

func (ns *NullableString) UnmarshalJSON(data []byte) error {
	ns.Set = true
	if string(data) == "null" {
		ns.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	ns.Value = &s
	return nil
}

// TagList is a JSON array of tag names. Every element must be a string; the
// default decoder would coerce a null element into an empty string, so nulls
// are rejected here instead.
type TagList []string

func (tl *TagList) UnmarshalJSON(data []byte) error {
	var raw []*string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	names := make([]string, 0, len(raw))
	for _, name := range raw {
		if name == nil {
			return errors.New("tags must be an array of strings without null elements")
		}
		names = append(names, *name)
	}
	*tl = names
	return nil
}

// CreateNotePayload is the request body for creating a note.
type CreateNotePayload struct {
	Title    *string        `json:"title"`
	Content  *string        `json:"content"`
	Category NullableString `json:"category"`
	Tags     TagList        `json:"tags"`
}

// Validate checks required fields. Type mismatches are caught earlier by the
// JSON decoder; unknown fields are ignored.
func (p *CreateNotePayload) Validate() error {
	if p.Title == nil {
		return &ValidationError{Message: "title is required and must be a string"}
	}
	if strings.TrimSpace(*p.Title) == "" {
		return &ValidationError{Message: "title cannot be empty"}
	}
	if p.Content == nil {
		return &ValidationError{Message: "content is required and must be a string"}
	}
	return nil
}

// UpdateNotePayload is the request body for a partial note update. Every field
// is optional; nil (or Set == false for Category) means "leave unchanged".
// Tags, when present, replaces the note's whole tag set.
type UpdateNotePayload struct {
	Title    *string        `json:"title"`
	Content  *string        `json:"content"`
	Category NullableString `json:"category"`
	Tags     *TagList       `json:"tags"`
}

func (p *UpdateNotePayload) Validate() error {
	if p.Title == nil && p.Content == nil && !p.Category.Set && p.Tags == nil {
		return &ValidationError{Message: "no fields provided for update"}
	}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return &ValidationError{Message: "title cannot be empty"}
	}
	return nil
}
