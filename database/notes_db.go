package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"notesapi/logger"
	"notesapi/models"
)

func categoryToNull(category *string) sql.NullString {
	if category == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *category, Valid: true}
}

// CreateNote inserts a new note with its tags and returns the stored note.
// Tags are normalized (trimmed, empties dropped, duplicates removed) and any
// tag not yet present is created inside the same transaction.
func (s *Store) CreateNote(title, content string, category *string, tags []string) (models.Note, error) {
	if strings.TrimSpace(title) == "" {
		return models.Note{}, &models.ValidationError{Message: "title cannot be empty"}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return models.Note{}, fmt.Errorf("beginning create note transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	result, err := tx.Exec(`
		INSERT INTO notes (title, content, category, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, title, content, categoryToNull(category), now, now)
	if err != nil {
		return models.Note{}, fmt.Errorf("executing create note statement: %w", err)
	}

	noteID, err := result.LastInsertId()
	if err != nil {
		return models.Note{}, fmt.Errorf("getting last insert ID for note: %w", err)
	}

	normalized := normalizeTagNames(tags)
	if err := setNoteTags(tx, noteID, normalized); err != nil {
		return models.Note{}, err
	}

	// Read the stored note back before committing so the returned snapshot
	// cannot be affected by a concurrent delete.
	note, err := getNoteByID(tx, noteID)
	if err != nil {
		return models.Note{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Note{}, fmt.Errorf("committing create note transaction: %w", err)
	}

	logger.Info("CreateNote: Note ID %d created with %d tag(s).", noteID, len(normalized))
	return note, nil
}

// GetNoteByID retrieves a single note, including its tags in association
// order. Both reads run in one transaction so the tags match the note row.
func (s *Store) GetNoteByID(noteID int64) (models.Note, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return models.Note{}, fmt.Errorf("beginning get note transaction: %w", err)
	}
	defer tx.Rollback()
	return getNoteByID(tx, noteID)
}

func getNoteByID(q queryer, noteID int64) (models.Note, error) {
	var note models.Note
	var category sql.NullString
	err := q.QueryRow(`
		SELECT id, title, content, category, created_at, updated_at
		FROM notes
		WHERE id = ?
	`, noteID).Scan(&note.ID, &note.Title, &note.Content, &category, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return note, &models.NotFoundError{Resource: "note", ID: noteID}
		}
		return note, fmt.Errorf("querying note %d: %w", noteID, err)
	}
	if category.Valid {
		note.Category = &category.String
	}

	note.Tags, err = tagsForNote(q, noteID)
	if err != nil {
		return note, err
	}
	return note, nil
}

// ListNotes returns notes matching every provided filter. An empty string
// means the filter is absent. q matches case-insensitively as a substring of
// title or content, tag matches the exact stored tag name, category matches
// by equality. Results are ordered most recently updated first, with the id
// as a tie-break so the order is deterministic.
func (s *Store) ListNotes(q, tag, category string) ([]models.Note, error) {
	var joins []string
	var where []string
	var params []interface{}

	if q != "" {
		where = append(where, "(n.title LIKE ? OR n.content LIKE ?)")
		like := "%" + q + "%"
		params = append(params, like, like)
	}
	if category != "" {
		where = append(where, "n.category = ?")
		params = append(params, category)
	}
	if tag != "" {
		joins = append(joins, "JOIN note_tags nt ON nt.note_id = n.id", "JOIN tags t ON t.id = nt.tag_id")
		where = append(where, "t.name = ?")
		params = append(params, tag)
	}

	query := "SELECT n.id, n.title, n.content, n.category, n.created_at, n.updated_at FROM notes n"
	if len(joins) > 0 {
		query += " " + strings.Join(joins, " ")
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY n.updated_at DESC, n.id DESC"

	rows, err := s.db.Query(query, params...)
	if err != nil {
		return nil, fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		var noteCategory sql.NullString
		if err := rows.Scan(&note.ID, &note.Title, &note.Content, &noteCategory, &note.CreatedAt, &note.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning note row: %w", err)
		}
		if noteCategory.Valid {
			value := noteCategory.String
			note.Category = &value
		}
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating note rows: %w", err)
	}
	rows.Close()

	for i := range notes {
		notes[i].Tags, err = tagsForNote(s.db, notes[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return notes, nil
}

// UpdateNote applies a partial update to a note. Only fields present in the
// payload change; a present tags field replaces the note's whole tag set with
// the same normalization rules as CreateNote. updated_at is refreshed on every
// successful update, created_at is never touched.
func (s *Store) UpdateNote(noteID int64, p models.UpdateNotePayload) (models.Note, error) {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return models.Note{}, &models.ValidationError{Message: "title cannot be empty"}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return models.Note{}, fmt.Errorf("beginning update note transaction: %w", err)
	}
	defer tx.Rollback()

	var existingID int64
	err = tx.QueryRow("SELECT id FROM notes WHERE id = ?", noteID).Scan(&existingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, &models.NotFoundError{Resource: "note", ID: noteID}
		}
		return models.Note{}, fmt.Errorf("querying note %d for update: %w", noteID, err)
	}

	var setClauses []string
	var args []interface{}
	if p.Title != nil {
		setClauses = append(setClauses, "title = ?")
		args = append(args, *p.Title)
	}
	if p.Content != nil {
		setClauses = append(setClauses, "content = ?")
		args = append(args, *p.Content)
	}
	if p.Category.Set {
		setClauses = append(setClauses, "category = ?")
		args = append(args, categoryToNull(p.Category.Value))
	}
	setClauses = append(setClauses, "updated_at = ?")
	args = append(args, time.Now().UTC())
	args = append(args, noteID)

	query := fmt.Sprintf("UPDATE notes SET %s WHERE id = ?", strings.Join(setClauses, ", "))
	if _, err := tx.Exec(query, args...); err != nil {
		return models.Note{}, fmt.Errorf("executing update note statement for note %d: %w", noteID, err)
	}

	if p.Tags != nil {
		if err := setNoteTags(tx, noteID, normalizeTagNames(*p.Tags)); err != nil {
			return models.Note{}, err
		}
	}

	note, err := getNoteByID(tx, noteID)
	if err != nil {
		return models.Note{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Note{}, fmt.Errorf("committing update note transaction: %w", err)
	}

	logger.Info("UpdateNote: Note ID %d updated.", noteID)
	return note, nil
}

// DeleteNote removes a note. Its tag associations are removed by the schema's
// ON DELETE CASCADE; the tag rows themselves are retained.
func (s *Store) DeleteNote(noteID int64) error {
	result, err := s.db.Exec("DELETE FROM notes WHERE id = ?", noteID)
	if err != nil {
		return fmt.Errorf("executing delete note statement for note %d: %w", noteID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected for note %d deletion: %w", noteID, err)
	}
	if affected == 0 {
		return &models.NotFoundError{Resource: "note", ID: noteID}
	}
	logger.Info("DeleteNote: Note ID %d deleted.", noteID)
	return nil
}
