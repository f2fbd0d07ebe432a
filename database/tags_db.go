package database

import (
	"database/sql"
	"fmt"
	"strings"
)

// normalizeTagNames trims whitespace, drops empties and removes duplicates
// while keeping the first occurrence's position. Comparison is case-sensitive:
// "a" and "A" are distinct tags.
func normalizeTagNames(names []string) []string {
	normalized := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		normalized = append(normalized, name)
	}
	return normalized
}

// getOrCreateTagID looks up a tag by its exact name, inserting it first when
// absent. Runs inside the caller's transaction so concurrent writers cannot
// race the lookup against the insert.
func getOrCreateTagID(tx *sql.Tx, name string) (int64, error) {
	if _, err := tx.Exec("INSERT OR IGNORE INTO tags (name) VALUES (?)", name); err != nil {
		return 0, fmt.Errorf("upserting tag '%s': %w", name, err)
	}
	var id int64
	if err := tx.QueryRow("SELECT id FROM tags WHERE name = ?", name).Scan(&id); err != nil {
		return 0, fmt.Errorf("querying tag '%s' after upsert: %w", name, err)
	}
	return id, nil
}

// setNoteTags replaces the note's tag set with the given normalized names.
// Cleared associations leave their tag rows in place.
func setNoteTags(tx *sql.Tx, noteID int64, names []string) error {
	if _, err := tx.Exec("DELETE FROM note_tags WHERE note_id = ?", noteID); err != nil {
		return fmt.Errorf("clearing tags for note %d: %w", noteID, err)
	}
	for _, name := range names {
		tagID, err := getOrCreateTagID(tx, name)
		if err != nil {
			return err
		}
		if _, err := tx.Exec("INSERT INTO note_tags (note_id, tag_id) VALUES (?, ?)", noteID, tagID); err != nil {
			return fmt.Errorf("associating tag '%s' with note %d: %w", name, noteID, err)
		}
	}
	return nil
}

// tagsForNote returns the note's tag names in association order.
func tagsForNote(q queryer, noteID int64) ([]string, error) {
	rows, err := q.Query(`
		SELECT t.name
		FROM tags t
		JOIN note_tags nt ON nt.tag_id = t.id
		WHERE nt.note_id = ?
		ORDER BY nt.rowid ASC
	`, noteID)
	if err != nil {
		return nil, fmt.Errorf("querying tags for note %d: %w", noteID, err)
	}
	defer rows.Close()

	tags := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning tag row for note %d: %w", noteID, err)
		}
		tags = append(tags, name)
	}
	return tags, rows.Err()
}

// ListTagNames returns every known tag name, sorted lexicographically. Tags
// stay listed even when no note currently references them.
func (s *Store) ListTagNames() ([]string, error) {
	rows, err := s.db.Query("SELECT name FROM tags ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("querying all tags: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning tag name row: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
