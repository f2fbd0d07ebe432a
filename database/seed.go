package database

import (
	"fmt"

	"notesapi/logger"
)

// SeedSampleNotes populates an empty store with a few sample notes. Calling it
// on a store that already holds notes is a no-op, so repeated startups with
// seeding enabled stay idempotent.
func (s *Store) SeedSampleNotes() error {
	var count int64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM notes").Scan(&count); err != nil {
		return fmt.Errorf("counting notes before seeding: %w", err)
	}
	if count > 0 {
		logger.Info("SeedSampleNotes: %d note(s) already present, skipping seeding.", count)
		return nil
	}

	samples := []struct {
		Title    string
		Content  string
		Category string
		Tags     []string
	}{
		{
			Title:    "Welcome to Notes",
			Content:  "This is your first note. You can edit or delete it.",
			Category: "general",
			Tags:     []string{"welcome", "getting-started"},
		},
		{
			Title:    "Grocery List",
			Content:  "- Milk\n- Eggs\n- Bread\n- Coffee",
			Category: "personal",
			Tags:     []string{"list", "errands"},
		},
		{
			Title:    "Project Ideas",
			Content:  "1. Build a notes app\n2. Organize tags\n3. Add search",
			Category: "work",
			Tags:     []string{"ideas", "work"},
		},
	}

	for _, sample := range samples {
		category := sample.Category
		if _, err := s.CreateNote(sample.Title, sample.Content, &category, sample.Tags); err != nil {
			return fmt.Errorf("seeding note '%s': %w", sample.Title, err)
		}
	}
	logger.Info("SeedSampleNotes: Seeded %d sample notes.", len(samples))
	return nil
}
