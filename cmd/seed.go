package cmd

import (
	"notesapi/database"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populates an empty database with sample notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := database.Open(databasePath())
		if err != nil {
			return err
		}
		defer store.Close()
		return store.SeedSampleNotes()
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
