package cmd

import (
	"net/http"

	"notesapi/api"
	"notesapi/config"
	"notesapi/database"
	"notesapi/logger"

	"github.com/spf13/cobra"
)

var serverPort string

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Starts the notes API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		portToUse := serverPort
		if portToUse == "" {
			portToUse = config.AppConfig.Server.Port
		}

		store, err := database.Open(databasePath())
		if err != nil {
			return err
		}
		defer store.Close()

		if config.AppConfig.Seed.OnStartup {
			if err := store.SeedSampleNotes(); err != nil {
				logger.Error("Startup seeding failed: %v", err)
				return err
			}
		}

		router := api.NewRouter(store)
		logger.Info("Starting server on port %s...", portToUse)
		if err := http.ListenAndServe(":"+portToUse, router); err != nil {
			logger.Error("Could not start server: %v", err)
			return err
		}
		return nil
	},
}

func init() {
	serverCmd.Flags().StringVarP(&serverPort, "port", "p", "", "Port for the server to listen on (overrides config/default)")
	rootCmd.AddCommand(serverCmd)
}
