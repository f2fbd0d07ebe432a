package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"notesapi/config"
	"notesapi/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile        string
	dbPath         string // Bound to --dbpath flag
	appLogPathFlag string
	logLevelFlag   string
)

func expandTildeCmd(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

var rootCmd = &cobra.Command{
	Use:   "notesapi",
	Short: "Backend API for a personal notes application",
	Long: `notesapi serves a CRUD API for personal notes with categories and
free-form tags, backed by a single SQLite database file. Notes can be
searched by text and filtered by tag or category.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A local .env file is honored before the environment is read.
		if err := godotenv.Load(); err == nil {
			fmt.Fprintln(os.Stderr, "Loaded environment from .env file.")
		}
		if err := config.Init(cfgFile, appLogPathFlag, logLevelFlag); err != nil {
			return fmt.Errorf("failed to initialize config in PersistentPreRunE: %w", err)
		}
		return nil
	},
}

// databasePath resolves the SQLite file path from the --dbpath flag, falling
// back to the configured path.
func databasePath() string {
	finalDBPath := dbPath
	if finalDBPath == "" {
		finalDBPath = config.AppConfig.Database.Path
	}
	expandedPath, err := expandTildeCmd(finalDBPath)
	if err != nil {
		logger.Error("Error expanding tilde in database path '%s': %v. Using original.", finalDBPath, err)
	} else {
		finalDBPath = expandedPath
	}
	if finalDBPath == "" {
		logger.Error("Database path is empty after checking flag and config. Falling back to 'notes.db' in CWD.")
		finalDBPath = "notes.db"
	}
	return finalDBPath
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/notesapi/config.yaml or ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "dbpath", "", "path to SQLite database file (overrides config/default)")
	rootCmd.PersistentFlags().StringVar(&appLogPathFlag, "app-log", "", "path for the application log file (overrides config/default)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: DEBUG, INFO, ERROR (overrides config/default)")
}
