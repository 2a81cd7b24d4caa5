package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskboard-api/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := database.SafeAutoMigrate(db, logger); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Println("Database schema is up to date")
		return nil
	},
}
