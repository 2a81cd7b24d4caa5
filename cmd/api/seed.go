package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskboard-api/internal/database"
	"taskboard-api/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo users and a sample board",
	Long: `Seed migrates the schema, then creates three demo users and a sample board.

Users are matched by email and the board by title, so running it twice is safe.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := database.AutoMigrate(db); err != nil {
			return err
		}

		result, err := seed.New(db, logger).Run(cmd.Context())
		if err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}

		fmt.Printf("Users created: %d\n", result.UsersCreated)
		if result.BoardCreated {
			fmt.Printf("Created board %q: %s\n", seed.DemoBoardTitle, result.BoardID)
		} else {
			fmt.Printf("Board %q already exists: %s\n", seed.DemoBoardTitle, result.BoardID)
		}
		return nil
	},
}
