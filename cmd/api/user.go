package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"taskboard-api/internal/database"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/response"
	"taskboard-api/internal/service"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var userDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user by ID",
	Long: `Delete removes a user together with their card memberships and comments.

Cards the user was assigned to are kept.

Example:
  taskboard-api user delete 6f1c9a2e-3b7d-4c1e-9a55-0d2f8e4b7c10`,
	Args: cobra.ExactArgs(1),
	RunE: runUserDelete,
}

func init() {
	userCmd.AddCommand(userDeleteCmd)
}

func runUserDelete(cmd *cobra.Command, args []string) error {
	id := args[0]

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer database.Close(db)

	users := service.NewUserService(repository.NewUserRepository(db), repository.NewTransactor(db), logger)
	if err := users.DeleteUser(cmd.Context(), id); err != nil {
		var appErr *response.AppError
		if errors.As(err, &appErr) && appErr.Code == response.ErrCodeNotFound {
			return fmt.Errorf("user %q not found", id)
		}
		return fmt.Errorf("delete user: %w", err)
	}

	fmt.Printf("Deleted user: %s\n", id)
	return nil
}
