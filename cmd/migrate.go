package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	"github.com/Platzhalten/tux/internal/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage database schema migrations",
	Long:  `Apply or roll back schema migrations against the configured PostgreSQL database.`,
}

// migrateUpCmd represents the migrate up command
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newMigrator(cmd)
		if err != nil {
			return err
		}
		defer m.Close()

		if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}

		cmd.Println("Migrations applied")
		return nil
	},
}

// migrateDownCmd represents the migrate down command
var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newMigrator(cmd)
		if err != nil {
			return err
		}
		defer m.Close()

		if err := m.Steps(-1); err != nil {
			return fmt.Errorf("failed to roll back migration: %w", err)
		}

		cmd.Println("Rolled back one migration")
		return nil
	},
}

// newMigrator builds a migrate instance from the configured database and --source flag
func newMigrator(cmd *cobra.Command) (*migrate.Migrate, error) {
	source, err := cmd.Flags().GetString("source")
	if err != nil {
		return nil, err
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	sourcePath, err := filepath.Abs(source)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve migrations path: %w", err)
	}

	m, err := migrate.New(fmt.Sprintf("file://%s", sourcePath), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return m, nil
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.PersistentFlags().String("source", "migrations", "Path to the migration files")
}
