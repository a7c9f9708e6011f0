package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carson-networks/expensum/internal/storage"
	"github.com/carson-networks/expensum/internal/storage/migrations"
)

var migrateSteps int

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Long: `Applies every pending migration. With --steps, moves the schema that many
migrations forward, or backward when negative.`,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().IntVar(&migrateSteps, "steps", 0, "Number of migrations to apply (negative rolls back)")
}

func runMigrate(_ *cobra.Command, _ []string) error {
	env, logger, err := loadEnvironment()
	if err != nil {
		return fmt.Errorf("config.ProcessEnvironmentVariables: %w", err)
	}

	store, err := storage.NewStorage(env)
	if err != nil {
		return err
	}
	defer store.Close()

	var status migrations.Status
	if migrateSteps != 0 {
		status, err = migrations.Steps(store.DB, migrateSteps)
	} else {
		status, err = migrations.Up(store.DB)
	}
	if err != nil {
		return err
	}

	logger.WithField("preMigrationVersion", status.PreMigrationVersion).
		WithField("postMigrationVersion", status.PostMigrationVersion).
		Info("migrate.Complete")
	return nil
}
