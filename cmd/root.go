package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/expensum/internal/config"
	"github.com/carson-networks/expensum/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "expensum",
	Short: "Personal expense tracking API",
	Long: `Expensum serves the expense tracking REST API: accounts, categories,
expenses, monthly budgets and a spending dashboard, backed by Postgres.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("expensum exited")
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

// loadEnvironment reads configuration and builds the logger for it.
func loadEnvironment() (*config.Config, *logrus.Logger, error) {
	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return nil, nil, err
	}
	return env, logging.SetupLoggingForEnvironment(env.Environment), nil
}
