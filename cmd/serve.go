package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/carson-networks/expensum/api"
	"github.com/carson-networks/expensum/internal/aggregate"
	"github.com/carson-networks/expensum/internal/operator"
	"github.com/carson-networks/expensum/internal/service"
	"github.com/carson-networks/expensum/internal/storage"
	"github.com/carson-networks/expensum/internal/storage/migrations"
	"github.com/carson-networks/expensum/internal/token"
)

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "Apply pending migrations before serving")
}

func runServe(cmd *cobra.Command, _ []string) error {
	env, logger, err := loadEnvironment()
	if err != nil {
		return fmt.Errorf("config.ProcessEnvironmentVariables: %w", err)
	}
	logger.Info("expensum starting")

	store, err := storage.NewStorage(env)
	if err != nil {
		return err
	}
	defer store.Close()

	if migrateOnStart {
		status, err := migrations.Up(store.DB)
		if err != nil {
			return err
		}
		logger.WithField("preMigrationVersion", status.PreMigrationVersion).
			WithField("postMigrationVersion", status.PostMigrationVersion).
			Info("migrations.Up")
	}

	tokens, err := token.NewService(env.TokenSecret, env.AccessTokenTTL, env.RefreshTokenTTL)
	if err != nil {
		return err
	}

	delegator := operator.NewOperatorDelegator(store, env.OperatorWorkers, logger)
	delegator.Start()
	defer delegator.Stop()

	policy := aggregate.AlertPolicy{
		GateDay:      env.BudgetAlertGateDay,
		GateExceeded: env.BudgetAlertGateExceeded,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rest := api.Rest{
		Logger:  logger,
		Config:  env,
		Service: service.NewService(store, delegator, tokens, policy),
		Tokens:  tokens,
		Storage: store,
	}
	err = rest.Serve(ctx)
	logger.Info("expensum stopped")
	return err
}

