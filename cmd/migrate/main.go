package main

import (
	"fmt"
	"os"

	"interview-bank/internal/config"
	"interview-bank/internal/database"
	"interview-bank/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:           "migrate",
	Short:         "Manage the question bank schema",
	Long:          "Apply or roll back the embedded schema migrations of the configured database (db.driver, db.dsn).",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// withMigrator loads the configuration, opens the database and hands a
// migrator to fn. The migrator owns the connection and closes it.
func withMigrator(fn func(m *migrate.Migrate, driver string) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	db, err := database.Open(cfg.DB)
	if err != nil {
		return err
	}

	m, err := database.NewMigrator(db.DB, cfg.DB.Driver)
	if err != nil {
		db.Close()
		return err
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			logger.Get().Warn("Failed to close migrator", zap.NamedError("source", srcErr), zap.NamedError("database", dbErr))
		}
	}()

	return fn(m, cfg.DB.Driver)
}
