package main

import (
	"errors"
	"fmt"
	"strconv"

	"interview-bank/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var downAll bool

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE:  runUp,
}

var downCmd = &cobra.Command{
	Use:   "down [n]",
	Short: "Roll back the last n migrations (default 1)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDown,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current schema version",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	downCmd.Flags().BoolVar(&downAll, "all", false, "Roll back every migration")
	rootCmd.AddCommand(upCmd, downCmd, versionCmd)
}

func runUp(cmd *cobra.Command, args []string) error {
	return withMigrator(func(m *migrate.Migrate, driver string) error {
		if err := m.Up(); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				logger.Get().Info("Schema is up to date", zap.String("driver", driver))
				return nil
			}
			return fmt.Errorf("migrate up: %w", err)
		}
		return printVersion(cmd, m)
	})
}

func runDown(cmd *cobra.Command, args []string) error {
	steps := 1
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid step count %q", args[0])
		}
		steps = n
	}

	return withMigrator(func(m *migrate.Migrate, driver string) error {
		var err error
		if downAll {
			err = m.Down()
		} else {
			err = m.Steps(-steps)
		}
		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrate down: %w", err)
		}
		logger.Get().Info("Rolled back migrations", zap.String("driver", driver), zap.Int("steps", steps), zap.Bool("all", downAll))
		return printVersion(cmd, m)
	})
}

func runVersion(cmd *cobra.Command, args []string) error {
	return withMigrator(func(m *migrate.Migrate, driver string) error {
		return printVersion(cmd, m)
	})
}

func printVersion(cmd *cobra.Command, m *migrate.Migrate) error {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		cmd.Println("version: none")
		return nil
	}
	if err != nil {
		return fmt.Errorf("read version: %w", err)
	}
	cmd.Printf("version: %d (dirty: %t)\n", version, dirty)
	return nil
}
