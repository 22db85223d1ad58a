package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"interview-bank/internal/config"
	"interview-bank/internal/database"
	"interview-bank/internal/logger"
	"interview-bank/internal/repository"
	"interview-bank/internal/service"
	"interview-bank/internal/validation"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const defaultSeedFilePath = "config/seed_data/initial_questions.json"

func main() {
	seedFilePath := flag.String("file", defaultSeedFilePath, "path to the JSON seed file")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting initial data seeding process...", zap.String("driver", cfg.DB.Driver))
	db, err := database.Open(cfg.DB)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db.DB, cfg.DB.Driver); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	bank, err := loadSeedFile(afero.NewOsFs(), *seedFilePath)
	if err != nil {
		log.Fatal("Failed to load seed data", zap.String("path", *seedFilePath), zap.Error(err))
	}
	log.Info("Successfully loaded seed data", zap.Int("themes_loaded", len(bank.Themes)))

	themeRepo := repository.NewThemeDatabaseAdapter(db)
	questionRepo := repository.NewQuestionDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)
	validator := validation.NewValidator()

	seeder := &bankSeeder{
		questions: service.NewQuestionService(themeRepo, questionRepo, txManager, validator),
		themes:    service.NewThemeService(themeRepo, questionRepo, txManager, validator),
		log:       log,
	}

	stats, err := seeder.Seed(ctx, bank)
	if err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}
	log.Info("Initial data seeding process completed.",
		zap.Int("questions_created", stats.Created),
		zap.Int("questions_skipped", stats.Skipped),
	)
}
