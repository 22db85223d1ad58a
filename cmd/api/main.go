// @title Interview Bank API
// @version 1.0
// @description Question bank and interview runner. Pages are served as HTML; the endpoints below back the page scripts.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:5000
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "interview-bank/cmd/api/docs"
	"interview-bank/internal/adapter"
	"interview-bank/internal/cache"
	"interview-bank/internal/config"
	"interview-bank/internal/database"
	"interview-bank/internal/domain"
	"interview-bank/internal/handler"
	"interview-bank/internal/logger"
	"interview-bank/internal/middleware"
	"interview-bank/internal/repository"
	"interview-bank/internal/service"
	"interview-bank/internal/validation"
	"interview-bank/internal/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database
	db, err := database.Open(cfg.DB)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.String("driver", cfg.DB.Driver), zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db.DB, cfg.DB.Driver); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	themeRepository := repository.NewThemeDatabaseAdapter(db)
	questionRepository := repository.NewQuestionDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Report storage
	reportStore := adapter.NewFileReportStore(afero.NewOsFs(), cfg.Results.Dir)
	var reportIndex domain.ReportIndex = adapter.NoopReportIndex{}
	if cfg.RedisEnabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		reportIndex = adapter.NewRedisReportIndex(redisClient, cfg.Redis.RecentLimit, cfg.Redis.RecentTTL)
		appLogger.Info("Recent report index backed by Redis", zap.String("address", cfg.Redis.Address))
	} else {
		appLogger.Info("Redis address not configured, recent report index disabled")
	}

	// Initialize services
	validator := validation.NewValidator()
	questionService := service.NewQuestionService(themeRepository, questionRepository, txManager, validator)
	themeService := service.NewThemeService(themeRepository, questionRepository, txManager, validator)
	interviewService := service.NewInterviewService(themeRepository, questionRepository, reportStore, reportIndex, cfg.Redis.RecentLimit)

	// Initialize handlers
	handlers := handler.Handlers{
		Pages:     handler.NewPageHandler(questionService, interviewService, validator),
		Questions: handler.NewQuestionHandler(questionService),
		Themes:    handler.NewThemeHandler(themeService),
		Reports:   handler.NewReportHandler(interviewService, db),
	}

	app := fiber.New(fiber.Config{
		Views:        web.NewEngine(),
		ErrorHandler: middleware.ErrorHandler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))

	app.Use("/static", filesystem.New(filesystem.Config{Root: web.Static()}))
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Everything below shares one connection per request.
	app.Use(middleware.DBSession(db))
	handler.RegisterRoutes(app, handlers)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Starting server",
			zap.Int("port", cfg.Server.Port),
			zap.String("env", cfg.Logger.Env),
			zap.String("db_driver", cfg.DB.Driver),
			zap.String("results_dir", cfg.Results.Dir),
		)
		return app.Listen(":" + strconv.Itoa(cfg.Server.Port))
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error("Server stopped with error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	appLogger.Info("Server exited gracefully")
}
