package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/budgetplanner/budget_planner_app/internal/adapters/database/badgerdb"
	portsrepo "github.com/budgetplanner/budget_planner_app/internal/core/ports/repositories"
	"github.com/budgetplanner/budget_planner_app/internal/core/services"
	"github.com/budgetplanner/budget_planner_app/internal/events"
	"github.com/budgetplanner/budget_planner_app/internal/handlers"
	"github.com/budgetplanner/budget_planner_app/internal/middleware"
	"github.com/budgetplanner/budget_planner_app/internal/platform/config"
	"github.com/budgetplanner/budget_planner_app/internal/platform/readiness"
	"github.com/budgetplanner/budget_planner_app/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title BPA Backend API
// @version 1.0
// @description This is the local backend for the budget planner app.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The readiness gate stays closed until the store is open and seeded.
	// Data routes answer 503 in the meantime instead of racing the init.
	gate := readiness.NewGate()

	db, err := database.NewBadgerDB(cfg.DataDir, false, logger)
	if err != nil {
		logger.Error("Failed to open store", slog.String("error", err.Error()), slog.String("data_dir", cfg.DataDir))
		os.Exit(1)
	}
	defer database.CloseBadgerDB(db, logger)
	logger.Info("Store opened.", slog.String("data_dir", cfg.DataDir))

	store, err := badgerdb.NewStore(db)
	if err != nil {
		logger.Error("Failed to initialize store collections", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := portsrepo.RepositoryProvider{
		AccountRepo:     badgerdb.NewAccountRepository(store),
		TransactionRepo: badgerdb.NewTransactionRepository(store),
		CategoryRepo:    badgerdb.NewCategoryRepository(store),
		BudgetRepo:      badgerdb.NewBudgetRepository(store),
		MaintenanceRepo: badgerdb.NewMaintenanceRepository(store),
	}

	serviceContainer := services.NewServiceContainer(repos)

	if cfg.SeedOnStart {
		if err := serviceContainer.Maintenance.SeedInitialData(context.Background()); err != nil {
			// The process keeps serving so the failure is observable on
			// /health/ready, but data routes stay closed.
			logger.Error("Failed to seed initial data", slog.String("error", err.Error()))
			gate.MarkFailed(err)
		}
	}
	gate.MarkReady()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	adminRate, err := limiter.NewRateFromFormatted(cfg.AdminRateLimit)
	if err != nil {
		logger.Error("Invalid admin rate limit", slog.String("error", err.Error()), slog.String("value", cfg.AdminRateLimit))
		os.Exit(1)
	}
	adminLimiter := limiter.New(memory.NewStore(), adminRate)

	bus := events.NewBus()

	handlers.RegisterRoutes(r, cfg, serviceContainer, gate, bus, adminLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
