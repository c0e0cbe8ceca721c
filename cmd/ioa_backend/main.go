package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/expensio/invoice_ocr_api/internal/adapters/database/pgsql"
	"github.com/expensio/invoice_ocr_api/internal/adapters/memory"
	portsrepo "github.com/expensio/invoice_ocr_api/internal/core/ports/repositories"
	"github.com/expensio/invoice_ocr_api/internal/core/services"
	"github.com/expensio/invoice_ocr_api/internal/handlers"
	"github.com/expensio/invoice_ocr_api/internal/middleware"
	"github.com/expensio/invoice_ocr_api/internal/platform/config"
	"github.com/expensio/invoice_ocr_api/pkg/database"
)

// seedUserID marks reference rows written by the startup seeding pass.
const seedUserID = "system"

// @title Invoice OCR API
// @version 1.0
// @description Currency-aware total extraction over OCR text.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos, cleanup, err := setupRepositories(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize repositories", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	serviceContainer := services.NewServiceContainer(cfg, repos)

	// Load the ISO 4217 reference table. The table is immutable afterwards.
	count, err := serviceContainer.Currency.SeedCurrencies(context.Background(), seedUserID)
	if err != nil {
		logger.Error("Failed to seed currency table", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Currency table seeded", slog.Int("count", count))

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// setupRepositories wires the currency repository: Postgres (with
// migrations) when PGSQL_URL is configured, the in-memory table otherwise.
func setupRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Info("No database configured, using in-memory currency table")
		return portsrepo.RepositoryProvider{CurrencyRepo: memory.NewCurrencyRepository()}, func() {}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		dbPool.Close()
		return portsrepo.RepositoryProvider{}, nil, err
	}

	provider := portsrepo.RepositoryProvider{CurrencyRepo: pgsql.NewCurrencyRepository(dbPool)}
	return provider, dbPool.Close, nil
}

// runMigrations applies all pending "up" migrations using a temporary
// database/sql connection compatible with the pgx pool.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
