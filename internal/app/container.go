// Package app wires configuration, storage, and handlers into a running
// application.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tasklens/tasklens/internal/analytics/application/queries"
	"github.com/tasklens/tasklens/internal/analytics/domain"
	"github.com/tasklens/tasklens/internal/analytics/infrastructure/persistence"
	"github.com/tasklens/tasklens/internal/genai"
	"github.com/tasklens/tasklens/internal/shared/infrastructure/database"
	_ "github.com/tasklens/tasklens/internal/shared/infrastructure/database/postgres" // Register PostgreSQL driver
	_ "github.com/tasklens/tasklens/internal/shared/infrastructure/database/sqlite"   // Register SQLite driver
	"github.com/tasklens/tasklens/internal/shared/infrastructure/migrations"
	"github.com/tasklens/tasklens/pkg/config"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Database
	DBConn   database.Connection
	DBDriver database.Driver

	// Current user context
	CurrentUserID uuid.UUID

	// Analytics
	Reader    domain.Reader
	Responder genai.Responder

	// Query handlers
	GetStatisticsHandler        *queries.GetStatisticsHandler
	GetCategoryBreakdownHandler *queries.GetCategoryBreakdownHandler
	GetMonthlySummaryHandler    *queries.GetMonthlySummaryHandler
	QueryTaskDataHandler        *queries.QueryTaskDataHandler
	ListRecentTasksHandler      *queries.ListRecentTasksHandler
}

// NewContainer builds the application container. With DATABASE_URL unset it
// runs in local mode against SQLite, applying migrations automatically.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	driver := database.DetectDriver(cfg.DatabaseURL)

	conn, err := database.NewConnection(ctx, database.Config{
		Driver:     driver,
		URL:        cfg.DatabaseURL,
		SQLitePath: cfg.SQLitePath,
		MaxConns:   cfg.MaxConns,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if driver == database.DriverSQLite {
		logger.Info("running SQLite migrations")
		if err := migrations.RunSQLite(ctx, conn); err != nil {
			conn.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}

	userID, err := uuid.Parse(cfg.UserID)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("parse user id %q: %w", cfg.UserID, err)
	}

	var reader domain.Reader
	switch driver {
	case database.DriverPostgres:
		reader = persistence.NewPostgresReader(conn)
	default:
		reader = persistence.NewSQLiteReader(conn)
	}

	var responder genai.Responder
	if cfg.AIEnabled() {
		responder = genai.NewGeminiResponder(genai.GeminiConfig{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
		}, logger)
	} else {
		logger.Warn("GEMINI_API_KEY not provided, using rule-based responses")
		responder = genai.NewRuleResponder()
	}

	c := &Container{
		Config:        cfg,
		Logger:        logger,
		DBConn:        conn,
		DBDriver:      driver,
		CurrentUserID: userID,
		Reader:        reader,
		Responder:     responder,

		GetStatisticsHandler:        queries.NewGetStatisticsHandler(reader, logger),
		GetCategoryBreakdownHandler: queries.NewGetCategoryBreakdownHandler(reader, logger),
		GetMonthlySummaryHandler:    queries.NewGetMonthlySummaryHandler(reader, logger),
		QueryTaskDataHandler:        queries.NewQueryTaskDataHandler(reader, responder, logger),
		ListRecentTasksHandler:      queries.NewListRecentTasksHandler(reader),
	}

	logger.Info("application container initialized", "driver", driver)
	return c, nil
}

// Close releases all resources held by the container.
func (c *Container) Close() {
	if c.DBConn != nil {
		if err := c.DBConn.Close(); err != nil {
			c.Logger.Error("failed to close database connection", "error", err)
		}
	}
}
