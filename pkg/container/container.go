package container

import (
	"context"
	"fmt"
	"time"

	"book-catalog/internal/config"
	"book-catalog/internal/domains/book/handler"
	"book-catalog/internal/domains/book/repository"
	"book-catalog/internal/domains/book/service"
	"book-catalog/internal/infrastructure/database"
	"book-catalog/pkg/logger"
)

// Container holds the application's dependency graph. Every component is a
// singleton constructed once at startup; there is no ambient global state.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	BookRepo    repository.Repository
	BookService service.Service
	BookHandler *handler.Handler
}

// NewContainer builds the graph in dependency order:
// config -> database -> repository -> service -> handler.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db := database.NewPostgresDB(&cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.SyncSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to sync schema: %w", err)
	}
	c.DB = db

	c.BookRepo = repository.NewPostgresRepository(db.Pool)
	c.BookService = service.NewBookService(c.BookRepo)
	c.BookHandler = handler.NewHandler(c.BookService)

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	return c, nil
}

// Cleanup releases resources during graceful shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
