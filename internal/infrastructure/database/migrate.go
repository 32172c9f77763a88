package database

import (
	"context"
	"fmt"
)

// Statements are idempotent so startup can run them on every boot, the same
// way the schema is kept in sync in development deployments.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS books (
		id             BIGSERIAL PRIMARY KEY,
		title          VARCHAR(255) NOT NULL,
		author         VARCHAR(255) NOT NULL,
		isbn           VARCHAR(20) UNIQUE,
		published_date DATE,
		genre          VARCHAR(100),
		description    TEXT,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at     TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_books_title_author ON books (title, author)`,
	`CREATE INDEX IF NOT EXISTS idx_books_genre ON books (genre)`,
}

// SyncSchema creates the books table and its indexes if they do not exist.
func (db *PostgresDB) SyncSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema sync failed: %w", err)
		}
	}
	return nil
}
