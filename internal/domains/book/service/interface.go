package service

import (
	"context"

	"book-catalog/internal/domains/book/model"
	"book-catalog/internal/domains/book/query"
)

// Service orchestrates record lifecycle operations against the store and
// enforces the state machine: Active -> SoftDeleted -> Active (restore) or
// -> Purged (hard delete, terminal).
type Service interface {
	List(ctx context.Context, req model.ListBooksRequest) ([]model.Book, query.Meta, error)
	GetByID(ctx context.Context, id int64) (*model.Book, error)
	Create(ctx context.Context, req model.CreateBookRequest) (*model.Book, error)
	Update(ctx context.Context, id int64, req model.UpdateBookRequest) (*model.Book, error)
	SoftDelete(ctx context.Context, id int64) error
	HardDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) (*model.Book, error)
}
