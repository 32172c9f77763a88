package repository

import (
	"context"
	"time"

	"book-catalog/internal/domains/book/model"
	"book-catalog/internal/domains/book/query"
)

// Repository is the abstract record store the service depends on. Any backing
// engine (or an in-memory fake for tests) can implement it.
type Repository interface {
	// Create inserts the record and fills in ID, CreatedAt and UpdatedAt.
	// Returns model.ErrISBNAlreadyExists on an isbn uniqueness violation.
	Create(ctx context.Context, b *model.Book) error

	// GetByID returns the record or model.ErrBookNotFound. Soft-deleted
	// records are only visible when includeDeleted is true.
	GetByID(ctx context.Context, id int64, includeDeleted bool) (*model.Book, error)

	// List executes the query plan over active records and returns the page
	// of results plus the total count of matching records.
	List(ctx context.Context, plan query.Plan) ([]model.Book, int, error)

	// Update persists the record's mutable fields and refreshes UpdatedAt.
	// Soft-deleted records are updatable. Returns model.ErrBookNotFound if
	// the id does not resolve to a stored record.
	Update(ctx context.Context, b *model.Book) error

	// SoftDelete stamps deleted_at on an active record. Calling it on an
	// already-deleted or absent id is a no-op; callers verify existence first.
	SoftDelete(ctx context.Context, id int64, deletedAt time.Time) error

	// HardDelete removes the record permanently. Returns
	// model.ErrBookNotFound if nothing was deleted.
	HardDelete(ctx context.Context, id int64) error

	// Restore clears deleted_at on a soft-deleted record and returns the
	// restored record. Returns model.ErrBookNotFound if no soft-deleted
	// record matches.
	Restore(ctx context.Context, id int64) (*model.Book, error)
}
