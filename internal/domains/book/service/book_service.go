package service

import (
	"context"
	"time"

	"book-catalog/internal/domains/book/model"
	"book-catalog/internal/domains/book/query"
	"book-catalog/internal/domains/book/repository"
	"book-catalog/pkg/logger"
)

// BookService implements Service. It holds no state beyond the injected
// store; every operation is an independent unit of work, and read-then-write
// sequences are not atomic (concurrent mutations to the same id are
// last-write-wins).
type BookService struct {
	repo repository.Repository
}

func NewBookService(repo repository.Repository) Service {
	return &BookService{repo: repo}
}

// List runs the query plan and assembles pagination metadata. A page past the
// end simply yields an empty result set.
func (s *BookService) List(ctx context.Context, req model.ListBooksRequest) ([]model.Book, query.Meta, error) {
	plan := query.BuildPlan(req)

	books, total, err := s.repo.List(ctx, plan)
	if err != nil {
		return nil, query.Meta{}, err
	}

	meta := query.ComputeMeta(total, plan.Page, plan.Limit)

	logger.Info("listed books", map[string]interface{}{
		"count": len(books),
		"page":  meta.CurrentPage,
		"total": meta.Total,
	})

	return books, meta, nil
}

// GetByID returns an active record; soft-deleted and purged ids yield
// ErrBookNotFound.
func (s *BookService) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	return s.repo.GetByID(ctx, id, false)
}

func (s *BookService) Create(ctx context.Context, req model.CreateBookRequest) (*model.Book, error) {
	book := req.ToEntity()

	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}

	logger.Info("created book", map[string]interface{}{"id": book.ID})
	return book, nil
}

// Update applies the partial fields to an active or soft-deleted record. The
// lifecycle state is untouched.
func (s *BookService) Update(ctx context.Context, id int64, req model.UpdateBookRequest) (*model.Book, error) {
	book, err := s.repo.GetByID(ctx, id, true)
	if err != nil {
		return nil, err
	}

	if err := req.ApplyTo(book); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, book); err != nil {
		return nil, err
	}

	logger.Info("updated book", map[string]interface{}{"id": id})
	return book, nil
}

// SoftDelete transitions Active -> SoftDeleted. Repeating it on an already
// soft-deleted record succeeds without changing anything.
func (s *BookService) SoftDelete(ctx context.Context, id int64) error {
	book, err := s.repo.GetByID(ctx, id, true)
	if err != nil {
		return err
	}

	if book.IsDeleted() {
		return nil
	}

	if err := s.repo.SoftDelete(ctx, id, time.Now().UTC()); err != nil {
		return err
	}

	logger.Info("soft deleted book", map[string]interface{}{"id": id})
	return nil
}

// HardDelete purges the record from either lifecycle state. Terminal: the id
// can never be retrieved or restored afterwards.
func (s *BookService) HardDelete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id, true); err != nil {
		return err
	}

	if err := s.repo.HardDelete(ctx, id); err != nil {
		return err
	}

	logger.Info("hard deleted book", map[string]interface{}{"id": id})
	return nil
}

// Restore transitions SoftDeleted -> Active. Restoring a record that is not
// deleted fails with ErrBookNotDeleted, not ErrBookNotFound.
func (s *BookService) Restore(ctx context.Context, id int64) (*model.Book, error) {
	book, err := s.repo.GetByID(ctx, id, true)
	if err != nil {
		return nil, err
	}

	if !book.IsDeleted() {
		return nil, model.ErrBookNotDeleted
	}

	restored, err := s.repo.Restore(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.Info("restored book", map[string]interface{}{"id": id})
	return restored, nil
}
