package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"book-catalog/internal/domains/book/model"
	"book-catalog/internal/domains/book/query"
)

// fakeRepo is an in-memory record store used to exercise the service without
// a database. It honors the Repository contract including the soft-delete
// visibility rules and the isbn uniqueness constraint.
type fakeRepo struct {
	mu       sync.Mutex
	nextID   int64
	books    map[int64]*model.Book
	lastPlan query.Plan
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{books: make(map[int64]*model.Book)}
}

func (f *fakeRepo) Create(_ context.Context, b *model.Book) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if b.ISBN != nil {
		for _, existing := range f.books {
			if existing.ISBN != nil && *existing.ISBN == *b.ISBN {
				return model.ErrISBNAlreadyExists
			}
		}
	}

	f.nextID++
	now := time.Now().UTC()
	b.ID = f.nextID
	b.CreatedAt = now
	b.UpdatedAt = now

	stored := *b
	f.books[b.ID] = &stored
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64, includeDeleted bool) (*model.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.books[id]
	if !ok {
		return nil, model.ErrBookNotFound
	}
	if b.DeletedAt != nil && !includeDeleted {
		return nil, model.ErrBookNotFound
	}

	copied := *b
	return &copied, nil
}

func (f *fakeRepo) List(_ context.Context, plan query.Plan) ([]model.Book, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lastPlan = plan

	matched := make([]model.Book, 0, len(f.books))
	for _, b := range f.books {
		if b.DeletedAt != nil {
			continue
		}
		if matchesAll(b, plan.Filters) {
			matched = append(matched, *b)
		}
	}

	sortBooks(matched, plan.Sort)

	total := len(matched)
	start := plan.Offset
	if start > total {
		start = total
	}
	end := start + plan.Limit
	if end > total {
		end = total
	}

	return matched[start:end], total, nil
}

func (f *fakeRepo) Update(_ context.Context, b *model.Book) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.books[b.ID]
	if !ok {
		return model.ErrBookNotFound
	}

	b.UpdatedAt = time.Now().UTC()
	b.CreatedAt = stored.CreatedAt
	b.DeletedAt = stored.DeletedAt

	copied := *b
	f.books[b.ID] = &copied
	return nil
}

func (f *fakeRepo) SoftDelete(_ context.Context, id int64, deletedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.books[id]
	if !ok || b.DeletedAt != nil {
		return nil
	}

	b.DeletedAt = &deletedAt
	b.UpdatedAt = deletedAt
	return nil
}

func (f *fakeRepo) HardDelete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.books[id]; !ok {
		return model.ErrBookNotFound
	}

	delete(f.books, id)
	return nil
}

func (f *fakeRepo) Restore(_ context.Context, id int64) (*model.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.books[id]
	if !ok || b.DeletedAt == nil {
		return nil, model.ErrBookNotFound
	}

	b.DeletedAt = nil
	b.UpdatedAt = time.Now().UTC()

	copied := *b
	return &copied, nil
}

func matchesAll(b *model.Book, filters []query.Filter) bool {
	for _, f := range filters {
		if !matches(b, f) {
			return false
		}
	}
	return true
}

func matches(b *model.Book, f query.Filter) bool {
	switch f.Field {
	case "title":
		return containsFold(b.Title, f.Value)
	case "author":
		return containsFold(b.Author, f.Value)
	case "genre":
		return b.Genre != nil && containsFold(*b.Genre, f.Value)
	case "isbn":
		return b.ISBN != nil && *b.ISBN == f.Value
	case "published_date":
		if b.PublishedDate == nil {
			return false
		}
		bound, err := time.Parse("2006-01-02", f.Value)
		if err != nil {
			return false
		}
		if f.Op == query.OpOnOrAfter {
			return !b.PublishedDate.Before(bound)
		}
		return !b.PublishedDate.After(bound)
	default:
		return false
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func sortBooks(books []model.Book, keys []query.SortKey) {
	sort.SliceStable(books, func(i, j int) bool {
		for _, k := range keys {
			cmp := compareField(&books[i], &books[j], k.Field)
			if cmp == 0 {
				continue
			}
			if k.Desc {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

func compareField(a, b *model.Book, field string) int {
	switch field {
	case "title":
		return strings.Compare(a.Title, b.Title)
	case "author":
		return strings.Compare(a.Author, b.Author)
	case "created_at":
		return a.CreatedAt.Compare(b.CreatedAt)
	case "id":
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	default:
		return 0
	}
}
