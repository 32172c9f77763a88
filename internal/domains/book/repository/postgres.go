package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"book-catalog/internal/domains/book/model"
	"book-catalog/internal/domains/book/query"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookColumns = `id, title, author, isbn, published_date, genre, description, created_at, updated_at, deleted_at`

// postgresRepository - raw SQL with pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// buildWhereClause constructs the WHERE clause from the plan's filters.
// Filters always compose with AND; the deleted_at predicate restricts list
// queries to active records.
func buildWhereClause(plan query.Plan) (string, []interface{}) {
	conditions := []string{"deleted_at IS NULL"}
	args := []interface{}{}
	argIndex := 1

	for _, f := range plan.Filters {
		switch f.Op {
		case query.OpContains:
			conditions = append(conditions, fmt.Sprintf("%s ILIKE $%d", pgx.Identifier{f.Field}.Sanitize(), argIndex))
			args = append(args, "%"+f.Value+"%")
		case query.OpEquals:
			conditions = append(conditions, fmt.Sprintf("%s = $%d", pgx.Identifier{f.Field}.Sanitize(), argIndex))
			args = append(args, f.Value)
		case query.OpOnOrAfter:
			conditions = append(conditions, fmt.Sprintf("%s >= $%d", pgx.Identifier{f.Field}.Sanitize(), argIndex))
			args = append(args, f.Value)
		case query.OpOnOrBefore:
			conditions = append(conditions, fmt.Sprintf("%s <= $%d", pgx.Identifier{f.Field}.Sanitize(), argIndex))
			args = append(args, f.Value)
		}
		argIndex++
	}

	return strings.Join(conditions, " AND "), args
}

// buildOrderByClause renders the plan's sort keys left to right. Field names
// are quoted but not whitelisted; an unknown field errors at execution time.
func buildOrderByClause(keys []query.SortKey) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		dir := "ASC"
		if k.Desc {
			dir = "DESC"
		}
		parts = append(parts, pgx.Identifier{k.Field}.Sanitize()+" "+dir)
	}
	return strings.Join(parts, ", ")
}

// List returns one page of active records matching the plan plus the total
// match count.
func (r *postgresRepository) List(ctx context.Context, plan query.Plan) ([]model.Book, int, error) {
	whereClause, args := buildWhereClause(plan)

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM books WHERE %s`, whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, storeError("count books", err)
	}

	listQuery := fmt.Sprintf(
		`SELECT %s FROM books WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		bookColumns, whereClause, buildOrderByClause(plan.Sort), len(args)+1, len(args)+2,
	)
	args = append(args, plan.Limit, plan.Offset)

	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, storeError("list books", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0, plan.Limit)
	for rows.Next() {
		var b model.Book
		if err := scanBook(rows, &b); err != nil {
			return nil, 0, storeError("scan book", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, storeError("list books", err)
	}

	return books, total, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64, includeDeleted bool) (*model.Book, error) {
	q := fmt.Sprintf(`SELECT %s FROM books WHERE id = $1`, bookColumns)
	if !includeDeleted {
		q += ` AND deleted_at IS NULL`
	}

	var b model.Book
	err := scanBook(r.pool.QueryRow(ctx, q, id), &b)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBookNotFound
	}
	if err != nil {
		return nil, storeError("get book", err)
	}

	return &b, nil
}

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) error {
	q := `
		INSERT INTO books (title, author, isbn, published_date, genre, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, q,
		b.Title, b.Author, b.ISBN, b.PublishedDate, b.Genre, b.Description,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)

	if isUniqueViolation(err) {
		return model.ErrISBNAlreadyExists
	}
	if err != nil {
		return storeError("insert book", err)
	}

	return nil
}

func (r *postgresRepository) Update(ctx context.Context, b *model.Book) error {
	// No deleted_at predicate: edits to soft-deleted records are allowed.
	q := `
		UPDATE books
		SET title = $1, author = $2, isbn = $3, published_date = $4,
		    genre = $5, description = $6, updated_at = now()
		WHERE id = $7
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, q,
		b.Title, b.Author, b.ISBN, b.PublishedDate, b.Genre, b.Description, b.ID,
	).Scan(&b.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrBookNotFound
	}
	if isUniqueViolation(err) {
		return model.ErrISBNAlreadyExists
	}
	if err != nil {
		return storeError("update book", err)
	}

	return nil
}

func (r *postgresRepository) SoftDelete(ctx context.Context, id int64, deletedAt time.Time) error {
	q := `
		UPDATE books
		SET deleted_at = $1, updated_at = $1
		WHERE id = $2 AND deleted_at IS NULL
	`

	if _, err := r.pool.Exec(ctx, q, deletedAt, id); err != nil {
		return storeError("soft delete book", err)
	}

	// Zero rows means the record was already soft-deleted (or raced away);
	// both count as success for this operation.
	return nil
}

func (r *postgresRepository) HardDelete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return storeError("hard delete book", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}

	return nil
}

func (r *postgresRepository) Restore(ctx context.Context, id int64) (*model.Book, error) {
	q := fmt.Sprintf(`
		UPDATE books
		SET deleted_at = NULL, updated_at = now()
		WHERE id = $1 AND deleted_at IS NOT NULL
		RETURNING %s
	`, bookColumns)

	var b model.Book
	err := scanBook(r.pool.QueryRow(ctx, q, id), &b)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBookNotFound
	}
	if err != nil {
		return nil, storeError("restore book", err)
	}

	return &b, nil
}

func scanBook(row pgx.Row, b *model.Book) error {
	return row.Scan(
		&b.ID, &b.Title, &b.Author, &b.ISBN, &b.PublishedDate,
		&b.Genre, &b.Description, &b.CreatedAt, &b.UpdatedAt, &b.DeletedAt,
	)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// storeError classifies persistence failures: connection-level errors become
// ErrStoreUnavailable so the boundary can answer 503; everything else is
// wrapped with context.
func storeError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "08") {
		return fmt.Errorf("%w: %s: %v", model.ErrStoreUnavailable, op, err)
	}
	if pgconn.Timeout(err) {
		return fmt.Errorf("%w: %s: %v", model.ErrStoreUnavailable, op, err)
	}
	return fmt.Errorf("%s failed: %w", op, err)
}
