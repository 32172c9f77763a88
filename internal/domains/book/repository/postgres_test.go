package repository

import (
	"testing"

	"book-catalog/internal/domains/book/model"
	"book-catalog/internal/domains/book/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWhereClause(t *testing.T) {
	t.Run("no filters restricts to active records only", func(t *testing.T) {
		clause, args := buildWhereClause(query.Plan{})

		assert.Equal(t, "deleted_at IS NULL", clause)
		assert.Empty(t, args)
	})

	t.Run("filters append in order with numbered args", func(t *testing.T) {
		plan := query.BuildPlan(model.ListBooksRequest{
			Title:           "Harry",
			ISBN:            "9780306406157",
			PublishedAfter:  "1990-01-01",
			PublishedBefore: "2000-12-31",
		})

		clause, args := buildWhereClause(plan)

		assert.Equal(t,
			`deleted_at IS NULL AND "title" ILIKE $1 AND "isbn" = $2 AND "published_date" >= $3 AND "published_date" <= $4`,
			clause,
		)
		require.Len(t, args, 4)
		assert.Equal(t, "%Harry%", args[0])
		assert.Equal(t, "9780306406157", args[1])
		assert.Equal(t, "1990-01-01", args[2])
		assert.Equal(t, "2000-12-31", args[3])
	})

	t.Run("substring filters wrap the value in wildcards", func(t *testing.T) {
		plan := query.BuildPlan(model.ListBooksRequest{Author: "Rowl"})

		_, args := buildWhereClause(plan)

		require.Len(t, args, 1)
		assert.Equal(t, "%Rowl%", args[0])
	})
}

func TestBuildOrderByClause(t *testing.T) {
	t.Run("default sort", func(t *testing.T) {
		plan := query.BuildPlan(model.ListBooksRequest{})

		assert.Equal(t, `"created_at" DESC`, buildOrderByClause(plan.Sort))
	})

	t.Run("multi-field sort keeps left-to-right precedence", func(t *testing.T) {
		plan := query.BuildPlan(model.ListBooksRequest{Sort: "-title,author"})

		assert.Equal(t, `"title" DESC, "author" ASC`, buildOrderByClause(plan.Sort))
	})

	t.Run("field names are quoted, not whitelisted", func(t *testing.T) {
		// Pass-through fields reach the query; quoting keeps them inert.
		clause := buildOrderByClause([]query.SortKey{{Field: `x"; DROP TABLE books;--`}})

		assert.Equal(t, `"x""; DROP TABLE books;--" ASC`, clause)
	})
}
