package query

import (
	"testing"

	"book-catalog/internal/domains/book/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPlan_Defaults(t *testing.T) {
	plan := BuildPlan(model.ListBooksRequest{})

	assert.Equal(t, 1, plan.Page)
	assert.Equal(t, 10, plan.Limit)
	assert.Equal(t, 0, plan.Offset)
	assert.Empty(t, plan.Filters)
	assert.Equal(t, []SortKey{{Field: "created_at", Desc: true}}, plan.Sort)
}

func TestBuildPlan_Offset(t *testing.T) {
	tests := []struct {
		page, limit int
		wantOffset  int
	}{
		{1, 10, 0},
		{2, 5, 5},
		{3, 10, 20},
		{7, 25, 150},
	}

	for _, tt := range tests {
		plan := BuildPlan(model.ListBooksRequest{Page: tt.page, Limit: tt.limit})
		assert.Equal(t, tt.wantOffset, plan.Offset)
		assert.Equal(t, tt.limit, plan.Limit)
	}
}

func TestBuildPlan_FiltersComposeWithAND(t *testing.T) {
	plan := BuildPlan(model.ListBooksRequest{
		Title:  "Harry",
		Author: "Rowling",
		ISBN:   "9780306406157",
	})

	require.Len(t, plan.Filters, 3)
	assert.Contains(t, plan.Filters, Filter{Field: "title", Op: OpContains, Value: "Harry"})
	assert.Contains(t, plan.Filters, Filter{Field: "author", Op: OpContains, Value: "Rowling"})
	assert.Contains(t, plan.Filters, Filter{Field: "isbn", Op: OpEquals, Value: "9780306406157"})
}

func TestBuildPlan_AbsentFieldsImposeNoConstraint(t *testing.T) {
	plan := BuildPlan(model.ListBooksRequest{Genre: "Fantasy"})

	require.Len(t, plan.Filters, 1)
	assert.Equal(t, Filter{Field: "genre", Op: OpContains, Value: "Fantasy"}, plan.Filters[0])
}

func TestBuildPlan_DateRange(t *testing.T) {
	t.Run("closed interval", func(t *testing.T) {
		plan := BuildPlan(model.ListBooksRequest{
			PublishedAfter:  "1990-01-01",
			PublishedBefore: "2000-12-31",
		})

		require.Len(t, plan.Filters, 2)
		assert.Equal(t, Filter{Field: "published_date", Op: OpOnOrAfter, Value: "1990-01-01"}, plan.Filters[0])
		assert.Equal(t, Filter{Field: "published_date", Op: OpOnOrBefore, Value: "2000-12-31"}, plan.Filters[1])
	})

	t.Run("open interval", func(t *testing.T) {
		plan := BuildPlan(model.ListBooksRequest{PublishedAfter: "1990-01-01"})

		require.Len(t, plan.Filters, 1)
		assert.Equal(t, OpOnOrAfter, plan.Filters[0].Op)
	})
}

func TestBuildPlan_SortParsing(t *testing.T) {
	t.Run("leading dash means descending", func(t *testing.T) {
		plan := BuildPlan(model.ListBooksRequest{Sort: "-title,author"})

		assert.Equal(t, []SortKey{
			{Field: "title", Desc: true},
			{Field: "author", Desc: false},
		}, plan.Sort)
	})

	t.Run("order of fields is preserved", func(t *testing.T) {
		plan := BuildPlan(model.ListBooksRequest{Sort: "genre,-published_date,title"})

		assert.Equal(t, []SortKey{
			{Field: "genre", Desc: false},
			{Field: "published_date", Desc: true},
			{Field: "title", Desc: false},
		}, plan.Sort)
	})

	t.Run("blank entries are skipped", func(t *testing.T) {
		plan := BuildPlan(model.ListBooksRequest{Sort: "title,, author"})

		assert.Equal(t, []SortKey{
			{Field: "title", Desc: false},
			{Field: "author", Desc: false},
		}, plan.Sort)
	})

	t.Run("only blank entries falls back to default", func(t *testing.T) {
		plan := BuildPlan(model.ListBooksRequest{Sort: " , "})

		assert.Equal(t, []SortKey{{Field: "created_at", Desc: true}}, plan.Sort)
	})

	t.Run("unrecognized field names pass through", func(t *testing.T) {
		plan := BuildPlan(model.ListBooksRequest{Sort: "view_count"})

		assert.Equal(t, []SortKey{{Field: "view_count", Desc: false}}, plan.Sort)
	})
}

func TestBuildPlan_IsPure(t *testing.T) {
	req := model.ListBooksRequest{Page: 2, Limit: 5, Title: "Dune", Sort: "-title"}

	first := BuildPlan(req)
	second := BuildPlan(req)

	assert.Equal(t, first, second)
	assert.Equal(t, model.ListBooksRequest{Page: 2, Limit: 5, Title: "Dune", Sort: "-title"}, req)
}
