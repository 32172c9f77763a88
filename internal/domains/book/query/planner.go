// Package query turns raw list parameters into a normalized, typed query plan
// and derives the pagination metadata returned alongside list results. Both
// are pure computations; nothing here touches the store.
package query

import (
	"strings"

	"book-catalog/internal/domains/book/model"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Op identifies how a filter value is matched against its field.
type Op int

const (
	OpContains  Op = iota // substring match
	OpEquals              // exact match
	OpOnOrAfter           // inclusive lower date bound
	OpOnOrBefore          // inclusive upper date bound
)

// Filter is a single field predicate. Filters in a plan compose with AND.
type Filter struct {
	Field string
	Op    Op
	Value string
}

// SortKey is one entry of the resolved sort order. Keys apply left to right
// as successive tie-breakers.
type SortKey struct {
	Field string
	Desc  bool
}

// Plan is the normalized query consumed by the record store.
type Plan struct {
	Filters []Filter
	Sort    []SortKey
	Page    int
	Limit   int
	Offset  int
}

// BuildPlan normalizes a validated list request into a Plan. Inputs are
// trusted to be within bounds; only defaulting happens here.
//
// Sort fields are passed through without a whitelist, matching the permissive
// reference behavior. An unrecognized field surfaces as a store error.
func BuildPlan(req model.ListBooksRequest) Plan {
	page := req.Page
	if page == 0 {
		page = DefaultPage
	}
	limit := req.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	plan := Plan{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	if req.Title != "" {
		plan.Filters = append(plan.Filters, Filter{Field: "title", Op: OpContains, Value: req.Title})
	}
	if req.Author != "" {
		plan.Filters = append(plan.Filters, Filter{Field: "author", Op: OpContains, Value: req.Author})
	}
	if req.Genre != "" {
		plan.Filters = append(plan.Filters, Filter{Field: "genre", Op: OpContains, Value: req.Genre})
	}
	if req.ISBN != "" {
		plan.Filters = append(plan.Filters, Filter{Field: "isbn", Op: OpEquals, Value: req.ISBN})
	}
	if req.PublishedAfter != "" {
		plan.Filters = append(plan.Filters, Filter{Field: "published_date", Op: OpOnOrAfter, Value: req.PublishedAfter})
	}
	if req.PublishedBefore != "" {
		plan.Filters = append(plan.Filters, Filter{Field: "published_date", Op: OpOnOrBefore, Value: req.PublishedBefore})
	}

	plan.Sort = parseSort(req.Sort)

	return plan
}

// parseSort splits a comma-separated sort directive into ordered keys. A
// leading '-' means descending. Empty input falls back to created_at DESC.
func parseSort(sort string) []SortKey {
	if sort == "" {
		return []SortKey{{Field: "created_at", Desc: true}}
	}

	fields := strings.Split(sort, ",")
	keys := make([]SortKey, 0, len(fields))
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		if strings.HasPrefix(field, "-") {
			keys = append(keys, SortKey{Field: field[1:], Desc: true})
		} else {
			keys = append(keys, SortKey{Field: field, Desc: false})
		}
	}

	if len(keys) == 0 {
		return []SortKey{{Field: "created_at", Desc: true}}
	}
	return keys
}
