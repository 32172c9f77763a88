package query

// Meta is the pagination block returned alongside list results.
type Meta struct {
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	CurrentPage int  `json:"currentPage"`
	PerPage     int  `json:"perPage"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

// ComputeMeta derives page metadata from the total count and the resolved
// page/limit. A page past the end is not an error; it just has hasNext=false
// and an empty result set.
func ComputeMeta(total, page, limit int) Meta {
	totalPages := (total + limit - 1) / limit

	return Meta{
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
		PerPage:     limit,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}
