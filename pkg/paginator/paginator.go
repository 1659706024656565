package paginator

import "strconv"

// Defaults applied when raw input is missing or malformed.
const (
	DefaultPage      = 1
	DefaultLimit     = 10
	DefaultSortBy    = "createdAt"
	DefaultSortOrder = SortOrderDesc
)

const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// Query holds raw, untrusted pagination and sorting input as it arrives
// from the wire. Any field may be empty or malformed.
type Query struct {
	Page      string
	Limit     string
	SortBy    string
	SortOrder string
}

// Options is the validated, internally consistent pagination descriptor.
// Skip is always derived from Page and Limit, never supplied directly.
type Options struct {
	Page      int
	Limit     int
	Skip      int
	SortBy    string
	SortOrder string
}

// New normalizes raw query input into Options. It never fails: invalid
// input degrades to defaults instead of erroring.
func New(q Query) Options {
	page := parsePositive(q.Page, DefaultPage)
	limit := parsePositive(q.Limit, DefaultLimit)

	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = DefaultSortBy
	}

	sortOrder := q.SortOrder
	if sortOrder != SortOrderAsc && sortOrder != SortOrderDesc {
		sortOrder = DefaultSortOrder
	}

	return Options{
		Page:      page,
		Limit:     limit,
		Skip:      (page - 1) * limit,
		SortBy:    sortBy,
		SortOrder: sortOrder,
	}
}

// parsePositive parses raw as a base-10 integer, substituting def when
// parsing fails or the result is less than 1.
func parsePositive(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// TotalPages computes the number of pages needed for total records at the
// given limit.
func TotalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
