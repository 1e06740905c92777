// Package pagination holds the list envelope returned by the backend and an
// infinite-scroll pager built on it.
package pagination

// Meta describes where a page sits in the full result set.
type Meta struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	HasMore bool `json:"hasMore"`
}

// Page is one slice of a list endpoint.
type Page[T any] struct {
	Data       []T  `json:"data"`
	Pagination Meta `json:"pagination"`
}

const (
	FirstPage    = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Clamp normalizes page and limit to the ranges the backend accepts.
func Clamp(page, limit int) (int, int) {
	if page < FirstPage {
		page = FirstPage
	}
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}
	return page, limit
}
