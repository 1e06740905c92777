package pagination

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// FetchFunc loads one page.
type FetchFunc[T any] func(ctx context.Context, page, limit int) (Page[T], error)

// Pager accumulates pages of a list endpoint for infinite scroll.
// Concurrent Next calls while a page is loading share that load.
type Pager[T any] struct {
	fetch FetchFunc[T]
	limit int
	group singleflight.Group

	mu       sync.Mutex
	items    []T
	nextPage int
	hasMore  bool
	total    int
	gen      int
}

func NewPager[T any](fetch FetchFunc[T], limit int) *Pager[T] {
	_, limit = Clamp(FirstPage, limit)
	return &Pager[T]{
		fetch:    fetch,
		limit:    limit,
		nextPage: FirstPage,
		hasMore:  true,
	}
}

// Next loads the following page and returns the items it added. Once the
// backend reports no more data Next returns nil without a request.
func (p *Pager[T]) Next(ctx context.Context) ([]T, error) {
	v, err, _ := p.group.Do("next", func() (any, error) {
		return p.load(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]T), nil
}

func (p *Pager[T]) load(ctx context.Context) ([]T, error) {
	p.mu.Lock()
	if !p.hasMore {
		p.mu.Unlock()
		return []T(nil), nil
	}
	page, gen := p.nextPage, p.gen
	p.mu.Unlock()

	res, err := p.fetch(ctx, page, p.limit)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Reset while loading; the page belongs to the old listing.
	if gen != p.gen {
		return []T(nil), nil
	}

	p.items = append(p.items, res.Data...)
	p.nextPage = page + 1
	p.total = res.Pagination.Total
	p.hasMore = res.Pagination.HasMore && len(res.Data) > 0
	return res.Data, nil
}

func (p *Pager[T]) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasMore
}

// Items returns a copy of everything loaded so far.
func (p *Pager[T]) Items() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]T(nil), p.items...)
}

// Total is the backend's total count as of the last loaded page.
func (p *Pager[T]) Total() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total
}

// Reset drops loaded items so the next call starts from the first page.
func (p *Pager[T]) Reset() {
	p.mu.Lock()
	p.items = nil
	p.nextPage = FirstPage
	p.hasMore = true
	p.total = 0
	p.gen++
	p.mu.Unlock()

	p.group.Forget("next")
}
