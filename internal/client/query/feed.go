package query

import (
	"context"

	"github.com/mycomarket/mycomarket-go/internal/client/models"
)

// Feed accumulates pages of a listing for infinite scroll. It is not safe
// for concurrent use; each view owns its feed.
type Feed[T any] struct {
	fetch      func(ctx context.Context, page, size int) (*models.Page[T], error)
	pageSize   int
	items      []T
	page       int
	totalPages int
}

// NewFeed returns an empty feed over the given page fetcher.
func NewFeed[T any](pageSize int, fetch func(ctx context.Context, page, size int) (*models.Page[T], error)) *Feed[T] {
	return &Feed[T]{fetch: fetch, pageSize: pageSize}
}

// Next loads the next page and returns just the newly appended items.
// Calling Next when HasMore is false returns nil without a request.
func (f *Feed[T]) Next(ctx context.Context) ([]T, error) {
	if !f.HasMore() {
		return nil, nil
	}

	page, err := f.fetch(ctx, f.page+1, f.pageSize)
	if err != nil {
		return nil, err
	}

	f.page = page.Page
	f.totalPages = page.TotalPages
	f.items = append(f.items, page.Items...)
	return page.Items, nil
}

// Items returns everything accumulated so far.
func (f *Feed[T]) Items() []T {
	return f.items
}

// HasMore reports whether the server holds pages this feed has not loaded.
// An untouched feed always has more.
func (f *Feed[T]) HasMore() bool {
	return f.page == 0 || f.page < f.totalPages
}

// Reset empties the feed so the next Next starts from page one.
func (f *Feed[T]) Reset() {
	f.items = nil
	f.page = 0
	f.totalPages = 0
}
