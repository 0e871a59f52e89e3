package hooks

import (
	"context"
	"sync"
)

type CategoryLister interface {
	ListCategories(ctx context.Context) ([]string, error)
}

type YearLister interface {
	ListYears(ctx context.Context) ([]int, error)
}

// Lookup is a list fetched on first Load. A failed Load is retried by the
// next one.
type Lookup[T any] struct {
	*resource[[]T]

	loadMu sync.Mutex
	loaded bool
}

type (
	Categories = Lookup[string]
	Years      = Lookup[int]
)

func NewCategories(src CategoryLister) *Categories {
	return &Categories{resource: newResource([]string{}, src.ListCategories)}
}

func NewYears(src YearLister) *Years {
	return &Years{resource: newResource([]int{}, src.ListYears)}
}

// Load fetches unless an earlier Load already succeeded.
func (l *Lookup[T]) Load(ctx context.Context) {
	l.loadMu.Lock()
	defer l.loadMu.Unlock()

	if l.loaded {
		return
	}
	l.loaded = l.run(ctx) == nil
}

func (l *Lookup[T]) Refetch(ctx context.Context) {
	l.loadMu.Lock()
	defer l.loadMu.Unlock()

	l.loaded = l.run(ctx) == nil
}
