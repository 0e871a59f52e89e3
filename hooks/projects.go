package hooks

import (
	"context"
	"sync"

	"projectvault/models"
)

type ProjectLister interface {
	ListProjects(ctx context.Context, filters models.ProjectFilters) ([]models.Project, error)
}

// Projects is the filtered project list.
type Projects struct {
	*resource[[]models.Project]

	src ProjectLister

	mu      sync.Mutex
	filters models.ProjectFilters
	key     string
	applied bool

	// shown are the filters that produced State().Data. Guarded by
	// resource.mu.
	shown models.ProjectFilters
}

func NewProjects(src ProjectLister) *Projects {
	p := &Projects{src: src}
	p.resource = newResource([]models.Project{}, func(ctx context.Context) ([]models.Project, error) {
		return src.ListProjects(ctx, p.Filters())
	})
	return p
}

// SetFilters fetches with f unless it equals, by value, the filters
// already applied and the last fetch succeeded. It reports whether a fetch
// ran.
func (p *Projects) SetFilters(ctx context.Context, f models.ProjectFilters) bool {
	key := f.Key()

	p.mu.Lock()
	if p.applied && key == p.key && p.State().Error == "" {
		p.mu.Unlock()
		return false
	}
	p.filters = f
	p.key = key
	p.applied = true
	p.mu.Unlock()

	p.fetchWith(ctx, f)
	return true
}

// Refetch repeats the fetch with the current filters.
func (p *Projects) Refetch(ctx context.Context) {
	p.mu.Lock()
	p.applied = true
	p.key = p.filters.Key()
	f := p.filters
	p.mu.Unlock()

	p.fetchWith(ctx, f)
}

func (p *Projects) fetchWith(ctx context.Context, f models.ProjectFilters) {
	_ = p.runFetch(ctx, func(ctx context.Context) ([]models.Project, error) {
		return p.src.ListProjects(ctx, f)
	}, func() { p.shown = f })
}

// Filters returns the most recently requested filters.
func (p *Projects) Filters() models.ProjectFilters {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filters
}

// Snapshot returns the state together with the filters its Data was
// fetched with. With overlapping fetches these can differ from Filters.
func (p *Projects) Snapshot() (State[[]models.Project], models.ProjectFilters) {
	p.resource.mu.RLock()
	defer p.resource.mu.RUnlock()
	return p.state, p.shown
}
