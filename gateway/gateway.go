// Package gateway is the only path from client logic to the catalog store.
// It shapes filters into store queries, maps store failures onto the
// ValidationError / GatewayError / ErrNotFound taxonomy and resolves the
// anonymous session for rating calls.
package gateway

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"projectvault/database"
	"projectvault/logging"
	"projectvault/models"
)

const (
	// defaultPageSize is the implicit limit applied when only an offset is
	// given.
	defaultPageSize = 10

	defaultListLimit = 10
)

var newestFirst = []models.Order{{Column: "created_at", Desc: true}}

// Store is the remote catalog contract. database.DB and
// database.MemoryStore implement it.
type Store interface {
	FindProjects(ctx context.Context, q models.ProjectQuery) ([]models.Project, error)
	// FindProject returns database.ErrNoRows when id does not exist.
	FindProject(ctx context.Context, id string) (*models.Project, error)
	CategoryValues(ctx context.Context) ([]string, error)
	YearValues(ctx context.Context) ([]int, error)
	UpdateLikesCount(ctx context.Context, id string, count int, updatedAt time.Time) (*models.Project, error)
	// FindRating returns nil, nil when the session has not rated the project.
	FindRating(ctx context.Context, projectID, session string) (*models.ProjectRating, error)
	UpsertRating(ctx context.Context, projectID, session string, rating int) error
	Ping(ctx context.Context) error
}

// SessionSource resolves the anonymous identity used for ratings.
type SessionSource interface {
	Token(ctx context.Context) (string, error)
}

type Gateway struct {
	store   Store
	session SessionSource
	now     func() time.Time
}

type Option func(*Gateway)

// WithClock overrides the time source used for updated_at.
func WithClock(now func() time.Time) Option {
	return func(g *Gateway) { g.now = now }
}

func New(store Store, session SessionSource, opts ...Option) *Gateway {
	g := &Gateway{store: store, session: session, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ListProjects returns projects matching every set filter, newest first.
// An offset without a limit pages by defaultPageSize.
func (g *Gateway) ListProjects(ctx context.Context, filters models.ProjectFilters) ([]models.Project, error) {
	start := time.Now()
	defer func() {
		logging.Ctx(ctx).Debug().
			Dur("duration", time.Since(start)).
			Str("filters", filters.Key()).
			Msg("ListProjects")
	}()

	q := models.ProjectQuery{
		Category: filters.Category,
		Year:     filters.Year,
		Search:   filters.Search,
		OrderBy:  newestFirst,
		Limit:    filters.Limit,
	}
	if filters.Offset > 0 {
		q.Offset = filters.Offset
		if q.Limit <= 0 {
			q.Limit = defaultPageSize
		}
	}

	projects, err := g.store.FindProjects(ctx, q)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("Error fetching projects")
		return nil, gatewayError("Failed to fetch projects", err)
	}
	return orEmpty(projects), nil
}

// GetProjectByID returns ErrNotFound when no project has id.
func (g *Gateway) GetProjectByID(ctx context.Context, id string) (*models.Project, error) {
	project, err := g.store.FindProject(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return nil, ErrNotFound
		}
		logging.Ctx(ctx).Error().Err(err).Str("project_id", id).Msg("Error fetching project by ID")
		return nil, gatewayError("Failed to fetch project", err)
	}
	return project, nil
}

// SearchProjects matches term against title, abstract and project lead.
// A blank term returns no projects without querying the store.
func (g *Gateway) SearchProjects(ctx context.Context, term string) ([]models.Project, error) {
	if strings.TrimSpace(term) == "" {
		return []models.Project{}, nil
	}

	projects, err := g.store.FindProjects(ctx, models.ProjectQuery{Search: term, OrderBy: newestFirst})
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Str("term", term).Msg("Error searching projects")
		return nil, gatewayError("Search failed", err)
	}
	return orEmpty(projects), nil
}

func (g *Gateway) ProjectsByCategory(ctx context.Context, category string) ([]models.Project, error) {
	projects, err := g.store.FindProjects(ctx, models.ProjectQuery{Category: category, OrderBy: newestFirst})
	if err != nil {
		return nil, gatewayError("Failed to fetch projects by category", err)
	}
	return orEmpty(projects), nil
}

func (g *Gateway) ProjectsByYear(ctx context.Context, year int) ([]models.Project, error) {
	projects, err := g.store.FindProjects(ctx, models.ProjectQuery{Year: year, OrderBy: newestFirst})
	if err != nil {
		return nil, gatewayError("Failed to fetch projects by year", err)
	}
	return orEmpty(projects), nil
}

// TrendingProjects orders by likes, then recency. limit <= 0 means 10.
func (g *Gateway) TrendingProjects(ctx context.Context, limit int) ([]models.Project, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	projects, err := g.store.FindProjects(ctx, models.ProjectQuery{
		OrderBy: []models.Order{
			{Column: "likes_count", Desc: true},
			{Column: "created_at", Desc: true},
		},
		Limit: limit,
	})
	if err != nil {
		return nil, gatewayError("Failed to fetch trending projects", err)
	}
	return orEmpty(projects), nil
}

// RecentProjects returns the newest projects. limit <= 0 means 10.
func (g *Gateway) RecentProjects(ctx context.Context, limit int) ([]models.Project, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	projects, err := g.store.FindProjects(ctx, models.ProjectQuery{OrderBy: newestFirst, Limit: limit})
	if err != nil {
		return nil, gatewayError("Failed to fetch recent projects", err)
	}
	return orEmpty(projects), nil
}

// ListCategories returns distinct categories in ascending order.
func (g *Gateway) ListCategories(ctx context.Context) ([]string, error) {
	values, err := g.store.CategoryValues(ctx)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("Error fetching categories")
		return nil, gatewayError("Failed to fetch categories", err)
	}

	categories := slices.Clone(values)
	slices.Sort(categories)
	return orEmpty(slices.Compact(categories)), nil
}

// ListYears returns distinct years, most recent first.
func (g *Gateway) ListYears(ctx context.Context) ([]int, error) {
	values, err := g.store.YearValues(ctx)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("Error fetching years")
		return nil, gatewayError("Failed to fetch years", err)
	}

	years := slices.Clone(values)
	slices.SortFunc(years, func(a, b int) int { return cmp.Compare(b, a) })
	return orEmpty(slices.Compact(years)), nil
}

// UpdateLikesCount reads the current count and writes count+1, or count-1
// floored at zero. The read and the write are separate store calls, so two
// concurrent callers can both read the same count and one update is lost.
func (g *Gateway) UpdateLikesCount(ctx context.Context, id string, increment bool) (*models.Project, error) {
	current, err := g.store.FindProject(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return nil, gatewayError("Project not found", nil)
		}
		logging.Ctx(ctx).Error().Err(err).Str("project_id", id).Msg("Error updating likes count")
		return nil, gatewayError("Failed to update likes", err)
	}

	count := max(current.LikesCount-1, 0)
	if increment {
		count = current.LikesCount + 1
	}

	updated, err := g.store.UpdateLikesCount(ctx, id, count, g.now())
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return nil, gatewayError("Project not found", nil)
		}
		logging.Ctx(ctx).Error().Err(err).Str("project_id", id).Msg("Error updating likes count")
		return nil, gatewayError("Failed to update likes", err)
	}
	return updated, nil
}

// RateProject records this session's 1-5 star rating, replacing any earlier
// one. The store recomputes the project's average and count.
func (g *Gateway) RateProject(ctx context.Context, id string, rating int) error {
	if err := validateRating(id, rating); err != nil {
		return err
	}

	session, err := g.session.Token(ctx)
	if err != nil {
		return gatewayError("Failed to rate project", err)
	}

	if err := g.store.UpsertRating(ctx, id, session, rating); err != nil {
		logging.Ctx(ctx).Error().Err(err).Str("project_id", id).Msg("Error rating project")
		return gatewayError("Failed to rate project", err)
	}
	return nil
}

// GetUserRating returns this session's rating for a project. Any failure,
// including an unreachable store, degrades to "not rated" and is logged.
func (g *Gateway) GetUserRating(ctx context.Context, id string) (int, bool) {
	session, err := g.session.Token(ctx)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("project_id", id).Msg("Rating lookup degraded: no session")
		return 0, false
	}

	rating, err := g.store.FindRating(ctx, id, session)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("project_id", id).Msg("Rating lookup degraded to no rating")
		return 0, false
	}
	if rating == nil {
		return 0, false
	}
	return rating.Rating, true
}

// Ping reports whether the catalog store is reachable.
func (g *Gateway) Ping(ctx context.Context) error {
	if err := g.store.Ping(ctx); err != nil {
		return gatewayError("Database connection failed", err)
	}
	return nil
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
