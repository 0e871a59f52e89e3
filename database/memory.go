package database

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"projectvault/models"
)

// MemoryStore is an in-process stand-in for the hosted catalog database.
// It answers the same query shapes as DB, with ILIKE emulated by
// case-insensitive substring matching, and runs the rating upsert procedure
// in Go. It is safe for concurrent use.
type MemoryStore struct {
	mu       sync.Mutex
	projects []models.Project
	ratings  map[ratingKey]models.ProjectRating
	now      func() time.Time
}

type ratingKey struct {
	projectID string
	session   string
}

// NewMemoryStore returns a store holding copies of projects.
func NewMemoryStore(projects ...models.Project) *MemoryStore {
	s := &MemoryStore{
		ratings: map[ratingKey]models.ProjectRating{},
		now:     time.Now,
	}
	for _, p := range projects {
		s.projects = append(s.projects, cloneProject(p))
	}
	return s
}

// NewSeededMemoryStore returns a store holding SeedProjects.
func NewSeededMemoryStore() *MemoryStore {
	return NewMemoryStore(SeedProjects()...)
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// InsertProject adds a project, assigning an ID and timestamps when unset.
func (s *MemoryStore) InsertProject(ctx context.Context, p models.Project) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if s.indexOf(p.ID) >= 0 {
		return nil, fmt.Errorf("failed to insert project: duplicate id %s", p.ID)
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	s.projects = append(s.projects, cloneProject(p))

	out := cloneProject(p)
	return &out, nil
}

func (s *MemoryStore) FindProjects(ctx context.Context, q models.ProjectQuery) ([]models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	matched := []models.Project{}
	for _, p := range s.projects {
		if q.ID != "" && p.ID != q.ID {
			continue
		}
		if q.Category != "" && !containsFold(p.Category, q.Category) {
			continue
		}
		if q.Year != 0 && p.Year != q.Year {
			continue
		}
		if q.Search != "" && !matchesSearch(p.Title, p.Abstract, p.ProjectLead, q.Search) {
			continue
		}
		matched = append(matched, cloneProject(p))
	}

	slices.SortStableFunc(matched, func(a, b models.Project) int {
		for _, o := range q.OrderBy {
			c := compareColumn(a, b, o.Column)
			if o.Desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})

	offset := validateOffset(q.Offset)
	if offset >= len(matched) {
		return []models.Project{}, nil
	}
	matched = matched[offset:]
	if limit := validateLimit(q.Limit, maxLimit); limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (s *MemoryStore) FindProject(ctx context.Context, id string) (*models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNoRows
	}
	p := cloneProject(s.projects[i])
	return &p, nil
}

func (s *MemoryStore) CategoryValues(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	values := make([]string, 0, len(s.projects))
	for _, p := range s.projects {
		values = append(values, p.Category)
	}
	slices.Sort(values)
	return values, nil
}

func (s *MemoryStore) YearValues(ctx context.Context) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	values := make([]int, 0, len(s.projects))
	for _, p := range s.projects {
		values = append(values, p.Year)
	}
	slices.SortFunc(values, func(a, b int) int { return cmp.Compare(b, a) })
	return values, nil
}

func (s *MemoryStore) UpdateLikesCount(ctx context.Context, id string, count int, updatedAt time.Time) (*models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNoRows
	}
	if count < 0 {
		return nil, fmt.Errorf("failed to update likes: likes_count must be >= 0, got %d", count)
	}
	s.projects[i].LikesCount = count
	s.projects[i].UpdatedAt = updatedAt

	p := cloneProject(s.projects[i])
	return &p, nil
}

func (s *MemoryStore) FindRating(ctx context.Context, projectID, session string) (*models.ProjectRating, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.ratings[ratingKey{projectID, session}]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

// UpsertRating mirrors the upsert_project_rating procedure: insert or
// overwrite the (project, session) row, then recompute the project's
// average (rounded to two decimals) and count.
func (s *MemoryStore) UpsertRating(ctx context.Context, projectID, session string, rating int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(projectID)
	if i < 0 {
		return fmt.Errorf("failed to upsert rating: project %s does not exist", projectID)
	}
	if rating < 1 || rating > 5 {
		return fmt.Errorf("failed to upsert rating: rating %d violates check constraint", rating)
	}

	now := s.now()
	key := ratingKey{projectID, session}
	r, ok := s.ratings[key]
	if !ok {
		r = models.ProjectRating{
			ID:          uuid.New().String(),
			ProjectID:   projectID,
			UserSession: session,
			CreatedAt:   now,
		}
	}
	r.Rating = rating
	r.UpdatedAt = now
	s.ratings[key] = r

	sum, count := 0, 0
	for k, v := range s.ratings {
		if k.projectID == projectID {
			sum += v.Rating
			count++
		}
	}
	s.projects[i].AverageRating = math.Round(float64(sum)/float64(count)*100) / 100
	s.projects[i].RatingCount = count
	s.projects[i].UpdatedAt = now
	return nil
}

// RatingRows counts stored rating rows for a project.
func (s *MemoryStore) RatingRows(projectID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for k := range s.ratings {
		if k.projectID == projectID {
			n++
		}
	}
	return n
}

func (s *MemoryStore) indexOf(id string) int {
	return slices.IndexFunc(s.projects, func(p models.Project) bool { return p.ID == id })
}

func compareColumn(a, b models.Project, column string) int {
	switch column {
	case columnCreatedAt:
		return a.CreatedAt.Compare(b.CreatedAt)
	case columnUpdatedAt:
		return a.UpdatedAt.Compare(b.UpdatedAt)
	case columnLikesCount:
		return cmp.Compare(a.LikesCount, b.LikesCount)
	case columnAverageRating:
		return cmp.Compare(a.AverageRating, b.AverageRating)
	case columnYear:
		return cmp.Compare(a.Year, b.Year)
	case columnTitle:
		return cmp.Compare(a.Title, b.Title)
	case columnCategory:
		return cmp.Compare(a.Category, b.Category)
	default:
		return 0
	}
}

func cloneProject(p models.Project) models.Project {
	p.Technologies = slices.Clone(p.Technologies)
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	return p
}
