package hooks

import (
	"context"
	"sync"
)

type RatingSource interface {
	GetUserRating(ctx context.Context, projectID string) (int, bool)
	RateProject(ctx context.Context, projectID string, rating int) error
}

// RatingState is this session's rating of one project. Rated is false
// until a rating is known. Loading covers fetching the stored rating only,
// not saving a new one.
type RatingState struct {
	ProjectID string `json:"project_id"`
	Rating    int    `json:"rating,omitempty"`
	Rated     bool   `json:"rated"`
	Loading   bool   `json:"loading"`
	Error     string `json:"error,omitempty"`
}

// Rating tracks the session's rating of a single project.
type Rating struct {
	src RatingSource

	mu    sync.RWMutex
	state RatingState
	obs   observers[RatingState]
}

func NewRating(src RatingSource, projectID string) *Rating {
	return &Rating{src: src, state: RatingState{ProjectID: projectID}}
}

func (r *Rating) State() RatingState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

func (r *Rating) Subscribe(fn func(RatingState)) func() {
	return r.obs.subscribe(fn)
}

// Load fetches the rating of the current project. Lookup failures read as
// "not rated".
func (r *Rating) Load(ctx context.Context) {
	id := r.State().ProjectID
	if id == "" {
		return
	}

	r.set(func(s *RatingState) { s.Loading = true })
	rating, ok := r.src.GetUserRating(ctx, id)
	r.set(func(s *RatingState) {
		if s.ProjectID != id {
			return
		}
		s.Loading = false
		s.Rating = rating
		s.Rated = ok
	})
}

// SetProject switches to another project and loads its rating. Setting the
// current id again does nothing.
func (r *Rating) SetProject(ctx context.Context, projectID string) {
	r.mu.Lock()
	if r.state.ProjectID == projectID {
		r.mu.Unlock()
		return
	}
	r.state = RatingState{ProjectID: projectID}
	r.mu.Unlock()

	r.Load(ctx)
}

// Rate submits a 1-5 star rating. On failure the previous rating stays, the
// error text is recorded and the error is returned.
func (r *Rating) Rate(ctx context.Context, rating int) error {
	id := r.State().ProjectID

	r.set(func(s *RatingState) { s.Error = "" })

	err := r.src.RateProject(ctx, id, rating)

	r.set(func(s *RatingState) {
		if err != nil {
			s.Error = err.Error()
			return
		}
		s.Rating = rating
		s.Rated = true
	})
	return err
}

func (r *Rating) set(fn func(s *RatingState)) {
	r.mu.Lock()
	fn(&r.state)
	s := r.state
	r.mu.Unlock()

	r.obs.broadcast(s)
}

// Ratings hands out one Rating per project id.
type Ratings struct {
	src RatingSource

	mu      sync.Mutex
	ratings map[string]*Rating
}

func NewRatings(src RatingSource) *Ratings {
	return &Ratings{src: src, ratings: map[string]*Rating{}}
}

// For returns the hook for projectID, creating it on first use. A new hook
// has not been loaded yet.
func (r *Ratings) For(projectID string) *Rating {
	r.mu.Lock()
	defer r.mu.Unlock()

	rating, ok := r.ratings[projectID]
	if !ok {
		rating = NewRating(r.src, projectID)
		r.ratings[projectID] = rating
	}
	return rating
}
