package hooks

import (
	"context"
	"strings"
	"sync"

	"projectvault/models"
)

type ProjectSearcher interface {
	SearchProjects(ctx context.Context, term string) ([]models.Project, error)
}

type SearchState struct {
	Term      string           `json:"term"`
	Results   []models.Project `json:"results"`
	Searching bool             `json:"searching"`
	Error     string           `json:"error,omitempty"`
}

// Search runs free-text searches. Unlike the list hooks it starts idle.
type Search struct {
	src ProjectSearcher

	mu    sync.RWMutex
	state SearchState
	obs   observers[SearchState]
}

func NewSearch(src ProjectSearcher) *Search {
	return &Search{src: src, state: SearchState{Results: []models.Project{}}}
}

func (s *Search) State() SearchState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Search) Subscribe(fn func(SearchState)) func() {
	return s.obs.subscribe(fn)
}

// Search replaces the results with the matches for term. A blank term
// clears them without a fetch.
func (s *Search) Search(ctx context.Context, term string) {
	if strings.TrimSpace(term) == "" {
		s.Clear()
		return
	}

	s.set(func(st *SearchState) {
		st.Term = term
		st.Searching = true
		st.Error = ""
	})

	results, err := s.src.SearchProjects(ctx, term)

	s.set(func(st *SearchState) {
		st.Searching = false
		if err != nil {
			st.Error = err.Error()
			st.Results = []models.Project{}
			return
		}
		st.Results = results
	})
}

func (s *Search) Clear() {
	s.set(func(st *SearchState) {
		*st = SearchState{Results: []models.Project{}}
	})
}

func (s *Search) set(fn func(st *SearchState)) {
	s.mu.Lock()
	fn(&s.state)
	st := s.state
	s.mu.Unlock()

	s.obs.broadcast(st)
}
