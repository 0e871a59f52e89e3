// Package hooks holds the client-side fetch state machines: filtered
// project lists, the category and year facets, search and per-project
// ratings. Each keeps a mutex-guarded state snapshot and broadcasts every
// transition to its subscribers.
//
// Nothing orders two overlapping fetches of the same hook. Whichever
// finishes last wins, even if it was started first.
package hooks

import (
	"context"
	"sync"
)

// State is the {data, loading, error} triple of a fetch hook. Error is
// empty when the last fetch succeeded.
type State[T any] struct {
	Data    T      `json:"data"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// observers is a subscriber set. Callbacks run synchronously on the
// goroutine that changed the state, outside any lock.
type observers[S any] struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(S)
}

func (o *observers[S]) subscribe(fn func(S)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.subs == nil {
		o.subs = map[int]func(S){}
	}
	id := o.nextID
	o.nextID++
	o.subs[id] = fn

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.subs, id)
	}
}

func (o *observers[S]) broadcast(s S) {
	o.mu.Lock()
	subs := make([]func(S), 0, len(o.subs))
	for _, fn := range o.subs {
		subs = append(subs, fn)
	}
	o.mu.Unlock()

	for _, fn := range subs {
		fn(s)
	}
}

// resource runs fetch and records the outcome. A failed fetch keeps the
// previous Data.
type resource[T any] struct {
	fetch func(ctx context.Context) (T, error)

	mu    sync.RWMutex
	state State[T]
	obs   observers[State[T]]
}

func newResource[T any](initial T, fetch func(ctx context.Context) (T, error)) *resource[T] {
	return &resource[T]{
		fetch: fetch,
		state: State[T]{Data: initial, Loading: true},
	}
}

func (r *resource[T]) State() State[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

func (r *resource[T]) Subscribe(fn func(State[T])) func() {
	return r.obs.subscribe(fn)
}

func (r *resource[T]) update(fn func(s *State[T])) {
	r.mu.Lock()
	fn(&r.state)
	s := r.state
	r.mu.Unlock()

	r.obs.broadcast(s)
}

func (r *resource[T]) run(ctx context.Context) error {
	return r.runFetch(ctx, r.fetch, nil)
}

// runFetch is run with an explicit fetch. commit, if set, runs under the
// state lock together with a successful Data replacement.
func (r *resource[T]) runFetch(ctx context.Context, fetch func(ctx context.Context) (T, error), commit func()) error {
	r.update(func(s *State[T]) {
		s.Loading = true
		s.Error = ""
	})

	data, err := fetch(ctx)

	r.update(func(s *State[T]) {
		s.Loading = false
		if err != nil {
			s.Error = err.Error()
			return
		}
		s.Data = data
		if commit != nil {
			commit()
		}
	})
	return err
}
