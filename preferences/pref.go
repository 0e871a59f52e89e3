package preferences

import (
	"context"
	"fmt"
	"sync"

	json "github.com/goccy/go-json"

	"projectvault/logging"
)

// Pref is a typed, JSON-encoded value in a Store with a default used when
// the key is missing or cannot be decoded. Subscribers are told about every
// successful Set made through this Pref.
type Pref[T any] struct {
	store Store
	key   string
	def   T

	mu     sync.Mutex
	nextID int
	subs   map[int]func(T)
}

func NewPref[T any](store Store, key string, def T) *Pref[T] {
	return &Pref[T]{
		store: store,
		key:   key,
		def:   def,
		subs:  map[int]func(T){},
	}
}

func (p *Pref[T]) Key() string {
	return p.key
}

// Get returns the stored value, or the default when absent or undecodable.
// Store failures are returned along with the default.
func (p *Pref[T]) Get(ctx context.Context) (T, error) {
	raw, ok, err := p.store.Get(ctx, p.key)
	if err != nil {
		return p.def, err
	}
	if !ok {
		return p.def, nil
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		logging.Warn().Err(err).Str("key", p.key).Msg("Discarding undecodable preference")
		return p.def, nil
	}
	return v, nil
}

func (p *Pref[T]) Set(ctx context.Context, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode preference %s: %w", p.key, err)
	}
	if err := p.store.Set(ctx, p.key, string(raw)); err != nil {
		return err
	}

	p.mu.Lock()
	subs := make([]func(T), 0, len(p.subs))
	for _, fn := range p.subs {
		subs = append(subs, fn)
	}
	p.mu.Unlock()

	for _, fn := range subs {
		fn(v)
	}
	return nil
}

// Subscribe registers fn for future Sets and returns an unsubscribe func.
func (p *Pref[T]) Subscribe(fn func(T)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	p.subs[id] = fn

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subs, id)
	}
}
