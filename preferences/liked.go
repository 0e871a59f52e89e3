package preferences

import (
	"context"
	"slices"
)

// LikedSet is the ordered list of liked project ids. Uniqueness is the
// caller's responsibility; Replace stores exactly what it is given.
type LikedSet struct {
	pref *Pref[[]string]
}

func NewLikedSet(store Store) *LikedSet {
	return &LikedSet{pref: NewPref(store, KeyLiked, []string{})}
}

func (l *LikedSet) IDs(ctx context.Context) ([]string, error) {
	ids, err := l.pref.Get(ctx)
	if ids == nil {
		ids = []string{}
	}
	return ids, err
}

func (l *LikedSet) Contains(ctx context.Context, id string) (bool, error) {
	ids, err := l.IDs(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(ids, id), nil
}

func (l *LikedSet) Replace(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	return l.pref.Set(ctx, ids)
}

func (l *LikedSet) Subscribe(fn func([]string)) func() {
	return l.pref.Subscribe(fn)
}
