package preferences

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	err error
}

func (f failingStore) Get(context.Context, string) (string, bool, error) { return "", false, f.err }
func (f failingStore) Set(context.Context, string, string) error         { return f.err }

func TestPref_DefaultWhenMissing(t *testing.T) {
	p := NewPref(NewMemoryStore(), KeyDarkMode, false)

	v, err := p.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, v)
}

func TestPref_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	p := NewPref(store, KeyDarkMode, false)
	ctx := context.Background()

	require.NoError(t, p.Set(ctx, true))

	v, err := p.Get(ctx)
	require.NoError(t, err)
	assert.True(t, v)

	raw, _, _ := store.Get(ctx, KeyDarkMode)
	assert.Equal(t, "true", raw)
}

func TestPref_UndecodableFallsBackToDefault(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, KeyLiked, "{not json"))

	p := NewPref(store, KeyLiked, []string{})
	v, err := p.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{}, v)
}

func TestPref_StoreErrorReturnsDefault(t *testing.T) {
	boom := errors.New("boom")
	p := NewPref[bool](failingStore{err: boom}, KeyDarkMode, true)

	v, err := p.Get(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.True(t, v)

	assert.ErrorIs(t, p.Set(context.Background(), false), boom)
}

func TestPref_Subscribe(t *testing.T) {
	p := NewPref(NewMemoryStore(), KeyDarkMode, false)
	ctx := context.Background()

	var seen []bool
	unsubscribe := p.Subscribe(func(v bool) { seen = append(seen, v) })

	require.NoError(t, p.Set(ctx, true))
	require.NoError(t, p.Set(ctx, false))
	unsubscribe()
	require.NoError(t, p.Set(ctx, true))

	assert.Equal(t, []bool{true, false}, seen)
}

func TestPref_FailedSetDoesNotNotify(t *testing.T) {
	p := NewPref[bool](failingStore{err: errors.New("down")}, KeyDarkMode, false)

	called := false
	p.Subscribe(func(bool) { called = true })

	assert.Error(t, p.Set(context.Background(), true))
	assert.False(t, called)
}

func TestLikedSet(t *testing.T) {
	liked := NewLikedSet(NewMemoryStore())
	ctx := context.Background()

	ids, err := liked.IDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{}, ids)

	require.NoError(t, liked.Replace(ctx, []string{"3", "1"}))

	ok, err := liked.Contains(ctx, "1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = liked.Contains(ctx, "2")
	require.NoError(t, err)
	assert.False(t, ok)

	ids, err = liked.IDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1"}, ids, "order is preserved")

	require.NoError(t, liked.Replace(ctx, nil))
	ids, err = liked.IDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{}, ids)
}

func TestLikedSet_PersistsAcrossInstances(t *testing.T) {
	store, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, NewLikedSet(store).Replace(ctx, []string{"7"}))

	ids, err := NewLikedSet(store).IDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"7"}, ids)
}

func TestNew_Defaults(t *testing.T) {
	prefs := New(NewMemoryStore())
	ctx := context.Background()

	dark, err := prefs.DarkMode.Get(ctx)
	require.NoError(t, err)
	assert.False(t, dark)

	ids, err := prefs.Liked.IDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	token, err := prefs.Session.Token(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}
