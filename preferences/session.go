package preferences

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// Session resolves the anonymous session token of this device. The token is
// created and persisted on first access and never regenerated afterwards.
type Session struct {
	store Store
	now   func() time.Time

	mu sync.Mutex
}

func NewSession(store Store) *Session {
	return &Session{store: store, now: time.Now}
}

// Token returns the persisted token, creating it when absent.
func (s *Session) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok, err := s.store.Get(ctx, KeySession)
	if err != nil {
		return "", fmt.Errorf("read session token: %w", err)
	}
	if ok && token != "" {
		return token, nil
	}

	token = NewToken(s.now())
	if err := s.store.Set(ctx, KeySession, token); err != nil {
		return "", fmt.Errorf("persist session token: %w", err)
	}
	return token, nil
}

// NewToken builds "anon_<9 base-36 chars>_<unix millis>".
func NewToken(at time.Time) string {
	var b strings.Builder
	b.WriteString("anon_")
	for range 9 {
		b.WriteByte(base36[rand.IntN(len(base36))])
	}
	b.WriteByte('_')
	b.WriteString(strconv.FormatInt(at.UnixMilli(), 10))
	return b.String()
}
