package app

import (
	"sync"
	"time"

	"projectvault/likes"
)

// toastDuration is how long a notification stays visible unless dismissed.
const toastDuration = 3 * time.Second

// toastSlot holds at most one notification. A newer one replaces it.
type toastSlot struct {
	now func() time.Time

	mu        sync.Mutex
	current   *likes.Notification
	expiresAt time.Time
}

func (t *toastSlot) Notify(n likes.Notification) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = &n
	t.expiresAt = t.now().Add(toastDuration)
}

func (t *toastSlot) Current() (likes.Notification, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current == nil {
		return likes.Notification{}, false
	}
	if !t.now().Before(t.expiresAt) {
		t.current = nil
		return likes.Notification{}, false
	}
	return *t.current, true
}

func (t *toastSlot) Dismiss() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = nil
}
