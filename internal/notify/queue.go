package notify

import (
	"sync"
	"time"
)

// Toast lifecycle: visible for visibleFor after being pushed, then
// fading for a further fadeFor, then gone. Matches the old storefront's
// 3000ms message with its 300ms fade-out.
const (
	visibleFor = 3000 * time.Millisecond
	fadeFor    = 300 * time.Millisecond
)

// Toast is one transient add-to-cart message.
type Toast struct {
	Message string
	ShownAt time.Time
	// Fading is set during the fade-out window.
	Fading bool
}

type entry struct {
	message string
	shownAt time.Time
}

// Queue holds the pending toasts per scope. Overlapping pushes coexist;
// nothing replaces or drops an earlier toast before its time is up.
// Expiry is computed from timestamps at read time, so the lifecycle is
// deterministic under an injected clock.
type Queue struct {
	mu      sync.Mutex
	byScope map[string][]entry
	now     func() time.Time
}

func NewQueue() *Queue {
	return &Queue{byScope: make(map[string][]entry), now: time.Now}
}

// NewQueueWithClock is the test constructor.
func NewQueueWithClock(now func() time.Time) *Queue {
	return &Queue{byScope: make(map[string][]entry), now: now}
}

// Push enqueues a toast for a scope. Non-blocking.
func (q *Queue) Push(scope, message string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.byScope[scope] = append(q.byScope[scope], entry{message: message, shownAt: q.now()})
}

// Active returns the toasts currently on screen for a scope, oldest
// first, and sweeps the ones whose fade window has passed.
func (q *Queue) Active(scope string) []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	var (
		kept   []entry
		active []Toast
	)
	for _, e := range q.byScope[scope] {
		age := now.Sub(e.shownAt)
		if age >= visibleFor+fadeFor {
			continue
		}
		kept = append(kept, e)
		active = append(active, Toast{
			Message: e.message,
			ShownAt: e.shownAt,
			Fading:  age >= visibleFor,
		})
	}
	if kept == nil {
		delete(q.byScope, scope)
	} else {
		q.byScope[scope] = kept
	}
	return active
}
