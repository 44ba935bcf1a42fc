package notify

import (
	"sync"
	"time"
)

// DefaultTTL is how long a notification stays visible before it is dismissed.
const DefaultTTL = 3500 * time.Millisecond

// Notification is a transient success or failure message shown to a visitor
type Notification struct {
	Message   string    `json:"message"`
	Success   bool      `json:"success"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Notifier receives notifications for a session
type Notifier interface {
	Push(session, message string, success bool) Notification
}

// Center keeps the pending notifications of every session and dismisses them
// once their TTL has passed
type Center struct {
	ttl     time.Duration
	now     func() time.Time
	mu      sync.Mutex
	pending map[string][]Notification

	// last time every session was pruned
	swept time.Time
}

// NewCenter creates a notification center. A non-positive ttl means DefaultTTL.
func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{
		ttl:     ttl,
		now:     time.Now,
		pending: make(map[string][]Notification),
	}
}

// WithClock replaces the center's time source
func (c *Center) WithClock(now func() time.Time) *Center {
	c.now = now
	return c
}

// Push records a notification for session and returns it
func (c *Center) Push(session, message string, success bool) Notification {
	now := c.now()
	n := Notification{
		Message:   message,
		Success:   success,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if now.Sub(c.swept) >= c.ttl {
		c.sweep(now)
	}
	c.pending[session] = append(c.prune(session, now), n)
	return n
}

// sweep prunes every session, dropping visitors whose notifications have all
// expired. Caller holds c.mu.
func (c *Center) sweep(now time.Time) {
	for session := range c.pending {
		c.prune(session, now)
	}
	c.swept = now
}

// Sessions reports how many sessions hold notifications
func (c *Center) Sessions() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Active returns the session's notifications that have not yet expired,
// oldest first
func (c *Center) Active(session string) []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	live := c.prune(session, c.now())
	out := make([]Notification, len(live))
	copy(out, live)
	return out
}

// prune drops expired notifications of a session. Caller holds c.mu.
func (c *Center) prune(session string, now time.Time) []Notification {
	list := c.pending[session]
	live := list[:0]
	for _, n := range list {
		if now.Before(n.ExpiresAt) {
			live = append(live, n)
		}
	}
	if len(live) == 0 {
		delete(c.pending, session)
		return nil
	}
	c.pending[session] = live
	return live
}
