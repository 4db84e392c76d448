// Package notify is the user-facing status channel for mutations. Every
// mutation shows a loading toast which must be replaced by exactly one
// terminal toast, success or error, under the same key.
package notify

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Kind classifies a toast.
type Kind string

const (
	KindLoading Kind = "loading"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Terminal reports whether the toast resolves its key.
func (k Kind) Terminal() bool {
	return k == KindSuccess || k == KindError
}

// Toast is one status message keyed by the mutation that produced it.
type Toast struct {
	Key     string
	Kind    Kind
	Message string
	At      time.Time
}

// Handler observes emitted toasts (a UI shell or a log sink).
type Handler func(Toast)

// Center tracks the active toast per key.
type Center struct {
	mu       sync.Mutex
	active   map[string]Toast
	handlers []Handler
	limiter  *rate.Limiter
	now      func() time.Time
}

// NewCenter constructs a toast center. Handler fan-out is rate limited so a
// misbehaving poller cannot flood the shell; state updates are never dropped.
func NewCenter() *Center {
	return &Center{
		active:  make(map[string]Toast),
		limiter: rate.NewLimiter(rate.Limit(20), 30),
		now:     time.Now,
	}
}

// OnToast registers a handler for emitted toasts.
func (c *Center) OnToast(h Handler) {
	c.mu.Lock()
	c.handlers = append(c.handlers, h)
	c.mu.Unlock()
}

// Loading shows a progress toast for the key.
func (c *Center) Loading(key, message string) {
	c.push(Toast{Key: key, Kind: KindLoading, Message: message})
}

// Success resolves the key with a success toast.
func (c *Center) Success(key, message string) {
	c.push(Toast{Key: key, Kind: KindSuccess, Message: message})
}

// Error resolves the key with an error toast.
func (c *Center) Error(key, message string) {
	c.push(Toast{Key: key, Kind: KindError, Message: message})
}

func (c *Center) push(t Toast) {
	t.At = c.now()

	c.mu.Lock()
	c.active[t.Key] = t
	handlers := append([]Handler(nil), c.handlers...)
	allowed := c.limiter.Allow()
	c.mu.Unlock()

	if !allowed {
		return
	}
	for _, h := range handlers {
		h(t)
	}
}

// Active returns the current toast for a key.
func (c *Center) Active(key string) (Toast, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.active[key]
	return t, ok
}

// Unresolved returns keys whose loading toast never got a terminal pair.
// A non-empty result means some mutation broke the pairing policy.
func (c *Center) Unresolved() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var keys []string
	for key, t := range c.active {
		if !t.Kind.Terminal() {
			keys = append(keys, key)
		}
	}
	return keys
}
