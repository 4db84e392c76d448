// Package cache holds the client-side lists that entity pages render from.
// Each entity name keys one ordered sequence of records; mutations patch the
// sequence in place of a re-fetch, and a background poller refreshes it.
package cache

import "sync"

// Op names the kind of change applied to a cache entry.
type Op string

const (
	OpSet    Op = "set"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Change describes one modification of a cache entry.
type Change struct {
	Entity string
	Op     Op
}

// ChangeHandler reacts to a cache change.
type ChangeHandler func(Change)

// Store is the shared keyed cache. Values are whole entity lists; writers
// replace them wholesale, so readers always see a consistent snapshot.
// The last write to a key wins.
type Store struct {
	mu          sync.RWMutex
	entries     map[string]any
	subscribers map[string][]ChangeHandler

	mirror *Mirror // optional
}

// NewStore constructs an empty cache store.
func NewStore() *Store {
	return &Store{
		entries:     make(map[string]any),
		subscribers: make(map[string][]ChangeHandler),
	}
}

// UseMirror attaches an external mirror that receives every entry write.
func (s *Store) UseMirror(m *Mirror) {
	s.mu.Lock()
	s.mirror = m
	s.mu.Unlock()
}

// Mirror returns the attached mirror, or nil.
func (s *Store) Mirror() *Mirror {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mirror
}

// Subscribe registers a handler for changes of the given entity key.
func (s *Store) Subscribe(entity string, handler ChangeHandler) {
	s.mu.Lock()
	s.subscribers[entity] = append(s.subscribers[entity], handler)
	s.mu.Unlock()
}

func (s *Store) notify(change Change) {
	s.mu.RLock()
	handlers := append([]ChangeHandler(nil), s.subscribers[change.Entity]...)
	s.mu.RUnlock()

	for _, handler := range handlers {
		// Handlers run synchronously; caller decides concurrency model.
		handler(change)
	}
}

func (s *Store) get(entity string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[entity]
	return v, ok
}

func (s *Store) set(entity string, value any, op Op) {
	s.mu.Lock()
	s.entries[entity] = value
	mirror := s.mirror
	s.mu.Unlock()

	if mirror != nil {
		mirror.Write(entity, value)
	}
	s.notify(Change{Entity: entity, Op: op})
}

// Get returns the cached list for an entity key, if present.
func Get[T any](s *Store, entity string) ([]T, bool) {
	v, ok := s.get(entity)
	if !ok {
		return nil, false
	}
	list, ok := v.([]T)
	return list, ok
}

// Set replaces the cached list for an entity key.
func Set[T any](s *Store, entity string, list []T) {
	s.set(entity, list, OpSet)
}

// ApplyCreate prepends the created record to the cached list.
func ApplyCreate[T any](s *Store, entity string, created T) {
	old, _ := Get[T](s, entity)
	s.set(entity, Prepend(old, created), OpCreate)
}

// ApplyUpdate replaces the cached record with a matching identifier.
func ApplyUpdate[T any](s *Store, entity string, updated T, idOf func(T) int64) {
	old, ok := Get[T](s, entity)
	if !ok {
		return
	}
	s.set(entity, Replace(old, updated, idOf), OpUpdate)
}

// ApplyDelete removes the cached record with a matching identifier.
func ApplyDelete[T any](s *Store, entity string, id int64, idOf func(T) int64) {
	old, ok := Get[T](s, entity)
	if !ok {
		return
	}
	s.set(entity, Remove(old, id, idOf), OpDelete)
}

// Prepend returns a new list with the created record first.
// The input list is never modified.
func Prepend[T any](old []T, created T) []T {
	next := make([]T, 0, len(old)+1)
	next = append(next, created)
	next = append(next, old...)
	return next
}

// Replace returns a new list where the element whose identifier matches the
// updated record is swapped out; order and all other elements are unchanged.
func Replace[T any](old []T, updated T, idOf func(T) int64) []T {
	next := make([]T, len(old))
	id := idOf(updated)
	for i, item := range old {
		if idOf(item) == id {
			next[i] = updated
		} else {
			next[i] = item
		}
	}
	return next
}

// Remove returns a new list without the element whose identifier matches id.
func Remove[T any](old []T, id int64, idOf func(T) int64) []T {
	next := make([]T, 0, len(old))
	for _, item := range old {
		if idOf(item) != id {
			next = append(next, item)
		}
	}
	return next
}
