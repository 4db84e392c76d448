package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Mirror persists cache entries to Redis so a restarted process can warm its
// cache without waiting for the first poll. Mirror failures are ignored; the
// in-memory cache stays authoritative.
type Mirror struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewMirror constructs a mirror over an existing Redis client.
func NewMirror(client *redis.Client, ttl time.Duration) *Mirror {
	return &Mirror{redis: client, ttl: ttl}
}

func mirrorKey(entity string) string {
	return "cache:" + entity
}

// Write stores the serialized entry under cache:<entity>.
func (m *Mirror) Write(entity string, value any) {
	if m == nil || m.redis == nil || m.ttl <= 0 {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = m.redis.Set(ctx, mirrorKey(entity), data, m.ttl).Err()
}

// Warm loads a mirrored entry into the store, if one exists.
func Warm[T any](ctx context.Context, s *Store, m *Mirror, entity string) bool {
	if m == nil || m.redis == nil {
		return false
	}
	val, err := m.redis.Get(ctx, mirrorKey(entity)).Result()
	if err != nil {
		return false
	}
	var list []T
	if err := json.Unmarshal([]byte(val), &list); err != nil {
		return false
	}
	Set(s, entity, list)
	return true
}
