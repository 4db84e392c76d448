// Package hooks provides the per-entity query/mutation surface the pages use.
// One generic factory replaces the near-identical hook written once per entity:
// a cached list with background polling, plus create/update/delete mutations
// that optimistically patch the shared cache and report progress as toasts.
package hooks

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"carshare/internal/cache"
	"carshare/internal/metrics"
	"carshare/internal/notify"
)

// DefaultRefreshInterval is the polling period used when none is configured.
const DefaultRefreshInterval = 60 * time.Second

// Funcs are the data-access calls backing one entity hook.
type Funcs[T, N, P any] struct {
	List   func(ctx context.Context) ([]T, error)
	Create func(ctx context.Context, n N) (*T, error)
	Update func(ctx context.Context, id int64, patch P) (*T, error)
	Delete func(ctx context.Context, id int64) (*T, error)
}

// Messages are the user-facing toast texts for one entity.
type Messages struct {
	Creating, Created, CreateFailed string
	Updating, Updated, UpdateFailed string
	Deleting, Deleted, DeleteFailed string
}

// Hook exposes the four-call contract for one entity.
type Hook[T, N, P any] struct {
	entity   string
	fns      Funcs[T, N, P]
	idOf     func(T) int64
	msgs     Messages
	interval time.Duration

	store  *cache.Store
	toasts *notify.Center
	logger *zerolog.Logger
	group  singleflight.Group
}

// New builds a hook for one entity. The entity name is the cache key.
func New[T, N, P any](
	entity string,
	fns Funcs[T, N, P],
	idOf func(T) int64,
	msgs Messages,
	interval time.Duration,
	store *cache.Store,
	toasts *notify.Center,
	logger *zerolog.Logger,
) *Hook[T, N, P] {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Hook[T, N, P]{
		entity:   entity,
		fns:      fns,
		idOf:     idOf,
		msgs:     msgs,
		interval: interval,
		store:    store,
		toasts:   toasts,
		logger:   logger,
	}
}

// Entity returns the cache key this hook serves.
func (h *Hook[T, N, P]) Entity() string {
	return h.entity
}

// List returns the cached records without blocking. A miss kicks off a
// background fetch; callers see the data on a later read.
func (h *Hook[T, N, P]) List(ctx context.Context) []T {
	if list, ok := cache.Get[T](h.store, h.entity); ok {
		return list
	}
	go func() {
		_ = h.Refresh(context.WithoutCancel(ctx))
	}()
	return nil
}

// Refresh fetches the full list and replaces the cache entry.
// Concurrent refreshes of the same entity collapse into one call.
func (h *Hook[T, N, P]) Refresh(ctx context.Context) error {
	v, err, _ := h.group.Do("refresh "+h.entity, func() (any, error) {
		return h.fns.List(ctx)
	})
	metrics.IncCacheRefresh(h.entity, err)
	if err != nil {
		h.logger.Error().Err(err).Str("entity", h.entity).Msg("cache refresh failed")
		return err
	}
	list, _ := v.([]T)
	cache.Set(h.store, h.entity, list)
	return nil
}

// Start runs the polling loop until the context is cancelled.
func (h *Hook[T, N, P]) Start(ctx context.Context) {
	if err := h.Refresh(ctx); err != nil {
		h.logger.Warn().Err(err).Str("entity", h.entity).Msg("initial refresh failed")
	}

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = h.Refresh(ctx)
		}
	}
}

// Create persists a new record and prepends it to the cached list.
func (h *Hook[T, N, P]) Create(ctx context.Context, n N) (*T, error) {
	key := "create " + h.entity
	h.toasts.Loading(key, h.msgs.Creating)

	v, err, _ := h.group.Do(key, func() (any, error) {
		return h.fns.Create(ctx, n)
	})
	metrics.IncMutation(h.entity, "create", err)
	if err != nil {
		h.toasts.Error(key, fmt.Sprintf("%s: %v", h.msgs.CreateFailed, err))
		h.logger.Error().Err(err).Str("entity", h.entity).Msg("create failed")
		return nil, err
	}

	created := v.(*T)
	cache.ApplyCreate(h.store, h.entity, *created)
	h.toasts.Success(key, h.msgs.Created)
	return created, nil
}

// Update persists a partial update and replaces the matching cached record.
func (h *Hook[T, N, P]) Update(ctx context.Context, id int64, patch P) (*T, error) {
	key := "update " + h.entity
	h.toasts.Loading(key, h.msgs.Updating)

	v, err, _ := h.group.Do(key, func() (any, error) {
		return h.fns.Update(ctx, id, patch)
	})
	metrics.IncMutation(h.entity, "update", err)
	if err != nil {
		h.toasts.Error(key, fmt.Sprintf("%s: %v", h.msgs.UpdateFailed, err))
		h.logger.Error().Err(err).Str("entity", h.entity).Int64("id", id).Msg("update failed")
		return nil, err
	}

	updated := v.(*T)
	cache.ApplyUpdate(h.store, h.entity, *updated, h.idOf)
	h.toasts.Success(key, h.msgs.Updated)
	return updated, nil
}

// Delete removes a record and drops it from the cached list.
func (h *Hook[T, N, P]) Delete(ctx context.Context, id int64) (*T, error) {
	key := "delete " + h.entity
	h.toasts.Loading(key, h.msgs.Deleting)

	v, err, _ := h.group.Do(key, func() (any, error) {
		return h.fns.Delete(ctx, id)
	})
	metrics.IncMutation(h.entity, "delete", err)
	if err != nil {
		h.toasts.Error(key, fmt.Sprintf("%s: %v", h.msgs.DeleteFailed, err))
		h.logger.Error().Err(err).Str("entity", h.entity).Int64("id", id).Msg("delete failed")
		return nil, err
	}

	deleted := v.(*T)
	cache.ApplyDelete(h.store, h.entity, h.idOf(*deleted), h.idOf)
	h.toasts.Success(key, h.msgs.Deleted)
	return deleted, nil
}
