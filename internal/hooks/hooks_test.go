package hooks

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carshare/internal/cache"
	"carshare/internal/models"
	"carshare/internal/notify"
)

// fakeStore is an in-memory stand-in for the sqlite point store.
type fakeStore struct {
	mu     sync.Mutex
	points []models.Point
	nextID int64

	listErr   error
	createErr error
}

func (f *fakeStore) List(ctx context.Context) ([]models.Point, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Point(nil), f.points...), nil
}

func (f *fakeStore) Create(ctx context.Context, n models.NewPoint) (*models.Point, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	p := models.Point{ID: f.nextID, Address: n.Address}
	f.points = append(f.points, p)
	return &p, nil
}

func (f *fakeStore) Update(ctx context.Context, id int64, patch models.PointPatch) (*models.Point, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.points {
		if p.ID == id {
			if patch.Address != nil {
				f.points[i].Address = *patch.Address
			}
			out := f.points[i]
			return &out, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeStore) Delete(ctx context.Context, id int64) (*models.Point, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.points {
		if p.ID == id {
			f.points = append(f.points[:i], f.points[i+1:]...)
			return &p, nil
		}
	}
	return nil, errors.New("record not found")
}

var testMessages = Messages{
	Creating: "Создание...", Created: "Создано", CreateFailed: "Ошибка создания",
	Updating: "Обновление...", Updated: "Обновлено", UpdateFailed: "Ошибка обновления",
	Deleting: "Удаление...", Deleted: "Удалено", DeleteFailed: "Ошибка удаления",
}

func newTestHook(f *fakeStore) (*Hook[models.Point, models.NewPoint, models.PointPatch], *cache.Store, *notify.Center) {
	store := cache.NewStore()
	toasts := notify.NewCenter()
	logger := zerolog.Nop()

	h := New("points",
		Funcs[models.Point, models.NewPoint, models.PointPatch]{
			List:   f.List,
			Create: f.Create,
			Update: f.Update,
			Delete: f.Delete,
		},
		func(p models.Point) int64 { return p.ID },
		testMessages, time.Hour, store, toasts, &logger)
	return h, store, toasts
}

func TestHook_RefreshFillsCache(t *testing.T) {
	f := &fakeStore{points: []models.Point{{ID: 1, Address: "Ленина 1"}}, nextID: 1}
	h, store, _ := newTestHook(f)

	require.NoError(t, h.Refresh(context.Background()))

	list, ok := cache.Get[models.Point](store, "points")
	require.True(t, ok)
	require.Len(t, list, 1)
	assert.Equal(t, "Ленина 1", list[0].Address)
}

func TestHook_ListMissTriggersBackgroundFetch(t *testing.T) {
	f := &fakeStore{points: []models.Point{{ID: 1}}, nextID: 1}
	h, _, _ := newTestHook(f)

	// miss returns immediately with nothing
	assert.Nil(t, h.List(context.Background()))

	require.Eventually(t, func() bool {
		return len(h.List(context.Background())) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestHook_CreatePrependsAndResolvesToast(t *testing.T) {
	f := &fakeStore{points: []models.Point{{ID: 1, Address: "Ленина 1"}}, nextID: 1}
	h, store, toasts := newTestHook(f)
	require.NoError(t, h.Refresh(context.Background()))

	created, err := h.Create(context.Background(), models.NewPoint{Address: "Мира 5"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)

	list, _ := cache.Get[models.Point](store, "points")
	require.Len(t, list, 2)
	assert.Equal(t, "Мира 5", list[0].Address)

	toast, ok := toasts.Active("create points")
	require.True(t, ok)
	assert.Equal(t, notify.KindSuccess, toast.Kind)
	assert.Empty(t, toasts.Unresolved())
}

func TestHook_CreateFailureKeepsCacheAndPairsErrorToast(t *testing.T) {
	f := &fakeStore{points: []models.Point{{ID: 1}}, nextID: 1, createErr: errors.New("disk full")}
	h, store, toasts := newTestHook(f)
	require.NoError(t, h.Refresh(context.Background()))

	_, err := h.Create(context.Background(), models.NewPoint{Address: "Мира 5"})
	require.Error(t, err)

	list, _ := cache.Get[models.Point](store, "points")
	assert.Len(t, list, 1)

	toast, ok := toasts.Active("create points")
	require.True(t, ok)
	assert.Equal(t, notify.KindError, toast.Kind)
	assert.Contains(t, toast.Message, "Ошибка создания")
	assert.Contains(t, toast.Message, "disk full")
	assert.Empty(t, toasts.Unresolved())
}

func TestHook_UpdateReplacesInPlace(t *testing.T) {
	f := &fakeStore{points: []models.Point{{ID: 1, Address: "Ленина 1"}, {ID: 2, Address: "Мира 5"}}, nextID: 2}
	h, store, _ := newTestHook(f)
	require.NoError(t, h.Refresh(context.Background()))

	addr := "Мира 7"
	_, err := h.Update(context.Background(), 2, models.PointPatch{Address: &addr})
	require.NoError(t, err)

	list, _ := cache.Get[models.Point](store, "points")
	require.Len(t, list, 2)
	assert.Equal(t, "Ленина 1", list[0].Address)
	assert.Equal(t, "Мира 7", list[1].Address)
}

func TestHook_DeleteRemovesFromCache(t *testing.T) {
	f := &fakeStore{points: []models.Point{{ID: 1}, {ID: 2}}, nextID: 2}
	h, store, toasts := newTestHook(f)
	require.NoError(t, h.Refresh(context.Background()))

	deleted, err := h.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted.ID)

	list, _ := cache.Get[models.Point](store, "points")
	require.Len(t, list, 1)
	assert.Equal(t, int64(2), list[0].ID)
	assert.Empty(t, toasts.Unresolved())
}

func TestHook_RefreshErrorLeavesCacheUntouched(t *testing.T) {
	f := &fakeStore{points: []models.Point{{ID: 1}}, nextID: 1}
	h, store, _ := newTestHook(f)
	require.NoError(t, h.Refresh(context.Background()))

	f.mu.Lock()
	f.listErr = errors.New("sqlite busy")
	f.mu.Unlock()

	require.Error(t, h.Refresh(context.Background()))
	list, ok := cache.Get[models.Point](store, "points")
	require.True(t, ok)
	assert.Len(t, list, 1)
}
