package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carshare/internal/models"
)

func carID(c models.Car) int64 { return c.ID }

func threeCars() []models.Car {
	return []models.Car{
		{ID: 3, Brand: "Kia", Model: "Rio"},
		{ID: 2, Brand: "Hyundai", Model: "Solaris"},
		{ID: 1, Brand: "Lada", Model: "Vesta"},
	}
}

func TestPrepend(t *testing.T) {
	old := threeCars()
	created := models.Car{ID: 4, Brand: "Skoda", Model: "Octavia"}

	next := Prepend(old, created)

	require.Len(t, next, 4)
	assert.Equal(t, int64(4), next[0].ID)
	assert.Equal(t, int64(3), next[1].ID)
	// the input slice is untouched
	assert.Len(t, old, 3)
	assert.Equal(t, int64(3), old[0].ID)
}

func TestReplace(t *testing.T) {
	old := threeCars()
	updated := models.Car{ID: 2, Brand: "Hyundai", Model: "Creta"}

	next := Replace(old, updated, carID)

	require.Len(t, next, 3)
	assert.Equal(t, "Creta", next[1].Model)
	assert.Equal(t, "Solaris", old[1].Model)
	// order preserved
	assert.Equal(t, int64(3), next[0].ID)
	assert.Equal(t, int64(1), next[2].ID)
}

func TestReplace_UnknownIDLeavesListUnchanged(t *testing.T) {
	old := threeCars()
	next := Replace(old, models.Car{ID: 99}, carID)
	assert.Equal(t, old, next)
}

func TestRemove(t *testing.T) {
	old := threeCars()

	next := Remove(old, 2, carID)

	require.Len(t, next, 2)
	assert.Equal(t, int64(3), next[0].ID)
	assert.Equal(t, int64(1), next[1].ID)
	assert.Len(t, old, 3)
}

func TestRemove_MissingID(t *testing.T) {
	old := threeCars()
	next := Remove(old, 99, carID)
	assert.Equal(t, old, next)
}

func TestStore_ApplyFlow(t *testing.T) {
	s := NewStore()

	_, ok := Get[models.Car](s, "cars")
	assert.False(t, ok)

	Set(s, "cars", threeCars())

	ApplyCreate(s, "cars", models.Car{ID: 4, Brand: "Skoda"})
	list, ok := Get[models.Car](s, "cars")
	require.True(t, ok)
	require.Len(t, list, 4)
	assert.Equal(t, int64(4), list[0].ID)

	ApplyUpdate(s, "cars", models.Car{ID: 1, Brand: "Lada", Model: "Granta"}, carID)
	list, _ = Get[models.Car](s, "cars")
	assert.Equal(t, "Granta", list[3].Model)

	ApplyDelete(s, "cars", 3, carID)
	list, _ = Get[models.Car](s, "cars")
	require.Len(t, list, 3)
	for _, c := range list {
		assert.NotEqual(t, int64(3), c.ID)
	}
}

func TestStore_ApplyUpdateWithoutEntryIsNoop(t *testing.T) {
	s := NewStore()
	ApplyUpdate(s, "cars", models.Car{ID: 1}, carID)
	_, ok := Get[models.Car](s, "cars")
	assert.False(t, ok)
}

func TestStore_Subscribe(t *testing.T) {
	s := NewStore()

	var ops []Op
	s.Subscribe("cars", func(c Change) {
		ops = append(ops, c.Op)
	})
	s.Subscribe("clients", func(c Change) {
		t.Fatal("handler for another entity must not fire")
	})

	Set(s, "cars", threeCars())
	ApplyCreate(s, "cars", models.Car{ID: 4})
	ApplyDelete(s, "cars", 4, carID)

	assert.Equal(t, []Op{OpSet, OpCreate, OpDelete}, ops)
}

func TestMirror_WriteAndWarm(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	s := NewStore()
	m := NewMirror(rdb, time.Minute)
	s.UseMirror(m)

	Set(s, "cars", threeCars())

	// a fresh store warms itself from the mirrored entry
	fresh := NewStore()
	ok := Warm[models.Car](context.Background(), fresh, m, "cars")
	require.True(t, ok)

	list, found := Get[models.Car](fresh, "cars")
	require.True(t, found)
	require.Len(t, list, 3)
	assert.Equal(t, "Kia", list[0].Brand)
}

func TestWarm_MissingKey(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	s := NewStore()
	ok := Warm[models.Car](context.Background(), s, NewMirror(rdb, time.Minute), "cars")
	assert.False(t, ok)
}
