package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupGormStore(t *testing.T) *GormStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to connect test database")

	store, err := NewGormStore(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestGormStore_GetMissing(t *testing.T) {
	store := setupGormStore(t)

	v, ok, err := store.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestGormStore_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	store := setupGormStore(t)

	require.NoError(t, store.Set(ctx, CartKey, []byte(`[{"id":1,"qty":1}]`)))
	require.NoError(t, store.Set(ctx, CartKey, []byte(`[{"id":1,"qty":2}]`)))

	v, ok, err := store.Get(ctx, CartKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":1,"qty":2}]`, string(v))

	var count int64
	require.NoError(t, store.db.Model(&KVEntry{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGormStore_WithLists(t *testing.T) {
	ctx := context.Background()
	store := setupGormStore(t)
	scoped := Scoped(store, "abc")

	require.NoError(t, SaveList(ctx, scoped, PreordersKey, []line{{ID: 3, Qty: 1}}))

	got, err := LoadList[line](ctx, scoped, PreordersKey)
	require.NoError(t, err)
	assert.Equal(t, []line{{ID: 3, Qty: 1}}, got)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open("redis", "localhost:6379")
	assert.Error(t, err)
}
