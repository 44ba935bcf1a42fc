package cart

import (
	"context"
	"math"
	"testing"

	"github.com/Lixing-Zhang/suswaad-cafe/internal/models"
	"github.com/Lixing-Zhang/suswaad-cafe/internal/notify"
	"github.com/Lixing-Zhang/suswaad-cafe/internal/repository"
	"github.com/Lixing-Zhang/suswaad-cafe/internal/storage"
	"github.com/Lixing-Zhang/suswaad-cafe/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *repository.InMemoryCatalogRepository {
	return repository.NewCatalogRepository([]models.Category{
		{Name: "breakfast", Items: []models.MenuItem{
			{ID: 1, Name: "Idli", Price: 40, Stock: 3},
			{ID: 2, Name: "Upma", Price: 35, Stock: 0},
		}},
		{Name: "beverages", Items: []models.MenuItem{
			{ID: 3, Name: "Chai", Price: 20.5, Stock: 10},
		}},
	})
}

func setup(t *testing.T) (*Store, *notify.Center, storage.Store) {
	t.Helper()
	backend := storage.NewMemoryStore()
	center := notify.NewCenter(0)
	svc := NewService(backend, testCatalog(), center, logger.New("error"))
	return svc.Store("session-1"), center, backend
}

func TestStore_AddToEmptyCart(t *testing.T) {
	ctx := context.Background()
	c, center, _ := setup(t)

	line, err := c.Add(ctx, 1, "Idli", 40)
	require.NoError(t, err)
	assert.Equal(t, models.CartLine{ItemID: 1, Name: "Idli", Price: 40, Qty: 1}, line)

	lines, err := c.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, lines, 1)

	active := center.Active("session-1")
	require.Len(t, active, 1)
	assert.Equal(t, "Idli added to cart!", active[0].Message)
	assert.True(t, active[0].Success)
}

func TestStore_RepeatedAddKeepsOneLine(t *testing.T) {
	ctx := context.Background()
	c, _, _ := setup(t)

	for i := 1; i <= 5; i++ {
		line, err := c.Add(ctx, 1, "Idli", 40)
		require.NoError(t, err)
		assert.Equal(t, i, line.Qty)
	}
	_, err := c.Add(ctx, 3, "Chai", 20.5)
	require.NoError(t, err)

	lines, err := c.Load(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, int64(1), lines[0].ItemID)
	assert.Equal(t, 5, lines[0].Qty)
	assert.Equal(t, int64(3), lines[1].ItemID)
}

func TestStore_AddRejected(t *testing.T) {
	tests := []struct {
		name    string
		itemID  int64
		wantErr error
	}{
		{"out of stock", 2, ErrOutOfStock},
		{"unknown item", 99, ErrItemNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			c, center, _ := setup(t)
			_, err := c.Add(ctx, 1, "Idli", 40)
			require.NoError(t, err)

			_, err = c.Add(ctx, tt.itemID, "Whatever", 10)
			assert.ErrorIs(t, err, tt.wantErr)

			lines, err := c.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, []models.CartLine{{ItemID: 1, Name: "Idli", Price: 40, Qty: 1}}, lines)

			active := center.Active("session-1")
			require.Len(t, active, 2)
			assert.Equal(t, MsgOutOfStock, active[1].Message)
			assert.False(t, active[1].Success)
		})
	}
}

func TestStore_UpdateQtyClampsAtOne(t *testing.T) {
	ctx := context.Background()
	c, _, _ := setup(t)
	_, err := c.Add(ctx, 1, "Idli", 40)
	require.NoError(t, err)

	steps := []struct {
		delta int
		want  int
	}{
		{+1, 2},
		{+3, 5},
		{-1, 4},
		{-10, 1},
		{-1, 1},
		{+1, 2},
	}
	for _, s := range steps {
		line, err := c.UpdateQty(ctx, 1, s.delta)
		require.NoError(t, err)
		assert.Equal(t, s.want, line.Qty, "after delta %d", s.delta)
	}

	lines, err := c.Load(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1, "decrementing never removes the line")
	assert.Equal(t, 2, lines[0].Qty)
}

func TestAddQty(t *testing.T) {
	tests := []struct {
		qty, delta, want int
	}{
		{1, 1, 2},
		{5, -4, 1},
		{5, -100, 1},
		{2, math.MaxInt, math.MaxInt},
		{math.MaxInt, 1, math.MaxInt},
		{3, math.MinInt, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, addQty(tt.qty, tt.delta), "addQty(%d, %d)", tt.qty, tt.delta)
	}
}

func TestStore_UpdateQtyMissingLineIsNoop(t *testing.T) {
	ctx := context.Background()
	c, _, backend := setup(t)

	_, err := c.UpdateQty(ctx, 1, 1)
	assert.ErrorIs(t, err, ErrLineNotFound)

	_, ok, err := backend.Get(ctx, "session-1:"+storage.CartKey)
	require.NoError(t, err)
	assert.False(t, ok, "no write on a missing line")
}

func TestStore_Remove(t *testing.T) {
	ctx := context.Background()
	c, _, _ := setup(t)
	for i := 0; i < 4; i++ {
		_, err := c.Add(ctx, 1, "Idli", 40)
		require.NoError(t, err)
	}
	_, err := c.Add(ctx, 3, "Chai", 20.5)
	require.NoError(t, err)

	require.NoError(t, c.Remove(ctx, 1))

	lines, err := c.Load(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, int64(3), lines[0].ItemID)

	// removing an absent id still persists the cart
	require.NoError(t, c.Remove(ctx, 42))
	lines, err = c.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestStore_RemoveDropsDuplicates(t *testing.T) {
	ctx := context.Background()
	c, _, backend := setup(t)
	require.NoError(t, backend.Set(ctx, "session-1:"+storage.CartKey,
		[]byte(`[{"id":1,"name":"Idli","price":40,"qty":1},{"id":1,"name":"Idli","price":40,"qty":2}]`)))

	require.NoError(t, c.Remove(ctx, 1))

	lines, err := c.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestStore_TotalAndBadge(t *testing.T) {
	ctx := context.Background()
	c, _, _ := setup(t)

	b, err := c.Badge(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", b)

	total, err := c.Total(ctx)
	require.NoError(t, err)
	assert.True(t, total.IsZero())

	_, _ = c.Add(ctx, 1, "Idli", 40)
	_, _ = c.Add(ctx, 1, "Idli", 40)
	_, _ = c.Add(ctx, 3, "Chai", 20.5)

	total, err = c.Total(ctx)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("100.5").Equal(total), "total = %s", total)

	count, err := c.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	b, err = c.Badge(ctx)
	require.NoError(t, err)
	assert.Equal(t, "3", b)
}

func TestStore_SessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryStore()
	svc := NewService(backend, testCatalog(), nil, logger.New("error"))

	_, err := svc.Store("a").Add(ctx, 1, "Idli", 40)
	require.NoError(t, err)

	n, err := svc.Store("b").Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStore_MalformedCartStartsEmpty(t *testing.T) {
	ctx := context.Background()
	c, _, backend := setup(t)
	require.NoError(t, backend.Set(ctx, "session-1:"+storage.CartKey, []byte("garbage")))

	line, err := c.Add(ctx, 1, "Idli", 40)
	require.NoError(t, err)
	assert.Equal(t, 1, line.Qty)
}
