package cart

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client, time.Hour), mr
}

func TestRedisStore_Get_UnknownSessionIsEmptyCart(t *testing.T) {
	store, _ := setupRedisStore(t)

	cart, err := store.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", cart.SessionID)
	assert.Empty(t, cart.Items)
}

func TestRedisStore_AddItem_RoundTrip(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "s1", product(1, "Single Steel Bed", 4500))
	require.NoError(t, err)
	assert.True(t, mr.Exists(cartKey("s1")))

	cart, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(1), cart.Items[0].ProductID)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.True(t, cart.Items[0].UnitPrice.Equal(decimal.NewFromInt(4500)))
}

func TestRedisStore_AddItem_RepeatedAddsAccumulateOneLine(t *testing.T) {
	store, _ := setupRedisStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.AddItem(ctx, "s1", product(1, "A", 100))
		require.NoError(t, err)
	}

	cart, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestRedisStore_UpdateQuantity(t *testing.T) {
	store, _ := setupRedisStore(t)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "s1", product(1, "A", 100))
	require.NoError(t, err)

	cart, err := store.UpdateQuantity(ctx, "s1", 1, 7)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 7, cart.Items[0].Quantity)
}

func TestRedisStore_UpdateQuantity_ZeroRemovesLine(t *testing.T) {
	store, _ := setupRedisStore(t)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "s1", product(1, "A", 100))
	require.NoError(t, err)

	cart, err := store.UpdateQuantity(ctx, "s1", 1, 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestRedisStore_RemoveItem(t *testing.T) {
	store, _ := setupRedisStore(t)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "s1", product(1, "A", 100))
	require.NoError(t, err)
	_, err = store.AddItem(ctx, "s1", product(2, "B", 200))
	require.NoError(t, err)

	cart, err := store.RemoveItem(ctx, "s1", 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(2), cart.Items[0].ProductID)
}

func TestRedisStore_Clear_DeletesKey(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "s1", product(1, "A", 100))
	require.NoError(t, err)

	require.NoError(t, store.Clear(ctx, "s1"))
	assert.False(t, mr.Exists(cartKey("s1")))

	cart, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestRedisStore_TTLIsSetOnWrite(t *testing.T) {
	store, mr := setupRedisStore(t)

	_, err := store.AddItem(context.Background(), "s1", product(1, "A", 100))
	require.NoError(t, err)

	ttl := mr.TTL(cartKey("s1"))
	assert.True(t, ttl > 0 && ttl <= time.Hour, "expected the session TTL, got %v", ttl)
}

func TestRedisStore_SessionExpiry(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "s1", product(1, "A", 100))
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	cart, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items, "expired session reads as an empty cart")
}
