package cart

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/domain"
)

func setupStore(t *testing.T) *MemoryStore {
	store := NewMemoryStore(time.Hour)
	t.Cleanup(func() { store.Close() })
	return store
}

func product(id int64, name string, retail int64) domain.Product {
	return domain.Product{
		ID:          id,
		Name:        name,
		Material:    "Steel",
		RetailPrice: decimal.NewFromInt(retail),
	}
}

func TestMemoryStore_AddItem_NewLine(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	cart, err := store.AddItem(ctx, "s1", product(1, "Single Steel Bed", 4500))
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(1), cart.Items[0].ProductID)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.True(t, cart.Items[0].UnitPrice.Equal(decimal.NewFromInt(4500)))
}

func TestMemoryStore_AddItem_RepeatedAddsAccumulateOneLine(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	p := product(1, "Folding Chair", 950)
	for i := 0; i < 5; i++ {
		_, err := store.AddItem(ctx, "s1", p)
		require.NoError(t, err)
	}

	cart, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestMemoryStore_AddItem_PreservesInsertionOrder(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "s1", product(3, "C", 10))
	require.NoError(t, err)
	_, err = store.AddItem(ctx, "s1", product(1, "A", 10))
	require.NoError(t, err)
	_, err = store.AddItem(ctx, "s1", product(2, "B", 10))
	require.NoError(t, err)
	_, err = store.AddItem(ctx, "s1", product(1, "A", 10))
	require.NoError(t, err)

	cart, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 3)
	assert.Equal(t, int64(3), cart.Items[0].ProductID)
	assert.Equal(t, int64(1), cart.Items[1].ProductID)
	assert.Equal(t, int64(2), cart.Items[2].ProductID)
}

func TestMemoryStore_UpdateQuantity_SetsQuantity(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "s1", product(1, "Study Table", 3400))
	require.NoError(t, err)

	cart, err := store.UpdateQuantity(ctx, "s1", 1, 7)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 7, cart.Items[0].Quantity)
}

func TestMemoryStore_UpdateQuantity_ZeroRemovesLine(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "s1", product(1, "Study Table", 3400))
	require.NoError(t, err)

	cart, err := store.UpdateQuantity(ctx, "s1", 1, 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestMemoryStore_UpdateQuantityZero_EquivalentToRemove(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "s1", product(1, "A", 100))
	require.NoError(t, err)
	_, err = store.AddItem(ctx, "s2", product(1, "A", 100))
	require.NoError(t, err)

	byUpdate, err := store.UpdateQuantity(ctx, "s1", 1, 0)
	require.NoError(t, err)
	byRemove, err := store.RemoveItem(ctx, "s2", 1)
	require.NoError(t, err)

	assert.Empty(t, byUpdate.Items)
	assert.Empty(t, byRemove.Items)
}

func TestMemoryStore_UpdateQuantity_AbsentProductIsNoOp(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "s1", product(1, "A", 100))
	require.NoError(t, err)

	cart, err := store.UpdateQuantity(ctx, "s1", 999, 3)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestMemoryStore_UpdateQuantity_UnknownSessionAllocatesNothing(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	cart, err := store.UpdateQuantity(ctx, "ghost", 1, 3)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	store.mu.RLock()
	defer store.mu.RUnlock()
	assert.NotContains(t, store.carts, "ghost")
}

func TestMemoryStore_RemoveItem_AbsentProductIsNoOp(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "s1", product(1, "A", 100))
	require.NoError(t, err)

	cart, err := store.RemoveItem(ctx, "s1", 999)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestMemoryStore_Clear(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "s1", product(1, "A", 100))
	require.NoError(t, err)
	_, err = store.AddItem(ctx, "s1", product(2, "B", 200))
	require.NoError(t, err)

	require.NoError(t, store.Clear(ctx, "s1"))

	cart, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.Total().IsZero())
}

func TestMemoryStore_Get_UnknownSessionIsEmptyCart(t *testing.T) {
	store := setupStore(t)

	cart, err := store.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.ItemCount())
	assert.True(t, cart.Total().IsZero())
}

func TestMemoryStore_Get_ReturnsSnapshot(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "s1", product(1, "A", 100))
	require.NoError(t, err)

	cart, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	cart.Items[0].Quantity = 99

	fresh, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.Items[0].Quantity)
}

func TestCart_TotalAndItemCount(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	// Product A: unit price 1000, qty 2; product B: unit price 500, qty 1
	_, err := store.AddItem(ctx, "s1", product(1, "A", 1000))
	require.NoError(t, err)
	_, err = store.AddItem(ctx, "s1", product(1, "A", 1000))
	require.NoError(t, err)
	_, err = store.AddItem(ctx, "s1", product(2, "B", 500))
	require.NoError(t, err)

	cart, err := store.Get(ctx, "s1")
	require.NoError(t, err)

	assert.True(t, cart.Total().Equal(decimal.NewFromInt(2500)), "total = %s", cart.Total())
	assert.Equal(t, 3, cart.ItemCount())
	assert.Len(t, cart.Items, 2)
}

func TestMemoryStore_ExpireCarts(t *testing.T) {
	store := NewMemoryStore(time.Millisecond)
	t.Cleanup(func() { store.Close() })
	ctx := context.Background()

	_, err := store.AddItem(ctx, "s1", product(1, "A", 100))
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	store.expireCarts()

	cart, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}
