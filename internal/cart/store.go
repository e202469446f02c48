package cart

import (
	"context"

	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/domain"
)

// Store owns the shopping-cart state for every session and all
// mutations of it. Mutations keep the one-line-per-product invariant
// and preserve line insertion order. Unknown sessions read as empty
// carts; quantity updates to zero or below remove the line.
type Store interface {
	// Get returns a snapshot of the session's cart.
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)

	// AddItem increments the product's line by one, appending a new
	// line with quantity 1 when the product is not in the cart yet.
	AddItem(ctx context.Context, sessionID string, product domain.Product) (*domain.Cart, error)

	// UpdateQuantity sets the line's quantity, removing the line when
	// quantity drops to zero or below. Absent products are a no-op.
	UpdateQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (*domain.Cart, error)

	// RemoveItem removes the product's line if present.
	RemoveItem(ctx context.Context, sessionID string, productID int64) (*domain.Cart, error)

	// Clear empties the session's cart unconditionally.
	Clear(ctx context.Context, sessionID string) error

	// Close shuts down the store and any background processes.
	Close() error
}
