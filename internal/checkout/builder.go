package checkout

import (
	"time"

	"github.com/google/uuid"

	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/domain"
)

// NewOrderID returns a collision-safe order id.
func NewOrderID() string {
	return "order-" + uuid.NewString()
}

// BuildOrder snapshots the cart and customer into an immutable order
// record. Pure: the cart is not mutated and the id and timestamp are
// injected by the caller.
func BuildOrder(cart *domain.Cart, customer domain.CustomerInfo, id string, now time.Time) *domain.OrderRecord {
	items := make([]domain.OrderLine, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, domain.OrderLine{
			ProductID:  line.ProductID,
			Name:       line.Name,
			Material:   line.Material,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			TotalPrice: line.LineTotal(),
		})
	}

	return &domain.OrderRecord{
		ID:       id,
		Customer: customer,
		Items:    items,
		Summary: domain.OrderSummary{
			TotalItems:  cart.ItemCount(),
			TotalAmount: cart.Total(),
			OrderDate:   now.UTC().Format(time.RFC3339),
		},
	}
}
