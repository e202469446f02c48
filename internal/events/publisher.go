package events

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// OrderEvent is the payload published when an order is finalized.
type OrderEvent struct {
	OrderID      string          `json:"order_id"`
	CustomerName string          `json:"customer_name"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	TotalItems   int             `json:"total_items"`
	SubmittedVia string          `json:"submitted_via"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Publisher notifies downstream consumers about finalized orders.
// Publishing is best effort; failures never fail a checkout.
type Publisher interface {
	Publish(ctx context.Context, event OrderEvent) error
	Close() error
}

// NopPublisher drops events. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, OrderEvent) error { return nil }
func (NopPublisher) Close() error                              { return nil }
