package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one product entry in a cart. The unit price is captured
// from the product's retail price when the line is created.
type CartLine struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Material  string          `json:"material"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// LineTotal is the line's unit price times quantity, rounded to the
// currency's minor unit.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))).Round(2)
}

// Cart holds the lines of one shopping session in insertion order.
// Invariant: at most one line per product id.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartLine `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Total sums line totals across the cart. An empty cart totals zero.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Items {
		total = total.Add(line.LineTotal())
	}
	return total
}

// ItemCount sums quantities across lines, not the number of lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.Items {
		count += line.Quantity
	}
	return count
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
