package domain

import "github.com/shopspring/decimal"

// CustomerInfo is the customer form captured at checkout. It lives for
// one submission attempt and is discarded afterwards.
type CustomerInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Pincode string `json:"pincode"`
	Phone   string `json:"phone"`
	GSTNo   string `json:"gstNo,omitempty"`
}

// OrderLine is the summary of one cart line inside an order record.
type OrderLine struct {
	ProductID  int64           `json:"id"`
	Name       string          `json:"name"`
	Material   string          `json:"material"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// OrderSummary carries the order totals and creation timestamp.
type OrderSummary struct {
	TotalItems  int             `json:"totalItems"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	OrderDate   string          `json:"orderDate"`
}

// OrderRecord is the finalized snapshot of cart and customer data that
// gets submitted to an external sink. Immutable once built.
type OrderRecord struct {
	ID       string       `json:"id"`
	Customer CustomerInfo `json:"customer"`
	Items    []OrderLine  `json:"items"`
	Summary  OrderSummary `json:"summary"`
}
