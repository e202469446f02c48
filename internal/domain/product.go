package domain

import "github.com/shopspring/decimal"

// Company describes the retailer shown in the storefront header.
type Company struct {
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
}

// CategoryInfo is a category entry offered to the filter UI.
type CategoryInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryAll is the sentinel category id matching every product.
const CategoryAll = "all"

// Product is one catalog item, tagged with the category it came from.
// Products are immutable after catalog load.
type Product struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Material     string          `json:"material"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	RetailPrice  decimal.Decimal `json:"retailPrice"`
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	ImageURL     string          `json:"image"`
}
