package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/domain"
)

// Document is the static catalog source, read once at startup.
type Document struct {
	Company    domain.Company `json:"company"`
	Categories []Category     `json:"categories"`
}

// Category is one catalog category with its contained items.
type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Item is a raw catalog entry before it is tagged with its category.
type Item struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Material    string          `json:"material"`
	CostPrice   decimal.Decimal `json:"costPrice"`
	RetailPrice decimal.Decimal `json:"retailPrice"`
	Image       string          `json:"image"`
}

// Load reads and parses the catalog document from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return &doc, nil
}

// Flatten tags every item with its category id and name, producing a
// flat product list that preserves document order. The document is not
// modified.
func (d *Document) Flatten() []domain.Product {
	var products []domain.Product
	for _, category := range d.Categories {
		categoryID := strconv.FormatInt(category.ID, 10)
		for _, item := range category.Items {
			products = append(products, domain.Product{
				ID:           item.ID,
				Name:         item.Name,
				Description:  item.Description,
				Material:     item.Material,
				CostPrice:    item.CostPrice,
				RetailPrice:  item.RetailPrice,
				CategoryID:   categoryID,
				CategoryName: category.Name,
				ImageURL:     item.Image,
			})
		}
	}
	return products
}

// CategoryList returns the filterable categories with the "all" entry
// prepended, in document order.
func (d *Document) CategoryList() []domain.CategoryInfo {
	categories := make([]domain.CategoryInfo, 0, len(d.Categories)+1)
	categories = append(categories, domain.CategoryInfo{ID: domain.CategoryAll, Name: "All Products"})
	for _, category := range d.Categories {
		categories = append(categories, domain.CategoryInfo{
			ID:   strconv.FormatInt(category.ID, 10),
			Name: category.Name,
		})
	}
	return categories
}
