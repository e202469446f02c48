package catalog

import (
	"strings"

	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/domain"
)

// Filter narrows products to those matching both the category and the
// search term. The "all" sentinel (or an empty category) matches every
// category; the term is a case-insensitive substring match on the
// product name, and an empty term matches everything. Input order is
// preserved and no match yields an empty slice, not an error.
func Filter(products []domain.Product, categoryID, term string) []domain.Product {
	term = strings.ToLower(term)

	matched := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !matchesCategory(p, categoryID) {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

func matchesCategory(p domain.Product, categoryID string) bool {
	if categoryID == "" || categoryID == domain.CategoryAll {
		return true
	}
	return p.CategoryID == categoryID
}
