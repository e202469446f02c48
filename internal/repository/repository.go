package repository

import (
	"context"
	"errors"

	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

// CatalogRepository defines the interface for product catalog reads.
// Consumers define this interface, not the storage implementation.
type CatalogRepository interface {
	GetAllProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	Close() error
}
