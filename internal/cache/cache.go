package cache

import (
	"context"
	"errors"

	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/domain"
)

// CatalogCache caches the flattened product list between repository reads.
type CatalogCache interface {
	Get(ctx context.Context) ([]domain.Product, error)
	Set(ctx context.Context, products []domain.Product) error
	Delete(ctx context.Context) error
}

var ErrCacheMiss = errors.New("cache miss")
