package repository

import (
	"context"

	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/domain"
)

// MemoryRepository serves the flattened catalog straight from the
// loaded document. Products are immutable, so no locking is needed.
type MemoryRepository struct {
	products []domain.Product
}

func NewMemoryRepository(products []domain.Product) *MemoryRepository {
	return &MemoryRepository{products: products}
}

func (r *MemoryRepository) GetAllProducts(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *MemoryRepository) GetProduct(_ context.Context, id int64) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, ErrProductNotFound
}

func (r *MemoryRepository) Close() error {
	return nil
}
