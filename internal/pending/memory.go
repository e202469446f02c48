package pending

import (
	"context"
	"sync"

	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/domain"
)

// MemoryStorage keeps the pending queue in process memory.
type MemoryStorage struct {
	mu     sync.RWMutex
	orders []domain.OrderRecord
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Save(_ context.Context, order *domain.OrderRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, *order)
	return nil
}

func (s *MemoryStorage) List(_ context.Context) ([]domain.OrderRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.OrderRecord, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

func (s *MemoryStorage) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = nil
	return nil
}
