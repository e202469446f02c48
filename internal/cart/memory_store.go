package cart

import (
	"context"
	"sync"
	"time"

	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/domain"
)

const (
	// DefaultSessionTTL is how long an idle cart survives before the
	// cleanup loop drops it.
	DefaultSessionTTL = 30 * time.Minute

	// CleanupInterval is how often the background cleanup runs.
	CleanupInterval = 30 * time.Second
)

// MemoryStore implements Store with in-memory storage. All operations
// run under one mutex, so every mutation observes a consistent cart.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart // sessionID -> cart
	ttl   time.Duration

	stopCleanup chan struct{}
	wg          sync.WaitGroup
}

// NewMemoryStore creates a new in-memory cart store. A ttl of zero
// falls back to DefaultSessionTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	s := &MemoryStore{
		carts:       make(map[string]*domain.Cart),
		ttl:         ttl,
		stopCleanup: make(chan struct{}),
	}

	// Start background cleanup goroutine
	s.wg.Add(1)
	go s.cleanupLoop()

	return s
}

// cleanupLoop periodically drops carts idle past their TTL.
func (s *MemoryStore) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.expireCarts()
		case <-s.stopCleanup:
			return
		}
	}
}

func (s *MemoryStore) expireCarts() {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := time.Now().Add(-s.ttl)
	for sessionID, cart := range s.carts {
		if cart.UpdatedAt.Before(cutoff) {
			delete(s.carts, sessionID)
		}
	}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (*domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, exists := s.carts[sessionID]
	if !exists {
		now := time.Now()
		return &domain.Cart{SessionID: sessionID, CreatedAt: now, UpdatedAt: now}, nil
	}
	return snapshot(cart), nil
}

func (s *MemoryStore) AddItem(_ context.Context, sessionID string, product domain.Product) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.getOrCreate(sessionID)
	for i := range cart.Items {
		if cart.Items[i].ProductID == product.ID {
			cart.Items[i].Quantity++
			cart.UpdatedAt = time.Now()
			return snapshot(cart), nil
		}
	}

	cart.Items = append(cart.Items, domain.CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Material:  product.Material,
		UnitPrice: product.RetailPrice,
		Quantity:  1,
	})
	cart.UpdatedAt = time.Now()
	return snapshot(cart), nil
}

func (s *MemoryStore) UpdateQuantity(_ context.Context, sessionID string, productID int64, quantity int) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, exists := s.carts[sessionID]
	if !exists {
		now := time.Now()
		return &domain.Cart{SessionID: sessionID, CreatedAt: now, UpdatedAt: now}, nil
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID != productID {
			continue
		}
		if quantity <= 0 {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
		} else {
			cart.Items[i].Quantity = quantity
		}
		cart.UpdatedAt = time.Now()
		break
	}
	return snapshot(cart), nil
}

func (s *MemoryStore) RemoveItem(ctx context.Context, sessionID string, productID int64) (*domain.Cart, error) {
	return s.UpdateQuantity(ctx, sessionID, productID, 0)
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cart, exists := s.carts[sessionID]; exists {
		cart.Items = nil
		cart.UpdatedAt = time.Now()
	}
	return nil
}

// Close stops the background cleanup and waits for it to finish.
func (s *MemoryStore) Close() error {
	close(s.stopCleanup)
	s.wg.Wait()
	return nil
}

func (s *MemoryStore) getOrCreate(sessionID string) *domain.Cart {
	cart, exists := s.carts[sessionID]
	if !exists {
		now := time.Now()
		cart = &domain.Cart{SessionID: sessionID, CreatedAt: now, UpdatedAt: now}
		s.carts[sessionID] = cart
	}
	return cart
}

func snapshot(cart *domain.Cart) *domain.Cart {
	out := *cart
	out.Items = make([]domain.CartLine, len(cart.Items))
	copy(out.Items, cart.Items)
	return &out
}
