package services

import (
	"bakery-shop/models"
	"context"
	"sync"
	"time"
)

// CartStore keeps a customer's pending cart for the lifetime of a session.
// Carts are ephemeral: an entry that is not saved again within the TTL is
// gone, and nothing here ever reaches durable storage.
type CartStore interface {
	Get(ctx context.Context, key string) (*models.Cart, error)
	Save(ctx context.Context, key string, cart *models.Cart) error
	Clear(ctx context.Context, key string) error
}

// MemoryCartStore is the in-process fallback used when redis is not
// configured. Expiry is lazy: stale entries are dropped on access.
type MemoryCartStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	carts map[string]memoryCartEntry

	now func() time.Time
}

type memoryCartEntry struct {
	cart      models.Cart
	expiresAt time.Time
}

func NewMemoryCartStore(ttl time.Duration) *MemoryCartStore {
	return &MemoryCartStore{
		ttl:   ttl,
		carts: make(map[string]memoryCartEntry),
		now:   time.Now,
	}
}

func (s *MemoryCartStore) Get(ctx context.Context, key string) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.carts[key]
	if !ok {
		return &models.Cart{}, nil
	}
	if s.now().After(entry.expiresAt) {
		delete(s.carts, key)
		return &models.Cart{}, nil
	}

	cart := models.Cart{
		Lines:     append([]models.CartLine(nil), entry.cart.Lines...),
		ItemCount: entry.cart.ItemCount,
	}
	return &cart, nil
}

func (s *MemoryCartStore) Save(ctx context.Context, key string, cart *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[key] = memoryCartEntry{
		cart: models.Cart{
			Lines:     append([]models.CartLine(nil), cart.Lines...),
			ItemCount: cart.ItemCount,
		},
		expiresAt: s.now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryCartStore) Clear(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, key)
	return nil
}
