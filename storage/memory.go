package storage

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"bellezamay-cart/models"
)

// MemoryStore keeps snapshots in process memory with a TTL. It backs guest
// carts when no database is configured, and the tests. Snapshots go through
// the same codec as the durable store so both stores share one wire format.
type MemoryStore struct {
	store *gocache.Cache
}

func NewMemoryStore(defaultExpiration, cleanupInterval time.Duration) *MemoryStore {
	return &MemoryStore{
		store: gocache.New(defaultExpiration, cleanupInterval),
	}
}

func (s *MemoryStore) Load(_ context.Context, key string) (models.Cart, error) {
	v, found := s.store.Get(key)
	if !found {
		return models.Cart{}, nil
	}
	data, ok := v.([]byte)
	if !ok {
		return models.Cart{}, nil
	}
	cart, ok := decodeSnapshot(data)
	if !ok {
		return models.Cart{}, nil
	}
	return cart, nil
}

func (s *MemoryStore) Save(_ context.Context, key string, cart models.Cart) error {
	data, err := encodeSnapshot(cart)
	if err != nil {
		return err
	}
	s.store.Set(key, data, gocache.DefaultExpiration)
	return nil
}
