package cart

import (
	"encoding/json"
	"sync"
)

// Store persists one shopper's cart. Implementations are keyed to a single
// device or session; the engine never sees the key.
type Store interface {
	Load() (Cart, error)
	Save(c Cart) error
	Clear() error
}

// Decode recovers a cart from its stored JSON. Malformed or empty payloads
// yield an empty cart, never an error; a corrupt blob must not break the
// shopping UI.
func Decode(data []byte) Cart {
	if len(data) == 0 {
		return Cart{}
	}
	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return Cart{}
	}
	return c
}

func Encode(c Cart) []byte {
	if c == nil {
		c = Cart{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return []byte("[]")
	}
	return data
}

// MemStore keeps the serialized cart in memory. Used in tests and when the
// storefront runs without Postgres.
type MemStore struct {
	mu   sync.Mutex
	data []byte
}

func NewMemStore() *MemStore { return &MemStore{} }

func (s *MemStore) Load() (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Decode(s.data), nil
}

func (s *MemStore) Save(c Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = Encode(c)
	return nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	return nil
}
