package cart

import (
	"log"

	"github.com/shahAagam369/New-Clothing-Website/internal/catalog"
)

// Session binds a cart value to its store with the sequencing the engine
// requires: persist after every mutation, but only once the stored cart has
// been loaded, so startup never overwrites a saved cart with an empty one.
// Persistence is fire-and-forget; a failed save is logged and the in-memory
// mutation stands.
type Session struct {
	store  Store
	cart   Cart
	loaded bool
}

func NewSession(store Store) *Session {
	return &Session{store: store, cart: Cart{}}
}

// Load restores the persisted cart. Call once at startup; a load failure
// leaves an empty cart and still arms persistence for later mutations.
func (s *Session) Load() {
	c, err := s.store.Load()
	if err != nil {
		log.Printf("[cart] load failed, starting empty: %v", err)
		c = Cart{}
	}
	s.cart = c
	s.loaded = true
}

func (s *Session) Cart() Cart { return s.cart }

func (s *Session) Add(productID, size string, color catalog.Color, quantity int) {
	s.cart = Add(s.cart, productID, size, color, quantity)
	s.persist()
}

func (s *Session) Remove(productID, size, colorHex string) {
	s.cart = Remove(s.cart, productID, size, colorHex)
	s.persist()
}

func (s *Session) SetQuantity(productID, size, colorHex string, quantity int) {
	s.cart = SetQuantity(s.cart, productID, size, colorHex, quantity)
	s.persist()
}

// Clear empties the cart and erases the stored copy. Unlike Save, the erase
// always happens: an explicit clear means the stored cart is unwanted even if
// it was never loaded.
func (s *Session) Clear() {
	s.cart = Cart{}
	s.loaded = true
	if err := s.store.Clear(); err != nil {
		log.Printf("[cart] clear failed: %v", err)
	}
}

func (s *Session) persist() {
	if !s.loaded {
		return
	}
	if err := s.store.Save(s.cart); err != nil {
		log.Printf("[cart] save failed: %v", err)
	}
}
