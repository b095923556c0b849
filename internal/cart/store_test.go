package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shahAagam369/New-Clothing-Website/internal/cart"
)

func TestDecode(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		c := cart.Add(cart.Cart{}, "p1", "M", navy, 2)
		got := cart.Decode(cart.Encode(c))
		assert.Equal(t, c, got)
	})

	t.Run("MalformedDataIsAnEmptyCart", func(t *testing.T) {
		assert.Empty(t, cart.Decode([]byte("{not json")))
		assert.Empty(t, cart.Decode([]byte(`{"object":"not a list"}`)))
		assert.Empty(t, cart.Decode(nil))
	})
}

func TestSession(t *testing.T) {
	t.Run("MutationsPersistAfterLoad", func(t *testing.T) {
		store := cart.NewMemStore()
		s := cart.NewSession(store)
		s.Load()
		s.Add("p1", "M", navy, 2)
		s.SetQuantity("p1", "M", navy.Hex, 5)

		restored, err := store.Load()
		require.NoError(t, err)
		require.Len(t, restored, 1)
		assert.Equal(t, 5, restored[0].Quantity)
	})

	t.Run("NoPersistenceBeforeLoad", func(t *testing.T) {
		store := cart.NewMemStore()
		saved := cart.Add(cart.Cart{}, "p9", "L", white, 3)
		require.NoError(t, store.Save(saved))

		// a mutation before Load must not clobber the stored cart
		s := cart.NewSession(store)
		s.Add("p1", "M", navy, 1)

		restored, err := store.Load()
		require.NoError(t, err)
		require.Len(t, restored, 1)
		assert.Equal(t, "p9", restored[0].ProductID)
	})

	t.Run("LoadRestoresPersistedCart", func(t *testing.T) {
		store := cart.NewMemStore()
		require.NoError(t, store.Save(cart.Add(cart.Cart{}, "p1", "M", navy, 4)))

		s := cart.NewSession(store)
		s.Load()
		require.Len(t, s.Cart(), 1)
		assert.Equal(t, 4, s.Cart()[0].Quantity)
	})

	t.Run("ClearEmptiesCartAndStore", func(t *testing.T) {
		store := cart.NewMemStore()
		s := cart.NewSession(store)
		s.Load()
		s.Add("p1", "M", navy, 2)
		s.Clear()

		assert.Zero(t, cart.ItemCount(s.Cart()))
		restored, err := store.Load()
		require.NoError(t, err)
		assert.Empty(t, restored)
	})

	t.Run("RemoveThenReloadMatches", func(t *testing.T) {
		store := cart.NewMemStore()
		s := cart.NewSession(store)
		s.Load()
		s.Add("p1", "M", navy, 2)
		s.Add("p2", "L", white, 1)
		s.Remove("p1", "M", navy.Hex)

		restored, err := store.Load()
		require.NoError(t, err)
		require.Len(t, restored, 1)
		assert.Equal(t, "p2", restored[0].ProductID)
	})
}
