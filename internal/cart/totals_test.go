package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shahAagam369/New-Clothing-Website/internal/cart"
	"github.com/shahAagam369/New-Clothing-Website/internal/catalog"
)

// lookupOf builds a cart.Lookup over a fixed product set.
func lookupOf(products ...catalog.Product) cart.Lookup {
	byID := make(map[string]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return func(id string) (*catalog.Product, bool) {
		p, ok := byID[id]
		if !ok {
			return nil, false
		}
		return &p, true
	}
}

func TestResolve(t *testing.T) {
	lookup := lookupOf(
		catalog.Product{ID: "p1", Price: 1599},
		catalog.Product{ID: "p2", Price: 999},
	)

	c := cart.Add(cart.Cart{}, "p1", "M", navy, 1)
	c = cart.Add(c, "ghost", "M", navy, 2)
	c = cart.Add(c, "p2", "L", white, 1)

	resolved := cart.Resolve(c, lookup)
	require.Len(t, resolved, 2)
	assert.Equal(t, "p1", resolved[0].Line.ProductID)
	assert.Equal(t, int64(1599), resolved[0].Product.Price)
	assert.Equal(t, "p2", resolved[1].Line.ProductID)
}

func TestSubtotal(t *testing.T) {
	lookup := lookupOf(
		catalog.Product{ID: "p1", Price: 1599},
		catalog.Product{ID: "p2", Price: 999},
	)

	t.Run("SumsPriceTimesQuantity", func(t *testing.T) {
		c := cart.Add(cart.Cart{}, "p1", "M", navy, 2)
		c = cart.Add(c, "p2", "L", white, 1)
		assert.Equal(t, int64(2*1599+999), cart.Subtotal(c, lookup))
	})

	t.Run("UnresolvableLinesContributeZero", func(t *testing.T) {
		c := cart.Add(cart.Cart{}, "p1", "M", navy, 1)
		c = cart.Add(c, "ghost", "M", navy, 10)
		assert.Equal(t, int64(1599), cart.Subtotal(c, lookup))
	})

	t.Run("InvariantUnderLineReordering", func(t *testing.T) {
		a := cart.Add(cart.Add(cart.Cart{}, "p1", "M", navy, 2), "p2", "L", white, 3)
		b := cart.Add(cart.Add(cart.Cart{}, "p2", "L", white, 3), "p1", "M", navy, 2)
		assert.Equal(t, cart.Subtotal(a, lookup), cart.Subtotal(b, lookup))
	})
}

func TestItemCount(t *testing.T) {
	c := cart.Add(cart.Cart{}, "p1", "M", navy, 2)
	c = cart.Add(c, "ghost", "M", navy, 3)

	// the count includes lines whose product no longer exists
	assert.Equal(t, 5, cart.ItemCount(c))
	assert.Equal(t, 0, cart.ItemCount(cart.Cart{}))
}

func TestShipping(t *testing.T) {
	p := cart.DefaultPricing()
	assert.Equal(t, int64(0), p.Shipping(1499))
	assert.Equal(t, int64(0), p.Shipping(5000))
	assert.Equal(t, int64(99), p.Shipping(1498))
	assert.Equal(t, int64(99), p.Shipping(0))
}

func TestGrandTotalAndTax(t *testing.T) {
	t.Run("InclusiveTaxDoesNotChangeTotal", func(t *testing.T) {
		p := cart.DefaultPricing()
		total := p.GrandTotal(1398, p.Shipping(1398))
		assert.Equal(t, int64(1398+99), total)
	})

	t.Run("InclusiveTaxBackComputesIncludedPortion", func(t *testing.T) {
		p := cart.DefaultPricing()
		// 1180 at 18% inclusive carries 180 of tax
		assert.Equal(t, int64(180), p.Tax(1180))
	})

	t.Run("AdditiveTaxAddsOnTop", func(t *testing.T) {
		p := cart.PricingOptions{FreeShippingThreshold: 1499, FlatShippingFee: 99, TaxRateBP: 1800}
		assert.Equal(t, int64(180), p.Tax(1000))
		// 1000 subtotal, free threshold not met: 1000 + 99 + tax(1099)=198
		assert.Equal(t, int64(1000+99+198), p.GrandTotal(1000, p.Shipping(1000)))
	})

	t.Run("ZeroRate", func(t *testing.T) {
		p := cart.PricingOptions{FreeShippingThreshold: 1499, FlatShippingFee: 99}
		assert.Equal(t, int64(0), p.Tax(5000))
		assert.Equal(t, int64(5000), p.GrandTotal(5000, p.Shipping(5000)))
	})
}
