// Package cart implements the shopping cart engine: identity-based line
// merging, quantity updates, and totals derived by joining lines against the
// catalog. All operations are pure; callers own persistence of the returned
// value (see Session for the load-once/persist-on-change wrapper).
package cart

import (
	"strings"

	"github.com/shahAagam369/New-Clothing-Website/internal/catalog"
)

// Line is one cart entry. ProductID is a reference into the catalog, not an
// ownership relation; the engine never validates Size against the product.
type Line struct {
	ProductID string        `json:"productId"`
	Size      string        `json:"size"`
	Color     catalog.Color `json:"color"`
	Quantity  int           `json:"quantity"`
}

// Cart is an ordered sequence of lines. At most one line exists per
// (productId, size, color hex) identity; merges keep the existing line's
// position.
type Cart []Line

// Key derives the line identity. Color identity is the hex value only; two
// colors with different names but the same hex are the same selection.
func Key(productID, size, colorHex string) string {
	return strings.Join([]string{productID, size, colorHex}, "|")
}

func (l Line) key() string {
	return Key(l.ProductID, l.Size, l.Color.Hex)
}

// Add returns a new cart with the given selection added. An existing line
// with the same identity absorbs the quantity in place; otherwise a new line
// is appended. Quantities below 1 are clamped to 1 so a stray zero from the
// UI still adds one item. The input cart is never mutated.
func Add(c Cart, productID, size string, color catalog.Color, quantity int) Cart {
	if quantity < 1 {
		quantity = 1
	}
	k := Key(productID, size, color.Hex)
	for i := range c {
		if c[i].key() == k {
			out := clone(c)
			out[i].Quantity += quantity
			return out
		}
	}
	out := make(Cart, len(c), len(c)+1)
	copy(out, c)
	return append(out, Line{ProductID: productID, Size: size, Color: color, Quantity: quantity})
}

// Remove returns a new cart without the matching line. Unknown identities are
// a no-op; a stale reference must never break the cart.
func Remove(c Cart, productID, size, colorHex string) Cart {
	k := Key(productID, size, colorHex)
	out := make(Cart, 0, len(c))
	for _, l := range c {
		if l.key() == k {
			continue
		}
		out = append(out, l)
	}
	return out
}

// SetQuantity returns a new cart with the matching line's quantity replaced,
// keeping its position. Quantity <= 0 removes the line. No-op if nothing
// matches.
func SetQuantity(c Cart, productID, size, colorHex string, quantity int) Cart {
	if quantity <= 0 {
		return Remove(c, productID, size, colorHex)
	}
	k := Key(productID, size, colorHex)
	out := clone(c)
	for i := range out {
		if out[i].key() == k {
			out[i].Quantity = quantity
			break
		}
	}
	return out
}

func clone(c Cart) Cart {
	out := make(Cart, len(c))
	copy(out, c)
	return out
}
