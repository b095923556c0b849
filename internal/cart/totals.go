package cart

import (
	"github.com/shopspring/decimal"

	"github.com/shahAagam369/New-Clothing-Website/internal/catalog"
)

// Lookup resolves a product id against the catalog. Injected so totals are
// testable without a real product listing.
type Lookup func(id string) (*catalog.Product, bool)

// ResolvedLine pairs a cart line with its catalog record.
type ResolvedLine struct {
	Line    Line
	Product catalog.Product
}

// Resolve joins cart lines with their products, preserving cart order. Lines
// whose product is gone from the catalog are dropped silently; they still
// count toward ItemCount but never toward priced totals.
func Resolve(c Cart, lookup Lookup) []ResolvedLine {
	out := make([]ResolvedLine, 0, len(c))
	for _, l := range c {
		p, ok := lookup(l.ProductID)
		if !ok {
			continue
		}
		out = append(out, ResolvedLine{Line: l, Product: *p})
	}
	return out
}

// Subtotal sums price*quantity over resolvable lines. Unresolvable lines
// contribute zero.
func Subtotal(c Cart, lookup Lookup) int64 {
	var total int64
	for _, l := range c {
		p, ok := lookup(l.ProductID)
		if !ok {
			continue
		}
		total += p.Price * int64(l.Quantity)
	}
	return total
}

// ItemCount sums quantities across all lines, resolvable or not. The badge
// count must not change just because a product was delisted.
func ItemCount(c Cart) int {
	n := 0
	for _, l := range c {
		n += l.Quantity
	}
	return n
}

// PricingOptions carries the checkout pricing policy. TaxRateBP is the tax
// rate in basis points (1800 = 18%). When TaxInclusive is set the tax is
// already part of the totals and Tax only back-computes the included portion
// for display; when unset GrandTotal adds the tax on top.
type PricingOptions struct {
	FreeShippingThreshold int64
	FlatShippingFee       int64
	TaxRateBP             int64
	TaxInclusive          bool
}

// DefaultPricing matches the storefront's launch configuration: free
// shipping from 1499, flat 99 fee below, 18% GST included in prices.
func DefaultPricing() PricingOptions {
	return PricingOptions{
		FreeShippingThreshold: 1499,
		FlatShippingFee:       99,
		TaxRateBP:             1800,
		TaxInclusive:          true,
	}
}

func (o PricingOptions) Shipping(subtotal int64) int64 {
	if subtotal >= o.FreeShippingThreshold {
		return 0
	}
	return o.FlatShippingFee
}

// GrandTotal is subtotal plus shipping, plus tax when the policy is
// tax-additive.
func (o PricingOptions) GrandTotal(subtotal, shipping int64) int64 {
	total := subtotal + shipping
	if !o.TaxInclusive {
		total += o.Tax(total)
	}
	return total
}

// Tax computes the tax amount on a total. For inclusive pricing it
// back-computes the portion of total already made up of tax,
// total*rate/(1+rate); for additive pricing it is total*rate. Rounded to the
// nearest whole unit.
func (o PricingOptions) Tax(total int64) int64 {
	rate := decimal.New(o.TaxRateBP, -4)
	t := decimal.NewFromInt(total)
	var tax decimal.Decimal
	if o.TaxInclusive {
		tax = t.Mul(rate).Div(decimal.NewFromInt(1).Add(rate))
	} else {
		tax = t.Mul(rate)
	}
	return tax.Round(0).IntPart()
}
