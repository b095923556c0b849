package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shahAagam369/New-Clothing-Website/internal/catalog"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "₹999", catalog.FormatPrice(999, "INR"))
	assert.Equal(t, "₹1,599", catalog.FormatPrice(1599, "INR"))
	// Indian grouping: last three digits, then pairs
	assert.Equal(t, "₹1,59,990", catalog.FormatPrice(159990, "INR"))
	assert.Equal(t, "₹12,34,567", catalog.FormatPrice(1234567, "INR"))
	assert.Equal(t, "-₹1,499", catalog.FormatPrice(-1499, "INR"))
	assert.Equal(t, "USD 1,234,567", catalog.FormatPrice(1234567, "USD"))
	assert.Equal(t, "USD 42", catalog.FormatPrice(42, "USD"))
}
