package order

import (
	"time"

	"github.com/shahAagam369/New-Clothing-Website/internal/cart"
)

type ShippingAddress struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Phone   string `json:"phone"`
}

type Order struct {
	ID     string `json:"id"`
	UserID string `json:"user_id,omitempty"` // empty for guest checkout
	// Items is the cart snapshot at checkout time, stored as jsonb.
	Items           []cart.Line     `json:"items"`
	Total           int64           `json:"total"`
	Status          string          `json:"status"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	PaymentMethod   string          `json:"payment_method"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is a known order status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusPaid, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// ValidPaymentMethod mirrors the checkout form's options.
func ValidPaymentMethod(m string) bool {
	switch m {
	case "cod", "card", "upi":
		return true
	}
	return false
}
