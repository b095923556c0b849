package order

import "github.com/shahAagam369/New-Clothing-Website/internal/cart"

// CheckoutRequest payload of order intake.
// swagger:model CheckoutRequest
type CheckoutRequest struct {
	Items           []cart.Line     `json:"items"`
	Total           int64           `json:"total" example:"1698"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod" example:"cod"`
}

// CheckoutResponse is returned on successful order placement.
// swagger:model CheckoutResponse
type CheckoutResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId" example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	Message string `json:"message" example:"Order placed successfully"`
}

// UpdateStatusRequest payload of status update.
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	Status string `json:"status" example:"shipped"`
}
