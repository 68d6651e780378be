package request

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AddressRequest carries a structured address for an order satellite
type AddressRequest struct {
	Line1      string  `json:"line1" binding:"required,max=255"`
	Line2      *string `json:"line2" binding:"omitempty,max=255"`
	City       string  `json:"city" binding:"omitempty,max=100"`
	State      string  `json:"state" binding:"omitempty,max=100"`
	PostalCode string  `json:"postal_code" binding:"omitempty,max=20"`
	Country    string  `json:"country" binding:"omitempty,max=100"`
}

// ContactRequest carries the checkout contact for an order
type ContactRequest struct {
	Name  string `json:"name" binding:"omitempty,max=255"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone" binding:"omitempty,max=50"`
}

// PaymentRequest carries payment details for an order
type PaymentRequest struct {
	Status     string     `json:"status" binding:"omitempty,max=50"`
	Method     *string    `json:"method" binding:"omitempty,max=50"`
	AmountPaid float64    `json:"amount_paid" binding:"min=0"`
	PaidAt     *time.Time `json:"paid_at"`
}

// CreateOrderRequest represents an order creation request. Items pass
// through as raw JSON; legacy key names are preserved in storage.
type CreateOrderRequest struct {
	CustomerID    *uuid.UUID      `json:"customer_id"`
	OrderNo       *string         `json:"order_no" binding:"omitempty,max=100"`
	Category      string          `json:"category" binding:"omitempty,max=100"`
	Status        *int            `json:"status" binding:"omitempty,min=0,max=3"`
	Items         json.RawMessage `json:"items"`
	Notes         *string         `json:"notes"`
	CustomerName  *string         `json:"customer_name" binding:"omitempty,max=255"`
	CustomerEmail *string         `json:"customer_email" binding:"omitempty,email"`
	CustomerPhone *string         `json:"customer_phone" binding:"omitempty,max=50"`

	ShippingAddress *AddressRequest `json:"shipping_address"`
	BillingAddress  *AddressRequest `json:"billing_address"`
	CustomerDetail  *ContactRequest `json:"customer_detail"`
	PaymentDetail   *PaymentRequest `json:"payment_detail"`
}

// UpdateOrderRequest represents an order update request
type UpdateOrderRequest struct {
	CustomerID    *uuid.UUID      `json:"customer_id"`
	Category      *string         `json:"category" binding:"omitempty,max=100"`
	Status        *int            `json:"status" binding:"omitempty,min=0,max=3"`
	Items         json.RawMessage `json:"items"`
	Notes         *string         `json:"notes"`
	CustomerName  *string         `json:"customer_name" binding:"omitempty,max=255"`
	CustomerEmail *string         `json:"customer_email" binding:"omitempty,email"`
	CustomerPhone *string         `json:"customer_phone" binding:"omitempty,max=50"`

	ShippingAddress *AddressRequest `json:"shipping_address"`
	BillingAddress  *AddressRequest `json:"billing_address"`
	CustomerDetail  *ContactRequest `json:"customer_detail"`
	PaymentDetail   *PaymentRequest `json:"payment_detail"`
}

// UpdateOrderStatusRequest represents an order status update request
type UpdateOrderStatusRequest struct {
	Status int `json:"status" binding:"min=0,max=3"`
}

// OrderFilterRequest represents order filter parameters
type OrderFilterRequest struct {
	Search     string `form:"search"`
	Status     *int   `form:"status"`
	Category   string `form:"category"`
	CustomerID string `form:"customer_id"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// PrintOrderRequest selects which artifact to print for an order
type PrintOrderRequest struct {
	Target string `json:"target" binding:"required,oneof=invoice label"`
}
