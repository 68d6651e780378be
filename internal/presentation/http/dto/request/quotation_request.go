package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateQuotationRequest represents a rental quotation creation request.
// Monetary fields are decimal strings and stored exactly as keyed in.
type CreateQuotationRequest struct {
	CustomerID *uuid.UUID `json:"customer_id"`

	CustomerName string  `json:"customer_name" binding:"required,min=2,max=255"`
	CompanyName  *string `json:"company_name" binding:"omitempty,max=255"`
	GSTIN        *string `json:"gstin" binding:"omitempty,max=50"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Phone        *string `json:"phone" binding:"omitempty,max=50"`

	DeliveryLine1      *string `json:"delivery_line1" binding:"omitempty,max=255"`
	DeliveryLine2      *string `json:"delivery_line2" binding:"omitempty,max=255"`
	DeliveryCity       *string `json:"delivery_city" binding:"omitempty,max=100"`
	DeliveryState      *string `json:"delivery_state" binding:"omitempty,max=100"`
	DeliveryPostalCode *string `json:"delivery_postal_code" binding:"omitempty,max=20"`

	ProductDescription string  `json:"product_description" binding:"required"`
	RentalTermMonths   int     `json:"rental_term_months" binding:"min=0"`
	Quantity           int     `json:"quantity" binding:"omitempty,min=1"`
	Terms              *string `json:"terms"`

	MonthlyRental decimal.Decimal `json:"monthly_rental"`
	SetupFee      decimal.Decimal `json:"setup_fee"`
	DepositAmount decimal.Decimal `json:"deposit_amount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`

	ValidUntil *time.Time `json:"valid_until"`
}

// UpdateQuotationRequest represents a rental quotation update request
type UpdateQuotationRequest struct {
	CustomerName *string `json:"customer_name" binding:"omitempty,min=2,max=255"`
	CompanyName  *string `json:"company_name" binding:"omitempty,max=255"`
	GSTIN        *string `json:"gstin" binding:"omitempty,max=50"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Phone        *string `json:"phone" binding:"omitempty,max=50"`

	DeliveryLine1      *string `json:"delivery_line1" binding:"omitempty,max=255"`
	DeliveryLine2      *string `json:"delivery_line2" binding:"omitempty,max=255"`
	DeliveryCity       *string `json:"delivery_city" binding:"omitempty,max=100"`
	DeliveryState      *string `json:"delivery_state" binding:"omitempty,max=100"`
	DeliveryPostalCode *string `json:"delivery_postal_code" binding:"omitempty,max=20"`

	ProductDescription *string `json:"product_description"`
	RentalTermMonths   *int    `json:"rental_term_months" binding:"omitempty,min=0"`
	Quantity           *int    `json:"quantity" binding:"omitempty,min=1"`
	Terms              *string `json:"terms"`

	MonthlyRental *decimal.Decimal `json:"monthly_rental"`
	SetupFee      *decimal.Decimal `json:"setup_fee"`
	DepositAmount *decimal.Decimal `json:"deposit_amount"`
	TotalAmount   *decimal.Decimal `json:"total_amount"`

	ValidUntil *time.Time `json:"valid_until"`
}

// UpdateQuotationStatusRequest represents a quotation status update request
type UpdateQuotationStatusRequest struct {
	Status int `json:"status" binding:"min=0,max=3"`
}

// QuotationFilterRequest represents quotation filter parameters
type QuotationFilterRequest struct {
	Search     string `form:"search"`
	Status     *int   `form:"status"`
	CustomerID string `form:"customer_id"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
