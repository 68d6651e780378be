package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kipkoechd/fabworks-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RentalQuotation represents a rental or contract quotation. Monetary
// fields are stored exactly as keyed in and are never recomputed.
type RentalQuotation struct {
	ID           uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID            `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID   *uuid.UUID           `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	QuotationRef string               `gorm:"size:100;unique;not null" json:"quotation_ref"`
	Status       enum.QuotationStatus `gorm:"default:0" json:"status"`

	CustomerName string  `gorm:"size:255;not null" json:"customer_name"`
	CompanyName  *string `gorm:"size:255" json:"company_name,omitempty"`
	GSTIN        *string `gorm:"size:50;column:gstin" json:"gstin,omitempty"`
	Email        *string `gorm:"size:255" json:"email,omitempty"`
	Phone        *string `gorm:"size:50" json:"phone,omitempty"`

	DeliveryLine1      *string `gorm:"size:255" json:"delivery_line1,omitempty"`
	DeliveryLine2      *string `gorm:"size:255" json:"delivery_line2,omitempty"`
	DeliveryCity       *string `gorm:"size:100" json:"delivery_city,omitempty"`
	DeliveryState      *string `gorm:"size:100" json:"delivery_state,omitempty"`
	DeliveryPostalCode *string `gorm:"size:20" json:"delivery_postal_code,omitempty"`

	ProductDescription string  `gorm:"type:text" json:"product_description"`
	RentalTermMonths   int     `gorm:"default:0" json:"rental_term_months"`
	Quantity           int     `gorm:"default:1" json:"quantity"`
	Terms              *string `gorm:"type:text" json:"terms,omitempty"`

	MonthlyRental decimal.Decimal `gorm:"type:decimal(12,2)" json:"monthly_rental"`
	SetupFee      decimal.Decimal `gorm:"type:decimal(12,2)" json:"setup_fee"`
	DepositAmount decimal.Decimal `gorm:"type:decimal(12,2)" json:"deposit_amount"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2)" json:"total_amount"`

	ValidUntil *time.Time     `json:"valid_until,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

// BeforeCreate generates a UUID before creating a new quotation
func (q *RentalQuotation) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the RentalQuotation model
func (RentalQuotation) TableName() string {
	return "rental_quotations"
}
