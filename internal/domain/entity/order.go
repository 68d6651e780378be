package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/kipkoechd/fabworks-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Order represents a fabrication or furniture order. Line items are held
// as a loosely-typed JSON payload because historical records use
// inconsistent key names; the document package owns their interpretation.
type Order struct {
	ID         uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID *uuid.UUID       `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	OrderNo    *string          `gorm:"size:100;uniqueIndex" json:"order_no,omitempty"`
	Category   string           `gorm:"size:100;default:'catalog'" json:"category"`
	Status     enum.OrderStatus `gorm:"default:0" json:"status"`
	Items      json.RawMessage  `gorm:"type:jsonb" json:"items,omitempty"`
	SubTotal   int64            `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Discount   int64            `gorm:"default:0" json:"-"` // Stored in cents, reserved
	Total      int64            `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Notes      *string          `gorm:"type:text" json:"notes,omitempty"`

	// Contact fields embedded directly on the order row. Older records
	// carry these; newer ones use the customer detail satellite.
	CustomerName  *string `gorm:"size:255" json:"customer_name,omitempty"`
	CustomerEmail *string `gorm:"size:255" json:"customer_email,omitempty"`
	CustomerPhone *string `gorm:"size:50" json:"customer_phone,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User            User                  `gorm:"foreignKey:UserID" json:"-"`
	Customer        *Customer             `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	ShippingAddress *OrderShippingAddress `gorm:"foreignKey:OrderID" json:"shipping_address,omitempty"`
	BillingAddress  *OrderBillingAddress  `gorm:"foreignKey:OrderID" json:"billing_address,omitempty"`
	CustomerDetail  *OrderCustomerDetail  `gorm:"foreignKey:OrderID" json:"customer_detail,omitempty"`
	PaymentDetail   *OrderPaymentDetail   `gorm:"foreignKey:OrderID" json:"payment_detail,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		SubTotal float64 `json:"sub_total"`
		Discount float64 `json:"discount"`
		Total    float64 `json:"total"`
	}{
		Alias:    Alias(o),
		SubTotal: float64(o.SubTotal) / 100,
		Discount: float64(o.Discount) / 100,
		Total:    float64(o.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderShippingAddress is the one-to-one shipping address record for an order
type OrderShippingAddress struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"order_id"`
	Line1      string    `gorm:"size:255;not null" json:"line1"`
	Line2      *string   `gorm:"size:255" json:"line2,omitempty"`
	City       string    `gorm:"size:100" json:"city"`
	State      string    `gorm:"size:100" json:"state"`
	PostalCode string    `gorm:"size:20" json:"postal_code"`
	Country    string    `gorm:"size:100" json:"country"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (a *OrderShippingAddress) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderShippingAddress model
func (OrderShippingAddress) TableName() string {
	return "order_shipping_addresses"
}

// OrderBillingAddress is the one-to-one billing address record for an order
type OrderBillingAddress struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"order_id"`
	Line1      string    `gorm:"size:255;not null" json:"line1"`
	Line2      *string   `gorm:"size:255" json:"line2,omitempty"`
	City       string    `gorm:"size:100" json:"city"`
	State      string    `gorm:"size:100" json:"state"`
	PostalCode string    `gorm:"size:20" json:"postal_code"`
	Country    string    `gorm:"size:100" json:"country"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (a *OrderBillingAddress) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderBillingAddress model
func (OrderBillingAddress) TableName() string {
	return "order_billing_addresses"
}

// OrderCustomerDetail is the one-to-one contact record captured at checkout.
// It takes precedence over the contact fields embedded on the order row.
type OrderCustomerDetail struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"order_id"`
	Name      string    `gorm:"size:255" json:"name"`
	Email     string    `gorm:"size:255" json:"email"`
	Phone     string    `gorm:"size:50" json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *OrderCustomerDetail) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderCustomerDetail model
func (OrderCustomerDetail) TableName() string {
	return "order_customer_details"
}

// OrderPaymentDetail is the one-to-one payment record for an order
type OrderPaymentDetail struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	OrderID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"order_id"`
	Status     string     `gorm:"size:50;default:'pending'" json:"status"`
	Method     *string    `gorm:"size:50" json:"method,omitempty"`
	AmountPaid int64      `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	PaidAt     *time.Time `json:"paid_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p OrderPaymentDetail) MarshalJSON() ([]byte, error) {
	type Alias OrderPaymentDetail
	return json.Marshal(&struct {
		Alias
		AmountPaid float64 `json:"amount_paid"`
	}{
		Alias:      Alias(p),
		AmountPaid: float64(p.AmountPaid) / 100,
	})
}

func (p *OrderPaymentDetail) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderPaymentDetail model
func (OrderPaymentDetail) TableName() string {
	return "order_payment_details"
}
