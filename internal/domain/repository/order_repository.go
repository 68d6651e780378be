package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kipkoechd/fabworks-api/internal/domain/entity"
	"github.com/kipkoechd/fabworks-api/internal/domain/enum"
	"github.com/kipkoechd/fabworks-api/pkg/pagination"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetByOrderNo(ctx context.Context, orderNo string) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *OrderFilterParams) ([]entity.Order, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination     *pagination.PaginationParams
	Search         string
	Status         *enum.OrderStatus
	Category       string
	CustomerID     *uuid.UUID
	StartDate      *time.Time
	EndDate        *time.Time
	SortBy         string
	SortOrder      string
	SkipUserFilter bool // If true, returns all orders (for super-admin)
}

// OrderShippingAddressRepository defines the interface for the shipping
// address satellite. GetByOrderID returns nil when no record exists.
type OrderShippingAddressRepository interface {
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.OrderShippingAddress, error)
	Upsert(ctx context.Context, addr *entity.OrderShippingAddress) error
	DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error
}

// OrderBillingAddressRepository defines the interface for the billing
// address satellite. GetByOrderID returns nil when no record exists.
type OrderBillingAddressRepository interface {
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.OrderBillingAddress, error)
	Upsert(ctx context.Context, addr *entity.OrderBillingAddress) error
	DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error
}

// OrderCustomerDetailRepository defines the interface for the checkout
// contact satellite. GetByOrderID returns nil when no record exists.
type OrderCustomerDetailRepository interface {
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.OrderCustomerDetail, error)
	Upsert(ctx context.Context, detail *entity.OrderCustomerDetail) error
	DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error
}

// OrderPaymentDetailRepository defines the interface for the payment
// satellite. GetByOrderID returns nil when no record exists.
type OrderPaymentDetailRepository interface {
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.OrderPaymentDetail, error)
	Upsert(ctx context.Context, detail *entity.OrderPaymentDetail) error
	DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error
}
