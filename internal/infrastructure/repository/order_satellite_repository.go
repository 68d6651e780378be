package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kipkoechd/fabworks-api/internal/domain/entity"
	domainRepo "github.com/kipkoechd/fabworks-api/internal/domain/repository"
)

// The four satellite repositories follow the same convention as the rest
// of the layer: a lookup that finds nothing returns (nil, nil), because a
// missing satellite is data, not an error.

type orderShippingAddressRepository struct {
	db *gorm.DB
}

// NewOrderShippingAddressRepository creates a new shipping address repository
func NewOrderShippingAddressRepository(db *gorm.DB) domainRepo.OrderShippingAddressRepository {
	return &orderShippingAddressRepository{db: db}
}

func (r *orderShippingAddressRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.OrderShippingAddress, error) {
	var addr entity.OrderShippingAddress
	err := r.db.WithContext(ctx).First(&addr, "order_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &addr, err
}

func (r *orderShippingAddressRepository) Upsert(ctx context.Context, addr *entity.OrderShippingAddress) error {
	return r.db.WithContext(ctx).Clauses(upsertOnOrderID).Create(addr).Error
}

func (r *orderShippingAddressRepository) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.OrderShippingAddress{}, "order_id = ?", orderID).Error
}

type orderBillingAddressRepository struct {
	db *gorm.DB
}

// NewOrderBillingAddressRepository creates a new billing address repository
func NewOrderBillingAddressRepository(db *gorm.DB) domainRepo.OrderBillingAddressRepository {
	return &orderBillingAddressRepository{db: db}
}

func (r *orderBillingAddressRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.OrderBillingAddress, error) {
	var addr entity.OrderBillingAddress
	err := r.db.WithContext(ctx).First(&addr, "order_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &addr, err
}

func (r *orderBillingAddressRepository) Upsert(ctx context.Context, addr *entity.OrderBillingAddress) error {
	return r.db.WithContext(ctx).Clauses(upsertOnOrderID).Create(addr).Error
}

func (r *orderBillingAddressRepository) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.OrderBillingAddress{}, "order_id = ?", orderID).Error
}

type orderCustomerDetailRepository struct {
	db *gorm.DB
}

// NewOrderCustomerDetailRepository creates a new customer detail repository
func NewOrderCustomerDetailRepository(db *gorm.DB) domainRepo.OrderCustomerDetailRepository {
	return &orderCustomerDetailRepository{db: db}
}

func (r *orderCustomerDetailRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.OrderCustomerDetail, error) {
	var detail entity.OrderCustomerDetail
	err := r.db.WithContext(ctx).First(&detail, "order_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &detail, err
}

func (r *orderCustomerDetailRepository) Upsert(ctx context.Context, detail *entity.OrderCustomerDetail) error {
	return r.db.WithContext(ctx).Clauses(upsertOnOrderID).Create(detail).Error
}

func (r *orderCustomerDetailRepository) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.OrderCustomerDetail{}, "order_id = ?", orderID).Error
}

type orderPaymentDetailRepository struct {
	db *gorm.DB
}

// NewOrderPaymentDetailRepository creates a new payment detail repository
func NewOrderPaymentDetailRepository(db *gorm.DB) domainRepo.OrderPaymentDetailRepository {
	return &orderPaymentDetailRepository{db: db}
}

func (r *orderPaymentDetailRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.OrderPaymentDetail, error) {
	var detail entity.OrderPaymentDetail
	err := r.db.WithContext(ctx).First(&detail, "order_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &detail, err
}

func (r *orderPaymentDetailRepository) Upsert(ctx context.Context, detail *entity.OrderPaymentDetail) error {
	return r.db.WithContext(ctx).Clauses(upsertOnOrderID).Create(detail).Error
}

func (r *orderPaymentDetailRepository) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.OrderPaymentDetail{}, "order_id = ?", orderID).Error
}
