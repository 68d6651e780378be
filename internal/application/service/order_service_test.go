package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kipkoechd/fabworks-api/internal/domain/entity"
	"github.com/kipkoechd/fabworks-api/internal/domain/enum"
	"github.com/kipkoechd/fabworks-api/pkg/pagination"
)

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func (f *fakeCustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return f.customers[id], nil
}

func (f *fakeCustomerRepo) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.Email != nil && *c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.customers, id)
	return nil
}

func (f *fakeCustomerRepo) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string, skipUserFilter bool) ([]entity.Customer, int64, error) {
	return nil, 0, nil
}

type orderServiceFixture struct {
	service   *OrderService
	orderRepo *fakeOrderRepo
	customers *fakeCustomerRepo
	shipping  *fakeShippingRepo
	billing   *fakeBillingRepo
	detail    *fakeDetailRepo
	payment   *fakePaymentRepo
}

func newOrderServiceFixture() *orderServiceFixture {
	f := &orderServiceFixture{
		orderRepo: &fakeOrderRepo{orders: map[uuid.UUID]*entity.Order{}},
		customers: &fakeCustomerRepo{customers: map[uuid.UUID]*entity.Customer{}},
		shipping:  &fakeShippingRepo{},
		billing:   &fakeBillingRepo{},
		detail:    &fakeDetailRepo{},
		payment:   &fakePaymentRepo{},
	}
	f.service = NewOrderService(f.orderRepo, f.customers, f.shipping, f.billing, f.detail, f.payment)
	return f
}

func TestCreateOrderGeneratesOrderNo(t *testing.T) {
	f := newOrderServiceFixture()

	order, err := f.service.CreateOrder(context.Background(), &CreateOrderInput{
		UserID: uuid.New(),
		Items:  []byte(`[{"id":"1","name":"Steel frame","quantity":3,"unit_price":1500}]`),
	})
	require.NoError(t, err)

	require.NotNil(t, order.OrderNo)
	assert.True(t, strings.HasPrefix(*order.OrderNo, "ORD-"))
	assert.Equal(t, "catalog", order.Category)
	assert.Equal(t, enum.OrderStatusNew, order.Status)
}

func TestCreateOrderRecomputesTotals(t *testing.T) {
	f := newOrderServiceFixture()

	order, err := f.service.CreateOrder(context.Background(), &CreateOrderInput{
		UserID: uuid.New(),
		Items:  []byte(`[{"id":"1","name":"Steel frame","quantity":3,"unit_price":1500},{"id":"2","product_name":"Panel","unit_price":250.50}]`),
	})
	require.NoError(t, err)

	// 3 x 1500.00 plus one 250.50 line with default quantity
	assert.Equal(t, int64(475050), order.SubTotal)
	assert.Equal(t, int64(475050), order.Total)
}

func TestCreateOrderDuplicateOrderNo(t *testing.T) {
	f := newOrderServiceFixture()
	orderNo := "ORD-AAAA1111"

	_, err := f.service.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:  uuid.New(),
		OrderNo: &orderNo,
	})
	require.NoError(t, err)

	_, err = f.service.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:  uuid.New(),
		OrderNo: &orderNo,
	})
	assert.Error(t, err)
}

func TestCreateOrderUpsertsSatellites(t *testing.T) {
	f := newOrderServiceFixture()
	method := "bank_transfer"

	order, err := f.service.CreateOrder(context.Background(), &CreateOrderInput{
		UserID: uuid.New(),
		Shipping: &AddressInput{
			Line1: "Warehouse 7", City: "Pune", State: "MH", PostalCode: "411002", Country: "India",
		},
		Contact: &ContactInput{Name: "Asha Mehta", Phone: "+91 98220 11111"},
		Payment: &PaymentInput{Method: &method, AmountPaid: 1250.50},
	})
	require.NoError(t, err)

	require.NotNil(t, f.shipping.record)
	assert.Equal(t, order.ID, f.shipping.record.OrderID)
	require.NotNil(t, f.detail.record)
	assert.Equal(t, "Asha Mehta", f.detail.record.Name)
	require.NotNil(t, f.payment.record)
	assert.Equal(t, "pending", f.payment.record.Status)
	assert.Equal(t, int64(125050), f.payment.record.AmountPaid)
	assert.Nil(t, f.billing.record)
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	f := newOrderServiceFixture()
	customerID := uuid.New()

	_, err := f.service.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:     uuid.New(),
		CustomerID: &customerID,
	})
	assert.Error(t, err)
}

func TestUpdateOrderReplacesItemsAndTotals(t *testing.T) {
	f := newOrderServiceFixture()

	order, err := f.service.CreateOrder(context.Background(), &CreateOrderInput{
		UserID: uuid.New(),
		Items:  []byte(`[{"id":"1","name":"Steel frame","quantity":1,"unit_price":1500}]`),
	})
	require.NoError(t, err)

	updated, err := f.service.UpdateOrder(context.Background(), &UpdateOrderInput{
		ID:    order.ID,
		Items: []byte(`[{"id":"1","name":"Steel frame","quantity":2,"unit_price":1500}]`),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(300000), updated.Total)
}

func TestUpdateOrderStatus(t *testing.T) {
	f := newOrderServiceFixture()

	order, err := f.service.CreateOrder(context.Background(), &CreateOrderInput{UserID: uuid.New()})
	require.NoError(t, err)

	updated, err := f.service.UpdateOrderStatus(context.Background(), order.ID, enum.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusCompleted, updated.Status)
}

func TestDeleteOrderRemovesSatellites(t *testing.T) {
	f := newOrderServiceFixture()

	order, err := f.service.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:   uuid.New(),
		Shipping: &AddressInput{Line1: "Warehouse 7", City: "Pune"},
		Billing:  &AddressInput{Line1: "12 Main St", City: "Pune"},
		Contact:  &ContactInput{Name: "Asha Mehta"},
	})
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteOrder(context.Background(), order.ID))

	assert.Nil(t, f.shipping.record)
	assert.Nil(t, f.billing.record)
	assert.Nil(t, f.detail.record)
	got, _ := f.orderRepo.GetByID(context.Background(), order.ID)
	assert.Nil(t, got)
}

func TestDeleteOrderNotFound(t *testing.T) {
	f := newOrderServiceFixture()

	err := f.service.DeleteOrder(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestCreateOrderPaymentPaidAt(t *testing.T) {
	f := newOrderServiceFixture()
	paidAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	_, err := f.service.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:  uuid.New(),
		Payment: &PaymentInput{Status: "paid", AmountPaid: 100, PaidAt: &paidAt},
	})
	require.NoError(t, err)

	require.NotNil(t, f.payment.record)
	assert.Equal(t, "paid", f.payment.record.Status)
	require.NotNil(t, f.payment.record.PaidAt)
	assert.True(t, f.payment.record.PaidAt.Equal(paidAt))
}

func TestCancelOrder(t *testing.T) {
	f := newOrderServiceFixture()

	order, err := f.service.CreateOrder(context.Background(), &CreateOrderInput{UserID: uuid.New()})
	require.NoError(t, err)

	cancelled, err := f.service.CancelOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusCancelled, cancelled.Status)

	_, err = f.service.CancelOrder(context.Background(), order.ID)
	assert.Error(t, err)
}

func TestUpsertShippingAddressStandalone(t *testing.T) {
	f := newOrderServiceFixture()

	order, err := f.service.CreateOrder(context.Background(), &CreateOrderInput{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = f.service.UpsertShippingAddress(context.Background(), order.ID, &AddressInput{
		Line1:      "Plot 12, Industrial Estate",
		City:       "Pune",
		State:      "Maharashtra",
		PostalCode: "411001",
		Country:    "India",
	})
	require.NoError(t, err)

	require.NotNil(t, f.shipping.record)
	assert.Equal(t, order.ID, f.shipping.record.OrderID)
	assert.Equal(t, "Plot 12, Industrial Estate", f.shipping.record.Line1)
}

func TestUpsertPaymentDetailDefaultsStatus(t *testing.T) {
	f := newOrderServiceFixture()

	order, err := f.service.CreateOrder(context.Background(), &CreateOrderInput{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = f.service.UpsertPaymentDetail(context.Background(), order.ID, &PaymentInput{AmountPaid: 99.99})
	require.NoError(t, err)

	require.NotNil(t, f.payment.record)
	assert.Equal(t, "pending", f.payment.record.Status)
	assert.Equal(t, int64(9999), f.payment.record.AmountPaid)
}

func TestDeleteSatellite(t *testing.T) {
	f := newOrderServiceFixture()

	order, err := f.service.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:  uuid.New(),
		Contact: &ContactInput{Name: "Asha Mehta", Phone: "+91 98200 11111"},
	})
	require.NoError(t, err)
	require.NotNil(t, f.detail.record)

	require.NoError(t, f.service.DeleteSatellite(context.Background(), order.ID, "customer-detail"))
	assert.Nil(t, f.detail.record)

	err = f.service.DeleteSatellite(context.Background(), order.ID, "warehouse-note")
	assert.Error(t, err)
}
