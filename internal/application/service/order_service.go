package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/kipkoechd/fabworks-api/internal/document"
	"github.com/kipkoechd/fabworks-api/internal/domain/entity"
	"github.com/kipkoechd/fabworks-api/internal/domain/enum"
	"github.com/kipkoechd/fabworks-api/internal/domain/repository"
	"github.com/kipkoechd/fabworks-api/pkg/apperror"
	"github.com/kipkoechd/fabworks-api/pkg/pagination"
	"github.com/kipkoechd/fabworks-api/pkg/utils"
)

// OrderService handles order-related operations
type OrderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	shippingRepo repository.OrderShippingAddressRepository
	billingRepo  repository.OrderBillingAddressRepository
	detailRepo   repository.OrderCustomerDetailRepository
	paymentRepo  repository.OrderPaymentDetailRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	shippingRepo repository.OrderShippingAddressRepository,
	billingRepo repository.OrderBillingAddressRepository,
	detailRepo repository.OrderCustomerDetailRepository,
	paymentRepo repository.OrderPaymentDetailRepository,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		shippingRepo: shippingRepo,
		billingRepo:  billingRepo,
		detailRepo:   detailRepo,
		paymentRepo:  paymentRepo,
	}
}

// AddressInput carries a structured address for a one-to-one order satellite
type AddressInput struct {
	Line1      string  `json:"line1"`
	Line2      *string `json:"line2,omitempty"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postal_code"`
	Country    string  `json:"country"`
}

// ContactInput carries the checkout contact for an order
type ContactInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// PaymentInput carries payment details for an order
type PaymentInput struct {
	Status     string     `json:"status"`
	Method     *string    `json:"method,omitempty"`
	AmountPaid float64    `json:"amount_paid"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
}

// CreateOrderInput represents the create order input. Items are accepted
// as raw JSON so records with legacy key names survive a round trip.
type CreateOrderInput struct {
	UserID        uuid.UUID
	CustomerID    *uuid.UUID
	OrderNo       *string
	Category      string
	Status        *enum.OrderStatus
	Items         json.RawMessage
	Notes         *string
	CustomerName  *string
	CustomerEmail *string
	CustomerPhone *string

	Shipping *AddressInput
	Billing  *AddressInput
	Contact  *ContactInput
	Payment  *PaymentInput
}

// CreateOrder creates a new order together with its satellite records
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	orderNo := input.OrderNo
	if orderNo == nil || *orderNo == "" {
		generated := utils.GenerateOrderNo()
		orderNo = &generated
	} else {
		existing, err := s.orderRepo.GetByOrderNo(ctx, *orderNo)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("An order with this number already exists")
		}
	}

	category := input.Category
	if category == "" {
		category = "catalog"
	}

	order := &entity.Order{
		UserID:        input.UserID,
		CustomerID:    input.CustomerID,
		OrderNo:       orderNo,
		Category:      category,
		Items:         input.Items,
		Notes:         input.Notes,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
	}
	if input.Status != nil {
		order.Status = *input.Status
	}
	s.applyTotals(order)

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := s.upsertSatellites(ctx, order.ID, input.Shipping, input.Billing, input.Contact, input.Payment); err != nil {
		return nil, err
	}

	return s.GetOrder(ctx, order.ID)
}

// GetOrder retrieves an order by ID with its satellite records preloaded
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// GetOrderByOrderNo retrieves an order by its human-facing order number
func (s *OrderService) GetOrderByOrderNo(ctx context.Context, orderNo string) (*entity.Order, error) {
	order, err := s.orderRepo.GetByOrderNo(ctx, orderNo)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders with filtering
func (s *OrderService) ListOrders(ctx context.Context, userID uuid.UUID, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// UpdateOrderInput represents the update order input
type UpdateOrderInput struct {
	ID            uuid.UUID
	CustomerID    *uuid.UUID
	Category      *string
	Status        *enum.OrderStatus
	Items         json.RawMessage
	Notes         *string
	CustomerName  *string
	CustomerEmail *string
	CustomerPhone *string

	Shipping *AddressInput
	Billing  *AddressInput
	Contact  *ContactInput
	Payment  *PaymentInput
}

// UpdateOrder updates an order and upserts any provided satellite records
func (s *OrderService) UpdateOrder(ctx context.Context, input *UpdateOrderInput) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
		order.CustomerID = input.CustomerID
	}
	if input.Category != nil {
		order.Category = *input.Category
	}
	if input.Status != nil {
		order.Status = *input.Status
	}
	if input.Items != nil {
		order.Items = input.Items
	}
	if input.Notes != nil {
		order.Notes = input.Notes
	}
	if input.CustomerName != nil {
		order.CustomerName = input.CustomerName
	}
	if input.CustomerEmail != nil {
		order.CustomerEmail = input.CustomerEmail
	}
	if input.CustomerPhone != nil {
		order.CustomerPhone = input.CustomerPhone
	}
	s.applyTotals(order)

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	if err := s.upsertSatellites(ctx, order.ID, input.Shipping, input.Billing, input.Contact, input.Payment); err != nil {
		return nil, err
	}

	return s.GetOrder(ctx, order.ID)
}

// UpdateOrderStatus updates the status of an order
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	order.Status = status
	return order, nil
}

// CancelOrder marks an order cancelled
func (s *OrderService) CancelOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if order.Status == enum.OrderStatusCancelled {
		return nil, apperror.NewBadRequestError("Order is already cancelled")
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, enum.OrderStatusCancelled); err != nil {
		return nil, err
	}

	order.Status = enum.OrderStatusCancelled
	return order, nil
}

// UpsertShippingAddress creates or replaces the shipping address row for an order
func (s *OrderService) UpsertShippingAddress(ctx context.Context, orderID uuid.UUID, input *AddressInput) (*entity.Order, error) {
	if _, err := s.GetOrder(ctx, orderID); err != nil {
		return nil, err
	}
	if err := s.upsertSatellites(ctx, orderID, input, nil, nil, nil); err != nil {
		return nil, err
	}
	return s.GetOrder(ctx, orderID)
}

// UpsertBillingAddress creates or replaces the billing address row for an order
func (s *OrderService) UpsertBillingAddress(ctx context.Context, orderID uuid.UUID, input *AddressInput) (*entity.Order, error) {
	if _, err := s.GetOrder(ctx, orderID); err != nil {
		return nil, err
	}
	if err := s.upsertSatellites(ctx, orderID, nil, input, nil, nil); err != nil {
		return nil, err
	}
	return s.GetOrder(ctx, orderID)
}

// UpsertCustomerDetail creates or replaces the contact row for an order
func (s *OrderService) UpsertCustomerDetail(ctx context.Context, orderID uuid.UUID, input *ContactInput) (*entity.Order, error) {
	if _, err := s.GetOrder(ctx, orderID); err != nil {
		return nil, err
	}
	if err := s.upsertSatellites(ctx, orderID, nil, nil, input, nil); err != nil {
		return nil, err
	}
	return s.GetOrder(ctx, orderID)
}

// UpsertPaymentDetail creates or replaces the payment row for an order
func (s *OrderService) UpsertPaymentDetail(ctx context.Context, orderID uuid.UUID, input *PaymentInput) (*entity.Order, error) {
	if _, err := s.GetOrder(ctx, orderID); err != nil {
		return nil, err
	}
	if err := s.upsertSatellites(ctx, orderID, nil, nil, nil, input); err != nil {
		return nil, err
	}
	return s.GetOrder(ctx, orderID)
}

// DeleteSatellite removes one optional satellite row from an order. The
// kind is the route segment naming the satellite.
func (s *OrderService) DeleteSatellite(ctx context.Context, orderID uuid.UUID, kind string) error {
	if _, err := s.GetOrder(ctx, orderID); err != nil {
		return err
	}
	switch kind {
	case "shipping-address":
		return s.shippingRepo.DeleteByOrderID(ctx, orderID)
	case "billing-address":
		return s.billingRepo.DeleteByOrderID(ctx, orderID)
	case "customer-detail":
		return s.detailRepo.DeleteByOrderID(ctx, orderID)
	case "payment-detail":
		return s.paymentRepo.DeleteByOrderID(ctx, orderID)
	default:
		return apperror.NewBadRequestError("Unknown order detail: " + kind)
	}
}

// DeleteOrder deletes an order and its satellite records
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}

	if err := s.shippingRepo.DeleteByOrderID(ctx, id); err != nil {
		return err
	}
	if err := s.billingRepo.DeleteByOrderID(ctx, id); err != nil {
		return err
	}
	if err := s.detailRepo.DeleteByOrderID(ctx, id); err != nil {
		return err
	}
	if err := s.paymentRepo.DeleteByOrderID(ctx, id); err != nil {
		return err
	}

	return s.orderRepo.Delete(ctx, id)
}

// applyTotals recomputes the stored totals from the line item payload.
// Documents recompute again at render time; the stored values only feed
// list views and dashboards.
func (s *OrderService) applyTotals(order *entity.Order) {
	totals := document.SumLineItems(document.ParseLineItems(order.Items))
	order.SubTotal = totals.Subtotal
	order.Total = totals.Total
}

func (s *OrderService) upsertSatellites(ctx context.Context, orderID uuid.UUID, shipping, billing *AddressInput, contact *ContactInput, payment *PaymentInput) error {
	if shipping != nil {
		err := s.shippingRepo.Upsert(ctx, &entity.OrderShippingAddress{
			OrderID:    orderID,
			Line1:      shipping.Line1,
			Line2:      shipping.Line2,
			City:       shipping.City,
			State:      shipping.State,
			PostalCode: shipping.PostalCode,
			Country:    shipping.Country,
		})
		if err != nil {
			return err
		}
	}
	if billing != nil {
		err := s.billingRepo.Upsert(ctx, &entity.OrderBillingAddress{
			OrderID:    orderID,
			Line1:      billing.Line1,
			Line2:      billing.Line2,
			City:       billing.City,
			State:      billing.State,
			PostalCode: billing.PostalCode,
			Country:    billing.Country,
		})
		if err != nil {
			return err
		}
	}
	if contact != nil {
		err := s.detailRepo.Upsert(ctx, &entity.OrderCustomerDetail{
			OrderID: orderID,
			Name:    contact.Name,
			Email:   contact.Email,
			Phone:   contact.Phone,
		})
		if err != nil {
			return err
		}
	}
	if payment != nil {
		status := payment.Status
		if status == "" {
			status = document.DefaultPaymentStatus
		}
		err := s.paymentRepo.Upsert(ctx, &entity.OrderPaymentDetail{
			OrderID:    orderID,
			Status:     status,
			Method:     payment.Method,
			AmountPaid: priceToCents(payment.AmountPaid),
			PaidAt:     payment.PaidAt,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
