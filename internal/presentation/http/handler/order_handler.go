package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kipkoechd/fabworks-api/internal/application/service"
	"github.com/kipkoechd/fabworks-api/internal/domain/enum"
	"github.com/kipkoechd/fabworks-api/internal/domain/repository"
	"github.com/kipkoechd/fabworks-api/internal/presentation/http/dto/request"
	"github.com/kipkoechd/fabworks-api/internal/presentation/http/dto/response"
	"github.com/kipkoechd/fabworks-api/pkg/pagination"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List handles listing orders with filtering
func (h *OrderHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.OrderFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid filter parameters")
		return
	}

	params := &repository.OrderFilterParams{
		Pagination:     &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		Search:         req.Search,
		Category:       req.Category,
		SortBy:         req.SortBy,
		SortOrder:      req.SortOrder,
		SkipUserFilter: IsSuperAdmin(c),
	}
	params.Pagination.Validate()

	if req.Status != nil {
		status := enum.OrderStatus(*req.Status)
		params.Status = &status
	}
	if req.CustomerID != "" {
		if customerID, err := uuid.Parse(req.CustomerID); err == nil {
			params.CustomerID = &customerID
		}
	}
	if req.StartDate != "" {
		if startDate, err := time.Parse("2006-01-02", req.StartDate); err == nil {
			params.StartDate = &startDate
		}
	}
	if req.EndDate != "" {
		if endDate, err := time.Parse("2006-01-02", req.EndDate); err == nil {
			params.EndDate = &endDate
		}
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Get handles retrieving a single order
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// Create handles order creation
func (h *OrderHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	input := &service.CreateOrderInput{
		UserID:        *userID,
		CustomerID:    req.CustomerID,
		OrderNo:       req.OrderNo,
		Category:      req.Category,
		Items:         req.Items,
		Notes:         req.Notes,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Shipping:      addressInput(req.ShippingAddress),
		Billing:       addressInput(req.BillingAddress),
		Contact:       contactInput(req.CustomerDetail),
		Payment:       paymentInput(req.PaymentDetail),
	}
	if req.Status != nil {
		status := enum.OrderStatus(*req.Status)
		input.Status = &status
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// Update handles order updates
func (h *OrderHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	input := &service.UpdateOrderInput{
		ID:            id,
		CustomerID:    req.CustomerID,
		Category:      req.Category,
		Items:         req.Items,
		Notes:         req.Notes,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Shipping:      addressInput(req.ShippingAddress),
		Billing:       addressInput(req.BillingAddress),
		Contact:       contactInput(req.CustomerDetail),
		Payment:       paymentInput(req.PaymentDetail),
	}
	if req.Status != nil {
		status := enum.OrderStatus(*req.Status)
		input.Status = &status
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order updated successfully", order)
}

// UpdateStatus handles order status transitions
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	order, err := h.orderService.UpdateOrderStatus(c.Request.Context(), id, enum.OrderStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated successfully", order)
}

// Delete handles order deletion
func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order deleted successfully", nil)
}

// Cancel handles order cancellation
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.CancelOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order cancelled successfully", order)
}

// UpsertShippingAddress handles creating or replacing an order's shipping address
func (h *OrderHandler) UpsertShippingAddress(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	order, err := h.orderService.UpsertShippingAddress(c.Request.Context(), id, addressInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shipping address saved successfully", order)
}

// UpsertBillingAddress handles creating or replacing an order's billing address
func (h *OrderHandler) UpsertBillingAddress(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	order, err := h.orderService.UpsertBillingAddress(c.Request.Context(), id, addressInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Billing address saved successfully", order)
}

// UpsertCustomerDetail handles creating or replacing an order's contact record
func (h *OrderHandler) UpsertCustomerDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	order, err := h.orderService.UpsertCustomerDetail(c.Request.Context(), id, contactInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer detail saved successfully", order)
}

// UpsertPaymentDetail handles creating or replacing an order's payment record
func (h *OrderHandler) UpsertPaymentDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	order, err := h.orderService.UpsertPaymentDetail(c.Request.Context(), id, paymentInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment detail saved successfully", order)
}

// DeleteDetail returns a handler removing the named satellite row from an order
func (h *OrderHandler) DeleteDetail(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			response.BadRequest(c, "Invalid order ID")
			return
		}

		if err := h.orderService.DeleteSatellite(c.Request.Context(), id, kind); err != nil {
			response.Error(c, err)
			return
		}

		response.OK(c, "Order detail removed successfully", nil)
	}
}

func addressInput(req *request.AddressRequest) *service.AddressInput {
	if req == nil {
		return nil
	}
	return &service.AddressInput{
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	}
}

func contactInput(req *request.ContactRequest) *service.ContactInput {
	if req == nil {
		return nil
	}
	return &service.ContactInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
}

func paymentInput(req *request.PaymentRequest) *service.PaymentInput {
	if req == nil {
		return nil
	}
	return &service.PaymentInput{
		Status:     req.Status,
		Method:     req.Method,
		AmountPaid: req.AmountPaid,
		PaidAt:     req.PaidAt,
	}
}
