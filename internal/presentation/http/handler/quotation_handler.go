package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kipkoechd/fabworks-api/internal/application/service"
	"github.com/kipkoechd/fabworks-api/internal/domain/enum"
	"github.com/kipkoechd/fabworks-api/internal/domain/repository"
	"github.com/kipkoechd/fabworks-api/internal/presentation/http/dto/request"
	"github.com/kipkoechd/fabworks-api/internal/presentation/http/dto/response"
	"github.com/kipkoechd/fabworks-api/pkg/pagination"
)

// QuotationHandler handles rental quotation HTTP requests
type QuotationHandler struct {
	quotationService *service.QuotationService
}

// NewQuotationHandler creates a new quotation handler
func NewQuotationHandler(quotationService *service.QuotationService) *QuotationHandler {
	return &QuotationHandler{quotationService: quotationService}
}

// List handles listing quotations with filtering
func (h *QuotationHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.QuotationFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid filter parameters")
		return
	}

	params := &repository.QuotationFilterParams{
		Pagination:     &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		Search:         req.Search,
		SkipUserFilter: IsSuperAdmin(c),
	}
	params.Pagination.Validate()

	if req.Status != nil {
		status := enum.QuotationStatus(*req.Status)
		params.Status = &status
	}
	if req.CustomerID != "" {
		if customerID, err := uuid.Parse(req.CustomerID); err == nil {
			params.CustomerID = &customerID
		}
	}

	result, err := h.quotationService.ListQuotations(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Quotations retrieved successfully", result)
}

// Get handles retrieving a single quotation
func (h *QuotationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	quotation, err := h.quotationService.GetQuotation(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation retrieved successfully", quotation)
}

// Create handles quotation creation
func (h *QuotationHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	quotation, err := h.quotationService.CreateQuotation(c.Request.Context(), &service.CreateQuotationInput{
		UserID:             *userID,
		CustomerID:         req.CustomerID,
		CustomerName:       req.CustomerName,
		CompanyName:        req.CompanyName,
		GSTIN:              req.GSTIN,
		Email:              req.Email,
		Phone:              req.Phone,
		DeliveryLine1:      req.DeliveryLine1,
		DeliveryLine2:      req.DeliveryLine2,
		DeliveryCity:       req.DeliveryCity,
		DeliveryState:      req.DeliveryState,
		DeliveryPostalCode: req.DeliveryPostalCode,
		ProductDescription: req.ProductDescription,
		RentalTermMonths:   req.RentalTermMonths,
		Quantity:           req.Quantity,
		Terms:              req.Terms,
		MonthlyRental:      req.MonthlyRental,
		SetupFee:           req.SetupFee,
		DepositAmount:      req.DepositAmount,
		TotalAmount:        req.TotalAmount,
		ValidUntil:         req.ValidUntil,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quotation created successfully", quotation)
}

// Update handles quotation updates
func (h *QuotationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	var req request.UpdateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	quotation, err := h.quotationService.UpdateQuotation(c.Request.Context(), &service.UpdateQuotationInput{
		ID:                 id,
		CustomerName:       req.CustomerName,
		CompanyName:        req.CompanyName,
		GSTIN:              req.GSTIN,
		Email:              req.Email,
		Phone:              req.Phone,
		DeliveryLine1:      req.DeliveryLine1,
		DeliveryLine2:      req.DeliveryLine2,
		DeliveryCity:       req.DeliveryCity,
		DeliveryState:      req.DeliveryState,
		DeliveryPostalCode: req.DeliveryPostalCode,
		ProductDescription: req.ProductDescription,
		RentalTermMonths:   req.RentalTermMonths,
		Quantity:           req.Quantity,
		Terms:              req.Terms,
		MonthlyRental:      req.MonthlyRental,
		SetupFee:           req.SetupFee,
		DepositAmount:      req.DepositAmount,
		TotalAmount:        req.TotalAmount,
		ValidUntil:         req.ValidUntil,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation updated successfully", quotation)
}

// UpdateStatus handles quotation lifecycle transitions
func (h *QuotationHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	var req request.UpdateQuotationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	quotation, err := h.quotationService.UpdateQuotationStatus(c.Request.Context(), id, enum.QuotationStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation status updated successfully", quotation)
}

// Delete handles quotation deletion
func (h *QuotationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	if err := h.quotationService.DeleteQuotation(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation deleted successfully", nil)
}
