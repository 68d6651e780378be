package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kipkoechd/fabworks-api/internal/domain/entity"
	"github.com/kipkoechd/fabworks-api/internal/domain/enum"
	"github.com/kipkoechd/fabworks-api/internal/domain/repository"
	"github.com/kipkoechd/fabworks-api/pkg/apperror"
	"github.com/kipkoechd/fabworks-api/pkg/pagination"
	"github.com/kipkoechd/fabworks-api/pkg/utils"
)

// QuotationService handles rental quotation operations
type QuotationService struct {
	quotationRepo repository.QuotationRepository
	customerRepo  repository.CustomerRepository
}

// NewQuotationService creates a new quotation service
func NewQuotationService(quotationRepo repository.QuotationRepository, customerRepo repository.CustomerRepository) *QuotationService {
	return &QuotationService{
		quotationRepo: quotationRepo,
		customerRepo:  customerRepo,
	}
}

// CreateQuotationInput represents the create quotation input. Monetary
// values are decimal strings keyed in by staff and are stored verbatim.
type CreateQuotationInput struct {
	UserID     uuid.UUID
	CustomerID *uuid.UUID

	CustomerName string
	CompanyName  *string
	GSTIN        *string
	Email        *string
	Phone        *string

	DeliveryLine1      *string
	DeliveryLine2      *string
	DeliveryCity       *string
	DeliveryState      *string
	DeliveryPostalCode *string

	ProductDescription string
	RentalTermMonths   int
	Quantity           int
	Terms              *string

	MonthlyRental decimal.Decimal
	SetupFee      decimal.Decimal
	DepositAmount decimal.Decimal
	TotalAmount   decimal.Decimal

	ValidUntil *time.Time
}

// CreateQuotation creates a new rental quotation
func (s *QuotationService) CreateQuotation(ctx context.Context, input *CreateQuotationInput) (*entity.RentalQuotation, error) {
	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	quotation := &entity.RentalQuotation{
		UserID:             input.UserID,
		CustomerID:         input.CustomerID,
		QuotationRef:       utils.GenerateQuotationRef(),
		CustomerName:       input.CustomerName,
		CompanyName:        input.CompanyName,
		GSTIN:              input.GSTIN,
		Email:              input.Email,
		Phone:              input.Phone,
		DeliveryLine1:      input.DeliveryLine1,
		DeliveryLine2:      input.DeliveryLine2,
		DeliveryCity:       input.DeliveryCity,
		DeliveryState:      input.DeliveryState,
		DeliveryPostalCode: input.DeliveryPostalCode,
		ProductDescription: input.ProductDescription,
		RentalTermMonths:   input.RentalTermMonths,
		Quantity:           quantity,
		Terms:              input.Terms,
		MonthlyRental:      input.MonthlyRental,
		SetupFee:           input.SetupFee,
		DepositAmount:      input.DepositAmount,
		TotalAmount:        input.TotalAmount,
		ValidUntil:         input.ValidUntil,
	}

	if err := s.quotationRepo.Create(ctx, quotation); err != nil {
		return nil, err
	}

	return quotation, nil
}

// GetQuotation retrieves a quotation by ID
func (s *QuotationService) GetQuotation(ctx context.Context, id uuid.UUID) (*entity.RentalQuotation, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}
	return quotation, nil
}

// GetQuotationByRef retrieves a quotation by its reference
func (s *QuotationService) GetQuotationByRef(ctx context.Context, ref string) (*entity.RentalQuotation, error) {
	quotation, err := s.quotationRepo.GetByRef(ctx, ref)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}
	return quotation, nil
}

// ListQuotations lists quotations with filtering
func (s *QuotationService) ListQuotations(ctx context.Context, userID uuid.UUID, params *repository.QuotationFilterParams) (*pagination.PaginatedResult[entity.RentalQuotation], error) {
	quotations, total, err := s.quotationRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(quotations, pag), nil
}

// UpdateQuotationInput represents the update quotation input
type UpdateQuotationInput struct {
	ID uuid.UUID

	CustomerName *string
	CompanyName  *string
	GSTIN        *string
	Email        *string
	Phone        *string

	DeliveryLine1      *string
	DeliveryLine2      *string
	DeliveryCity       *string
	DeliveryState      *string
	DeliveryPostalCode *string

	ProductDescription *string
	RentalTermMonths   *int
	Quantity           *int
	Terms              *string

	MonthlyRental *decimal.Decimal
	SetupFee      *decimal.Decimal
	DepositAmount *decimal.Decimal
	TotalAmount   *decimal.Decimal

	ValidUntil *time.Time
}

// UpdateQuotation updates a quotation. Only drafts can be edited.
func (s *QuotationService) UpdateQuotation(ctx context.Context, input *UpdateQuotationInput) (*entity.RentalQuotation, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}
	if quotation.Status != enum.QuotationStatusDraft {
		return nil, apperror.NewBadRequestError("Only draft quotations can be edited")
	}

	if input.CustomerName != nil {
		quotation.CustomerName = *input.CustomerName
	}
	if input.CompanyName != nil {
		quotation.CompanyName = input.CompanyName
	}
	if input.GSTIN != nil {
		quotation.GSTIN = input.GSTIN
	}
	if input.Email != nil {
		quotation.Email = input.Email
	}
	if input.Phone != nil {
		quotation.Phone = input.Phone
	}
	if input.DeliveryLine1 != nil {
		quotation.DeliveryLine1 = input.DeliveryLine1
	}
	if input.DeliveryLine2 != nil {
		quotation.DeliveryLine2 = input.DeliveryLine2
	}
	if input.DeliveryCity != nil {
		quotation.DeliveryCity = input.DeliveryCity
	}
	if input.DeliveryState != nil {
		quotation.DeliveryState = input.DeliveryState
	}
	if input.DeliveryPostalCode != nil {
		quotation.DeliveryPostalCode = input.DeliveryPostalCode
	}
	if input.ProductDescription != nil {
		quotation.ProductDescription = *input.ProductDescription
	}
	if input.RentalTermMonths != nil {
		quotation.RentalTermMonths = *input.RentalTermMonths
	}
	if input.Quantity != nil {
		quotation.Quantity = *input.Quantity
	}
	if input.Terms != nil {
		quotation.Terms = input.Terms
	}
	if input.MonthlyRental != nil {
		quotation.MonthlyRental = *input.MonthlyRental
	}
	if input.SetupFee != nil {
		quotation.SetupFee = *input.SetupFee
	}
	if input.DepositAmount != nil {
		quotation.DepositAmount = *input.DepositAmount
	}
	if input.TotalAmount != nil {
		quotation.TotalAmount = *input.TotalAmount
	}
	if input.ValidUntil != nil {
		quotation.ValidUntil = input.ValidUntil
	}

	if err := s.quotationRepo.Update(ctx, quotation); err != nil {
		return nil, err
	}

	return quotation, nil
}

// UpdateQuotationStatus moves a quotation through its lifecycle
func (s *QuotationService) UpdateQuotationStatus(ctx context.Context, id uuid.UUID, status enum.QuotationStatus) (*entity.RentalQuotation, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}

	if err := s.quotationRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	quotation.Status = status
	return quotation, nil
}

// DeleteQuotation deletes a quotation
func (s *QuotationService) DeleteQuotation(ctx context.Context, id uuid.UUID) error {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quotation == nil {
		return apperror.NewNotFoundError("Quotation")
	}
	return s.quotationRepo.Delete(ctx, id)
}
