package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kipkoechd/fabworks-api/internal/domain/entity"
	"github.com/kipkoechd/fabworks-api/internal/domain/enum"
	"github.com/kipkoechd/fabworks-api/pkg/pagination"
)

// QuotationRepository defines the interface for rental quotation data operations
type QuotationRepository interface {
	Create(ctx context.Context, quotation *entity.RentalQuotation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.RentalQuotation, error)
	GetByRef(ctx context.Context, ref string) (*entity.RentalQuotation, error)
	Update(ctx context.Context, quotation *entity.RentalQuotation) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *QuotationFilterParams) ([]entity.RentalQuotation, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuotationStatus) error
}

// QuotationFilterParams contains filtering parameters for quotation queries
type QuotationFilterParams struct {
	Pagination     *pagination.PaginationParams
	Search         string
	Status         *enum.QuotationStatus
	CustomerID     *uuid.UUID
	SkipUserFilter bool // If true, returns all quotations (for super-admin)
}
