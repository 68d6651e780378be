package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kipkoechd/fabworks-api/internal/domain/entity"
	"github.com/kipkoechd/fabworks-api/internal/domain/repository"
	"github.com/kipkoechd/fabworks-api/pkg/apperror"
	"github.com/kipkoechd/fabworks-api/pkg/pagination"
)

// PromotionService handles storefront promotion operations
type PromotionService struct {
	promotionRepo repository.PromotionRepository
}

// NewPromotionService creates a new promotion service
func NewPromotionService(promotionRepo repository.PromotionRepository) *PromotionService {
	return &PromotionService{promotionRepo: promotionRepo}
}

// CreatePromotionInput represents the create promotion input
type CreatePromotionInput struct {
	UserID   uuid.UUID
	Title    string
	Body     *string
	ImageURL *string
	LinkURL  *string
	Active   *bool
	StartsAt *time.Time
	EndsAt   *time.Time
}

// CreatePromotion creates a new promotion
func (s *PromotionService) CreatePromotion(ctx context.Context, input *CreatePromotionInput) (*entity.Promotion, error) {
	if input.StartsAt != nil && input.EndsAt != nil && input.EndsAt.Before(*input.StartsAt) {
		return nil, apperror.NewBadRequestError("Promotion end must be after its start")
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	promotion := &entity.Promotion{
		UserID:   input.UserID,
		Title:    input.Title,
		Body:     input.Body,
		ImageURL: input.ImageURL,
		LinkURL:  input.LinkURL,
		Active:   active,
		StartsAt: input.StartsAt,
		EndsAt:   input.EndsAt,
	}

	if err := s.promotionRepo.Create(ctx, promotion); err != nil {
		return nil, err
	}

	return promotion, nil
}

// GetPromotion retrieves a promotion by ID
func (s *PromotionService) GetPromotion(ctx context.Context, id uuid.UUID) (*entity.Promotion, error) {
	promotion, err := s.promotionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if promotion == nil {
		return nil, apperror.NewNotFoundError("Promotion")
	}
	return promotion, nil
}

// ListPromotions lists promotions for the console
func (s *PromotionService) ListPromotions(ctx context.Context, params *pagination.PaginationParams, activeOnly bool) (*pagination.PaginatedResult[entity.Promotion], error) {
	promotions, total, err := s.promotionRepo.List(ctx, params, activeOnly)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(promotions, pag), nil
}

// ListLivePromotions lists promotions currently visible on the storefront
func (s *PromotionService) ListLivePromotions(ctx context.Context) ([]entity.Promotion, error) {
	return s.promotionRepo.ListLive(ctx)
}

// UpdatePromotionInput represents the update promotion input
type UpdatePromotionInput struct {
	ID       uuid.UUID
	Title    *string
	Body     *string
	ImageURL *string
	LinkURL  *string
	Active   *bool
	StartsAt *time.Time
	EndsAt   *time.Time
}

// UpdatePromotion updates a promotion
func (s *PromotionService) UpdatePromotion(ctx context.Context, input *UpdatePromotionInput) (*entity.Promotion, error) {
	promotion, err := s.promotionRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if promotion == nil {
		return nil, apperror.NewNotFoundError("Promotion")
	}

	if input.Title != nil {
		promotion.Title = *input.Title
	}
	if input.Body != nil {
		promotion.Body = input.Body
	}
	if input.ImageURL != nil {
		promotion.ImageURL = input.ImageURL
	}
	if input.LinkURL != nil {
		promotion.LinkURL = input.LinkURL
	}
	if input.Active != nil {
		promotion.Active = *input.Active
	}
	if input.StartsAt != nil {
		promotion.StartsAt = input.StartsAt
	}
	if input.EndsAt != nil {
		promotion.EndsAt = input.EndsAt
	}

	if promotion.StartsAt != nil && promotion.EndsAt != nil && promotion.EndsAt.Before(*promotion.StartsAt) {
		return nil, apperror.NewBadRequestError("Promotion end must be after its start")
	}

	if err := s.promotionRepo.Update(ctx, promotion); err != nil {
		return nil, err
	}

	return promotion, nil
}

// DeletePromotion deletes a promotion
func (s *PromotionService) DeletePromotion(ctx context.Context, id uuid.UUID) error {
	promotion, err := s.promotionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if promotion == nil {
		return apperror.NewNotFoundError("Promotion")
	}
	return s.promotionRepo.Delete(ctx, id)
}
