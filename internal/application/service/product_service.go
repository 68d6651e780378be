package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kipkoechd/fabworks-api/internal/domain/entity"
	"github.com/kipkoechd/fabworks-api/internal/domain/repository"
	"github.com/kipkoechd/fabworks-api/pkg/apperror"
	"github.com/kipkoechd/fabworks-api/pkg/pagination"
	"github.com/kipkoechd/fabworks-api/pkg/utils"
)

// ProductService handles product-related operations
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	UserID       uuid.UUID
	CategoryID   *uuid.UUID
	Name         string
	Code         string
	Description  *string
	Material     *string
	Dimensions   *string
	LeadTimeDays int
	Price        float64
	ProductImage *string
	Active       *bool
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
	}

	slug := utils.Slugify(input.Name)
	existing, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A product with this name already exists")
	}

	code := input.Code
	if code == "" {
		code = utils.GenerateProductCode()
	} else {
		byCode, err := s.productRepo.GetByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if byCode != nil {
			return nil, apperror.NewConflictError("A product with this code already exists")
		}
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	product := &entity.Product{
		UserID:       input.UserID,
		CategoryID:   input.CategoryID,
		Name:         input.Name,
		Slug:         slug,
		Code:         code,
		Description:  input.Description,
		Material:     input.Material,
		Dimensions:   input.Dimensions,
		LeadTimeDays: input.LeadTimeDays,
		Price:        priceToCents(input.Price),
		ProductImage: input.ProductImage,
		Active:       active,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// GetProductBySlug retrieves a product by its slug
func (s *ProductService) GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products with filtering
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// ListCatalog lists active products for the public storefront catalog
func (s *ProductService) ListCatalog(ctx context.Context, params *pagination.PaginationParams, categorySlug string) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.ListActive(ctx, params, categorySlug)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	ID           uuid.UUID
	CategoryID   *uuid.UUID
	Name         *string
	Description  *string
	Material     *string
	Dimensions   *string
	LeadTimeDays *int
	Price        *float64
	ProductImage *string
	Active       *bool
}

// UpdateProduct updates a product
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil && *input.Name != product.Name {
		slug := utils.Slugify(*input.Name)
		if slug != product.Slug {
			existing, err := s.productRepo.GetBySlug(ctx, slug)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, apperror.NewConflictError("A product with this name already exists")
			}
		}
		product.Name = *input.Name
		product.Slug = slug
	}
	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
		product.CategoryID = input.CategoryID
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.Material != nil {
		product.Material = input.Material
	}
	if input.Dimensions != nil {
		product.Dimensions = input.Dimensions
	}
	if input.LeadTimeDays != nil {
		product.LeadTimeDays = *input.LeadTimeDays
	}
	if input.Price != nil {
		product.Price = priceToCents(*input.Price)
	}
	if input.ProductImage != nil {
		product.ProductImage = input.ProductImage
	}
	if input.Active != nil {
		product.Active = *input.Active
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// priceToCents converts a decimal price to cents without float drift
func priceToCents(price float64) int64 {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
