package request

import "github.com/google/uuid"

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	CategoryID   *uuid.UUID `json:"category_id"`
	Name         string     `json:"name" binding:"required,min=2,max=255"`
	Code         string     `json:"code" binding:"omitempty,max=100"`
	Description  *string    `json:"description"`
	Material     *string    `json:"material" binding:"omitempty,max=255"`
	Dimensions   *string    `json:"dimensions" binding:"omitempty,max=255"`
	LeadTimeDays int        `json:"lead_time_days" binding:"min=0"`
	Price        float64    `json:"price" binding:"min=0"`
	ProductImage *string    `json:"product_image" binding:"omitempty,max=255"`
	Active       *bool      `json:"active"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	CategoryID   *uuid.UUID `json:"category_id"`
	Name         *string    `json:"name" binding:"omitempty,min=2,max=255"`
	Description  *string    `json:"description"`
	Material     *string    `json:"material" binding:"omitempty,max=255"`
	Dimensions   *string    `json:"dimensions" binding:"omitempty,max=255"`
	LeadTimeDays *int       `json:"lead_time_days" binding:"omitempty,min=0"`
	Price        *float64   `json:"price" binding:"omitempty,min=0"`
	ProductImage *string    `json:"product_image" binding:"omitempty,max=255"`
	Active       *bool      `json:"active"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search     string `form:"search"`
	CategoryID string `form:"category_id"`
	Active     *bool  `form:"active"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// CatalogFilterRequest represents public catalog filter parameters
type CatalogFilterRequest struct {
	Category string `form:"category"`
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
}

// CategoryRequest represents a category create or update request
type CategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=255"`
}
