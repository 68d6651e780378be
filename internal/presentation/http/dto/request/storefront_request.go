package request

import "time"

// CreateLeadRequest represents the public enquiry form payload
type CreateLeadRequest struct {
	Name    string  `json:"name" binding:"required,min=2,max=255"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Company *string `json:"company" binding:"omitempty,max=255"`
	Message string  `json:"message" binding:"required,max=5000"`
	Source  string  `json:"source" binding:"omitempty,max=100"`
}

// UpdateLeadStatusRequest represents a lead status update request
type UpdateLeadStatusRequest struct {
	Status int `json:"status" binding:"min=0,max=3"`
}

// CreatePromotionRequest represents a promotion creation request
type CreatePromotionRequest struct {
	Title    string     `json:"title" binding:"required,min=2,max=255"`
	Body     *string    `json:"body"`
	ImageURL *string    `json:"image_url" binding:"omitempty,max=255"`
	LinkURL  *string    `json:"link_url" binding:"omitempty,max=255"`
	Active   *bool      `json:"active"`
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
}

// UpdatePromotionRequest represents a promotion update request
type UpdatePromotionRequest struct {
	Title    *string    `json:"title" binding:"omitempty,min=2,max=255"`
	Body     *string    `json:"body"`
	ImageURL *string    `json:"image_url" binding:"omitempty,max=255"`
	LinkURL  *string    `json:"link_url" binding:"omitempty,max=255"`
	Active   *bool      `json:"active"`
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
}

// UpdateOrganizationRequest represents an organization settings update request
type UpdateOrganizationRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=2,max=255"`
	Address       *string `json:"address"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone" binding:"omitempty,max=50"`
	GSTIN         *string `json:"gstin" binding:"omitempty,max=50"`
	Currency      *string `json:"currency" binding:"omitempty,max=10"`
	CurrencyGlyph *string `json:"currency_glyph" binding:"omitempty,max=10"`
	Locale        *string `json:"locale" binding:"omitempty,max=20"`
	LogoURL       *string `json:"logo_url" binding:"omitempty,max=255"`
}
