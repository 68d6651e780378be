package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kipkoechd/fabworks-api/internal/application/service"
	"github.com/kipkoechd/fabworks-api/internal/presentation/http/dto/request"
	"github.com/kipkoechd/fabworks-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles organization settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetOrganization returns the organization identity record
func (h *SettingsHandler) GetOrganization(c *gin.Context) {
	settings, err := h.settingsService.GetOrganization(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Organization settings retrieved successfully", settings)
}

// UpdateOrganization updates the organization identity record
func (h *SettingsHandler) UpdateOrganization(c *gin.Context) {
	var req request.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	settings, err := h.settingsService.UpdateOrganization(c.Request.Context(), &service.UpdateOrganizationInput{
		Name:          req.Name,
		Address:       req.Address,
		Email:         req.Email,
		Phone:         req.Phone,
		GSTIN:         req.GSTIN,
		Currency:      req.Currency,
		CurrencyGlyph: req.CurrencyGlyph,
		Locale:        req.Locale,
		LogoURL:       req.LogoURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Organization settings updated successfully", settings)
}
