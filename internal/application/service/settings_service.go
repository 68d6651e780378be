package service

import (
	"context"

	"github.com/kipkoechd/fabworks-api/internal/config"
	"github.com/kipkoechd/fabworks-api/internal/domain/entity"
	"github.com/kipkoechd/fabworks-api/internal/domain/repository"
)

// SettingsService manages the single-row organization identity record
type SettingsService struct {
	settingsRepo repository.OrganizationSettingsRepository
	cfg          *config.OrganizationConfig
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.OrganizationSettingsRepository, cfg *config.OrganizationConfig) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		cfg:          cfg,
	}
}

// GetOrganization returns the organization settings, falling back to
// configured defaults when no row has been saved yet
func (s *SettingsService) GetOrganization(ctx context.Context) (*entity.OrganizationSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}

	return &entity.OrganizationSettings{
		Name:          s.cfg.Name,
		Address:       s.cfg.Address,
		Email:         s.cfg.Email,
		Phone:         s.cfg.Phone,
		GSTIN:         s.cfg.GSTIN,
		Currency:      s.cfg.Currency,
		CurrencyGlyph: s.cfg.Glyph,
		Locale:        s.cfg.Locale,
	}, nil
}

// UpdateOrganizationInput represents the update organization input
type UpdateOrganizationInput struct {
	Name          *string
	Address       *string
	Email         *string
	Phone         *string
	GSTIN         *string
	Currency      *string
	CurrencyGlyph *string
	Locale        *string
	LogoURL       *string
}

// UpdateOrganization updates the organization settings
func (s *SettingsService) UpdateOrganization(ctx context.Context, input *UpdateOrganizationInput) (*entity.OrganizationSettings, error) {
	settings, err := s.GetOrganization(ctx)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		settings.Name = *input.Name
	}
	if input.Address != nil {
		settings.Address = *input.Address
	}
	if input.Email != nil {
		settings.Email = *input.Email
	}
	if input.Phone != nil {
		settings.Phone = *input.Phone
	}
	if input.GSTIN != nil {
		settings.GSTIN = *input.GSTIN
	}
	if input.Currency != nil {
		settings.Currency = *input.Currency
	}
	if input.CurrencyGlyph != nil {
		settings.CurrencyGlyph = *input.CurrencyGlyph
	}
	if input.Locale != nil {
		settings.Locale = *input.Locale
	}
	if input.LogoURL != nil {
		settings.LogoURL = input.LogoURL
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
