package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kipkoechd/fabworks-api/internal/domain/entity"
	domainRepo "github.com/kipkoechd/fabworks-api/internal/domain/repository"
)

type organizationSettingsRepository struct {
	db *gorm.DB
}

// NewOrganizationSettingsRepository creates a new organization settings repository
func NewOrganizationSettingsRepository(db *gorm.DB) domainRepo.OrganizationSettingsRepository {
	return &organizationSettingsRepository{db: db}
}

// Get returns the single settings row, or nil when none has been seeded.
func (r *organizationSettingsRepository) Get(ctx context.Context) (*entity.OrganizationSettings, error) {
	var settings entity.OrganizationSettings
	err := r.db.WithContext(ctx).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &settings, err
}

func (r *organizationSettingsRepository) Save(ctx context.Context, settings *entity.OrganizationSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
