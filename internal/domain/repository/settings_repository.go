package repository

import (
	"context"

	"github.com/kipkoechd/fabworks-api/internal/domain/entity"
)

// OrganizationSettingsRepository defines the interface for the single-row
// organization identity record
type OrganizationSettingsRepository interface {
	Get(ctx context.Context) (*entity.OrganizationSettings, error)
	Save(ctx context.Context, settings *entity.OrganizationSettings) error
}
