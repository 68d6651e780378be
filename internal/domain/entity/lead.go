package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kipkoechd/fabworks-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Lead represents an enquiry captured from the public storefront
type Lead struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Email     *string         `gorm:"size:255" json:"email,omitempty"`
	Phone     *string         `gorm:"size:50" json:"phone,omitempty"`
	Company   *string         `gorm:"size:255" json:"company,omitempty"`
	Message   string          `gorm:"type:text" json:"message"`
	Source    string          `gorm:"size:100;default:'storefront'" json:"source"`
	Status    enum.LeadStatus `gorm:"default:0" json:"status"`
	HandledBy *uuid.UUID      `gorm:"type:uuid" json:"handled_by,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new lead
func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Lead model
func (Lead) TableName() string {
	return "leads"
}
