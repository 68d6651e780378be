package entity

import (
	"time"
)

// OrganizationSettings is the single-row identity record printed on
// invoices, labels and quotations. Values seeded from configuration can
// be overridden through the settings endpoints.
type OrganizationSettings struct {
	ID            uint      `gorm:"primary_key" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Address       string    `gorm:"type:text" json:"address"`
	Email         string    `gorm:"size:255" json:"email"`
	Phone         string    `gorm:"size:50" json:"phone"`
	GSTIN         string    `gorm:"size:50;column:gstin" json:"gstin"`
	Currency      string    `gorm:"size:10;default:'INR'" json:"currency"`
	CurrencyGlyph string    `gorm:"size:10;default:'Rs '" json:"currency_glyph"`
	Locale        string    `gorm:"size:20;default:'en-IN'" json:"locale"`
	LogoURL       *string   `gorm:"size:255" json:"logo_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName returns the table name for the OrganizationSettings model
func (OrganizationSettings) TableName() string {
	return "organization_settings"
}
