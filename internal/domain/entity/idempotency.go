package entity

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyKey stores processed write requests so retries replay the
// original response instead of creating duplicates. A nil UserID marks a
// key captured on a public endpoint.
type IdempotencyKey struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Key          string     `gorm:"uniqueIndex;size:255;not null"`
	UserID       *uuid.UUID `gorm:"type:uuid;index"`
	Endpoint     string     `gorm:"size:255;not null"`
	RequestHash  string     `gorm:"size:64"`
	ResponseCode int        `gorm:"not null"`
	ResponseBody string     `gorm:"type:text"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	ExpiresAt    time.Time  `gorm:"not null;index"`
}

// TableName returns the table name for IdempotencyKey
func (IdempotencyKey) TableName() string {
	return "idempotency_keys"
}

// IsExpired checks if the idempotency key has expired
func (i *IdempotencyKey) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}
