package entity

import (
	"time"

	"github.com/google/uuid"
)

// RegisterCounter backs the per-branch order number sequence. The value
// only moves through atomic increments so two racing order creations
// can never mint the same number.
type RegisterCounter struct {
	BranchID  uuid.UUID `gorm:"type:uuid;primary_key" json:"branch_id"`
	Value     int64     `gorm:"not null;default:0" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the RegisterCounter model
func (RegisterCounter) TableName() string {
	return "register_counters"
}
