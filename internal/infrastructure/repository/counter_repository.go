package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pastesytony/pos-api/internal/domain/entity"
	domainRepo "github.com/pastesytony/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type counterRepository struct {
	db *gorm.DB
}

// NewCounterRepository creates a new register counter repository
func NewCounterRepository(db *gorm.DB) domainRepo.CounterRepository {
	return &counterRepository{db: db}
}

// Next atomically increments the per-branch counter and returns the new value.
// The upsert initializes the row on first use so callers never need a setup step.
func (r *counterRepository) Next(ctx context.Context, branchID uuid.UUID) (int64, error) {
	var value int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO register_counters (branch_id, value, updated_at)
		VALUES (?, 1, NOW())
		ON CONFLICT (branch_id)
		DO UPDATE SET value = register_counters.value + 1, updated_at = NOW()
		RETURNING value`, branchID).Scan(&value).Error
	return value, err
}

func (r *counterRepository) Reset(ctx context.Context, branchID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entity.RegisterCounter{}).
		Where("branch_id = ?", branchID).
		Update("value", 0).Error
}
