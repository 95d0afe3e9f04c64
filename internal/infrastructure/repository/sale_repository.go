package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pastesytony/pos-api/internal/domain/entity"
	domainRepo "github.com/pastesytony/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) ListBranchDay(ctx context.Context, branchID uuid.UUID, day time.Time) ([]entity.Sale, error) {
	start, end := dayBounds(day)

	var sales []entity.Sale
	err := r.db.WithContext(ctx).
		Where("branch_id = ?", branchID).
		Where("created_at >= ? AND created_at <= ?", start, end).
		Preload("Items").
		Order("created_at DESC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepository) ListEmployeeDay(ctx context.Context, employeeID uuid.UUID, day time.Time) ([]entity.Sale, error) {
	start, end := dayBounds(day)

	var sales []entity.Sale
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("created_at >= ? AND created_at <= ?", start, end).
		Preload("Items").
		Order("created_at DESC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepository) ClearBranchDay(ctx context.Context, branchID uuid.UUID, day time.Time) error {
	start, end := dayBounds(day)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []uuid.UUID
		if err := tx.Model(&entity.Sale{}).
			Where("branch_id = ?", branchID).
			Where("created_at >= ? AND created_at <= ?", start, end).
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := tx.Where("sale_id IN ?", ids).Delete(&entity.SaleItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&entity.Sale{}).Error
	})
}
