package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pastesytony/pos-api/internal/domain/entity"
)

// SaleRepository defines the interface for the append-only sales
// ledger. Individual sales are never updated or deleted; only a whole
// shift can be cleared.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	// ListBranchDay returns every sale a branch recorded on the given day
	ListBranchDay(ctx context.Context, branchID uuid.UUID, day time.Time) ([]entity.Sale, error)
	// ListEmployeeDay returns the sales one employee recorded on the given day
	ListEmployeeDay(ctx context.Context, employeeID uuid.UUID, day time.Time) ([]entity.Sale, error)
	// ClearBranchDay wipes a branch's sales for the day (end of shift)
	ClearBranchDay(ctx context.Context, branchID uuid.UUID, day time.Time) error
}
