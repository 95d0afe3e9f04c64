package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pastesytony/pos-api/internal/domain/entity"
	"github.com/pastesytony/pos-api/internal/domain/enum"
	"github.com/pastesytony/pos-api/pkg/pagination"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	List(ctx context.Context, branchID uuid.UUID, params *OrderFilterParams) ([]entity.Order, int64, error)
	// ListActive returns orders that are neither delivered nor cancelled
	ListActive(ctx context.Context, branchID uuid.UUID) ([]entity.Order, error)
	// ListDay returns the orders created on the given calendar day
	ListDay(ctx context.Context, branchID uuid.UUID, day time.Time) ([]entity.Order, error)
	// UpdateStatusFrom transitions the order to the target status only
	// if its current status is one of the given sources. Reports whether
	// a row was actually updated, which makes delivery/cancellation
	// race-free without a read-modify-write.
	UpdateStatusFrom(ctx context.Context, id uuid.UUID, from []enum.OrderStatus, to enum.OrderStatus) (bool, error)
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Type       *enum.OrderType
	Status     *enum.OrderStatus
	StartDate  *time.Time
	EndDate    *time.Time
}
