package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pastesytony/pos-api/internal/domain/entity"
	"github.com/pastesytony/pos-api/internal/domain/enum"
	"github.com/pastesytony/pos-api/internal/domain/repository"
	"github.com/pastesytony/pos-api/pkg/apperror"
	"github.com/pastesytony/pos-api/pkg/money"
	"github.com/pastesytony/pos-api/pkg/pagination"
)

// Identity is the register session performing an operation, extracted
// from the JWT claims.
type Identity struct {
	EmployeeID   uuid.UUID
	EmployeeName string
	BranchID     uuid.UUID
}

// OrderService handles order creation and the order lifecycle
type OrderService struct {
	orderRepo   repository.OrderRepository
	saleRepo    repository.SaleRepository
	counterRepo repository.CounterRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	saleRepo repository.SaleRepository,
	counterRepo repository.CounterRepository,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		saleRepo:    saleRepo,
		counterRepo: counterRepo,
	}
}

// CreateOrderInput represents the input to create an order
type CreateOrderInput struct {
	Items         []entity.LineItem
	Customer      entity.Customer
	PaymentMethod enum.PaymentMethod
	Notes         *string

	// Pre-order fields
	PickupDate *time.Time
	PickupTime *string
	Advance    float64
}

// nextOrderNumber reserves the next register ticket number for the
// branch. Numbers are "#" plus at least three digits and only reset at
// end of shift.
func (s *OrderService) nextOrderNumber(ctx context.Context, branchID uuid.UUID) (string, error) {
	n, err := s.counterRepo.Next(ctx, branchID)
	if err != nil {
		return "", apperror.NewPersistenceError(err)
	}
	return fmt.Sprintf("#%03d", n), nil
}

// CreateInstantOrder creates a walk-in order for immediate preparation
func (s *OrderService) CreateInstantOrder(ctx context.Context, identity Identity, input *CreateOrderInput) (*entity.Order, error) {
	return s.createOrder(ctx, identity, enum.OrderTypeInstant, input)
}

// CreatePreOrder creates an order scheduled for future pickup, with an
// optional advance payment.
func (s *OrderService) CreatePreOrder(ctx context.Context, identity Identity, input *CreateOrderInput) (*entity.Order, error) {
	if input.PickupDate == nil {
		return nil, apperror.NewBadRequestError("Pre-orders require a pickup date")
	}
	return s.createOrder(ctx, identity, enum.OrderTypePreorder, input)
}

func (s *OrderService) createOrder(ctx context.Context, identity Identity, orderType enum.OrderType, input *CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, apperror.ErrEmptyCart
	}

	lines := make([]money.LineItem, len(input.Items))
	for i, item := range input.Items {
		lines[i] = money.LineItem{Price: item.Price, Quantity: item.Quantity}
	}
	breakdown, err := money.PriceBreakdown(lines)
	if err != nil {
		return nil, err
	}

	advance := money.Round2(input.Advance)
	if advance < 0 || advance > breakdown.Total {
		return nil, apperror.ErrInvalidAdvance
	}

	if input.Customer.Name == "" {
		input.Customer.Name = "Cliente"
	}

	number, err := s.nextOrderNumber(ctx, identity.BranchID)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		OrderNumber:   number,
		Type:          orderType,
		Status:        enum.OrderStatusPending,
		Subtotal:      breakdown.Subtotal,
		Tax:           breakdown.Tax,
		Total:         breakdown.Total,
		Customer:      input.Customer,
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
		EmployeeID:    identity.EmployeeID,
		BranchID:      identity.BranchID,
	}
	if orderType == enum.OrderTypePreorder {
		order.PickupDate = input.PickupDate
		order.PickupTime = input.PickupTime
		order.Advance = advance
	}

	items := make([]entity.OrderItem, len(input.Items))
	for i, item := range input.Items {
		items[i] = entity.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}
	order.Items = items

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	return order, nil
}

// GetOrder returns one order by ID
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	if order == nil {
		return nil, apperror.ErrOrderNotFound
	}
	return order, nil
}

// ListOrdersInput represents order listing filters
type ListOrdersInput struct {
	Pagination *pagination.PaginationParams
	Type       *enum.OrderType
	Status     *enum.OrderStatus
	StartDate  *time.Time
	EndDate    *time.Time
}

// ListOrders returns a page of the branch's orders, newest first
func (s *OrderService) ListOrders(ctx context.Context, branchID uuid.UUID, input *ListOrdersInput) (*pagination.PaginatedResult[entity.Order], error) {
	if input.Pagination == nil {
		input.Pagination = pagination.DefaultPagination()
	}
	input.Pagination.Validate()

	orders, total, err := s.orderRepo.List(ctx, branchID, &repository.OrderFilterParams{
		Pagination: input.Pagination,
		Type:       input.Type,
		Status:     input.Status,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	})
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}

	meta := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, meta), nil
}

// ListActiveOrders returns the branch's orders still in the kitchen
// (neither delivered nor cancelled).
func (s *OrderService) ListActiveOrders(ctx context.Context, branchID uuid.UUID) ([]entity.Order, error) {
	orders, err := s.orderRepo.ListActive(ctx, branchID)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	return orders, nil
}

// UpdateStatus moves an order along the kitchen flow. Delivery and
// cancellation have dedicated operations; this rejects both so their
// side effects cannot be skipped.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, to enum.OrderStatus) (*entity.Order, error) {
	if to == enum.OrderStatusDelivered {
		return nil, apperror.NewBadRequestError("Use the deliver operation to mark an order delivered")
	}
	if to == enum.OrderStatusCancelled {
		return nil, apperror.NewBadRequestError("Use the cancel operation to cancel an order")
	}

	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(to) {
		return nil, apperror.NewInvalidTransitionError(order.Status.String(), to.String())
	}

	updated, err := s.orderRepo.UpdateStatusFrom(ctx, id, []enum.OrderStatus{order.Status}, to)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	if !updated {
		// Lost a race with a concurrent transition; re-read for the message
		order, err = s.GetOrder(ctx, id)
		if err != nil {
			return nil, err
		}
		return nil, apperror.NewInvalidTransitionError(order.Status.String(), to.String())
	}

	order.Status = to
	return order, nil
}

// activeStatuses are the source states delivery and cancellation accept
var activeStatuses = []enum.OrderStatus{
	enum.OrderStatusPending,
	enum.OrderStatusPreparing,
	enum.OrderStatusReady,
}

// MarkAsDelivered hands the order over and records exactly one sale
// for it. The conditional status update makes concurrent delivery
// attempts race-free: only the one that wins the transition writes the
// sale. For pre-orders the sale records the amount pending after the
// advance.
func (s *OrderService) MarkAsDelivered(ctx context.Context, identity Identity, id uuid.UUID) (*entity.Order, *entity.Sale, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	updated, err := s.orderRepo.UpdateStatusFrom(ctx, id, activeStatuses, enum.OrderStatusDelivered)
	if err != nil {
		return nil, nil, apperror.NewPersistenceError(err)
	}
	if !updated {
		return nil, nil, apperror.NewInvalidTransitionError(order.Status.String(), enum.OrderStatusDelivered.String())
	}
	prevStatus := order.Status
	order.Status = enum.OrderStatusDelivered

	sale := saleFromOrder(order, identity)
	if err := s.saleRepo.Create(ctx, sale); err != nil {
		// Put the order back so the delivery can be retried
		if _, revertErr := s.orderRepo.UpdateStatusFrom(ctx, id, []enum.OrderStatus{enum.OrderStatusDelivered}, prevStatus); revertErr == nil {
			order.Status = prevStatus
		}
		return nil, nil, apperror.NewPersistenceError(err)
	}

	return order, sale, nil
}

// saleFromOrder builds the ledger entry for a delivered order. Totals
// are re-derived from the pending amount so an advance already
// collected is not counted twice.
// saleFromOrder copies the order's frozen breakdown into a ledger
// entry. An advance never books its own sale, so the full total lands
// on the register at delivery.
func saleFromOrder(order *entity.Order, identity Identity) *entity.Sale {
	items := make([]entity.SaleItem, len(order.Items))
	for i, item := range order.Items {
		items[i] = entity.SaleItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}

	return &entity.Sale{
		Subtotal:      order.Subtotal,
		Tax:           order.Tax,
		Total:         order.Total,
		PaymentMethod: order.PaymentMethod,
		EmployeeID:    identity.EmployeeID,
		EmployeeName:  identity.EmployeeName,
		BranchID:      identity.BranchID,
		Items:         items,
	}
}

// CancelOrder cancels an order that has not been delivered yet
func (s *OrderService) CancelOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.orderRepo.UpdateStatusFrom(ctx, id, activeStatuses, enum.OrderStatusCancelled)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	if !updated {
		return nil, apperror.NewInvalidTransitionError(order.Status.String(), enum.OrderStatusCancelled.String())
	}

	order.Status = enum.OrderStatusCancelled
	return order, nil
}
