package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pastesytony/pos-api/internal/domain/entity"
	"github.com/pastesytony/pos-api/internal/domain/enum"
	domainRepo "github.com/pastesytony/pos-api/internal/domain/repository"
)

type orderRepository struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]entity.Order
}

// NewOrderRepository creates an in-memory order repository
func NewOrderRepository() domainRepo.OrderRepository {
	return &orderRepository{orders: make(map[uuid.UUID]entity.Order)}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	for i := range order.Items {
		if order.Items[i].ID == uuid.Nil {
			order.Items[i].ID = uuid.New()
		}
		order.Items[i].OrderID = order.ID
	}
	r.orders[order.ID] = cloneOrder(*order)
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	copied := cloneOrder(o)
	return &copied, nil
}

func (r *orderRepository) List(ctx context.Context, branchID uuid.UUID, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]entity.Order, 0)
	for _, o := range r.orders {
		if o.BranchID != branchID {
			continue
		}
		if params != nil {
			if params.Type != nil && o.Type != *params.Type {
				continue
			}
			if params.Status != nil && o.Status != *params.Status {
				continue
			}
			if params.StartDate != nil && o.CreatedAt.Before(*params.StartDate) {
				continue
			}
			if params.EndDate != nil && o.CreatedAt.After(*params.EndDate) {
				continue
			}
		}
		matched = append(matched, cloneOrder(o))
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if params != nil && params.Pagination != nil {
		params.Pagination.Validate()
		offset := params.Pagination.Offset()
		if offset >= len(matched) {
			return []entity.Order{}, total, nil
		}
		end := offset + params.Pagination.PerPage
		if end > len(matched) {
			end = len(matched)
		}
		matched = matched[offset:end]
	}
	return matched, total, nil
}

func (r *orderRepository) ListActive(ctx context.Context, branchID uuid.UUID) ([]entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entity.Order, 0)
	for _, o := range r.orders {
		if o.BranchID == branchID && !o.Status.IsTerminal() {
			result = append(result, cloneOrder(o))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *orderRepository) ListDay(ctx context.Context, branchID uuid.UUID, day time.Time) ([]entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entity.Order, 0)
	for _, o := range r.orders {
		if o.BranchID == branchID && sameDay(o.CreatedAt, day) {
			result = append(result, cloneOrder(o))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *orderRepository) UpdateStatusFrom(ctx context.Context, id uuid.UUID, from []enum.OrderStatus, to enum.OrderStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return false, nil
	}
	allowed := false
	for _, s := range from {
		if o.Status == s {
			allowed = true
			break
		}
	}
	if !allowed {
		return false, nil
	}
	o.Status = to
	o.UpdatedAt = time.Now()
	r.orders[id] = o
	return true, nil
}

func cloneOrder(o entity.Order) entity.Order {
	items := make([]entity.OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
