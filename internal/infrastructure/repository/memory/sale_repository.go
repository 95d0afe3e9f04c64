package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pastesytony/pos-api/internal/domain/entity"
	domainRepo "github.com/pastesytony/pos-api/internal/domain/repository"
)

type saleRepository struct {
	mu    sync.RWMutex
	sales []entity.Sale
}

// NewSaleRepository creates an in-memory sale repository
func NewSaleRepository() domainRepo.SaleRepository {
	return &saleRepository{}
}

func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	if sale.CreatedAt.IsZero() {
		sale.CreatedAt = time.Now()
	}
	for i := range sale.Items {
		if sale.Items[i].ID == uuid.Nil {
			sale.Items[i].ID = uuid.New()
		}
		sale.Items[i].SaleID = sale.ID
	}
	r.sales = append(r.sales, cloneSale(*sale))
	return nil
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.sales {
		if s.ID == id {
			copied := cloneSale(s)
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *saleRepository) ListBranchDay(ctx context.Context, branchID uuid.UUID, day time.Time) ([]entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entity.Sale, 0)
	for _, s := range r.sales {
		if s.BranchID == branchID && sameDay(s.CreatedAt, day) {
			result = append(result, cloneSale(s))
		}
	}
	sortSalesNewestFirst(result)
	return result, nil
}

func (r *saleRepository) ListEmployeeDay(ctx context.Context, employeeID uuid.UUID, day time.Time) ([]entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entity.Sale, 0)
	for _, s := range r.sales {
		if s.EmployeeID == employeeID && sameDay(s.CreatedAt, day) {
			result = append(result, cloneSale(s))
		}
	}
	sortSalesNewestFirst(result)
	return result, nil
}

func (r *saleRepository) ClearBranchDay(ctx context.Context, branchID uuid.UUID, day time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.sales[:0]
	for _, s := range r.sales {
		if s.BranchID == branchID && sameDay(s.CreatedAt, day) {
			continue
		}
		kept = append(kept, s)
	}
	r.sales = kept
	return nil
}

func sortSalesNewestFirst(sales []entity.Sale) {
	sort.Slice(sales, func(i, j int) bool {
		return sales[i].CreatedAt.After(sales[j].CreatedAt)
	})
}

func cloneSale(s entity.Sale) entity.Sale {
	items := make([]entity.SaleItem, len(s.Items))
	copy(items, s.Items)
	s.Items = items
	return s
}
