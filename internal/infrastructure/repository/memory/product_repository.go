package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pastesytony/pos-api/internal/domain/entity"
	domainRepo "github.com/pastesytony/pos-api/internal/domain/repository"
)

type productRepository struct {
	mu       sync.RWMutex
	products map[string]entity.Product
}

// NewProductRepository creates an in-memory product repository
func NewProductRepository() domainRepo.ProductRepository {
	return &productRepository{products: make(map[string]entity.Product)}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	r.products[product.ID] = *product
	return nil
}

func (r *productRepository) CreateBatch(ctx context.Context, products []entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for _, p := range products {
		p.CreatedAt = now
		p.UpdatedAt = now
		r.products[p.ID] = p
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *productRepository) GetByIDs(ctx context.Context, ids []string) ([]entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entity.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.UpdatedAt = time.Now()
	r.products[product.ID] = *product
	return nil
}

func (r *productRepository) List(ctx context.Context, params *domainRepo.ProductFilterParams) ([]entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entity.Product, 0, len(r.products))
	for _, p := range r.products {
		if params != nil {
			if params.Category != nil && p.Category != *params.Category {
				continue
			}
			if params.AvailableOnly && !p.IsAvailable {
				continue
			}
			if params.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(params.Search)) {
				continue
			}
		}
		result = append(result, p)
	}

	// Same ordering as the SQL store: category first, then catalog code
	sort.Slice(result, func(i, j int) bool {
		if result[i].Category != result[j].Category {
			return result[i].Category < result[j].Category
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.products)), nil
}
