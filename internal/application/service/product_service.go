package service

import (
	"context"

	"github.com/pastesytony/pos-api/internal/domain/entity"
	"github.com/pastesytony/pos-api/internal/domain/enum"
	"github.com/pastesytony/pos-api/internal/domain/repository"
	"github.com/pastesytony/pos-api/pkg/apperror"
	"github.com/pastesytony/pos-api/pkg/money"
)

// ProductService handles catalog operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ListProductsInput represents catalog filter input
type ListProductsInput struct {
	Category      string
	AvailableOnly bool
	Search        string
}

// ListProducts returns the catalog, optionally filtered by menu
// section, availability or a name search.
func (s *ProductService) ListProducts(ctx context.Context, input *ListProductsInput) ([]entity.Product, error) {
	params := &repository.ProductFilterParams{
		AvailableOnly: input.AvailableOnly,
		Search:        input.Search,
	}
	if input.Category != "" {
		category, ok := enum.ParseProductCategory(input.Category)
		if !ok {
			return nil, apperror.NewBadRequestError("Unknown category: " + input.Category)
		}
		params.Category = &category
	}

	products, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	return products, nil
}

// GetProduct returns one catalog entry by its code
func (s *ProductService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// SetAvailability flips a product on or off the menu without removing
// it from the catalog.
func (s *ProductService) SetAvailability(ctx context.Context, id string, available bool) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product.IsAvailable = available
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	return product, nil
}

// UpdatePrice changes a product's catalog price. Orders and sales
// snapshot prices at creation, so history is unaffected.
func (s *ProductService) UpdatePrice(ctx context.Context, id string, price float64) (*entity.Product, error) {
	if price <= 0 {
		return nil, apperror.NewBadRequestError("Price must be greater than zero")
	}

	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Price = money.Round2(price)
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	return product, nil
}

// Categories returns the menu sections in display order
func (s *ProductService) Categories() []string {
	categories := enum.Categories()
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.String()
	}
	return names
}
