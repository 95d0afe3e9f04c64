package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pastesytony/pos-api/internal/domain/entity"
	"github.com/pastesytony/pos-api/internal/domain/enum"
	"github.com/pastesytony/pos-api/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductFixture(t *testing.T) *ProductService {
	t.Helper()

	productRepo := memory.NewProductRepository()
	products := []entity.Product{
		{ID: "ps-001", Name: "Minero Tradicional", Price: 27.00, Category: enum.CategoryPastesSalados, IsAvailable: true},
		{ID: "ps-004", Name: "Hawaiano", Price: 30.00, Category: enum.CategoryPastesSalados, IsAvailable: true},
		{ID: "bb-001", Name: "Agua Natural", Price: 15.00, Category: enum.CategoryBebidas, IsAvailable: true},
		{ID: "ed-006", Name: "Emp. Nutella", Price: 26.00, Category: enum.CategoryEmpanadasDulces, IsAvailable: false},
	}
	require.NoError(t, productRepo.CreateBatch(context.Background(), products))

	return NewProductService(productRepo)
}

func TestListProductsByCategory(t *testing.T) {
	svc := newProductFixture(t)

	products, err := svc.ListProducts(context.Background(), &ListProductsInput{Category: "Pastes Salados"})
	require.NoError(t, err)
	require.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, enum.CategoryPastesSalados, p.Category)
	}
}

func TestListProductsUnknownCategory(t *testing.T) {
	svc := newProductFixture(t)

	_, err := svc.ListProducts(context.Background(), &ListProductsInput{Category: "Postres"})
	assert.Error(t, err)
}

func TestListProductsAvailableOnly(t *testing.T) {
	svc := newProductFixture(t)

	products, err := svc.ListProducts(context.Background(), &ListProductsInput{AvailableOnly: true})
	require.NoError(t, err)
	require.Len(t, products, 3)
	for _, p := range products {
		assert.True(t, p.IsAvailable)
	}
}

func TestSetAvailability(t *testing.T) {
	svc := newProductFixture(t)
	ctx := context.Background()

	product, err := svc.SetAvailability(ctx, "ps-001", false)
	require.NoError(t, err)
	assert.False(t, product.IsAvailable)

	got, err := svc.GetProduct(ctx, "ps-001")
	require.NoError(t, err)
	assert.False(t, got.IsAvailable)
}

func TestUpdatePrice(t *testing.T) {
	svc := newProductFixture(t)
	ctx := context.Background()

	product, err := svc.UpdatePrice(ctx, "ps-001", 29.505)
	require.NoError(t, err)
	assert.Equal(t, 29.51, product.Price)

	got, err := svc.GetProduct(ctx, "ps-001")
	require.NoError(t, err)
	assert.Equal(t, 29.51, got.Price)
}

func TestUpdatePriceRejectsNonPositive(t *testing.T) {
	svc := newProductFixture(t)
	ctx := context.Background()

	_, err := svc.UpdatePrice(ctx, "ps-001", 0)
	assert.Error(t, err)

	_, err = svc.UpdatePrice(ctx, "ps-001", -5)
	assert.Error(t, err)
}

func TestUpdatePriceUnknownProduct(t *testing.T) {
	svc := newProductFixture(t)

	_, err := svc.UpdatePrice(context.Background(), "zz-999", 10)
	assert.Error(t, err)
}

func TestPriceChangeDoesNotTouchCartSnapshot(t *testing.T) {
	productRepo := memory.NewProductRepository()
	ctx := context.Background()
	require.NoError(t, productRepo.CreateBatch(ctx, []entity.Product{
		{ID: "ps-001", Name: "Minero Tradicional", Price: 27.00, Category: enum.CategoryPastesSalados, IsAvailable: true},
	}))

	productSvc := NewProductService(productRepo)
	cartSvc := NewCartService(productRepo)
	employeeID := uuid.New()

	_, err := cartSvc.AddItem(ctx, employeeID, "ps-001")
	require.NoError(t, err)

	_, err = productSvc.UpdatePrice(ctx, "ps-001", 35.00)
	require.NoError(t, err)

	items, _, err := cartSvc.TakeSnapshot(ctx, employeeID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 27.00, items[0].Price)
}
