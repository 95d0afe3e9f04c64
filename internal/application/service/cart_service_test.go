package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pastesytony/pos-api/internal/domain/entity"
	"github.com/pastesytony/pos-api/internal/domain/enum"
	"github.com/pastesytony/pos-api/internal/infrastructure/repository/memory"
	"github.com/pastesytony/pos-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartFixture(t *testing.T) *CartService {
	t.Helper()

	productRepo := memory.NewProductRepository()
	ctx := context.Background()

	products := []entity.Product{
		{ID: "ps-001", Name: "Minero Tradicional", Price: 27.00, Category: enum.CategoryPastesSalados, IsAvailable: true},
		{ID: "bb-001", Name: "Agua Natural", Price: 15.00, Category: enum.CategoryBebidas, IsAvailable: true},
		{ID: "ed-006", Name: "Emp. Nutella", Price: 26.00, Category: enum.CategoryEmpanadasDulces, IsAvailable: false},
	}
	require.NoError(t, productRepo.CreateBatch(ctx, products))

	return NewCartService(productRepo)
}

func TestCartServiceAddItem(t *testing.T) {
	svc := newCartFixture(t)
	ctx := context.Background()
	employeeID := uuid.New()

	cart, err := svc.AddItem(ctx, employeeID, "ps-001")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Minero Tradicional", cart.Items[0].Name)
	assert.Equal(t, 27.00, cart.Items[0].Price)

	// Adding again merges into the same line
	cart, err = svc.AddItem(ctx, employeeID, "ps-001")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCartServiceRejectsUnknownProduct(t *testing.T) {
	svc := newCartFixture(t)

	_, err := svc.AddItem(context.Background(), uuid.New(), "zz-999")
	assert.Error(t, err)
}

func TestCartServiceRejectsUnavailableProduct(t *testing.T) {
	svc := newCartFixture(t)

	_, err := svc.AddItem(context.Background(), uuid.New(), "ed-006")
	assert.Error(t, err)
}

func TestCartServiceIsolatedPerEmployee(t *testing.T) {
	svc := newCartFixture(t)
	ctx := context.Background()
	first := uuid.New()
	second := uuid.New()

	_, err := svc.AddItem(ctx, first, "ps-001")
	require.NoError(t, err)

	cart := svc.GetCart(ctx, second)
	assert.Empty(t, cart.Items)
}

func TestCartServiceBreakdown(t *testing.T) {
	svc := newCartFixture(t)
	ctx := context.Background()
	employeeID := uuid.New()

	_, err := svc.AddItem(ctx, employeeID, "ps-001")
	require.NoError(t, err)
	_, err = svc.IncrementItem(ctx, employeeID, "ps-001")
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, employeeID, "bb-001")
	require.NoError(t, err)

	assert.Equal(t, 69.00, cart.Breakdown.Total)
	assert.Equal(t, 59.48, cart.Breakdown.Subtotal)
	assert.Equal(t, 9.52, cart.Breakdown.Tax)
	assert.Equal(t, 3, cart.ItemCount)
}

func TestTakeSnapshotEmptyCart(t *testing.T) {
	svc := newCartFixture(t)

	_, _, err := svc.TakeSnapshot(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperror.ErrEmptyCart)
}

func TestTakeSnapshotDoesNotClear(t *testing.T) {
	svc := newCartFixture(t)
	ctx := context.Background()
	employeeID := uuid.New()

	_, err := svc.AddItem(ctx, employeeID, "ps-001")
	require.NoError(t, err)

	items, breakdown, err := svc.TakeSnapshot(ctx, employeeID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 27.00, breakdown.Total)

	// The cart survives until the sale or order is actually saved
	cart := svc.GetCart(ctx, employeeID)
	assert.Len(t, cart.Items, 1)
}
