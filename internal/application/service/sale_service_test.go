package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pastesytony/pos-api/internal/domain/enum"
	"github.com/pastesytony/pos-api/internal/infrastructure/repository/memory"
	"github.com/pastesytony/pos-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSaleFixture() (*SaleService, Identity) {
	svc := NewSaleService(memory.NewSaleRepository())
	identity := Identity{
		EmployeeID:   uuid.New(),
		EmployeeName: "Daniel",
		BranchID:     uuid.New(),
	}
	return svc, identity
}

func float64Ptr(v float64) *float64 { return &v }

func TestRegisterCashSale(t *testing.T) {
	svc, identity := newSaleFixture()

	sale, err := svc.RegisterSale(context.Background(), identity, &RegisterSaleInput{
		Items:         ticketItems(),
		PaymentMethod: enum.PaymentMethodCash,
		CashReceived:  float64Ptr(100.00),
	})
	require.NoError(t, err)

	assert.Equal(t, 69.00, sale.Total)
	assert.Equal(t, 59.48, sale.Subtotal)
	assert.Equal(t, 9.52, sale.Tax)
	require.NotNil(t, sale.CashReceived)
	require.NotNil(t, sale.Change)
	assert.Equal(t, 100.00, *sale.CashReceived)
	assert.Equal(t, 31.00, *sale.Change)
	assert.Equal(t, "Daniel", sale.EmployeeName)
}

func TestRegisterCashSaleExactAmount(t *testing.T) {
	svc, identity := newSaleFixture()

	sale, err := svc.RegisterSale(context.Background(), identity, &RegisterSaleInput{
		Items:         ticketItems(),
		PaymentMethod: enum.PaymentMethodCash,
		CashReceived:  float64Ptr(69.00),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, *sale.Change)
}

func TestRegisterSaleInsufficientCash(t *testing.T) {
	svc, identity := newSaleFixture()

	_, err := svc.RegisterSale(context.Background(), identity, &RegisterSaleInput{
		Items:         ticketItems(),
		PaymentMethod: enum.PaymentMethodCash,
		CashReceived:  float64Ptr(50.00),
	})
	assert.ErrorIs(t, err, apperror.ErrInsufficientCash)
}

func TestRegisterSaleCashRequiresAmount(t *testing.T) {
	svc, identity := newSaleFixture()

	_, err := svc.RegisterSale(context.Background(), identity, &RegisterSaleInput{
		Items:         ticketItems(),
		PaymentMethod: enum.PaymentMethodCash,
	})
	assert.Error(t, err)
}

func TestRegisterCardSaleIgnoresCashFields(t *testing.T) {
	svc, identity := newSaleFixture()

	sale, err := svc.RegisterSale(context.Background(), identity, &RegisterSaleInput{
		Items:         ticketItems(),
		PaymentMethod: enum.PaymentMethodCard,
	})
	require.NoError(t, err)
	assert.Nil(t, sale.CashReceived)
	assert.Nil(t, sale.Change)
}

func TestRegisterSaleRejectsEmptyItems(t *testing.T) {
	svc, identity := newSaleFixture()

	_, err := svc.RegisterSale(context.Background(), identity, &RegisterSaleInput{
		PaymentMethod: enum.PaymentMethodCard,
	})
	assert.ErrorIs(t, err, apperror.ErrEmptyCart)
}

func TestListDaySalesScopedToBranch(t *testing.T) {
	svc, identity := newSaleFixture()
	ctx := context.Background()

	_, err := svc.RegisterSale(ctx, identity, &RegisterSaleInput{
		Items:         ticketItems(),
		PaymentMethod: enum.PaymentMethodCard,
	})
	require.NoError(t, err)

	other := Identity{EmployeeID: uuid.New(), EmployeeName: "Edith", BranchID: uuid.New()}
	_, err = svc.RegisterSale(ctx, other, &RegisterSaleInput{
		Items:         ticketItems(),
		PaymentMethod: enum.PaymentMethodCash,
		CashReceived:  float64Ptr(70.00),
	})
	require.NoError(t, err)

	sales, err := svc.ListDaySales(ctx, identity.BranchID, time.Now())
	require.NoError(t, err)
	assert.Len(t, sales, 1)
}
