package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pastesytony/pos-api/internal/domain/entity"
	"github.com/pastesytony/pos-api/internal/domain/enum"
	"github.com/pastesytony/pos-api/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reportFixture struct {
	orders  *OrderService
	sales   *SaleService
	reports *ReportService
}

func newReportFixture() (*reportFixture, Identity) {
	orderRepo := memory.NewOrderRepository()
	saleRepo := memory.NewSaleRepository()
	counterRepo := memory.NewCounterRepository()

	f := &reportFixture{
		orders:  NewOrderService(orderRepo, saleRepo, counterRepo),
		sales:   NewSaleService(saleRepo),
		reports: NewReportService(saleRepo, orderRepo, counterRepo),
	}
	identity := Identity{
		EmployeeID:   uuid.New(),
		EmployeeName: "Edith",
		BranchID:     uuid.New(),
	}
	return f, identity
}

func TestSummaryEmptyDay(t *testing.T) {
	f, identity := newReportFixture()

	summary, err := f.reports.Summary(context.Background(), identity.BranchID, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.SalesCount)
	assert.Equal(t, 0.0, summary.TotalSales)
	// No sales must yield a zero average, not a division by zero
	assert.Equal(t, 0.0, summary.AverageTicket)
}

func TestSummaryTotalsByPaymentMethod(t *testing.T) {
	f, identity := newReportFixture()
	ctx := context.Background()

	_, err := f.sales.RegisterSale(ctx, identity, &RegisterSaleInput{
		Items:         ticketItems(), // 69.00
		PaymentMethod: enum.PaymentMethodCash,
		CashReceived:  float64Ptr(100.00),
	})
	require.NoError(t, err)

	_, err = f.sales.RegisterSale(ctx, identity, &RegisterSaleInput{
		Items:         ticketItems(), // 69.00
		PaymentMethod: enum.PaymentMethodCard,
	})
	require.NoError(t, err)

	_, err = f.sales.RegisterSale(ctx, identity, &RegisterSaleInput{
		Items: []entity.LineItem{
			{ProductID: "pm-003", Name: "Combo Familiar (6 Pastes)", Price: 150.00, Quantity: 1},
		},
		PaymentMethod: enum.PaymentMethodTransfer,
	})
	require.NoError(t, err)

	summary, err := f.reports.Summary(ctx, identity.BranchID, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.SalesCount)
	assert.Equal(t, 288.00, summary.TotalSales)
	assert.Equal(t, 69.00, summary.CashTotal)
	assert.Equal(t, 69.00, summary.CardTotal)
	assert.Equal(t, 150.00, summary.TransferTotal)
	assert.Equal(t, 96.00, summary.AverageTicket)
}

func TestSummaryCountsOrders(t *testing.T) {
	f, identity := newReportFixture()
	ctx := context.Background()

	first, err := f.orders.CreateInstantOrder(ctx, identity, &CreateOrderInput{
		Items:         ticketItems(),
		PaymentMethod: enum.PaymentMethodCash,
	})
	require.NoError(t, err)

	_, err = f.orders.CreateInstantOrder(ctx, identity, &CreateOrderInput{
		Items:         ticketItems(),
		PaymentMethod: enum.PaymentMethodCash,
	})
	require.NoError(t, err)

	_, _, err = f.orders.MarkAsDelivered(ctx, identity, first.ID)
	require.NoError(t, err)

	summary, err := f.reports.Summary(ctx, identity.BranchID, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.OrdersCreated)
	assert.Equal(t, 1, summary.ActiveOrders)
	assert.Equal(t, 1, summary.SalesCount)
}

func TestCloseShiftClearsLedgerAndResetsNumbering(t *testing.T) {
	f, identity := newReportFixture()
	ctx := context.Background()

	_, err := f.sales.RegisterSale(ctx, identity, &RegisterSaleInput{
		Items:         ticketItems(),
		PaymentMethod: enum.PaymentMethodCard,
	})
	require.NoError(t, err)

	order, err := f.orders.CreateInstantOrder(ctx, identity, &CreateOrderInput{
		Items:         ticketItems(),
		PaymentMethod: enum.PaymentMethodCash,
	})
	require.NoError(t, err)
	assert.Equal(t, "#001", order.OrderNumber)

	output, err := f.reports.CloseShift(ctx, identity.BranchID)
	require.NoError(t, err)
	assert.Equal(t, 1, output.Summary.SalesCount)

	// Ledger is empty after the close
	sales, err := f.sales.ListDaySales(ctx, identity.BranchID, time.Now())
	require.NoError(t, err)
	assert.Empty(t, sales)

	// Numbering starts over for the next shift
	order, err = f.orders.CreateInstantOrder(ctx, identity, &CreateOrderInput{
		Items:         ticketItems(),
		PaymentMethod: enum.PaymentMethodCash,
	})
	require.NoError(t, err)
	assert.Equal(t, "#001", order.OrderNumber)
}

func TestCloseShiftDoesNotAffectOtherBranch(t *testing.T) {
	f, identity := newReportFixture()
	ctx := context.Background()

	other := Identity{EmployeeID: uuid.New(), EmployeeName: "Daniel", BranchID: uuid.New()}

	_, err := f.sales.RegisterSale(ctx, other, &RegisterSaleInput{
		Items:         ticketItems(),
		PaymentMethod: enum.PaymentMethodCard,
	})
	require.NoError(t, err)

	_, err = f.reports.CloseShift(ctx, identity.BranchID)
	require.NoError(t, err)

	sales, err := f.sales.ListDaySales(ctx, other.BranchID, time.Now())
	require.NoError(t, err)
	assert.Len(t, sales, 1)
}
