package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pastesytony/pos-api/internal/domain/entity"
	"github.com/pastesytony/pos-api/internal/domain/enum"
	"github.com/pastesytony/pos-api/internal/infrastructure/repository/memory"
	"github.com/pastesytony/pos-api/pkg/apperror"
	"github.com/pastesytony/pos-api/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderFixture() (*OrderService, *SaleService, Identity) {
	saleRepo := memory.NewSaleRepository()
	orderService := NewOrderService(memory.NewOrderRepository(), saleRepo, memory.NewCounterRepository())
	saleService := NewSaleService(saleRepo)

	identity := Identity{
		EmployeeID:   uuid.New(),
		EmployeeName: "Edith",
		BranchID:     uuid.New(),
	}
	return orderService, saleService, identity
}

func ticketItems() []entity.LineItem {
	return []entity.LineItem{
		{ProductID: "ps-001", Name: "Minero Tradicional", Price: 27.00, Quantity: 2},
		{ProductID: "bb-001", Name: "Agua Natural", Price: 15.00, Quantity: 1},
	}
}

func TestCreateInstantOrder(t *testing.T) {
	svc, _, identity := newOrderFixture()
	ctx := context.Background()

	order, err := svc.CreateInstantOrder(ctx, identity, &CreateOrderInput{
		Items:         ticketItems(),
		PaymentMethod: enum.PaymentMethodCash,
	})
	require.NoError(t, err)

	assert.Equal(t, "#001", order.OrderNumber)
	assert.Equal(t, enum.OrderTypeInstant, order.Type)
	assert.Equal(t, enum.OrderStatusPending, order.Status)
	assert.Equal(t, 69.00, order.Total)
	assert.Equal(t, 59.48, order.Subtotal)
	assert.Equal(t, 9.52, order.Tax)
	assert.Equal(t, "Cliente", order.Customer.Name)
	assert.Len(t, order.Items, 2)
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	svc, _, identity := newOrderFixture()

	_, err := svc.CreateInstantOrder(context.Background(), identity, &CreateOrderInput{
		PaymentMethod: enum.PaymentMethodCash,
	})
	assert.ErrorIs(t, err, apperror.ErrEmptyCart)
}

func TestOrderNumbersAreSequential(t *testing.T) {
	svc, _, identity := newOrderFixture()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		order, err := svc.CreateInstantOrder(ctx, identity, &CreateOrderInput{
			Items:         ticketItems(),
			PaymentMethod: enum.PaymentMethodCash,
		})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("#%03d", i), order.OrderNumber)
	}
}

func TestOrderNumbersUniqueUnderConcurrency(t *testing.T) {
	svc, _, identity := newOrderFixture()
	ctx := context.Background()

	const n = 50
	numbers := make(chan string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, err := svc.CreateInstantOrder(ctx, identity, &CreateOrderInput{
				Items:         ticketItems(),
				PaymentMethod: enum.PaymentMethodCash,
			})
			if assert.NoError(t, err) {
				numbers <- order.OrderNumber
			}
		}()
	}
	wg.Wait()
	close(numbers)

	seen := make(map[string]bool)
	for number := range numbers {
		assert.False(t, seen[number], "duplicate order number %s", number)
		seen[number] = true
	}
	assert.Len(t, seen, n)
}

func TestPreOrderAdvanceValidation(t *testing.T) {
	svc, _, identity := newOrderFixture()
	ctx := context.Background()
	pickup := time.Now().Add(24 * time.Hour)

	// 10 pastes at 24.00 and 10 empanadas at 24.00: total 480.00
	bulk := []entity.LineItem{
		{ProductID: "ps-001", Name: "Minero Tradicional", Price: 24.00, Quantity: 10},
		{ProductID: "es-002", Name: "Emp. Choriqueso", Price: 24.00, Quantity: 10},
	}

	order, err := svc.CreatePreOrder(ctx, identity, &CreateOrderInput{
		Items:         bulk,
		PaymentMethod: enum.PaymentMethodTransfer,
		PickupDate:    &pickup,
		Advance:       200.00,
	})
	require.NoError(t, err)
	assert.Equal(t, 480.00, order.Total)
	assert.Equal(t, 200.00, order.Advance)
	assert.Equal(t, 280.00, order.PendingAmount())

	// Advance above the total is rejected
	_, err = svc.CreatePreOrder(ctx, identity, &CreateOrderInput{
		Items:         bulk,
		PaymentMethod: enum.PaymentMethodTransfer,
		PickupDate:    &pickup,
		Advance:       500.00,
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidAdvance)

	// Negative advance is rejected
	_, err = svc.CreatePreOrder(ctx, identity, &CreateOrderInput{
		Items:         bulk,
		PaymentMethod: enum.PaymentMethodTransfer,
		PickupDate:    &pickup,
		Advance:       -10.00,
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidAdvance)
}

func TestPreOrderRequiresPickupDate(t *testing.T) {
	svc, _, identity := newOrderFixture()

	_, err := svc.CreatePreOrder(context.Background(), identity, &CreateOrderInput{
		Items:         ticketItems(),
		PaymentMethod: enum.PaymentMethodCash,
	})
	assert.Error(t, err)
}

func TestKitchenFlowTransitions(t *testing.T) {
	svc, _, identity := newOrderFixture()
	ctx := context.Background()

	order, err := svc.CreateInstantOrder(ctx, identity, &CreateOrderInput{
		Items:         ticketItems(),
		PaymentMethod: enum.PaymentMethodCash,
	})
	require.NoError(t, err)

	order, err = svc.UpdateStatus(ctx, order.ID, enum.OrderStatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusPreparing, order.Status)

	order, err = svc.UpdateStatus(ctx, order.ID, enum.OrderStatusReady)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusReady, order.Status)

	// Going back to preparing is not allowed
	_, err = svc.UpdateStatus(ctx, order.ID, enum.OrderStatusPreparing)
	assert.Error(t, err)

	// Delivery must use the dedicated operation
	_, err = svc.UpdateStatus(ctx, order.ID, enum.OrderStatusDelivered)
	assert.Error(t, err)
}

func TestMarkAsDeliveredCreatesOneSale(t *testing.T) {
	svc, saleService, identity := newOrderFixture()
	ctx := context.Background()

	order, err := svc.CreateInstantOrder(ctx, identity, &CreateOrderInput{
		Items:         ticketItems(),
		PaymentMethod: enum.PaymentMethodCard,
	})
	require.NoError(t, err)

	delivered, sale, err := svc.MarkAsDelivered(ctx, identity, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusDelivered, delivered.Status)
	assert.Equal(t, 69.00, sale.Total)
	assert.Equal(t, enum.PaymentMethodCard, sale.PaymentMethod)
	assert.Equal(t, identity.EmployeeName, sale.EmployeeName)
	assert.Len(t, sale.Items, 2)

	// A second delivery attempt must fail and not add another sale
	_, _, err = svc.MarkAsDelivered(ctx, identity, order.ID)
	assert.Error(t, err)

	sales, err := saleService.ListDaySales(ctx, identity.BranchID, time.Now())
	require.NoError(t, err)
	assert.Len(t, sales, 1)
}

func TestMarkAsDeliveredBooksFullOrderTotal(t *testing.T) {
	svc, _, identity := newOrderFixture()
	ctx := context.Background()
	pickup := time.Now().Add(24 * time.Hour)

	order, err := svc.CreatePreOrder(ctx, identity, &CreateOrderInput{
		Items: []entity.LineItem{
			{ProductID: "ps-001", Name: "Minero Tradicional", Price: 24.00, Quantity: 20},
		},
		PaymentMethod: enum.PaymentMethodTransfer,
		PickupDate:    &pickup,
		Advance:       200.00,
	})
	require.NoError(t, err)
	assert.Equal(t, 480.00, order.Total)

	_, sale, err := svc.MarkAsDelivered(ctx, identity, order.ID)
	require.NoError(t, err)

	// The advance never books its own sale, so delivery records the
	// order's full total on the register
	assert.Equal(t, order.Total, sale.Total)
	assert.Equal(t, order.Subtotal, sale.Subtotal)
	assert.Equal(t, order.Tax, sale.Tax)
	assert.Equal(t, sale.Total, money.Round2(sale.Subtotal+sale.Tax))
}

func TestCancelOrder(t *testing.T) {
	svc, _, identity := newOrderFixture()
	ctx := context.Background()

	order, err := svc.CreateInstantOrder(ctx, identity, &CreateOrderInput{
		Items:         ticketItems(),
		PaymentMethod: enum.PaymentMethodCash,
	})
	require.NoError(t, err)

	cancelled, err := svc.CancelOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusCancelled, cancelled.Status)

	// Cancelled orders cannot be delivered
	_, _, err = svc.MarkAsDelivered(ctx, identity, order.ID)
	assert.Error(t, err)

	// Or cancelled again
	_, err = svc.CancelOrder(ctx, order.ID)
	assert.Error(t, err)
}

func TestGetOrderNotFound(t *testing.T) {
	svc, _, _ := newOrderFixture()

	_, err := svc.GetOrder(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperror.ErrOrderNotFound)
}

func TestListActiveOrdersExcludesTerminal(t *testing.T) {
	svc, _, identity := newOrderFixture()
	ctx := context.Background()

	first, err := svc.CreateInstantOrder(ctx, identity, &CreateOrderInput{
		Items:         ticketItems(),
		PaymentMethod: enum.PaymentMethodCash,
	})
	require.NoError(t, err)

	second, err := svc.CreateInstantOrder(ctx, identity, &CreateOrderInput{
		Items:         ticketItems(),
		PaymentMethod: enum.PaymentMethodCash,
	})
	require.NoError(t, err)

	_, _, err = svc.MarkAsDelivered(ctx, identity, first.ID)
	require.NoError(t, err)

	active, err := svc.ListActiveOrders(ctx, identity.BranchID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)
}
