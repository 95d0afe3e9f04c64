package entity

import (
	"testing"

	"github.com/pastesytony/pos-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id, name string, price float64) *Product {
	return &Product{
		ID:          id,
		Name:        name,
		Price:       price,
		Category:    enum.CategoryPastesSalados,
		IsAvailable: true,
	}
}

func TestCartAddItemMergesLines(t *testing.T) {
	cart := NewCart()
	minero := testProduct("ps-001", "Minero Tradicional", 27.00)

	cart.AddItem(minero)
	cart.AddItem(minero)

	items := cart.Snapshot()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 27.00, items[0].Price)
	assert.Equal(t, 2, cart.ItemCount())
}

func TestCartAddItemSnapshotsPrice(t *testing.T) {
	cart := NewCart()
	product := testProduct("ps-001", "Minero Tradicional", 27.00)
	cart.AddItem(product)

	// A later catalog price change must not alter the cart line
	product.Price = 35.00

	items := cart.Snapshot()
	require.Len(t, items, 1)
	assert.Equal(t, 27.00, items[0].Price)
}

func TestCartIncrementDecrement(t *testing.T) {
	cart := NewCart()
	cart.AddItem(testProduct("bb-001", "Agua Natural", 15.00))

	assert.True(t, cart.IncrementQuantity("bb-001"))
	assert.Equal(t, 2, cart.QuantityOf("bb-001"))

	assert.True(t, cart.DecrementQuantity("bb-001"))
	assert.Equal(t, 1, cart.QuantityOf("bb-001"))

	// Decrement at quantity 1 keeps the line
	assert.True(t, cart.DecrementQuantity("bb-001"))
	assert.Equal(t, 1, cart.QuantityOf("bb-001"))

	assert.False(t, cart.IncrementQuantity("missing"))
	assert.False(t, cart.DecrementQuantity("missing"))
}

func TestCartSetQuantity(t *testing.T) {
	cart := NewCart()
	cart.AddItem(testProduct("es-001", "Emp. Pollo", 25.00))

	cart.SetQuantity("es-001", 5)
	assert.Equal(t, 5, cart.QuantityOf("es-001"))

	// Zero or negative removes the line
	cart.SetQuantity("es-001", 0)
	assert.True(t, cart.IsEmpty())
}

func TestCartRemoveAndClear(t *testing.T) {
	cart := NewCart()
	cart.AddItem(testProduct("ps-001", "Minero Tradicional", 27.00))
	cart.AddItem(testProduct("bb-001", "Agua Natural", 15.00))

	cart.RemoveItem("ps-001")
	assert.Equal(t, 0, cart.QuantityOf("ps-001"))
	assert.Equal(t, 1, cart.QuantityOf("bb-001"))

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.ItemCount())
}

func TestCartSnapshotIsIsolated(t *testing.T) {
	cart := NewCart()
	cart.AddItem(testProduct("ps-001", "Minero Tradicional", 27.00))

	snapshot := cart.Snapshot()
	snapshot[0].Quantity = 99

	assert.Equal(t, 1, cart.QuantityOf("ps-001"))
}

func TestCartBreakdown(t *testing.T) {
	cart := NewCart()
	minero := testProduct("ps-001", "Minero Tradicional", 27.00)
	cart.AddItem(minero)
	cart.AddItem(minero)
	cart.AddItem(testProduct("bb-001", "Agua Natural", 15.00))

	breakdown := cart.Breakdown()
	assert.Equal(t, 69.00, breakdown.Total)
	assert.Equal(t, 59.48, breakdown.Subtotal)
	assert.Equal(t, 9.52, breakdown.Tax)
}

func TestOrderPendingAmount(t *testing.T) {
	order := &Order{Total: 480.00, Advance: 200.00}
	assert.Equal(t, 280.00, order.PendingAmount())

	noAdvance := &Order{Total: 69.00}
	assert.Equal(t, 69.00, noAdvance.PendingAmount())
}
