package entity

import (
	"sync"

	"github.com/pastesytony/pos-api/pkg/money"
)

// LineItem is a snapshot of a product inside a cart, order or sale.
// It copies name and price so catalog edits never mutate history.
type LineItem struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Cart is the mutable working set of line items for one in-progress
// sale. It is owned by a single employee session; quantities are always
// at least 1 and a line dropping to 0 is removed, never stored.
type Cart struct {
	mu    sync.Mutex
	items []LineItem
}

// NewCart creates an empty cart
func NewCart() *Cart {
	return &Cart{}
}

// AddItem merges the product into the cart: an existing line gains one
// unit, otherwise a new line with quantity 1 is appended.
func (c *Cart) AddItem(product *Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == product.ID {
			c.items[i].Quantity++
			return
		}
	}

	c.items = append(c.items, LineItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  1,
	})
}

// IncrementQuantity adds one unit to the matching line. Reports whether
// the line existed.
func (c *Cart) IncrementQuantity(productID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity++
			return true
		}
	}
	return false
}

// DecrementQuantity removes one unit from the matching line. A line
// already at quantity 1 is left untouched; the UI exposes an explicit
// remove for that. Reports whether the line existed.
func (c *Cart) DecrementQuantity(productID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == productID {
			if c.items[i].Quantity > 1 {
				c.items[i].Quantity--
			}
			return true
		}
	}
	return false
}

// SetQuantity sets the quantity of the matching line; a quantity of 0
// or less removes the line entirely.
func (c *Cart) SetQuantity(productID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(productID)
		return
	}

	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes the line regardless of quantity
func (c *Cart) RemoveItem(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
}

func (c *Cart) removeLocked(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart (after checkout, order save or logout)
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Snapshot exports an immutable copy of the current lines for handing
// to order or sale creation. The copy never aliases cart state.
func (c *Cart) Snapshot() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := make([]LineItem, len(c.items))
	copy(snapshot, c.items)
	return snapshot
}

// Breakdown computes the current (subtotal, tax, total) triple
func (c *Cart) Breakdown() money.Breakdown {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := make([]money.LineItem, len(c.items))
	for i, item := range c.items {
		lines[i] = money.LineItem{Price: item.Price, Quantity: item.Quantity}
	}

	// Cart lines come from the catalog with non-negative prices and
	// quantities of at least 1, so decomposition cannot fail here.
	breakdown, _ := money.PriceBreakdown(lines)
	return breakdown
}

// ItemCount returns the sum of quantities across all lines
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items) == 0
}

// QuantityOf returns the quantity of the matching line, 0 when absent
func (c *Cart) QuantityOf(productID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if item.ProductID == productID {
			return item.Quantity
		}
	}
	return 0
}
