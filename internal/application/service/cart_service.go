package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/pastesytony/pos-api/internal/domain/entity"
	"github.com/pastesytony/pos-api/internal/domain/repository"
	"github.com/pastesytony/pos-api/pkg/apperror"
	"github.com/pastesytony/pos-api/pkg/money"
)

// CartService manages the in-progress cart of each register session.
// Carts are transient working state, never persisted: a restart or
// logout simply starts the next sale from an empty cart.
type CartService struct {
	productRepo repository.ProductRepository

	mu    sync.Mutex
	carts map[uuid.UUID]*entity.Cart
}

// NewCartService creates a new cart service
func NewCartService(productRepo repository.ProductRepository) *CartService {
	return &CartService{
		productRepo: productRepo,
		carts:       make(map[uuid.UUID]*entity.Cart),
	}
}

// cart returns the employee's cart, creating it on first use
func (s *CartService) cart(employeeID uuid.UUID) *entity.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[employeeID]
	if !ok {
		c = entity.NewCart()
		s.carts[employeeID] = c
	}
	return c
}

// CartView is the cart state returned to the register UI
type CartView struct {
	Items     []entity.LineItem `json:"items"`
	Breakdown money.Breakdown   `json:"breakdown"`
	ItemCount int               `json:"item_count"`
}

// view builds the response snapshot for a cart
func view(c *entity.Cart) *CartView {
	return &CartView{
		Items:     c.Snapshot(),
		Breakdown: c.Breakdown(),
		ItemCount: c.ItemCount(),
	}
}

// GetCart returns the employee's current cart
func (s *CartService) GetCart(ctx context.Context, employeeID uuid.UUID) *CartView {
	return view(s.cart(employeeID))
}

// AddItem adds one unit of a catalog product to the cart. Unknown or
// unavailable products are rejected.
func (s *CartService) AddItem(ctx context.Context, employeeID uuid.UUID, productID string) (*CartView, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	if !product.IsAvailable {
		return nil, apperror.NewConflictError("Product is not available: " + product.Name)
	}

	c := s.cart(employeeID)
	c.AddItem(product)
	return view(c), nil
}

// IncrementItem adds one unit to an existing cart line
func (s *CartService) IncrementItem(ctx context.Context, employeeID uuid.UUID, productID string) (*CartView, error) {
	c := s.cart(employeeID)
	if !c.IncrementQuantity(productID) {
		return nil, apperror.NewNotFoundError("Cart item")
	}
	return view(c), nil
}

// DecrementItem removes one unit from an existing cart line. A line at
// quantity 1 stays; removal is explicit.
func (s *CartService) DecrementItem(ctx context.Context, employeeID uuid.UUID, productID string) (*CartView, error) {
	c := s.cart(employeeID)
	if !c.DecrementQuantity(productID) {
		return nil, apperror.NewNotFoundError("Cart item")
	}
	return view(c), nil
}

// SetItemQuantity sets a line's quantity; zero or less removes the line
func (s *CartService) SetItemQuantity(ctx context.Context, employeeID uuid.UUID, productID string, quantity int) *CartView {
	c := s.cart(employeeID)
	c.SetQuantity(productID, quantity)
	return view(c)
}

// RemoveItem deletes a line regardless of quantity
func (s *CartService) RemoveItem(ctx context.Context, employeeID uuid.UUID, productID string) *CartView {
	c := s.cart(employeeID)
	c.RemoveItem(productID)
	return view(c)
}

// ClearCart empties the employee's cart
func (s *CartService) ClearCart(ctx context.Context, employeeID uuid.UUID) *CartView {
	c := s.cart(employeeID)
	c.Clear()
	return view(c)
}

// TakeSnapshot atomically exports the cart lines for checkout or order
// creation and reports the current breakdown. The cart itself is only
// cleared after the resulting sale or order is saved.
func (s *CartService) TakeSnapshot(ctx context.Context, employeeID uuid.UUID) ([]entity.LineItem, money.Breakdown, error) {
	c := s.cart(employeeID)
	if c.IsEmpty() {
		return nil, money.Breakdown{}, apperror.ErrEmptyCart
	}
	return c.Snapshot(), c.Breakdown(), nil
}
