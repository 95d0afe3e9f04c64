package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pastesytony/pos-api/internal/application/service"
	"github.com/pastesytony/pos-api/internal/presentation/http/dto/request"
	"github.com/pastesytony/pos-api/internal/presentation/http/dto/response"
)

// CartHandler handles the register cart endpoints
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Get handles GET /cart
func (h *CartHandler) Get(c *gin.Context) {
	cart := h.cartService.GetCart(c.Request.Context(), GetEmployeeID(c))
	response.OK(c, "Cart retrieved", cart)
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req request.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "product_id is required")
		return
	}

	cart, err := h.cartService.AddItem(c.Request.Context(), GetEmployeeID(c), req.ProductID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added", cart)
}

// IncrementItem handles POST /cart/items/:product_id/increment
func (h *CartHandler) IncrementItem(c *gin.Context) {
	cart, err := h.cartService.IncrementItem(c.Request.Context(), GetEmployeeID(c), c.Param("product_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quantity increased", cart)
}

// DecrementItem handles POST /cart/items/:product_id/decrement
func (h *CartHandler) DecrementItem(c *gin.Context) {
	cart, err := h.cartService.DecrementItem(c.Request.Context(), GetEmployeeID(c), c.Param("product_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quantity decreased", cart)
}

// SetQuantity handles PUT /cart/items
func (h *CartHandler) SetQuantity(c *gin.Context) {
	var req request.SetCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "product_id is required")
		return
	}

	cart := h.cartService.SetItemQuantity(c.Request.Context(), GetEmployeeID(c), req.ProductID, req.Quantity)
	response.OK(c, "Quantity updated", cart)
}

// RemoveItem handles DELETE /cart/items/:product_id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cart := h.cartService.RemoveItem(c.Request.Context(), GetEmployeeID(c), c.Param("product_id"))
	response.OK(c, "Item removed", cart)
}

// Clear handles DELETE /cart
func (h *CartHandler) Clear(c *gin.Context) {
	cart := h.cartService.ClearCart(c.Request.Context(), GetEmployeeID(c))
	response.OK(c, "Cart cleared", cart)
}
