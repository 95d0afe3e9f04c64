package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pastesytony/pos-api/internal/application/service"
	"github.com/pastesytony/pos-api/internal/presentation/http/dto/request"
	"github.com/pastesytony/pos-api/internal/presentation/http/dto/response"
)

// ProductHandler handles catalog endpoints
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles GET /products
func (h *ProductHandler) List(c *gin.Context) {
	var req request.ProductFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid filter parameters")
		return
	}

	products, err := h.productService.ListProducts(c.Request.Context(), &service.ListProductsInput{
		Category:      req.Category,
		AvailableOnly: req.AvailableOnly,
		Search:        req.Search,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Products retrieved", products)
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.productService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved", product)
}

// SetAvailability handles PATCH /products/:id/availability
func (h *ProductHandler) SetAvailability(c *gin.Context) {
	var req request.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "is_available is required")
		return
	}

	product, err := h.productService.SetAvailability(c.Request.Context(), c.Param("id"), *req.IsAvailable)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product availability updated", product)
}

// UpdatePrice handles PATCH /products/:id/price
func (h *ProductHandler) UpdatePrice(c *gin.Context) {
	var req request.UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "price is required and must be greater than zero")
		return
	}

	product, err := h.productService.UpdatePrice(c.Request.Context(), c.Param("id"), req.Price)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product price updated", product)
}

// Categories handles GET /products/categories
func (h *ProductHandler) Categories(c *gin.Context) {
	response.OK(c, "Categories retrieved", h.productService.Categories())
}
