package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pastesytony/pos-api/internal/application/service"
	"github.com/pastesytony/pos-api/internal/domain/enum"
	"github.com/pastesytony/pos-api/internal/presentation/http/dto/request"
	"github.com/pastesytony/pos-api/internal/presentation/http/dto/response"
)

// SaleHandler handles checkout and the sales ledger endpoints
type SaleHandler struct {
	saleService *service.SaleService
	cartService *service.CartService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService, cartService *service.CartService) *SaleHandler {
	return &SaleHandler{
		saleService: saleService,
		cartService: cartService,
	}
}

// Checkout handles POST /sales/checkout: the employee's cart becomes a
// ledger entry and the cart is cleared.
func (h *SaleHandler) Checkout(c *gin.Context) {
	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid checkout request: "+err.Error())
		return
	}

	identity := GetIdentity(c)

	items, _, err := h.cartService.TakeSnapshot(c.Request.Context(), identity.EmployeeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	paymentMethod, _ := enum.ParsePaymentMethod(req.PaymentMethod)

	sale, err := h.saleService.RegisterSale(c.Request.Context(), identity, &service.RegisterSaleInput{
		Items:         items,
		PaymentMethod: paymentMethod,
		CashReceived:  req.CashReceived,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.cartService.ClearCart(c.Request.Context(), identity.EmployeeID)

	response.Created(c, "Sale registered", sale)
}

// Get handles GET /sales/:id
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved", sale)
}

// ListToday handles GET /sales/today
func (h *SaleHandler) ListToday(c *gin.Context) {
	sales, err := h.saleService.ListDaySales(c.Request.Context(), GetBranchID(c), time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales retrieved", sales)
}

// ListMine handles GET /sales/mine: the session employee's sales today
func (h *SaleHandler) ListMine(c *gin.Context) {
	sales, err := h.saleService.ListEmployeeDaySales(c.Request.Context(), GetEmployeeID(c), time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales retrieved", sales)
}
