package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pastesytony/pos-api/internal/application/service"
	"github.com/pastesytony/pos-api/internal/domain/entity"
	"github.com/pastesytony/pos-api/internal/domain/enum"
	"github.com/pastesytony/pos-api/internal/presentation/http/dto/request"
	"github.com/pastesytony/pos-api/internal/presentation/http/dto/response"
	"github.com/pastesytony/pos-api/pkg/pagination"
)

// OrderHandler handles order lifecycle endpoints
type OrderHandler struct {
	orderService *service.OrderService
	cartService  *service.CartService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, cartService *service.CartService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		cartService:  cartService,
	}
}

// Create handles POST /orders. The order is built from the employee's
// current cart, which is cleared once the order is saved.
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid order request: "+err.Error())
		return
	}

	identity := GetIdentity(c)

	items, _, err := h.cartService.TakeSnapshot(c.Request.Context(), identity.EmployeeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	paymentMethod, _ := enum.ParsePaymentMethod(req.PaymentMethod)

	input := &service.CreateOrderInput{
		Items: items,
		Customer: entity.Customer{
			Name:    req.Customer.Name,
			Phone:   req.Customer.Phone,
			Address: req.Customer.Address,
		},
		PaymentMethod: paymentMethod,
		Notes:         req.Notes,
		PickupTime:    req.PickupTime,
	}
	if req.PickupDate != nil {
		pickupDate, err := time.Parse("2006-01-02", *req.PickupDate)
		if err != nil {
			response.BadRequest(c, "Invalid pickup date")
			return
		}
		input.PickupDate = &pickupDate
	}
	if req.Advance != nil {
		input.Advance = *req.Advance
	}

	var order *entity.Order
	if req.Type == "preorder" {
		order, err = h.orderService.CreatePreOrder(c.Request.Context(), identity, input)
	} else {
		order, err = h.orderService.CreateInstantOrder(c.Request.Context(), identity, input)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	h.cartService.ClearCart(c.Request.Context(), identity.EmployeeID)

	response.Created(c, "Order created", order)
}

// Get handles GET /orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved", order)
}

// List handles GET /orders
func (h *OrderHandler) List(c *gin.Context) {
	var req request.OrderFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid filter parameters")
		return
	}

	input := &service.ListOrdersInput{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
	}
	if req.Type != "" {
		orderType, ok := enum.ParseOrderType(req.Type)
		if !ok {
			response.BadRequest(c, "Unknown order type: "+req.Type)
			return
		}
		input.Type = &orderType
	}
	if req.Status != "" {
		status, ok := enum.ParseOrderStatus(req.Status)
		if !ok {
			response.BadRequest(c, "Unknown order status: "+req.Status)
			return
		}
		input.Status = &status
	}
	if req.StartDate != "" {
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			response.BadRequest(c, "Invalid start date")
			return
		}
		input.StartDate = &start
	}
	if req.EndDate != "" {
		end, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			response.BadRequest(c, "Invalid end date")
			return
		}
		// Make the range inclusive of the whole end day
		end = end.Add(24*time.Hour - time.Nanosecond)
		input.EndDate = &end
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), GetBranchID(c), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved", result)
}

// ListActive handles GET /orders/active
func (h *OrderHandler) ListActive(c *gin.Context) {
	orders, err := h.orderService.ListActiveOrders(c.Request.Context(), GetBranchID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Active orders retrieved", orders)
}

// UpdateStatus handles PATCH /orders/:id/status for kitchen flow
// transitions (preparing, ready).
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "status must be preparing or ready")
		return
	}

	status, _ := enum.ParseOrderStatus(req.Status)

	order, err := h.orderService.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated", order)
}

// Deliver handles POST /orders/:id/deliver. Delivery finalizes the
// order and appends its sale to the ledger.
func (h *OrderHandler) Deliver(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, sale, err := h.orderService.MarkAsDelivered(c.Request.Context(), GetIdentity(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order delivered", gin.H{
		"order": order,
		"sale":  sale,
	})
}

// Cancel handles POST /orders/:id/cancel
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.CancelOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order cancelled", order)
}
