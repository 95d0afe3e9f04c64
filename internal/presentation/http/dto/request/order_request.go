package request

// CustomerRequest carries the customer details captured on an order
type CustomerRequest struct {
	Name    string  `json:"name" binding:"max=255"`
	Phone   string  `json:"phone" binding:"max=50"`
	Address *string `json:"address" binding:"omitempty,max=255"`
}

// CreateOrderRequest represents creating an order from the current
// cart. Pre-orders additionally carry pickup details and an optional
// advance payment.
type CreateOrderRequest struct {
	Type          string          `json:"type" binding:"required,oneof=instant preorder"`
	Customer      CustomerRequest `json:"customer"`
	PaymentMethod string          `json:"payment_method" binding:"required,oneof=cash card transfer"`
	Notes         *string         `json:"notes"`

	// Pre-order fields
	PickupDate *string  `json:"pickup_date" binding:"omitempty,datetime=2006-01-02"`
	PickupTime *string  `json:"pickup_time" binding:"omitempty,max=10"`
	Advance    *float64 `json:"advance" binding:"omitempty,min=0"`
}

// UpdateOrderStatusRequest represents a kitchen flow transition
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=preparing ready"`
}

// OrderFilterRequest represents order listing filters
type OrderFilterRequest struct {
	Type      string `form:"type"`
	Status    string `form:"status"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
