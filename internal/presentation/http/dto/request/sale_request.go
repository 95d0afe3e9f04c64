package request

// CheckoutRequest represents finalizing the current cart as a sale
type CheckoutRequest struct {
	PaymentMethod string   `json:"payment_method" binding:"required,oneof=cash card transfer"`
	CashReceived  *float64 `json:"cash_received" binding:"omitempty,min=0"`
}
