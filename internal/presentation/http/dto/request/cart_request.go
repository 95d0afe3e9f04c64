package request

// AddCartItemRequest represents adding a catalog product to the cart
type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required,max=50"`
}

// SetCartQuantityRequest represents setting a cart line's quantity
type SetCartQuantityRequest struct {
	ProductID string `json:"product_id" binding:"required,max=50"`
	Quantity  int    `json:"quantity"`
}
