package request

// ProductFilterRequest represents catalog filter parameters
type ProductFilterRequest struct {
	Category      string `form:"category"`
	AvailableOnly bool   `form:"available_only"`
	Search        string `form:"search"`
}

// SetAvailabilityRequest represents toggling a product on or off the menu
type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

// UpdatePriceRequest represents changing a product's catalog price
type UpdatePriceRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}
