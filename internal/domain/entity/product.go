package entity

import (
	"time"

	"github.com/pastesytony/pos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Product represents a catalog entry. Prices are tax-inclusive (IVA
// embedded); carts, orders and sales snapshot the price at add time, so
// later catalog edits never alter historical records.
type Product struct {
	ID          string               `gorm:"size:50;primary_key" json:"id"`
	Name        string               `gorm:"size:255;not null" json:"name"`
	Price       float64              `gorm:"type:numeric(10,2);not null" json:"price"`
	Category    enum.ProductCategory `gorm:"not null;index" json:"category"`
	Description *string              `gorm:"type:text" json:"description,omitempty"`
	ImageURL    *string              `gorm:"size:255" json:"image_url,omitempty"`
	IsAvailable bool                 `gorm:"default:true" json:"is_available"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
	DeletedAt   gorm.DeletedAt       `gorm:"index" json:"-"`
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}
