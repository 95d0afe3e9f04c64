package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pastesytony/pos-api/internal/domain/enum"
	"github.com/pastesytony/pos-api/pkg/money"
	"gorm.io/gorm"
)

// Customer holds the contact details captured on an order
type Customer struct {
	Name    string  `gorm:"size:255" json:"name"`
	Phone   string  `gorm:"size:50" json:"phone"`
	Address *string `gorm:"size:255" json:"address,omitempty"`
}

// Order represents a saved order: either an instant order fulfilled
// from the register or a pre-order scheduled for future pickup. The
// price breakdown is computed once at creation and frozen.
type Order struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	OrderNumber   string           `gorm:"size:10;not null;index" json:"order_number"`
	Type          enum.OrderType   `gorm:"default:0;index" json:"type"`
	Status        enum.OrderStatus `gorm:"default:0;index" json:"status"`
	Subtotal      float64          `gorm:"type:numeric(10,2)" json:"subtotal"`
	Tax           float64          `gorm:"type:numeric(10,2)" json:"tax"`
	Total         float64          `gorm:"type:numeric(10,2)" json:"total"`
	Customer      Customer         `gorm:"embedded;embeddedPrefix:customer_" json:"customer"`
	PaymentMethod enum.PaymentMethod `gorm:"default:0" json:"payment_method"`
	PickupDate    *time.Time       `json:"pickup_date,omitempty"`
	PickupTime    *string          `gorm:"size:10" json:"pickup_time,omitempty"`
	Advance       float64          `gorm:"type:numeric(10,2);default:0" json:"advance"`
	Notes         *string          `gorm:"type:text" json:"notes,omitempty"`
	EmployeeID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"employee_id"`
	BranchID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"branch_id"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// PendingAmount returns what remains to collect on a pre-order after
// the advance payment.
func (o *Order) PendingAmount() float64 {
	return money.Round2(o.Total - o.Advance)
}

// LineItems converts the persisted rows back to snapshot form
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = LineItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}
	return items
}

// OrderItem is a persisted line item snapshot belonging to one order
type OrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	ProductID string    `gorm:"size:50;not null" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Price     float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	Quantity  int       `gorm:"not null" json:"quantity"`
}

// BeforeCreate generates a UUID before creating a new order item
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
