package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pastesytony/pos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Sale represents a completed, final financial transaction. Sales are
// immutable once created: the ledger is append-only and only a whole
// shift can be cleared, never an individual sale.
type Sale struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	Subtotal      float64            `gorm:"type:numeric(10,2)" json:"subtotal"`
	Tax           float64            `gorm:"type:numeric(10,2)" json:"tax"`
	Total         float64            `gorm:"type:numeric(10,2)" json:"total"`
	PaymentMethod enum.PaymentMethod `gorm:"default:0;index" json:"payment_method"`
	CashReceived  *float64           `gorm:"type:numeric(10,2)" json:"cash_received,omitempty"`
	Change        *float64           `gorm:"type:numeric(10,2)" json:"change,omitempty"`
	EmployeeID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"employee_id"`
	EmployeeName  string             `gorm:"size:255;not null" json:"employee_name"`
	BranchID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"branch_id"`
	CreatedAt     time.Time          `gorm:"index" json:"created_at"`

	Items []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// SaleItem is a persisted line item snapshot belonging to one sale
type SaleItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	SaleID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	ProductID string    `gorm:"size:50;not null" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Price     float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	Quantity  int       `gorm:"not null" json:"quantity"`
}

// BeforeCreate generates a UUID before creating a new sale item
func (i *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}
