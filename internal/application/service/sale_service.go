package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pastesytony/pos-api/internal/domain/entity"
	"github.com/pastesytony/pos-api/internal/domain/enum"
	"github.com/pastesytony/pos-api/internal/domain/repository"
	"github.com/pastesytony/pos-api/pkg/apperror"
	"github.com/pastesytony/pos-api/pkg/money"
)

// SaleService records completed transactions in the sales ledger
type SaleService struct {
	saleRepo repository.SaleRepository
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository) *SaleService {
	return &SaleService{saleRepo: saleRepo}
}

// RegisterSaleInput represents the checkout input
type RegisterSaleInput struct {
	Items         []entity.LineItem
	PaymentMethod enum.PaymentMethod
	// CashReceived is required for cash payments and ignored otherwise
	CashReceived *float64
}

// RegisterSale finalizes a direct register checkout and appends it to
// the ledger. Cash payments must cover the total; the change handed
// back is stored with the sale.
func (s *SaleService) RegisterSale(ctx context.Context, identity Identity, input *RegisterSaleInput) (*entity.Sale, error) {
	if len(input.Items) == 0 {
		return nil, apperror.ErrEmptyCart
	}

	lines := make([]money.LineItem, len(input.Items))
	for i, item := range input.Items {
		lines[i] = money.LineItem{Price: item.Price, Quantity: item.Quantity}
	}
	breakdown, err := money.PriceBreakdown(lines)
	if err != nil {
		return nil, err
	}

	sale := &entity.Sale{
		Subtotal:      breakdown.Subtotal,
		Tax:           breakdown.Tax,
		Total:         breakdown.Total,
		PaymentMethod: input.PaymentMethod,
		EmployeeID:    identity.EmployeeID,
		EmployeeName:  identity.EmployeeName,
		BranchID:      identity.BranchID,
	}

	if input.PaymentMethod == enum.PaymentMethodCash {
		if input.CashReceived == nil {
			return nil, apperror.NewBadRequestError("Cash payments require the amount received")
		}
		received := money.Round2(*input.CashReceived)
		if received < breakdown.Total {
			return nil, apperror.ErrInsufficientCash
		}
		change := money.Change(breakdown.Total, received)
		sale.CashReceived = &received
		sale.Change = &change
	}

	items := make([]entity.SaleItem, len(input.Items))
	for i, item := range input.Items {
		items[i] = entity.SaleItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}
	sale.Items = items

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	return sale, nil
}

// GetSale returns one ledger entry by ID
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListDaySales returns the branch's sales for one calendar day,
// newest first.
func (s *SaleService) ListDaySales(ctx context.Context, branchID uuid.UUID, day time.Time) ([]entity.Sale, error) {
	sales, err := s.saleRepo.ListBranchDay(ctx, branchID, day)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	return sales, nil
}

// ListEmployeeDaySales returns one employee's sales for the day
func (s *SaleService) ListEmployeeDaySales(ctx context.Context, employeeID uuid.UUID, day time.Time) ([]entity.Sale, error) {
	sales, err := s.saleRepo.ListEmployeeDay(ctx, employeeID, day)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	return sales, nil
}
