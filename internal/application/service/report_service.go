package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pastesytony/pos-api/internal/domain/enum"
	"github.com/pastesytony/pos-api/internal/domain/repository"
	"github.com/pastesytony/pos-api/pkg/apperror"
	"github.com/pastesytony/pos-api/pkg/money"
)

// ReportService aggregates the day's activity for the register view
// and handles the end-of-shift close.
type ReportService struct {
	saleRepo    repository.SaleRepository
	orderRepo   repository.OrderRepository
	counterRepo repository.CounterRepository
}

// NewReportService creates a new report service
func NewReportService(
	saleRepo repository.SaleRepository,
	orderRepo repository.OrderRepository,
	counterRepo repository.CounterRepository,
) *ReportService {
	return &ReportService{
		saleRepo:    saleRepo,
		orderRepo:   orderRepo,
		counterRepo: counterRepo,
	}
}

// RegisterSummary is the cash register snapshot for one day
type RegisterSummary struct {
	Date          string  `json:"date"`
	TotalSales    float64 `json:"total_sales"`
	CashTotal     float64 `json:"cash_total"`
	CardTotal     float64 `json:"card_total"`
	TransferTotal float64 `json:"transfer_total"`
	SalesCount    int     `json:"sales_count"`
	AverageTicket float64 `json:"average_ticket"`
	ActiveOrders  int     `json:"active_orders"`
	OrdersCreated int     `json:"orders_created"`
}

// Summary computes the branch's register totals for the given day. An
// empty ledger yields a zero summary, never a division by zero.
func (s *ReportService) Summary(ctx context.Context, branchID uuid.UUID, day time.Time) (*RegisterSummary, error) {
	sales, err := s.saleRepo.ListBranchDay(ctx, branchID, day)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}

	summary := &RegisterSummary{
		Date:       day.Format("2006-01-02"),
		SalesCount: len(sales),
	}

	for _, sale := range sales {
		summary.TotalSales += sale.Total
		switch sale.PaymentMethod {
		case enum.PaymentMethodCash:
			summary.CashTotal += sale.Total
		case enum.PaymentMethodCard:
			summary.CardTotal += sale.Total
		case enum.PaymentMethodTransfer:
			summary.TransferTotal += sale.Total
		}
	}

	summary.TotalSales = money.Round2(summary.TotalSales)
	summary.CashTotal = money.Round2(summary.CashTotal)
	summary.CardTotal = money.Round2(summary.CardTotal)
	summary.TransferTotal = money.Round2(summary.TransferTotal)

	if summary.SalesCount > 0 {
		summary.AverageTicket = money.Round2(summary.TotalSales / float64(summary.SalesCount))
	}

	active, err := s.orderRepo.ListActive(ctx, branchID)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	summary.ActiveOrders = len(active)

	created, err := s.orderRepo.ListDay(ctx, branchID, day)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	summary.OrdersCreated = len(created)

	return summary, nil
}

// CloseShiftOutput is the final summary produced by a shift close
type CloseShiftOutput struct {
	Summary  *RegisterSummary `json:"summary"`
	ClosedAt time.Time        `json:"closed_at"`
}

// CloseShift ends the branch's register day: it captures the closing
// summary, clears the day's ledger and resets the ticket counter so
// the next shift starts at #001.
func (s *ReportService) CloseShift(ctx context.Context, branchID uuid.UUID) (*CloseShiftOutput, error) {
	now := time.Now()

	summary, err := s.Summary(ctx, branchID, now)
	if err != nil {
		return nil, err
	}

	if err := s.saleRepo.ClearBranchDay(ctx, branchID, now); err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	if err := s.counterRepo.Reset(ctx, branchID); err != nil {
		return nil, apperror.NewPersistenceError(err)
	}

	return &CloseShiftOutput{Summary: summary, ClosedAt: now}, nil
}
