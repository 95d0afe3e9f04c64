package repository

import (
	"context"

	"github.com/google/uuid"
)

// CounterRepository mints the sequential order numbers for a branch's
// register. Next must be atomic: two racing calls return distinct,
// consecutive values. The counter only resets on an explicit
// end-of-shift clear, so numbers are never reused within a session
// even when an order is later cancelled.
type CounterRepository interface {
	Next(ctx context.Context, branchID uuid.UUID) (int64, error)
	Reset(ctx context.Context, branchID uuid.UUID) error
}
