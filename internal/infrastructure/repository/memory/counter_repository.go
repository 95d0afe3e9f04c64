package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	domainRepo "github.com/pastesytony/pos-api/internal/domain/repository"
)

type counterRepository struct {
	mu       sync.Mutex
	counters map[uuid.UUID]int64
}

// NewCounterRepository creates an in-memory register counter repository
func NewCounterRepository() domainRepo.CounterRepository {
	return &counterRepository{counters: make(map[uuid.UUID]int64)}
}

func (r *counterRepository) Next(ctx context.Context, branchID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.counters[branchID]++
	return r.counters[branchID], nil
}

func (r *counterRepository) Reset(ctx context.Context, branchID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.counters[branchID] = 0
	return nil
}
