package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pastesytony/pos-api/internal/domain/entity"
	domainRepo "github.com/pastesytony/pos-api/internal/domain/repository"
)

type idempotencyKeyID struct {
	key        string
	employeeID uuid.UUID
}

type idempotencyRepository struct {
	mu   sync.RWMutex
	keys map[idempotencyKeyID]entity.IdempotencyKey
}

// NewIdempotencyRepository creates an in-memory idempotency key repository
func NewIdempotencyRepository() domainRepo.IdempotencyRepository {
	return &idempotencyRepository{keys: make(map[idempotencyKeyID]entity.IdempotencyKey)}
}

func (r *idempotencyRepository) GetByKey(ctx context.Context, key string, employeeID uuid.UUID) (*entity.IdempotencyKey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.keys[idempotencyKeyID{key: key, employeeID: employeeID}]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (r *idempotencyRepository) Create(ctx context.Context, key *entity.IdempotencyKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if key.ID == uuid.Nil {
		key.ID = uuid.New()
	}
	if key.CreatedAt.IsZero() {
		key.CreatedAt = time.Now()
	}
	r.keys[idempotencyKeyID{key: key.Key, employeeID: key.EmployeeID}] = *key
	return nil
}

func (r *idempotencyRepository) DeleteExpired(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for id, record := range r.keys {
		if now.After(record.ExpiresAt) {
			delete(r.keys, id)
		}
	}
	return nil
}
