package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pastesytony/pos-api/internal/domain/entity"
	domainRepo "github.com/pastesytony/pos-api/internal/domain/repository"
)

type employeeRepository struct {
	mu        sync.RWMutex
	employees map[uuid.UUID]entity.Employee
	branches  *branchRepository
}

// NewEmployeeRepository creates an in-memory employee repository. It
// resolves the Branch association through the given branch repository,
// mirroring the SQL store's preload.
func NewEmployeeRepository(branches domainRepo.BranchRepository) domainRepo.EmployeeRepository {
	br, _ := branches.(*branchRepository)
	return &employeeRepository{
		employees: make(map[uuid.UUID]entity.Employee),
		branches:  br,
	}
}

func (r *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if employee.ID == uuid.Nil {
		employee.ID = uuid.New()
	}
	now := time.Now()
	employee.CreatedAt = now
	employee.UpdatedAt = now
	r.employees[employee.ID] = *employee
	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.employees[id]
	if !ok {
		return nil, nil
	}
	r.attachBranch(&e)
	return &e, nil
}

func (r *employeeRepository) ListActive(ctx context.Context) ([]entity.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entity.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		if !e.IsActive {
			continue
		}
		r.attachBranch(&e)
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.employees)), nil
}

func (r *employeeRepository) attachBranch(e *entity.Employee) {
	if r.branches == nil {
		return
	}
	if b, _ := r.branches.GetByID(context.Background(), e.BranchID); b != nil {
		e.Branch = *b
	}
}

type branchRepository struct {
	mu       sync.RWMutex
	branches map[uuid.UUID]entity.Branch
}

// NewBranchRepository creates an in-memory branch repository
func NewBranchRepository() domainRepo.BranchRepository {
	return &branchRepository{branches: make(map[uuid.UUID]entity.Branch)}
}

func (r *branchRepository) Create(ctx context.Context, branch *entity.Branch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if branch.ID == uuid.Nil {
		branch.ID = uuid.New()
	}
	now := time.Now()
	branch.CreatedAt = now
	branch.UpdatedAt = now
	r.branches[branch.ID] = *branch
	return nil
}

func (r *branchRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Branch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.branches[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *branchRepository) List(ctx context.Context) ([]entity.Branch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entity.Branch, 0, len(r.branches))
	for _, b := range r.branches {
		result = append(result, b)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}
