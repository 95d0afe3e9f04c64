package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pastesytony/pos-api/internal/domain/entity"
	"github.com/pastesytony/pos-api/internal/domain/repository"
	"github.com/pastesytony/pos-api/pkg/apperror"
	"github.com/pastesytony/pos-api/pkg/utils"
)

// AuthService handles register authentication. Login is by terminal
// PIN alone: the register is a shared device, so there is no username.
type AuthService struct {
	employeeRepo repository.EmployeeRepository
	jwtManager   *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(employeeRepo repository.EmployeeRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		employeeRepo: employeeRepo,
		jwtManager:   jwtManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	PIN string
}

// LoginOutput represents the login output
type LoginOutput struct {
	Employee     *entity.Employee
	AccessToken  string
	RefreshToken string
}

// Login authenticates an employee by PIN and returns session tokens.
// The PIN is matched against every active employee; hashes make a
// direct lookup impossible, and the roster is a handful of people.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if !utils.ValidPINFormat(input.PIN) {
		return nil, apperror.ErrInvalidPIN
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}

	var employee *entity.Employee
	for i := range employees {
		if utils.CheckPIN(input.PIN, employees[i].PINHash) {
			employee = &employees[i]
			break
		}
	}
	if employee == nil {
		return nil, apperror.ErrInvalidPIN
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(employee.ID, employee.Name, employee.BranchID, employee.Role)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(employee.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Employee:     employee,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshToken exchanges a valid refresh token for a new token pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	employeeID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	employee, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	if employee == nil || !employee.IsActive {
		return nil, apperror.ErrUnauthorized
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(employee.ID, employee.Name, employee.BranchID, employee.Role)
	if err != nil {
		return nil, err
	}

	newRefreshToken, err := s.jwtManager.GenerateRefreshToken(employee.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Employee:     employee,
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// GetEmployee returns one employee by ID
func (s *AuthService) GetEmployee(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}
	return employee, nil
}
