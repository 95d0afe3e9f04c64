package service

import (
	"context"
	"testing"
	"time"

	"github.com/pastesytony/pos-api/internal/domain/entity"
	"github.com/pastesytony/pos-api/internal/infrastructure/repository/memory"
	"github.com/pastesytony/pos-api/pkg/apperror"
	"github.com/pastesytony/pos-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) *AuthService {
	t.Helper()

	branchRepo := memory.NewBranchRepository()
	employeeRepo := memory.NewEmployeeRepository(branchRepo)
	ctx := context.Background()

	branch := entity.Branch{Name: "Pastes y Empanadas Tony", IsActive: true}
	require.NoError(t, branchRepo.Create(ctx, &branch))

	seeds := []struct {
		name string
		pin  string
		role string
	}{
		{"Edith", "123456", entity.RoleCashier},
		{"Administrador", "999999", entity.RoleAdmin},
	}
	for _, seed := range seeds {
		hash, err := utils.HashPIN(seed.pin)
		require.NoError(t, err)
		employee := entity.Employee{
			Name:     seed.name,
			PINHash:  hash,
			Role:     seed.role,
			BranchID: branch.ID,
			IsActive: true,
		}
		require.NoError(t, employeeRepo.Create(ctx, &employee))
	}

	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(employeeRepo, jwtManager)
}

func TestLoginWithValidPIN(t *testing.T) {
	svc := newAuthFixture(t)

	output, err := svc.Login(context.Background(), &LoginInput{PIN: "123456"})
	require.NoError(t, err)

	assert.Equal(t, "Edith", output.Employee.Name)
	assert.NotEmpty(t, output.AccessToken)
	assert.NotEmpty(t, output.RefreshToken)
}

func TestLoginWithWrongPIN(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &LoginInput{PIN: "000000"})
	assert.ErrorIs(t, err, apperror.ErrInvalidPIN)
}

func TestLoginRejectsMalformedPIN(t *testing.T) {
	svc := newAuthFixture(t)
	ctx := context.Background()

	for _, pin := range []string{"", "12345", "1234567", "12a456"} {
		_, err := svc.Login(ctx, &LoginInput{PIN: pin})
		assert.ErrorIs(t, err, apperror.ErrInvalidPIN, "pin %q", pin)
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := newAuthFixture(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, &LoginInput{PIN: "999999"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, login.Employee.ID, refreshed.Employee.ID)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefreshTokenRejectsGarbage(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.RefreshToken(context.Background(), "not-a-token")
	assert.Error(t, err)
}
