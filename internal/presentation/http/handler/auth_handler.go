package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pastesytony/pos-api/internal/application/service"
	"github.com/pastesytony/pos-api/internal/presentation/http/dto/request"
	"github.com/pastesytony/pos-api/internal/presentation/http/dto/response"
	"github.com/pastesytony/pos-api/pkg/apperror"
)

// AuthHandler handles register authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
	cartService *service.CartService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, cartService *service.CartService) *AuthHandler {
	return &AuthHandler{authService: authService, cartService: cartService}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Do not leak whether the PIN shape or value was wrong
		response.Error(c, apperror.ErrInvalidPIN)
		return
	}

	output, err := h.authService.Login(c.Request.Context(), &service.LoginInput{PIN: req.PIN})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"employee":      output.Employee,
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
	})
}

// RefreshToken handles POST /auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Refresh token is required")
		return
	}

	output, err := h.authService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Token refreshed", gin.H{
		"employee":      output.Employee,
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
	})
}

// Logout handles POST /auth/logout. Tokens are stateless, so logout
// only discards the employee's in-progress cart.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.cartService.ClearCart(c.Request.Context(), GetEmployeeID(c))
	response.OK(c, "Logged out", nil)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	employee, err := h.authService.GetEmployee(c.Request.Context(), GetEmployeeID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee retrieved", employee)
}
