package request

// LoginRequest represents a PIN login request
type LoginRequest struct {
	PIN string `json:"pin" binding:"required,len=6,numeric"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
