package dto

// RegisterRequest is the JSON body for POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=1"`
}

// LoginRequest is the JSON body for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries the bearer token returned by register and login.
type TokenResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the uniform error body for every endpoint.
type ErrorResponse struct {
	Msg string `json:"msg"`
}
