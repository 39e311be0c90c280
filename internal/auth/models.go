package auth

import (
	"github.com/golang-jwt/jwt/v4"
)

// LoginRequest represents the login request payload
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=2,max=100"`
	Password string `json:"password" validate:"required,min=4"`
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=2,max=100"`
	Password string `json:"password" validate:"required,min=4"`
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	Admin       AdminResponse `json:"admin"`
	AccessToken string        `json:"access_token"`
	ExpiresIn   int64         `json:"expires_in"`
}

// AdminResponse represents admin data in responses (without sensitive info)
type AdminResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// JWTClaims represents JWT token claims
type JWTClaims struct {
	AdminID  string `json:"admin_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
