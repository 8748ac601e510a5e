package domain

import "github.com/golang-jwt/jwt/v5"

// Roles aceitos nos tokens de acesso
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
