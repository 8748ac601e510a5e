package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/mje-dashboard/internal/config"
	"github.com/vfg2006/mje-dashboard/internal/domain"
)

const issuer = "mje-dashboard"

type Authenticator interface {
	GenerateToken(subject, role string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		secretKey: []byte(cfg.Auth.SecretKey),
		ttl:       cfg.Auth.TokenTTL,
		now:       time.Now,
	}
}

// GenerateToken emite um token HS256 para o subject com o role informado
func (s *Service) GenerateToken(subject, role string) (string, error) {
	if len(s.secretKey) == 0 {
		return "", ErrMissingSecret
	}
	if subject == "" {
		return "", ErrMissingClaims
	}
	if !validRole(role) {
		return "", NewAuthError(ErrInvalidRole, role)
	}

	now := s.now()
	claims := domain.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if len(s.secretKey) == 0 {
		return nil, ErrMissingSecret
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, err.Error())
		}
		return nil, NewAuthError(ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if !validRole(claims.Role) {
		return nil, NewAuthError(ErrInvalidRole, claims.Role)
	}

	return claims, nil
}

func validRole(role string) bool {
	return role == domain.RoleAdmin || role == domain.RoleViewer
}
