package usecase

import (
	"stay-admin/internal/domain/user"
	"stay-admin/internal/pkg/jwt"
)

// TokenValidator turns a bearer token into the admin acting on the request.
type TokenValidator interface {
	ValidateToken(tokenString string) (*user.Admin, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (*user.Admin, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return user.NewAdmin(claims.UserID, claims.Role)
}
