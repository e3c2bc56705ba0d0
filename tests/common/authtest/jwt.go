//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"
	"time"

	"stay-admin/internal/domain/user"
	"stay-admin/internal/pkg/config"
	"stay-admin/internal/pkg/cookie"
	"stay-admin/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{service: jwt.NewService(cfg.Secret)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID string, role user.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, role, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID string, role user.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, role, -time.Minute)
	require.NoError(t, err)
	return token
}

// AccessCookie wraps a token the way the dashboard login stores it.
func (h *JWTHelper) AccessCookie(t *testing.T, userID string, role user.Role) *http.Cookie {
	t.Helper()
	return &http.Cookie{Name: cookie.AccessTokenCookieName, Value: h.GenerateToken(t, userID, role)}
}
