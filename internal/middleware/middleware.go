package middleware

import (
	"errors"
	"net/http"
	"strings"

	"marketplace-api/internal/dto"
	"marketplace-api/internal/logger"
	"marketplace-api/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// TokenVerifier is satisfied by *service.TokenIssuer.
type TokenVerifier interface {
	Verify(token string) (*service.Claims, error)
}

var errNoToken = errors.New("no bearer token")

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(strings.TrimSpace(authHeader), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errNoToken
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", errNoToken
	}
	return token, nil
}

// RequireAuth 驗證 Bearer token，成功後把 claims 放進 context
// 缺少 token 回 401；token 無效或過期回 400
func RequireAuth(tokens TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, dto.Error("Access denied. No token provided."))
			}
			claims, err := tokens.Verify(token)
			if err != nil {
				logger.Debugf("reject token on %s %s: %v", c.Request().Method, c.Path(), err)
				return c.JSON(http.StatusBadRequest, dto.Error("Invalid token."))
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom returns the claims RequireAuth stored, or nil.
func ClaimsFrom(c echo.Context) *service.Claims {
	claims, _ := c.Get(ContextUserKey).(*service.Claims)
	return claims
}
