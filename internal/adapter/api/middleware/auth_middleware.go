package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"linkup/internal/domain/auth"
)

const principalContextKey = "principal"

type principalClaims struct {
	Provider   string `json:"provider"`
	ProviderID string `json:"provider_id"`
	Nickname   string `json:"nickname"`
	jwt.RegisteredClaims
}

type AuthMiddleware struct {
	jwtSecret string
}

func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSecret: jwtSecret,
	}
}

func (m *AuthMiddleware) parsePrincipal(authHeader string) *auth.Principal {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil
	}

	claims := &principalClaims{}
	token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(m.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	return &auth.Principal{
		Provider:   claims.Provider,
		ProviderID: claims.ProviderID,
		Nickname:   claims.Nickname,
	}
}

// Authenticate requires a valid bearer token and stores the resolved
// principal in the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		principal := m.parsePrincipal(authHeader)
		if principal == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set(principalContextKey, principal)
		return next(c)
	}
}

// OptionalAuthenticate resolves a principal when a valid token is present
// and continues without one otherwise. Profile pages render for anonymous
// viewers; the principal only flips the "me" flag.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader != "" {
			if principal := m.parsePrincipal(authHeader); principal != nil {
				c.Set(principalContextKey, principal)
			}
		}
		return next(c)
	}
}

// PrincipalFromContext returns the caller's principal, or nil when the
// request was not authenticated.
func PrincipalFromContext(c echo.Context) *auth.Principal {
	principal, _ := c.Get(principalContextKey).(*auth.Principal)
	return principal
}
