package middleware

import (
	"strconv"
	"strings"

	"authcore/config"
	"authcore/internal/delivery/http/response"
	"authcore/internal/domain/identity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware attaches the request's authenticated identity, if any.
// Tokens are issued elsewhere; this middleware only verifies them.
type AuthMiddleware struct {
	secret []byte
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{secret: []byte(cfg.SecretKey.Access)}
}

// Identify verifies an optional HS256 bearer token and stores its subject as
// the request identity. Requests without an Authorization header pass through
// anonymously; a present but invalid token is rejected.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return next(c)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		userID, err := m.subject(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		ctx := identity.WithContext(c.Request().Context(), identity.Identity{UserID: userID})
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireIdentity rejects requests that Identify left anonymous.
func (m *AuthMiddleware) RequireIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := identity.FromContext(c.Request().Context()); !ok {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
		}

		return next(c)
	}
}

func (m *AuthMiddleware) subject(tokenString string) (uint64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, err
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return 0, err
	}

	return strconv.ParseUint(sub, 10, 64)
}
