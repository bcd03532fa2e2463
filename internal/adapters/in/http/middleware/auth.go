// Package middleware contains the HTTP middleware of the marketplace API:
// bearer token authentication and request metrics.
package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"marketplace/internal/core/domain/model/kernel"
)

// callerContextKey is the echo context key under which the authenticated
// caller identity is stored.
const callerContextKey = "caller_id"

// Auth authenticates requests with HMAC-signed bearer tokens. The token's
// sub claim carries the caller identity used by the role and ownership
// checks downstream.
type Auth struct {
	secret []byte
}

// NewAuth creates the authentication middleware with the given HMAC secret.
func NewAuth(secret string) *Auth {
	return &Auth{secret: []byte(secret)}
}

// Require returns an echo middleware that rejects requests without a valid
// bearer token and stores the caller identity in the request context.
func (a *Auth) Require() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(auth, "Bearer ") {
				return unauthorized(c, "invalid_request", "missing bearer token")
			}

			raw := strings.TrimPrefix(auth, "Bearer ")
			token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return a.secret, nil
			}, jwt.WithLeeway(30*time.Second))
			if err != nil || !token.Valid {
				return unauthorized(c, "invalid_token", "invalid jwt")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return unauthorized(c, "invalid_token", "claims parsing error")
			}

			sub, err := claims.GetSubject()
			if err != nil || sub == "" {
				return unauthorized(c, "invalid_token", "missing sub claim")
			}

			callerID, err := kernel.UUIDFromString(sub)
			if err != nil {
				return unauthorized(c, "invalid_token", "sub is not a valid id")
			}

			c.Set(callerContextKey, callerID)
			return next(c)
		}
	}
}

// CallerID extracts the authenticated caller identity stored by Require.
// The boolean is false on unauthenticated requests.
func CallerID(c echo.Context) (kernel.UUID, bool) {
	callerID, ok := c.Get(callerContextKey).(kernel.UUID)
	return callerID, ok
}

func unauthorized(c echo.Context, code, desc string) error {
	c.Response().Header().Set("WWW-Authenticate",
		`Bearer error="`+code+`", error_description="`+desc+`"`)
	return c.JSON(http.StatusUnauthorized, map[string]string{
		"error":             code,
		"error_description": desc,
	})
}
