package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/ecom-api/internal/tokens"
	"github.com/Skotchmaster/ecom-api/internal/transport"
)

// RequireAuth validates the bearer token and puts user_id and role
// into the echo context for handlers downstream.
func RequireAuth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenStr == "" {
				return c.JSON(http.StatusUnauthorized, transport.ErrorResponse{
					Code:    transport.CodeUnauthorized,
					Message: "missing bearer token",
				})
			}

			claims, err := tokens.AccessClaimsFromToken(tokenStr, secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, transport.ErrorResponse{
					Code:    transport.CodeUnauthorized,
					Message: "invalid token",
				})
			}

			userID, err := claims.UserID()
			if err != nil {
				return c.JSON(http.StatusUnauthorized, transport.ErrorResponse{
					Code:    transport.CodeUnauthorized,
					Message: "invalid token",
				})
			}

			c.Set("user_id", userID)
			c.Set("role", claims.Role)
			return next(c)
		}
	}
}
