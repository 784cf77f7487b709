package httpserver

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/ecom-api/internal/transport"
)

func respondError(c echo.Context, status int, code, message string) error {
	return c.JSON(status, transport.ErrorResponse{Code: code, Message: message})
}

// parseUintParam rejects anything that is not a positive integer.
func parseUintParam(c echo.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}
