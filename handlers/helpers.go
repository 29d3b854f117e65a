package handlers

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// currentUserID reads the id the auth middleware attached to the context.
func currentUserID(c echo.Context) uint {
	id, _ := c.Get("user_id").(uint)
	return id
}

// detail writes the {"detail": ...} error body used across the API.
func detail(c echo.Context, code int, msg string) error {
	return c.JSON(code, map[string]any{"detail": msg})
}

// atoiOr converts s to int, falling back to def.
func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
