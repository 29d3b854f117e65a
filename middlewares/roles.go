package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ganaa-shark09/Attendance-Management/models"
)

// RequireRole allows the request through when the authenticated role is
// one of the given values, e.g. RequireRole(models.RoleTeacher).
// Role mismatch fails before any domain check runs.
func RequireRole(roles ...models.Role) echo.MiddlewareFunc {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(models.Role)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, map[string]any{"detail": "forbidden"})
			}
			return next(c)
		}
	}
}
