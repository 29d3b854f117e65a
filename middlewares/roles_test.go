package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/Ganaa-shark09/Attendance-Management/models"
)

func TestRequireRole(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	run := func(role any, allowed ...models.Role) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != nil {
			c.Set("role", role)
		}
		err := RequireRole(allowed...)(next)(c)
		if err != nil {
			if he, ok := err.(*echo.HTTPError); ok {
				return he.Code
			}
			t.Fatalf("unexpected error: %v", err)
		}
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, run(models.RoleTeacher, models.RoleTeacher))
	assert.Equal(t, http.StatusOK, run(models.RoleHOD, models.RoleTeacher, models.RoleHOD))
	assert.Equal(t, http.StatusForbidden, run(models.RoleStudent, models.RoleTeacher))
	assert.Equal(t, http.StatusForbidden, run(nil, models.RoleTeacher), "no role on context")
	assert.Equal(t, http.StatusForbidden, run("teacher", models.RoleTeacher), "raw string is not a Role")
}
