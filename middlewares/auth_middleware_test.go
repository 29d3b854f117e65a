package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ganaa-shark09/Attendance-Management/models"
)

const testSecret = "test-secret"

func signToken(t *testing.T, role string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  uint(7),
		"role": role,
		"name": "Test User",
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return tok
}

func runAuth(t *testing.T, authorization string) (int, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := RequireAuth(testSecret)(next)(c)
	if err != nil {
		if he, ok := err.(*echo.HTTPError); ok {
			return he.Code, c
		}
		t.Fatalf("unexpected error: %v", err)
	}
	return rec.Code, c
}

func TestRequireAuthAttachesPrincipal(t *testing.T) {
	code, c := runAuth(t, "Bearer "+signToken(t, "teacher", time.Hour))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, uint(7), c.Get("user_id"))
	assert.Equal(t, models.RoleTeacher, c.Get("role"))
	assert.Equal(t, "Test User", c.Get("name"))
}

func TestRequireAuthRejectsBadTokens(t *testing.T) {
	code, _ := runAuth(t, "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = runAuth(t, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = runAuth(t, "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = runAuth(t, "Bearer "+signToken(t, "teacher", -time.Hour))
	assert.Equal(t, http.StatusUnauthorized, code, "expired token")
}

// Unknown roles are rejected once, here, instead of at every permission
// check downstream.
func TestRequireAuthRejectsUnknownRole(t *testing.T) {
	code, _ := runAuth(t, "Bearer "+signToken(t, "superuser", time.Hour))
	assert.Equal(t, http.StatusUnauthorized, code)
}
