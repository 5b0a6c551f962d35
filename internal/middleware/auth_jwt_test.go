package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"cognicart/internal/config"
	"cognicart/internal/domain/model"
	"cognicart/internal/middleware"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test_secret"

func mustMakeJWT(t *testing.T, secret string, sub int64, role string, method jwt.SigningMethod, ttl time.Duration) string {
	t.Helper()

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(sub, 10),
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	tok := jwt.NewWithClaims(method, claims)
	signed, err := tok.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func newAuthTestEcho(extra ...echo.MiddlewareFunc) *echo.Echo {
	cfg := config.Config{JWTSecret: testSecret}
	e := echo.New()

	g := e.Group("/protected")
	g.Use(middleware.AuthJWT(cfg))
	for _, m := range extra {
		g.Use(m)
	}
	g.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"user_id": c.Get("user_id"),
			"role":    c.Get("user_role"),
		})
	})
	return e
}

func TestAuthJWT_ValidToken(t *testing.T) {
	e := newAuthTestEcho()

	token := mustMakeJWT(t, testSecret, 7, "CUSTOMER", jwt.SigningMethodHS256, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":7`)
	assert.Contains(t, rec.Body.String(), `"role":"CUSTOMER"`)
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	e := newAuthTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_WrongSecret(t *testing.T) {
	e := newAuthTestEcho()

	token := mustMakeJWT(t, "other_secret", 7, "CUSTOMER", jwt.SigningMethodHS256, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_ExpiredToken(t *testing.T) {
	e := newAuthTestEcho()

	token := mustMakeJWT(t, testSecret, 7, "CUSTOMER", jwt.SigningMethodHS256, -time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_NotBearer(t *testing.T) {
	e := newAuthTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abcdef")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoleGuard_AllowsListedRole(t *testing.T) {
	e := newAuthTestEcho(middleware.RoleGuard(model.RoleSeller, model.RoleAdmin))

	token := mustMakeJWT(t, testSecret, 7, "SELLER", jwt.SigningMethodHS256, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoleGuard_ForbidsOtherRole(t *testing.T) {
	e := newAuthTestEcho(middleware.RoleGuard(model.RoleAdmin))

	token := mustMakeJWT(t, testSecret, 7, "CUSTOMER", jwt.SigningMethodHS256, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
