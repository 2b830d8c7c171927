package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"workshoppro/internal/common"
	"workshoppro/internal/config"
	"workshoppro/internal/logging"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func whoAmI(c echo.Context) error {
	id, _ := common.GetUserIDFromContext(c.Request().Context())
	return c.String(http.StatusOK, id)
}

func signedToken(t *testing.T, secret string, subject string, expires time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email: "mecanico@oficina.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func serveWithJWT(t *testing.T, cfg config.AuthConfig, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	mw, stop, err := JWT(cfg, nil)
	require.NoError(t, err)
	defer stop()

	e := echo.New()
	e.GET("/v1/me", whoAmI, mw)
	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJWT_ValidToken(t *testing.T) {
	cfg := config.AuthConfig{Enabled: true, JWTSecret: testSecret}
	token := signedToken(t, testSecret, "user-123", time.Now().Add(time.Hour))

	rec := serveWithJWT(t, cfg, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-123", rec.Body.String())
}

func TestJWT_RejectsBadTokens(t *testing.T) {
	cfg := config.AuthConfig{Enabled: true, JWTSecret: testSecret}

	tests := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"wrong secret", "Bearer " + signedToken(t, "other", "user-123", time.Now().Add(time.Hour))},
		{"expired", "Bearer " + signedToken(t, testSecret, "user-123", time.Now().Add(-time.Hour))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveWithJWT(t, cfg, tt.header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
		})
	}
}

func TestJWT_Disabled(t *testing.T) {
	rec := serveWithJWT(t, config.AuthConfig{Enabled: false}, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWT_RequiresKeyMaterial(t *testing.T) {
	_, _, err := JWT(config.AuthConfig{Enabled: true}, nil)
	assert.Error(t, err)
}

func TestVersionMiddleware(t *testing.T) {
	vm := NewVersionMiddleware("1.2.0")
	e := echo.New()
	e.Use(vm.APIVersionResolver())
	v1 := e.Group("/v1", vm.VersionHeader("v1"))
	v1.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "v1", rec.Header().Get("X-API-Version"))
	assert.Equal(t, "1.2.0", rec.Header().Get("X-Server-Version"))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v9/ping", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unsupported API version")
}

func TestVersionMiddleware_Deprecated(t *testing.T) {
	vm := NewVersionMiddleware("")
	vm.Deprecate("v1", "use v2", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	e := echo.New()
	e.GET("/v1/ping", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }, vm.VersionHeader("v1"))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	assert.Equal(t, "true", rec.Header().Get("X-API-Deprecated"))
	assert.Contains(t, rec.Header().Get("Warning"), "2026-01-01")
}

func TestVersionFromPath(t *testing.T) {
	assert.Equal(t, "v1", versionFromPath("/v1/clients"))
	assert.Equal(t, "v12", versionFromPath("/v12"))
	assert.Equal(t, "", versionFromPath("/health"))
	assert.Equal(t, "", versionFromPath("/vehicles"))
}

func TestRequestLogger(t *testing.T) {
	var out bytes.Buffer
	logger := logging.New(logging.Options{ServiceName: "test", Level: "debug", Output: &out})

	e := echo.New()
	e.Use(RequestLogger(logger))
	e.GET("/v1/boom", func(c echo.Context) error { return echo.NewHTTPError(http.StatusTeapot, "nope") })

	req := httptest.NewRequest(http.MethodGet, "/v1/boom", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Contains(t, out.String(), `"request_id":"req-1"`)
	assert.Contains(t, out.String(), `"status":418`)
	assert.Equal(t, 0, logger.Buffer().Len())
}
