package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeland-scout/pg-finder/internal/utils"
)

const testSecret = "middleware-test-secret"

func protectedEcho(roles ...string) *echo.Echo {
	e := echo.New()
	g := e.Group("/v1/admin")
	g.Use(JWTAuth(testSecret))
	if len(roles) > 0 {
		g.Use(RequireRole(roles...))
	}
	g.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"username": c.Get("username"),
			"role":     c.Get("role"),
		})
	})
	return e
}

func doGet(e *echo.Echo, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	at, err := utils.NewAccessToken(testSecret, "admin", "ADMIN", 5)
	require.NoError(t, err)

	rec := doGet(protectedEcho(), at.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"admin"`)
	assert.Contains(t, rec.Body.String(), `"role":"ADMIN"`)
}

func TestJWTAuthRejectsMissingOrBadTokens(t *testing.T) {
	e := protectedEcho()
	assert.Equal(t, http.StatusUnauthorized, doGet(e, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(e, "garbage").Code)

	// Token signed with another secret.
	at, err := utils.NewAccessToken("wrong-secret", "admin", "ADMIN", 5)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, doGet(e, at.Token).Code)
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	at, err := utils.NewAccessToken(testSecret, "admin", "ADMIN", -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, doGet(protectedEcho(), at.Token).Code)
}

func TestRequireRoleEnforcesRole(t *testing.T) {
	e := protectedEcho("ADMIN")

	admin, err := utils.NewAccessToken(testSecret, "admin", "ADMIN", 5)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, doGet(e, admin.Token).Code)

	owner, err := utils.NewAccessToken(testSecret, "owner1", "OWNER", 5)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, doGet(e, owner.Token).Code)
}
