package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"festiva/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGatedRouter(allowedRoles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handlers := []gin.HandlerFunc{JWTAuthMiddleware()}
	if len(allowedRoles) > 0 {
		handlers = append(handlers, RoleMiddleware(allowedRoles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})

	r.GET("/protected", handlers...)
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMissingAuthorizationHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "mw-test-secret")

	w := doRequest(newGatedRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMalformedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "mw-test-secret")

	w := doRequest(newGatedRouter(), "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidTokenPasses(t *testing.T) {
	t.Setenv("JWT_SECRET", "mw-test-secret")

	token, err := utils.CreateAccessToken(uuid.New(), "customer")
	require.NoError(t, err)

	w := doRequest(newGatedRouter(), token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleAllowList(t *testing.T) {
	t.Setenv("JWT_SECRET", "mw-test-secret")

	customerToken, err := utils.CreateAccessToken(uuid.New(), "customer")
	require.NoError(t, err)
	adminToken, err := utils.CreateAccessToken(uuid.New(), "admin")
	require.NoError(t, err)

	adminOnly := newGatedRouter("admin")
	assert.Equal(t, http.StatusForbidden, doRequest(adminOnly, customerToken).Code)
	assert.Equal(t, http.StatusOK, doRequest(adminOnly, adminToken).Code)

	both := newGatedRouter("admin", "customer")
	assert.Equal(t, http.StatusOK, doRequest(both, customerToken).Code)
	assert.Equal(t, http.StatusOK, doRequest(both, adminToken).Code)
}

// The denial is generic regardless of which roles would have passed.
func TestForbiddenMessageDoesNotLeakRoles(t *testing.T) {
	t.Setenv("JWT_SECRET", "mw-test-secret")

	token, err := utils.CreateAccessToken(uuid.New(), "vendor")
	require.NoError(t, err)

	w := doRequest(newGatedRouter("admin"), token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NotContains(t, w.Body.String(), "admin")
}

func TestTraceIDAssignedAndEchoed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"trace_id": c.GetString("trace_id")})
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	echoed := w.Header().Get("X-Trace-ID")
	require.NotEmpty(t, echoed)
	assert.Contains(t, w.Body.String(), echoed)
}

// A caller-supplied trace id is reused rather than replaced.
func TestTraceIDPassthrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"trace_id": c.GetString("trace_id")})
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Trace-ID", "trace-from-upstream")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "trace-from-upstream", w.Header().Get("X-Trace-ID"))
	assert.Contains(t, w.Body.String(), "trace-from-upstream")
}
