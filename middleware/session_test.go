package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cowebsLB/mounifull/auth"
	"github.com/cowebsLB/mounifull/config"
)

func newSessionRouter(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/auth/session", auth.CreateSession(cfg))
	r.GET("/whoami", ValidateSession(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"session_id": c.GetString("session_id")})
	})
	return r
}

func createSession(t *testing.T, r *gin.Engine) (sessionID, token string) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/session", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		SessionID string `json:"session_id"`
		Token     string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.Token)
	return created.SessionID, created.Token
}

func TestSessionTokenRoundTrip(t *testing.T) {
	r := newSessionRouter(t, config.Config{JWTSecret: "test-secret"})

	sessionID, token := createSession(t, r)
	assert.True(t, len(sessionID) > len("guest_"))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), sessionID)
}

func TestSessionTokenValidUnderDefaultConfig(t *testing.T) {
	// With no JWT_SECRET exported, issuance and validation must still agree
	// on the loaded default: a fresh token cannot bounce with a 401.
	t.Setenv("JWT_SECRET", "")
	r := newSessionRouter(t, config.Load())

	_, token := createSession(t, r)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestValidateSessionRejects(t *testing.T) {
	r := newSessionRouter(t, config.Config{JWTSecret: "test-secret"})

	// Missing header
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Token signed with a different secret
	r2 := newSessionRouter(t, config.Config{JWTSecret: "other-secret"})
	_, token := createSession(t, r2)

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateAPIKey(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "admin-key")
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/admin/ping", ValidateAPIKey, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/ping", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("X-API-KEY", "wrong")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("X-API-KEY", "admin-key")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
