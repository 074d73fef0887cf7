package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbrandt27/football-pick-em-sub003/internal/auth/token"
)

const testSecret = "test-secret"

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/me", Auth(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": CallerID(c), "is_admin": CallerIsAdmin(c)})
	})
	r.GET("/admin", Auth(testSecret), AdminOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthValidToken(t *testing.T) {
	r := newAuthRouter(t)
	tok, err := token.Issue(testSecret, time.Hour, 7, false)
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+tok, "/me")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":7,"is_admin":false}`, w.Body.String())
}

func TestAuthMissingHeader(t *testing.T) {
	r := newAuthRouter(t)

	w := doRequest(r, "", "/me")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestAuthMalformedHeader(t *testing.T) {
	r := newAuthRouter(t)
	tok, err := token.Issue(testSecret, time.Hour, 7, false)
	require.NoError(t, err)

	for _, header := range []string{tok, "Basic " + tok, "Bearer"} {
		w := doRequest(r, header, "/me")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthBadToken(t *testing.T) {
	r := newAuthRouter(t)
	tok, err := token.Issue("other-secret", time.Hour, 7, false)
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+tok, "/me")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	expired, err := token.Issue(testSecret, -time.Minute, 7, false)
	require.NoError(t, err)

	w = doRequest(r, "Bearer "+expired, "/me")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnly(t *testing.T) {
	r := newAuthRouter(t)

	playerToken, err := token.Issue(testSecret, time.Hour, 7, false)
	require.NoError(t, err)
	adminToken, err := token.Issue(testSecret, time.Hour, 8, true)
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+playerToken, "/admin")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")

	w = doRequest(r, "Bearer "+adminToken, "/admin")
	assert.Equal(t, http.StatusOK, w.Code)
}
