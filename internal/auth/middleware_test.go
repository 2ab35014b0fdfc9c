package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", JWT(testSecret), func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "claims not set"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": claims.Username})
	})
	return r
}

func probe(t *testing.T, r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWT_MissingHeader(t *testing.T) {
	r := newProtectedRouter()

	w := probe(t, r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing bearer token")
}

func TestJWT_MalformedHeader(t *testing.T) {
	r := newProtectedRouter()

	for _, header := range []string{"Token abc", "Bearer", "Bearer ", "abc"} {
		w := probe(t, r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.Contains(t, w.Body.String(), "malformed authorization header", "header %q", header)
	}
}

func TestJWT_ExpiredToken(t *testing.T) {
	r := newProtectedRouter()

	tok, err := issueToken(1, "ana", nil, testSecret, -time.Minute)
	require.NoError(t, err)

	// An expired token is an invalid token, never a missing one.
	w := probe(t, r, "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired token")
}

func TestJWT_WrongSecret(t *testing.T) {
	r := newProtectedRouter()

	tok, err := IssueToken(1, "ana", nil, "other-secret")
	require.NoError(t, err)

	w := probe(t, r, "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired token")
}

func TestJWT_ValidToken(t *testing.T) {
	r := newProtectedRouter()

	tok, err := IssueToken(1, "ana", []string{"MAESTRO"}, testSecret)
	require.NoError(t, err)

	w := probe(t, r, "Bearer "+tok)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ana")
}
