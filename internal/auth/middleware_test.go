package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(m *TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(m), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": UserIDFromContext(c)})
	})
	return r
}

func doGet(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func msgOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["msg"]
}

func TestRequireAuthMissingHeader(t *testing.T) {
	r := newProtectedRouter(NewTokenManager("s", 0))

	w := doGet(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "No token, authorization denied", msgOf(t, w))
}

func TestRequireAuthHeaderWithoutToken(t *testing.T) {
	r := newProtectedRouter(NewTokenManager("s", 0))

	// Scheme only, no second segment after splitting on whitespace.
	w := doGet(r, "Bearer")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "No token, authorization denied", msgOf(t, w))
}

func TestRequireAuthInvalidToken(t *testing.T) {
	r := newProtectedRouter(NewTokenManager("s", 0))

	w := doGet(r, "Bearer bogus")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token is not valid", msgOf(t, w))
}

func TestRequireAuthValidToken(t *testing.T) {
	m := NewTokenManager("s", 0)
	r := newProtectedRouter(m)

	token, err := m.Issue(11)
	require.NoError(t, err)

	w := doGet(r, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]int64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(11), body["userId"])
}
