package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter(secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Authentication(secret))
	r.GET("/hello", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "hello"})
	})
	return r
}

func TestAuthentication(t *testing.T) {
	secret := []byte("test-signing-secret")

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "manager-console",
	}).SignedString(secret)
	require.NoError(t, err)

	wrongKeyToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "manager-console",
	}).SignedString([]byte("some other secret"))
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		expected   int
	}{
		{name: "Missing header", authHeader: "", expected: http.StatusUnauthorized},
		{name: "Not a bearer token", authHeader: "Basic abc123", expected: http.StatusUnauthorized},
		{name: "Garbage token", authHeader: "Bearer not.a.jwt", expected: http.StatusUnauthorized},
		{name: "Wrong signing key", authHeader: "Bearer " + wrongKeyToken, expected: http.StatusUnauthorized},
		{name: "Valid token", authHeader: "Bearer " + token, expected: http.StatusOK},
	}

	r := protectedRouter(secret)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/hello", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.expected, w.Code)
		})
	}
}
