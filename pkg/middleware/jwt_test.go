package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"user_id": "user-123",
		"email":   "user@example.com",
		"role":    "customer",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
}

func setupJWTRouter(cfg *JWTConfig) *gin.Engine {
	r := gin.New()
	r.Use(JWTMiddleware(cfg))
	r.GET("/protected", func(c *gin.Context) {
		userID, _ := GetUserID(c)
		role, _ := GetRole(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "role": role})
	})
	r.GET("/public", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestJWTMiddlewareHeaderToken(t *testing.T) {
	router := setupJWTRouter(&JWTConfig{Secret: testSecret})
	token := signToken(t, testSecret, validClaims())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-123")
	assert.Contains(t, w.Body.String(), "customer")
}

func TestJWTMiddlewareCookieToken(t *testing.T) {
	router := setupJWTRouter(&JWTConfig{Secret: testSecret, CookieName: "access_token"})
	token := signToken(t, testSecret, validClaims())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-123")
}

func TestJWTMiddlewareHeaderWinsOverCookie(t *testing.T) {
	router := setupJWTRouter(&JWTConfig{Secret: testSecret, CookieName: "access_token"})

	headerClaims := validClaims()
	headerClaims["user_id"] = "header-user"
	cookieClaims := validClaims()
	cookieClaims["user_id"] = "cookie-user"

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, headerClaims))
	req.AddCookie(&http.Cookie{Name: "access_token", Value: signToken(t, testSecret, cookieClaims)})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "header-user")
}

func TestJWTMiddlewareRejections(t *testing.T) {
	expired := validClaims()
	expired["exp"] = time.Now().Add(-time.Hour).Unix()

	noUserID := jwt.MapClaims{
		"email": "user@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}

	tests := []struct {
		name     string
		header   string
		wantCode string
	}{
		{"missing token", "", "MISSING_TOKEN"},
		{"malformed header", "Token abc", "INVALID_TOKEN"},
		{"empty bearer", "Bearer ", "INVALID_TOKEN"},
		{"garbage token", "Bearer not.a.jwt", "INVALID_TOKEN"},
		{"wrong secret", "Bearer " + signTokenRaw(testSecret+"x", validClaims()), "INVALID_TOKEN"},
		{"expired token", "Bearer " + signTokenRaw(testSecret, expired), "TOKEN_EXPIRED"},
		{"missing user_id claim", "Bearer " + signTokenRaw(testSecret, noUserID), "INVALID_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupJWTRouter(&JWTConfig{Secret: testSecret})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantCode)
		})
	}
}

func signTokenRaw(secret string, claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, _ := token.SignedString([]byte(secret))
	return signed
}

func TestJWTMiddlewareSkipPaths(t *testing.T) {
	router := setupJWTRouter(&JWTConfig{Secret: testSecret, SkipPaths: []string{"/public"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole(t *testing.T) {
	setup := func(role string, authenticated bool) *gin.Engine {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			if authenticated {
				c.Set(ContextKeyRole, role)
			}
			c.Next()
		})
		r.GET("/admin", RequireRole("admin", "vendor"), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
		return r
	}

	tests := []struct {
		name          string
		role          string
		authenticated bool
		wantCode      int
	}{
		{"admin allowed", "admin", true, http.StatusOK},
		{"vendor allowed", "vendor", true, http.StatusOK},
		{"customer rejected", "customer", true, http.StatusForbidden},
		{"unauthenticated", "", false, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setup(tt.role, tt.authenticated)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
