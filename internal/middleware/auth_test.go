package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/domain"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims Claims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func authRouter(t *testing.T, admin bool) http.Handler {
	t.Helper()

	r := ginext.New("test")
	g := r.Group("/", Auth(testSecret))
	if admin {
		g.Use(RequireAdmin())
	}
	g.GET("/ping", func(c *ginext.Context) {
		c.Status(http.StatusOK)
	})

	return r
}

func doRequest(r http.Handler, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_ValidToken(t *testing.T) {
	var captured domain.Identity

	r := ginext.New("test")
	r.GET("/ping", Auth(testSecret), func(c *ginext.Context) {
		id, ok := IdentityFrom(c)
		require.True(t, ok)
		captured = id
		c.Status(http.StatusOK)
	})

	token := signToken(t, Claims{
		Email:      "alice@college.edu",
		Name:       "Alice",
		RollNumber: "CS-101",
		Role:       "student",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)

	w := doRequest(r, token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice@college.edu", captured.Email)
	assert.Equal(t, "CS-101", captured.RollNumber)
	assert.False(t, captured.Admin)
}

func TestAuth_MissingToken(t *testing.T) {
	r := authRouter(t, false)

	w := doRequest(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_WrongSecret(t *testing.T) {
	r := authRouter(t, false)

	token := signToken(t, Claims{Email: "alice@college.edu"}, "other-secret")

	w := doRequest(r, token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ExpiredToken(t *testing.T) {
	r := authRouter(t, false)

	token := signToken(t, Claims{
		Email: "alice@college.edu",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}, testSecret)

	w := doRequest(r, token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin_StudentForbidden(t *testing.T) {
	r := authRouter(t, true)

	token := signToken(t, Claims{
		Email: "alice@college.edu",
		Role:  "student",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)

	w := doRequest(r, token)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_AdminAllowed(t *testing.T) {
	r := authRouter(t, true)

	token := signToken(t, Claims{
		Email: "admin@college.edu",
		Role:  "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)

	w := doRequest(r, token)

	assert.Equal(t, http.StatusOK, w.Code)
}
