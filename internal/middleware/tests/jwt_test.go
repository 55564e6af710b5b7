package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	config "storelink/config/database"
	cust_middleware "storelink/internal/middleware"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func signedToken(t *testing.T, secret, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	raw, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return raw
}

func callJWT(t *testing.T, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()

	next := func(c echo.Context) error {
		userID, _ := cust_middleware.UserIDFromContext(c)
		return c.JSON(http.StatusOK, map[string]string{"user_id": userID})
	}

	req := httptest.NewRequest(http.MethodGet, "/store/settings", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := cust_middleware.JWTMiddleware(next)(c)
	assert.NoError(t, err)
	return rec
}

func TestJWTMiddleware(t *testing.T) {
	config.Cfg.JWTSecret = "test-secret"

	t.Run("Token Signed With The Configured Secret Is Accepted", func(t *testing.T) {
		rec := callJWT(t, "Bearer "+signedToken(t, config.Cfg.JWTSecret, "owner-1"))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "owner-1")
	})

	t.Run("Token Signed With Another Secret Is Rejected", func(t *testing.T) {
		rec := callJWT(t, "Bearer "+signedToken(t, "some-other-secret", "owner-1"))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Token Signed With An Empty Secret Is Rejected", func(t *testing.T) {
		rec := callJWT(t, "Bearer "+signedToken(t, "", "owner-1"))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Missing Header Is Rejected", func(t *testing.T) {
		rec := callJWT(t, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Non Bearer Header Is Rejected", func(t *testing.T) {
		rec := callJWT(t, "Token abcdef")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
