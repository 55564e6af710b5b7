package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	config "storelink/config/database"
	admin_models "storelink/internal/adminHandler/models"
	cust_middleware "storelink/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func callGuard(t *testing.T, sessionHeader string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()

	next := func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "granted"})
	}

	req := httptest.NewRequest(http.MethodPost, "/functions/manage-user", nil)
	if sessionHeader != "" {
		req.Header.Set(cust_middleware.AdminSessionHeader, sessionHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := cust_middleware.AdminSessionGuard(next)(c)
	assert.NoError(t, err)
	return rec
}

func TestAdminSessionGuard(t *testing.T) {
	config.Cfg.AdminEmail = "admin@storelink.app"

	makeSession := func(age time.Duration, email string, isAdmin bool) string {
		raw, _ := json.Marshal(admin_models.AdminSession{
			Email:     email,
			Timestamp: time.Now().Add(-age).UnixMilli(),
			IsAdmin:   isAdmin,
		})
		return string(raw)
	}

	t.Run("Fresh Session Is Granted", func(t *testing.T) {
		rec := callGuard(t, makeSession(23*time.Hour, "admin@storelink.app", true))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Expired Session Is Denied With A Distinct Message", func(t *testing.T) {
		rec := callGuard(t, makeSession(25*time.Hour, "admin@storelink.app", true))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var resp map[string]string
		_ = json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.Equal(t, "Session expired", resp["message"])
	})

	t.Run("Missing Header Is Denied", func(t *testing.T) {
		rec := callGuard(t, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Tampered Record Is Denied", func(t *testing.T) {
		rec := callGuard(t, "{definitely-not-json")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Non Admin Flag Is Denied", func(t *testing.T) {
		rec := callGuard(t, makeSession(time.Hour, "admin@storelink.app", false))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
