package middleware

import (
	"errors"
	"log"
	"net/http"
	"time"

	config "storelink/config/database"
	admin_models "storelink/internal/adminHandler/models"

	"github.com/labstack/echo/v4"
)

// AdminSessionHeader carries the client-persisted admin session record.
const AdminSessionHeader = "X-Admin-Session"

// AdminSessionGuard gates admin function routes on the replayed session
// record: hardcoded admin email, isAdmin flag and the 24-hour window. An
// expired session gets a distinct message so the client clears its copy.
func AdminSessionGuard(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(AdminSessionHeader)

		session, err := admin_models.ValidateSession(raw, config.Cfg.AdminEmail, time.Now())
		if err != nil {
			if errors.Is(err, admin_models.ErrSessionExpired) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Session expired"})
			}
			log.Printf("Admin session rejected: %v", err)
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
		}

		c.Set("admin_session", session)
		return next(c)
	}
}
