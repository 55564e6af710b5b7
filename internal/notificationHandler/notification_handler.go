package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	config "storelink/config/database"
	cust_middleware "storelink/internal/middleware"

	"github.com/labstack/echo/v4"
)

// Notification is one row as seen by its recipient.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// ListNotifications returns the authenticated owner's notifications, newest
// first.
func ListNotifications(c echo.Context) error {
	userID, ok := cust_middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	}

	query := `
		SELECT id, message, type, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := config.Pool.Query(context.Background(), query, userID)
	if err != nil {
		log.Printf("Failed to list notifications: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch notifications"})
	}
	defer rows.Close()

	notifications := []Notification{}
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.Message, &n.Type, &n.IsRead, &n.CreatedAt); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to read notifications"})
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		log.Printf("Failed to list notifications: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch notifications"})
	}

	return c.JSON(http.StatusOK, notifications)
}

// MarkNotificationRead flips is_read on one of the owner's notifications.
func MarkNotificationRead(c echo.Context) error {
	userID, ok := cust_middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	}
	notificationID := c.Param("id")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := "UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2"
	tag, err := config.Pool.Exec(ctx, query, notificationID, userID)
	if err != nil {
		log.Printf("Failed to mark notification read: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to update notification"})
	}
	if tag.RowsAffected() == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Notification not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Notification marked as read"})
}
