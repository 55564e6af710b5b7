package handler

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	config "storelink/config/database"
	"storelink/internal/adminHandler/models"
	notification_handler "storelink/internal/notificationHandler"

	"github.com/labstack/echo/v4"
)

// HandleAdminRole implements the admin-role function. "login" checks the
// hardcoded admin email and PIN and hands back the session record the panel
// persists locally; "verify" re-validates a replayed record.
func HandleAdminRole(c echo.Context) error {
	var req models.AdminRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid Request"})
	}

	switch req.Action {
	case "login":
		if req.Email != config.Cfg.AdminEmail || req.PIN != config.Cfg.AdminPIN {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Invalid admin credentials"})
		}
		session := models.NewSession(req.Email, time.Now())
		return c.JSON(http.StatusOK, map[string]interface{}{
			"message": "Admin login successful",
			"session": session,
		})

	case "verify":
		_, err := models.ValidateSession(req.Session, config.Cfg.AdminEmail, time.Now())
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
		}
		return c.JSON(http.StatusOK, map[string]bool{"is_admin": true})

	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"message": fmt.Sprintf("Unknown action: %s", req.Action)})
	}
}

// HandleManageUser implements the manage-user function. Every admin panel
// operation goes through here, keyed by the action discriminator.
func HandleManageUser(c echo.Context) error {
	var req models.ManageUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid Request"})
	}

	switch req.Action {
	case "list":
		return listUsers(c)
	case "ban":
		return setBan(c, req)
	case "role":
		return setRole(c, req)
	case "approve":
		return approvePending(c, req)
	case "delete":
		return deleteUser(c, req)
	case "message":
		return dispatchMessage(c, req)
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"message": fmt.Sprintf("Unknown action: %s", req.Action)})
	}
}

func listUsers(c echo.Context) error {
	query := `
		SELECT u.id, u.name, u.email, u.role, u.account_status,
		       COALESCE(s.store_name, ''),
		       COALESCE(s.contact_info->>'phone', ''),
		       u.created_at::TEXT
		FROM users u
		LEFT JOIN store_settings s ON s.user_id = u.id
		ORDER BY u.created_at DESC
	`
	rows, err := config.Pool.Query(context.Background(), query)
	if err != nil {
		log.Printf("Failed to list users: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch users"})
	}
	defer rows.Close()

	users := []models.AdminUser{}
	for rows.Next() {
		var u models.AdminUser
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.AccountStatus, &u.StoreName, &u.Phone, &u.CreatedAt); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to read users"})
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		log.Printf("Failed to list users: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch users"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"users": users})
}

// setBan toggles account_status. Banning works from pending or active;
// unbanning always lands on active (there is no way back to pending).
func setBan(c echo.Context, req models.ManageUserRequest) error {
	if req.UserID == "" || req.Banned == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "userId and banned are required"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var query string
	if *req.Banned {
		query = "UPDATE users SET account_status = 'banned', updated_at = NOW() WHERE id = $1"
	} else {
		query = "UPDATE users SET account_status = 'active', updated_at = NOW() WHERE id = $1 AND account_status = 'banned'"
	}
	tag, err := config.Pool.Exec(ctx, query, req.UserID)
	if err != nil {
		log.Printf("Failed to update ban status: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to update user"})
	}
	if tag.RowsAffected() == 0 {
		if *req.Banned {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "User not found"})
		}
		// the unban guard also skips users that exist but are not banned
		var current string
		if err := config.Pool.QueryRow(ctx,
			"SELECT account_status FROM users WHERE id = $1", req.UserID).Scan(&current); err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "User not found"})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "User is not banned"})
	}

	status := "active"
	if *req.Banned {
		status = "banned"
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message":        "User status updated",
		"account_status": status,
	})
}

func setRole(c echo.Context, req models.ManageUserRequest) error {
	if req.UserID == "" || (req.Role != "user" && req.Role != "admin") {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "userId and a valid role are required"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := "UPDATE users SET role = $1, updated_at = NOW() WHERE id = $2"
	tag, err := config.Pool.Exec(ctx, query, req.Role, req.UserID)
	if err != nil {
		log.Printf("Failed to update role: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to update user"})
	}
	if tag.RowsAffected() == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "User not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Role updated", "role": req.Role})
}

// approvePending moves a pending account to active. Already-active or banned
// accounts are left untouched.
func approvePending(c echo.Context, req models.ManageUserRequest) error {
	if req.UserID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "userId is required"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := "UPDATE users SET account_status = 'active', updated_at = NOW() WHERE id = $1 AND account_status = 'pending'"
	tag, err := config.Pool.Exec(ctx, query, req.UserID)
	if err != nil {
		log.Printf("Failed to approve user: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to approve user"})
	}
	if tag.RowsAffected() == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "User is not pending approval"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "User approved", "account_status": "active"})
}

func deleteUser(c echo.Context, req models.ManageUserRequest) error {
	if req.UserID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "userId is required"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// store_settings, categories, products, feedback and notifications all
	// cascade from the users row
	tag, err := config.Pool.Exec(ctx, "DELETE FROM users WHERE id = $1", req.UserID)
	if err != nil {
		log.Printf("Failed to delete user: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to delete user"})
	}
	if tag.RowsAffected() == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "User not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "User deleted"})
}

// dispatchMessage fans a broadcast out to every user or sends to a single
// recipient. Fire-and-forget: a retry duplicates the notification.
func dispatchMessage(c echo.Context, req models.ManageUserRequest) error {
	if req.MessageAll != "" {
		count, err := notification_handler.DispatchToAll(context.Background(), req.MessageAll, "broadcast")
		if err != nil {
			log.Printf("Broadcast failed: %v", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"message": "Notification sent to all users",
			"count":   count,
		})
	}

	if req.UserID == "" || req.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "userId and message are required"})
	}
	if err := notification_handler.DispatchToUser(context.Background(), req.UserID, req.Message, "direct"); err != nil {
		log.Printf("Notification failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Notification sent"})
}
