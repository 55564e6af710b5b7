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

// Feedback struct
type Feedback struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// SubmitFeedbackRequest struct
type SubmitFeedbackRequest struct {
	Type        string `json:"type" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// UpdateStatusRequest struct
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

var feedbackTypes = map[string]bool{"complaint": true, "suggestion": true}
var feedbackStatuses = map[string]bool{"pending": true, "reviewed": true, "resolved": true}

// SubmitFeedback records a visitor complaint or suggestion against the store
// owner behind the slug. No authentication: the storefront is public.
func SubmitFeedback(c echo.Context) error {
	slug := c.Param("slug")

	var req SubmitFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid Request"})
	}
	if !feedbackTypes[req.Type] {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Type must be complaint or suggestion"})
	}
	if req.Description == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Description is required"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var userID string
	err := config.Pool.QueryRow(ctx, "SELECT user_id FROM store_settings WHERE slug = $1", slug).Scan(&userID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Store not found"})
	}

	query := "INSERT INTO feedback (user_id, type, description) VALUES ($1, $2, $3)"
	if _, err := config.Pool.Exec(ctx, query, userID, req.Type, req.Description); err != nil {
		log.Printf("Failed to submit feedback: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to submit feedback"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Feedback submitted"})
}

// ListFeedback returns the owner's feedback, newest first.
func ListFeedback(c echo.Context) error {
	userID, ok := cust_middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	}

	query := `
		SELECT id, type, description, status, created_at
		FROM feedback WHERE user_id = $1 ORDER BY created_at DESC
	`
	rows, err := config.Pool.Query(context.Background(), query, userID)
	if err != nil {
		log.Printf("Failed to list feedback: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch feedback"})
	}
	defer rows.Close()

	feedback := []Feedback{}
	for rows.Next() {
		var f Feedback
		if err := rows.Scan(&f.ID, &f.Type, &f.Description, &f.Status, &f.CreatedAt); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to read feedback"})
		}
		feedback = append(feedback, f)
	}
	if err := rows.Err(); err != nil {
		log.Printf("Failed to list feedback: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch feedback"})
	}

	return c.JSON(http.StatusOK, feedback)
}

// UpdateFeedbackStatus moves one feedback item through pending/reviewed/resolved.
func UpdateFeedbackStatus(c echo.Context) error {
	userID, ok := cust_middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	}
	feedbackID := c.Param("id")

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid Request"})
	}
	if !feedbackStatuses[req.Status] {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Status must be pending, reviewed or resolved"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := "UPDATE feedback SET status = $1 WHERE id = $2 AND user_id = $3"
	tag, err := config.Pool.Exec(ctx, query, req.Status, feedbackID, userID)
	if err != nil {
		log.Printf("Failed to update feedback: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to update feedback"})
	}
	if tag.RowsAffected() == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Feedback not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Feedback status updated", "status": req.Status})
}
