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

// IncrementPageView implements the increment-page-view function: one upsert
// per storefront visit, keyed by slug.
func IncrementPageView(c echo.Context) error {
	var req struct {
		Slug string `json:"slug" validate:"required"`
	}
	if err := c.Bind(&req); err != nil || req.Slug == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid Request"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := `
		INSERT INTO page_views (user_id, view_count)
		SELECT user_id, 1 FROM store_settings WHERE slug = $1
		ON CONFLICT (user_id) DO UPDATE
		SET view_count = page_views.view_count + 1, updated_at = NOW()
	`
	tag, err := config.Pool.Exec(ctx, query, req.Slug)
	if err != nil {
		log.Printf("Failed to increment page view: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to record view"})
	}
	if tag.RowsAffected() == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Store not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "View recorded"})
}

// GetStoreStats returns the counters the dashboard polls on a fixed interval.
func GetStoreStats(c echo.Context) error {
	userID, ok := cust_middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	}

	var stats struct {
		PageViews       int64 `json:"page_views"`
		ProductCount    int64 `json:"product_count"`
		CategoryCount   int64 `json:"category_count"`
		PendingFeedback int64 `json:"pending_feedback"`
	}

	query := `
		SELECT
			COALESCE((SELECT view_count FROM page_views WHERE user_id = $1), 0),
			(SELECT COUNT(*) FROM products WHERE user_id = $1),
			(SELECT COUNT(*) FROM categories WHERE user_id = $1),
			(SELECT COUNT(*) FROM feedback WHERE user_id = $1 AND status = 'pending')
	`
	err := config.Pool.QueryRow(context.Background(), query, userID).Scan(
		&stats.PageViews, &stats.ProductCount, &stats.CategoryCount, &stats.PendingFeedback,
	)
	if err != nil {
		log.Printf("Failed to fetch stats: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch stats"})
	}

	return c.JSON(http.StatusOK, stats)
}
