package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	config "storelink/config/database"
	"storelink/internal/catalogHandler/models"
	cust_middleware "storelink/internal/middleware"
	store_handler "storelink/internal/storeHandler"

	"github.com/labstack/echo/v4"
)

// ListCategories returns the owner's categories.
func ListCategories(c echo.Context) error {
	userID, ok := cust_middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	}

	categories, err := fetchCategories(context.Background(), userID)
	if err != nil {
		log.Printf("Failed to list categories: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch categories"})
	}
	return c.JSON(http.StatusOK, categories)
}

func fetchCategories(ctx context.Context, userID string) ([]models.Category, error) {
	query := "SELECT id, user_id, name, image_url FROM categories WHERE user_id = $1 ORDER BY name"
	rows, err := config.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.UserID, &cat.Name, &cat.ImageURL); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

// CreateCategory adds a category. Name uniqueness per owner is checked with a
// query first, not enforced atomically.
func CreateCategory(c echo.Context) error {
	userID, ok := cust_middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	}

	var req models.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid Request"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Category name is required"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var existingID string
	err := config.Pool.QueryRow(ctx,
		"SELECT id FROM categories WHERE user_id = $1 AND LOWER(name) = LOWER($2)", userID, req.Name).Scan(&existingID)
	if err == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Category already exists"})
	}

	var categoryID string
	insertQuery := "INSERT INTO categories (user_id, name) VALUES ($1, $2) RETURNING id"
	if err := config.Pool.QueryRow(ctx, insertQuery, userID, req.Name).Scan(&categoryID); err != nil {
		log.Printf("Failed to create category: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to create category"})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Category created",
		"id":      categoryID,
		"name":    req.Name,
	})
}

// UpdateCategory renames a category.
func UpdateCategory(c echo.Context) error {
	userID, ok := cust_middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	}
	categoryID := c.Param("id")

	var req models.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid Request"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Category name is required"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := "UPDATE categories SET name = $1 WHERE id = $2 AND user_id = $3"
	tag, err := config.Pool.Exec(ctx, query, req.Name, categoryID, userID)
	if err != nil {
		log.Printf("Failed to update category: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to update category"})
	}
	if tag.RowsAffected() == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Category not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Category updated"})
}

// UploadCategoryImage stores a category image and points image_url at it.
func UploadCategoryImage(c echo.Context) error {
	userID, ok := cust_middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	}
	categoryID := c.Param("id")

	publicURL, err := store_handler.SaveUploadedImage(c, "categories", userID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := "UPDATE categories SET image_url = $1 WHERE id = $2 AND user_id = $3"
	tag, err := config.Pool.Exec(ctx, query, publicURL, categoryID, userID)
	if err != nil {
		log.Printf("Failed to save category image: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to save image URL"})
	}
	if tag.RowsAffected() == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Category not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Image uploaded", "url": publicURL})
}

// DeleteCategory removes a category; its products keep existing with no
// category (FK sets category_id to NULL).
func DeleteCategory(c echo.Context) error {
	userID, ok := cust_middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	}
	categoryID := c.Param("id")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tag, err := config.Pool.Exec(ctx, "DELETE FROM categories WHERE id = $1 AND user_id = $2", categoryID, userID)
	if err != nil {
		log.Printf("Failed to delete category: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to delete category"})
	}
	if tag.RowsAffected() == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Category not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Category deleted"})
}
