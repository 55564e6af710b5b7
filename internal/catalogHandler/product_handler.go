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

// ListProducts returns the owner's products with their category names.
func ListProducts(c echo.Context) error {
	userID, ok := cust_middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	}

	products, err := fetchProducts(context.Background(), userID)
	if err != nil {
		log.Printf("Failed to list products: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch products"})
	}
	return c.JSON(http.StatusOK, products)
}

func fetchProducts(ctx context.Context, userID string) ([]models.Product, error) {
	query := `
		SELECT p.id, p.user_id, p.category_id, COALESCE(cat.name, ''),
		       p.name, p.price, p.description, p.image_url,
		       p.is_new, p.is_popular, p.display_order
		FROM products p
		LEFT JOIN categories cat ON cat.id = p.category_id
		WHERE p.user_id = $1
		ORDER BY p.display_order, p.name
	`
	rows, err := config.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.UserID, &p.CategoryID, &p.CategoryName,
			&p.Name, &p.Price, &p.Description, &p.ImageURL,
			&p.IsNew, &p.IsPopular, &p.DisplayOrder); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// CreateProduct adds a product to the owner's catalog.
func CreateProduct(c echo.Context) error {
	userID, ok := cust_middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	}

	var req models.ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid Request"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Product name is required"})
	}
	if req.Price < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Price must be non-negative"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var productID string
	query := `
		INSERT INTO products (user_id, category_id, name, price, description, is_new, is_popular, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := config.Pool.QueryRow(ctx, query, userID, req.CategoryID, req.Name, req.Price,
		req.Description, req.IsNew, req.IsPopular, req.DisplayOrder).Scan(&productID)
	if err != nil {
		log.Printf("Failed to create product: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to create product"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Product created", "id": productID})
}

// UpdateProduct replaces the editable fields of one product.
func UpdateProduct(c echo.Context) error {
	userID, ok := cust_middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	}
	productID := c.Param("id")

	var req models.ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid Request"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Product name is required"})
	}
	if req.Price < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Price must be non-negative"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := `
		UPDATE products
		SET category_id = $1, name = $2, price = $3, description = $4,
		    is_new = $5, is_popular = $6, display_order = $7, updated_at = NOW()
		WHERE id = $8 AND user_id = $9
	`
	tag, err := config.Pool.Exec(ctx, query, req.CategoryID, req.Name, req.Price, req.Description,
		req.IsNew, req.IsPopular, req.DisplayOrder, productID, userID)
	if err != nil {
		log.Printf("Failed to update product: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to update product"})
	}
	if tag.RowsAffected() == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Product not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Product updated"})
}

// UploadProductImage stores a product image and points image_url at it.
func UploadProductImage(c echo.Context) error {
	userID, ok := cust_middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	}
	productID := c.Param("id")

	publicURL, err := store_handler.SaveUploadedImage(c, "products", userID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := "UPDATE products SET image_url = $1, updated_at = NOW() WHERE id = $2 AND user_id = $3"
	tag, err := config.Pool.Exec(ctx, query, publicURL, productID, userID)
	if err != nil {
		log.Printf("Failed to save product image: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to save image URL"})
	}
	if tag.RowsAffected() == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Product not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Image uploaded", "url": publicURL})
}

// DeleteProduct removes one product.
func DeleteProduct(c echo.Context) error {
	userID, ok := cust_middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	}
	productID := c.Param("id")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tag, err := config.Pool.Exec(ctx, "DELETE FROM products WHERE id = $1 AND user_id = $2", productID, userID)
	if err != nil {
		log.Printf("Failed to delete product: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to delete product"})
	}
	if tag.RowsAffected() == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Product not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Product deleted"})
}
