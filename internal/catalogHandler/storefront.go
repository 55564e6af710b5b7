package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	config "storelink/config/database"
	"storelink/internal/catalogHandler/models"

	"github.com/labstack/echo/v4"
)

// GetStorefront serves the public payload for one tenant, looked up by slug.
// Optional q and category params apply the same filter the client uses.
// Image URLs carry a fresh t= parameter so edited images bypass stale caches.
func GetStorefront(c echo.Context) error {
	slug := c.Param("slug")

	var resp models.StorefrontResponse
	var userID string
	var fontsJSON, contactJSON, socialJSON []byte

	settingsQuery := `
		SELECT user_id, store_name, slug, banner_url, logo_url, color_theme,
		       font_settings, contact_info, social_links
		FROM store_settings WHERE slug = $1
	`
	err := config.Pool.QueryRow(context.Background(), settingsQuery, slug).Scan(
		&userID, &resp.StoreName, &resp.Slug, &resp.BannerURL, &resp.LogoURL,
		&resp.ColorTheme, &fontsJSON, &contactJSON, &socialJSON,
	)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Store not found"})
	}

	_ = json.Unmarshal(fontsJSON, &resp.FontSettings)
	_ = json.Unmarshal(contactJSON, &resp.ContactInfo)
	_ = json.Unmarshal(socialJSON, &resp.SocialLinks)

	categories, err := fetchCategories(context.Background(), userID)
	if err != nil {
		log.Printf("Failed to fetch storefront categories: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch storefront"})
	}
	products, err := fetchProducts(context.Background(), userID)
	if err != nil {
		log.Printf("Failed to fetch storefront products: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch storefront"})
	}

	products = FilterProducts(products, c.QueryParam("q"), c.QueryParam("category"))

	ts := time.Now().Unix()
	resp.BannerURL = CacheBust(resp.BannerURL, ts)
	resp.LogoURL = CacheBust(resp.LogoURL, ts)
	for i := range categories {
		categories[i].ImageURL = CacheBust(categories[i].ImageURL, ts)
	}
	for i := range products {
		products[i].ImageURL = CacheBust(products[i].ImageURL, ts)
	}

	resp.Categories = categories
	resp.Products = products
	return c.JSON(http.StatusOK, resp)
}
