package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	config "storelink/config/database"
	cust_middleware "storelink/internal/middleware"
	"storelink/internal/storeHandler/models"

	"github.com/labstack/echo/v4"
)

// ColorThemes is the set of named palettes the storefront renderer knows.
var ColorThemes = map[string]bool{
	"classic":  true,
	"ocean":    true,
	"sunset":   true,
	"forest":   true,
	"lavender": true,
	"mono":     true,
}

// GetSettings returns the owner's settings row, creating a default one on
// first read.
func GetSettings(c echo.Context) error {
	userID, ok := cust_middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	insertQuery := "INSERT INTO store_settings (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING"
	if _, err := config.Pool.Exec(ctx, insertQuery, userID); err != nil {
		log.Printf("Failed to ensure settings row: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch settings"})
	}

	settings, err := fetchSettings(ctx, userID)
	if err != nil {
		log.Printf("Failed to fetch settings: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch settings"})
	}

	return c.JSON(http.StatusOK, settings)
}

func fetchSettings(ctx context.Context, userID string) (models.StoreSettings, error) {
	var s models.StoreSettings
	var fontsJSON, contactJSON, socialJSON []byte

	query := `
		SELECT id, user_id, slug, store_name, banner_url, logo_url, color_theme,
		       font_settings, contact_info, social_links
		FROM store_settings WHERE user_id = $1
	`
	err := config.Pool.QueryRow(ctx, query, userID).Scan(
		&s.ID, &s.UserID, &s.Slug, &s.StoreName, &s.BannerURL, &s.LogoURL,
		&s.ColorTheme, &fontsJSON, &contactJSON, &socialJSON,
	)
	if err != nil {
		return s, err
	}

	_ = json.Unmarshal(fontsJSON, &s.FontSettings)
	_ = json.Unmarshal(contactJSON, &s.ContactInfo)
	_ = json.Unmarshal(socialJSON, &s.SocialLinks)
	return s, nil
}

// upsertField writes one field group. Each field group is its own upsert:
// concurrent edits to different groups never clobber each other, same-group
// edits are last-write-wins.
func upsertField(ctx context.Context, userID, column string, value interface{}) error {
	query := fmt.Sprintf(`
		INSERT INTO store_settings (user_id, %s) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET %s = EXCLUDED.%s, updated_at = NOW()
	`, column, column, column)
	_, err := config.Pool.Exec(ctx, query, userID, value)
	return err
}

// UpdateName sets the display name of the store.
func UpdateName(c echo.Context) error {
	userID, ok := cust_middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	}

	var req models.UpdateNameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid Request"})
	}
	if req.StoreName == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Store name is required"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := upsertField(ctx, userID, "store_name", req.StoreName); err != nil {
		log.Printf("Failed to update store name: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to update store name"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Store name updated", "store_name": req.StoreName})
}

// UpdateSlug normalizes, validates and claims the public slug. A slug held by
// another owner is rejected; re-saving your own slug is an accepted no-op.
func UpdateSlug(c echo.Context) error {
	userID, ok := cust_middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	}

	var req models.UpdateSlugRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid Request"})
	}

	slug := NormalizeSlug(req.Slug)
	if !ValidateSlug(slug) {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Slug may only contain lowercase letters, numbers and hyphens"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Uniqueness check: reject only when another owner holds the slug
	var ownerID string
	err := config.Pool.QueryRow(ctx, "SELECT user_id FROM store_settings WHERE slug = $1", slug).Scan(&ownerID)
	if err == nil && ownerID != userID {
		return c.JSON(http.StatusConflict, map[string]string{"message": "Slug is already taken"})
	}

	if err := upsertField(ctx, userID, "slug", slug); err != nil {
		log.Printf("Failed to update slug: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to update slug"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Slug updated", "slug": slug})
}

// UpdateTheme sets the named color palette.
func UpdateTheme(c echo.Context) error {
	userID, ok := cust_middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	}

	var req models.UpdateThemeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid Request"})
	}
	if !ColorThemes[req.ColorTheme] {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Unknown color theme"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := upsertField(ctx, userID, "color_theme", req.ColorTheme); err != nil {
		log.Printf("Failed to update theme: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to update theme"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Theme updated", "color_theme": req.ColorTheme})
}

// UpdateFonts replaces the three font slots as one field group.
func UpdateFonts(c echo.Context) error {
	userID, ok := cust_middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	}

	var req models.FontSettings
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid Request"})
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid font settings"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := upsertField(ctx, userID, "font_settings", payload); err != nil {
		log.Printf("Failed to update fonts: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to update fonts"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"message": "Fonts updated", "font_settings": req})
}

// UpdateContactInfo replaces address/phone/wifi/description as one group.
func UpdateContactInfo(c echo.Context) error {
	userID, ok := cust_middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	}

	var req models.ContactInfo
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid Request"})
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid contact info"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := upsertField(ctx, userID, "contact_info", payload); err != nil {
		log.Printf("Failed to update contact info: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to update contact info"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"message": "Contact info updated", "contact_info": req})
}

// UpdateSocialLinks replaces the social link group.
func UpdateSocialLinks(c echo.Context) error {
	userID, ok := cust_middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	}

	var req models.SocialLinks
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid Request"})
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid social links"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := upsertField(ctx, userID, "social_links", payload); err != nil {
		log.Printf("Failed to update social links: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to update social links"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"message": "Social links updated", "social_links": req})
}
