package handler

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	config "storelink/config/database"
	cust_middleware "storelink/internal/middleware"

	"github.com/labstack/echo/v4"
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// SaveUploadedImage stores a multipart image under a per-user unique key and
// returns its public URL. The client compresses before upload; the server
// only enforces the size cap.
func SaveUploadedImage(c echo.Context, subdir, userID string) (string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return "", fmt.Errorf("no image uploaded")
	}
	if fileHeader.Size > config.Cfg.MaxUploadSizeByte {
		return "", fmt.Errorf("image exceeds the %d byte limit", config.Cfg.MaxUploadSizeByte)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("unsupported image type %s", ext)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dir := filepath.Join(config.Cfg.UploadDir, subdir)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}

	// Per-user unique key: owner id + upload time
	filename := fmt.Sprintf("%s_%d%s", userID, time.Now().Unix(), ext)
	savePath := filepath.Join(dir, filename)

	dst, err := os.Create(savePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/uploads/%s/%s", config.Cfg.PublicBaseURL, subdir, filename), nil
}

// UploadBanner stores a new banner image and points banner_url at it. A
// failed upload surfaces the underlying error; nothing is rolled back.
func UploadBanner(c echo.Context) error {
	return uploadBrandingImage(c, "banners", "banner_url")
}

// UploadLogo stores a new logo image and points logo_url at it.
func UploadLogo(c echo.Context) error {
	return uploadBrandingImage(c, "logos", "logo_url")
}

func uploadBrandingImage(c echo.Context, subdir, column string) error {
	userID, ok := cust_middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	}

	publicURL, err := SaveUploadedImage(c, subdir, userID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := upsertField(ctx, userID, column, publicURL); err != nil {
		log.Printf("Failed to save %s: %v", column, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to save image URL"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Image uploaded", "url": publicURL})
}
