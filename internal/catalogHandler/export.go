package handler

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	cust_middleware "storelink/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/tealeg/xlsx"
)

// ExportProducts streams the owner's catalog as an .xlsx workbook.
func ExportProducts(c echo.Context) error {
	userID, ok := cust_middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	}

	products, err := fetchProducts(context.Background(), userID)
	if err != nil {
		log.Printf("Failed to fetch products for export: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to export products"})
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to build workbook"})
	}

	header := sheet.AddRow()
	for _, title := range []string{"Name", "Category", "Price", "Description", "New", "Popular", "Display Order"} {
		header.AddCell().SetValue(title)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(p.CategoryName)
		row.AddCell().SetValue(p.Price)
		row.AddCell().SetValue(p.Description)
		row.AddCell().SetValue(p.IsNew)
		row.AddCell().SetValue(p.IsPopular)
		row.AddCell().SetValue(p.DisplayOrder)
	}

	filename := fmt.Sprintf("products_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)

	return file.Write(c.Response())
}
