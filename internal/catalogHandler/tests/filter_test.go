package tests

import (
	"strings"
	"testing"

	handler "storelink/internal/catalogHandler"
	"storelink/internal/catalogHandler/models"

	"github.com/stretchr/testify/assert"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{Name: "Burger", CategoryName: "Food"},
		{Name: "Cola", CategoryName: "Drinks"},
	}
}

func names(products []models.Product) []string {
	out := []string{}
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestFilterProducts(t *testing.T) {
	t.Run("Query Substring Match", func(t *testing.T) {
		got := handler.FilterProducts(sampleProducts(), "bur", "")
		assert.Equal(t, []string{"Burger"}, names(got))
	})

	t.Run("Category Exact Match", func(t *testing.T) {
		got := handler.FilterProducts(sampleProducts(), "", "Drinks")
		assert.Equal(t, []string{"Cola"}, names(got))
	})

	t.Run("Query And Category Compose By AND", func(t *testing.T) {
		got := handler.FilterProducts(sampleProducts(), "bur", "Drinks")
		assert.Empty(t, got)

		got = handler.FilterProducts(sampleProducts(), "col", "Drinks")
		assert.Equal(t, []string{"Cola"}, names(got))
	})

	t.Run("Case Insensitive On Name Only", func(t *testing.T) {
		got := handler.FilterProducts(sampleProducts(), "BURGER", "")
		assert.Equal(t, []string{"Burger"}, names(got))

		// category comparison stays exact
		got = handler.FilterProducts(sampleProducts(), "", "drinks")
		assert.Empty(t, got)
	})

	t.Run("Empty Filters Return Everything", func(t *testing.T) {
		got := handler.FilterProducts(sampleProducts(), "", "")
		assert.Len(t, got, 2)
	})
}

func TestCacheBust(t *testing.T) {
	t.Run("Appends Timestamp", func(t *testing.T) {
		got := handler.CacheBust("https://cdn.example.com/banner.png", 1700000000)
		assert.Equal(t, "https://cdn.example.com/banner.png?t=1700000000", got)
	})

	t.Run("Replaces Existing Timestamp", func(t *testing.T) {
		got := handler.CacheBust("https://cdn.example.com/banner.png?t=1", 1700000000)
		assert.Equal(t, "https://cdn.example.com/banner.png?t=1700000000", got)
		assert.Equal(t, 1, strings.Count(got, "t="))
	})

	t.Run("Keeps Other Params", func(t *testing.T) {
		got := handler.CacheBust("https://cdn.example.com/banner.png?w=400&t=1", 2)
		assert.Contains(t, got, "w=400")
		assert.Contains(t, got, "t=2")
	})

	t.Run("Empty URL Stays Empty", func(t *testing.T) {
		assert.Equal(t, "", handler.CacheBust("", 1))
	})
}
