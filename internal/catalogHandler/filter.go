package handler

import (
	"net/url"
	"strconv"
	"strings"

	"storelink/internal/catalogHandler/models"
)

// FilterProducts applies the storefront's client-side search semantics:
// case-insensitive substring match of query against the product name, exact
// match on category name when one is selected. Both compose by AND.
func FilterProducts(products []models.Product, query, category string) []models.Product {
	query = strings.ToLower(strings.TrimSpace(query))

	filtered := []models.Product{}
	for _, p := range products {
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		if category != "" && p.CategoryName != category {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// CacheBust appends a t=<timestamp> query parameter to an image URL, replacing
// any existing one so repeated fetches do not grow the URL. Stale CDN copies
// of edited images miss on the new URL.
func CacheBust(rawURL string, ts int64) string {
	if rawURL == "" {
		return rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	q.Set("t", strconv.FormatInt(ts, 10))
	u.RawQuery = q.Encode()
	return u.String()
}
