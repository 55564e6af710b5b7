package models

// Category struct
type Category struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// Product struct
type Product struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	CategoryID   *string `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Description  string  `json:"description"`
	ImageURL     string  `json:"image_url"`
	IsNew        bool    `json:"is_new"`
	IsPopular    bool    `json:"is_popular"`
	DisplayOrder int     `json:"display_order"`
}

// CategoryRequest struct
type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// ProductRequest struct
type ProductRequest struct {
	CategoryID   *string `json:"category_id"`
	Name         string  `json:"name" validate:"required"`
	Price        float64 `json:"price" validate:"min=0"`
	Description  string  `json:"description"`
	IsNew        bool    `json:"is_new"`
	IsPopular    bool    `json:"is_popular"`
	DisplayOrder int     `json:"display_order"`
}

// StorefrontResponse is the public payload served under a store's slug.
type StorefrontResponse struct {
	StoreName    string                 `json:"store_name"`
	Slug         string                 `json:"slug"`
	BannerURL    string                 `json:"banner_url"`
	LogoURL      string                 `json:"logo_url"`
	ColorTheme   string                 `json:"color_theme"`
	FontSettings map[string]interface{} `json:"font_settings"`
	ContactInfo  map[string]interface{} `json:"contact_info"`
	SocialLinks  map[string]interface{} `json:"social_links"`
	Categories   []Category             `json:"categories"`
	Products     []Product              `json:"products"`
}
