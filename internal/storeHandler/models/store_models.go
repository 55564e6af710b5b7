package models

// FontChoice is one of the three independent font slots.
type FontChoice struct {
	Family    string `json:"family"`
	CustomURL string `json:"custom_url,omitempty"`
}

// FontSettings struct
type FontSettings struct {
	Heading FontChoice `json:"heading"`
	Body    FontChoice `json:"body"`
	Accent  FontChoice `json:"accent"`
}

// ContactInfo struct
type ContactInfo struct {
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Wifi        string `json:"wifi"`
	Description string `json:"description"`
}

// SocialLinks struct
type SocialLinks struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	Telegram  string `json:"telegram"`
}

// StoreSettings is the single per-owner configuration row.
type StoreSettings struct {
	ID           string       `json:"id"`
	UserID       string       `json:"user_id"`
	Slug         *string      `json:"slug"`
	StoreName    string       `json:"store_name"`
	BannerURL    string       `json:"banner_url"`
	LogoURL      string       `json:"logo_url"`
	ColorTheme   string       `json:"color_theme"`
	FontSettings FontSettings `json:"font_settings"`
	ContactInfo  ContactInfo  `json:"contact_info"`
	SocialLinks  SocialLinks  `json:"social_links"`
}

// UpdateNameRequest struct
type UpdateNameRequest struct {
	StoreName string `json:"store_name" validate:"required"`
}

// UpdateSlugRequest struct
type UpdateSlugRequest struct {
	Slug string `json:"slug" validate:"required"`
}

// UpdateThemeRequest struct
type UpdateThemeRequest struct {
	ColorTheme string `json:"color_theme" validate:"required"`
}
