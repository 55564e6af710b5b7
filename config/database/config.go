package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// App holds every environment-driven setting the service needs.
type App struct {
	// DB
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	// JWT
	JWTSecret string `envconfig:"JWT_SECRET" default:"12345"`
	// Platform admin credentials. Single fixed admin account; not stored in
	// the users table.
	AdminEmail string `envconfig:"ADMIN_EMAIL" default:"admin@storelink.app"`
	AdminPIN   string `envconfig:"ADMIN_PIN" default:"0000"`
	// Network
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`
	// Public base URL used to build uploaded-asset links
	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:8080"`
	// Uploads
	UploadDir         string `envconfig:"UPLOAD_DIR" default:"uploads"`
	MaxUploadSizeByte int64  `envconfig:"MAX_UPLOAD_SIZE_BYTES" default:"5242880"`
	// Email
	BrevoAPIKey string `envconfig:"BREVO_API_KEY"`
}

// Cfg is the loaded application config, populated by Load (and by InitDB).
var Cfg App

// Load reads .env (if present) and the process environment into Cfg.
func Load() (App, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	var c App
	if err := envconfig.Process("", &c); err != nil {
		return c, err
	}
	Cfg = c
	return c, nil
}

// MustLoad is Load for main(): it aborts on a broken environment.
func MustLoad() App {
	c, err := Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return c
}
