package config

import (
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	DriverFile   = "file"
	DriverMemory = "memory"
	DriverMongo  = "mongo"
)

// Email providers accepted by EMAIL_PROVIDER.
const (
	EmailNone     = "none"
	EmailPostmark = "postmark"
	EmailSendGrid = "sendgrid"
)

// AppConfig holds every setting the server reads from the environment.
type AppConfig struct {
	Port string

	StorageDriver string
	VaultDir      string
	MongoURI      string
	MongoDatabase string

	JWTSecret       []byte
	AdminAccessCode string

	SeedCatalogFile   string
	CartPolicy        string
	DeliveryFee       float64
	DeliveryThreshold float64

	EmailProvider    string
	PostmarkAPIToken string
	SendGridAPIKey   string
	EmailSender      string

	CloudinaryURL string
}

// Load reads a .env file if one exists, then the process environment.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return FromEnv()
}

// FromEnv builds an AppConfig from the current environment without touching .env.
func FromEnv() *AppConfig {
	cfg := &AppConfig{
		Port:              getEnv("PORT", "8000"),
		StorageDriver:     strings.ToLower(getEnv("STORAGE_DRIVER", DriverFile)),
		VaultDir:          getEnv("VAULT_DIR", "./data"),
		MongoURI:          getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:     getEnv("MONGO_DATABASE", "ak_storefront"),
		JWTSecret:         []byte(getEnv("JWT_SECRET", "")),
		AdminAccessCode:   getEnv("ADMIN_ACCESS_CODE", ""),
		SeedCatalogFile:   getEnv("SEED_CATALOG_FILE", ""),
		CartPolicy:        strings.ToLower(getEnv("CART_POLICY", "append")),
		DeliveryFee:       getFloat("DELIVERY_FEE", 0),
		DeliveryThreshold: getFloat("DELIVERY_THRESHOLD", 0),
		EmailProvider:     strings.ToLower(getEnv("EMAIL_PROVIDER", EmailNone)),
		PostmarkAPIToken:  getEnv("POSTMARK_API_TOKEN", ""),
		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		EmailSender:       getEnv("EMAIL_SENDER", ""),
		CloudinaryURL:     getEnv("CLOUDINARY_URL", ""),
	}

	switch cfg.StorageDriver {
	case DriverFile, DriverMemory, DriverMongo:
	default:
		log.Printf("Unknown STORAGE_DRIVER %q, falling back to %s", cfg.StorageDriver, DriverFile)
		cfg.StorageDriver = DriverFile
	}

	if len(cfg.JWTSecret) == 0 {
		log.Println("JWT_SECRET is not set, admin tokens use a development key")
		cfg.JWTSecret = []byte("ak-storefront-dev-secret")
	}

	return cfg
}

// AdminEnabled reports whether the admin console can be unlocked.
func (c *AppConfig) AdminEnabled() bool {
	return c.AdminAccessCode != ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getFloat(key string, defaultValue float64) float64 {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		log.Printf("Ignoring invalid %s=%q", key, raw)
		return defaultValue
	}
	return v
}
