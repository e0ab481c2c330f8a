package config

import (
	"fmt"
	"os"
	"strconv"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	DBDriver      string // "sqlite" (default) or "mysql"
	DBDSN         string
	AdminUsername string
	AdminPassword string
	SessionSecret string
	UploadDir     string
	ReceiptFont   string // TTF path for receipt PDFs; empty keeps core fonts
	Port          string
	OrdersPerPage int
}

// Load reads configuration from the environment, falling back to
// development defaults.
func Load() Config {
	return Config{
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBDSN:         getEnv("DATABASE_URL", "cafe.db"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		SessionSecret: getEnv("SESSION_SECRET", "your-secret-key-here-change-in-production"),
		UploadDir:     getEnv("UPLOAD_FOLDER", "static/uploads"),
		ReceiptFont:   getEnv("RECEIPT_FONT_PATH", ""),
		Port:          getEnv("PORT", "8080"),
		OrdersPerPage: getEnvInt("ORDERS_PER_PAGE", 20),
	}
}

// InitDB opens the database connection for the configured driver.
func InitDB(cfg Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "mysql":
		return gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DBDSN), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
