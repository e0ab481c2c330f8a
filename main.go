package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"cafe-management/config"
	"cafe-management/events"
	"cafe-management/models"
	"cafe-management/router"
	"cafe-management/session"
	"cafe-management/utils"
)

func main() {
	utils.InitLogger()

	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Menu{},
		&models.Order{},
		&models.OrderItem{},
		&session.Record{},
	); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		utils.ErrorLogger.Fatalf("Failed to create upload dir: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	store := session.NewGormStore(db)
	store.StartSweeper(make(chan struct{}))
	hub := events.NewHub()

	r := router.SetupRouter(db, cfg, store, hub)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
