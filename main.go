package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/adiwirasta/franchise-supply-app/config"
	"github.com/adiwirasta/franchise-supply-app/models"
	"github.com/adiwirasta/franchise-supply-app/router"
	"github.com/adiwirasta/franchise-supply-app/services"
	"github.com/adiwirasta/franchise-supply-app/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load config: %v", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	// Worker notifikasi berjalan terpisah dari request lifecycle.
	notifier := services.NewNotifier(db, cfg.NotifyBuffer)
	notifier.Start()
	defer notifier.Stop()

	r := router.SetupRouter(db, tokens, notifier)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Franchise{},
		&models.Vendor{},
		&models.VendorCatalogItem{},
		&models.Order{},
		&models.OrderLine{},
		&models.Discrepancy{},
		&models.Notification{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
