package main

import (
	"context"
	"time"

	"scan-service/config"
	"scan-service/database"
	"scan-service/handlers"
	"scan-service/middleware"
	"scan-service/openfoodfacts"
	"scan-service/scanner"

	"github.com/apex/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const (
	EndPointHealth = "/health"
	EndPointScan   = "/scan/:product_id"
	EndPointReload = "/reload"
)

func main() {
	cfg := config.Load()

	log.Info("Starting the scan service...")

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}
	defer db.Close()

	if err := database.InitSchema(db); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	catalog := database.NewCatalogService(db)
	if err := catalog.Reload(context.Background()); err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	offClient := openfoodfacts.NewClient(cfg)
	scanService := scanner.NewService(catalog, offClient)
	scanHandler := handlers.NewScanHandler(scanService, catalog)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		AllowOrigins:     []string{"*"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RequestIDMiddleware())

	router.GET(EndPointHealth, scanHandler.HealthCheck)

	rateLimited := router.Group("/")
	rateLimited.Use(middleware.RateLimitMiddleware(cfg.RateLimitPerSec, cfg.RateLimitBurst))
	{
		rateLimited.GET(EndPointScan, scanHandler.Scan)
		rateLimited.POST(EndPointReload, scanHandler.Reload)
	}

	log.Infof("Scan service starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
