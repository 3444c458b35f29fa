package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"

	"oci_kiosk/bootstrap"
	"oci_kiosk/database"
	_ "oci_kiosk/docs"
	"oci_kiosk/internal/middleware"
	"oci_kiosk/internal/routes"
	"oci_kiosk/internal/storage"
)

func init() {
	if err := godotenv.Overload(".env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
}

func main() {
	cfg := database.LoadConfig()
	if cfg.JWTSecret == "" {
		panic("JWT_SECRET is required")
	}

	// --- MongoDB Connection ---
	client := database.ConnectMongo(cfg)
	db := client.Database(cfg.DBName)

	if err := bootstrap.EnsureKioskIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	// --- S3 ---
	var store *storage.Store
	if cfg.S3Bucket != "" {
		var err error
		store, err = storage.New(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.CDNBaseURL)
		if err != nil {
			log.Fatalf("s3 setup failed: %v", err)
		}
	} else {
		log.Println("S3_BUCKET not set, uploads and subtitles disabled")
	}

	// --- Fiber App Setup ---
	app := fiber.New()

	// Swagger docs
	app.Get("/docs/*", swagger.HandlerDefault)

	app.Use(middleware.JWTOperator(cfg.JWTSecret))

	routes.Register(app, routes.Deps{
		DB:    db,
		Store: store,
		Cfg:   cfg,
	})

	log.Printf("listening at http://localhost:%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
