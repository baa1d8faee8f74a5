package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tharwin-carr/smoothie-me-api2/config"
	"github.com/tharwin-carr/smoothie-me-api2/internal/api"
	"github.com/tharwin-carr/smoothie-me-api2/internal/database"
	"github.com/tharwin-carr/smoothie-me-api2/internal/router"
	"github.com/tharwin-carr/smoothie-me-api2/internal/server"
	"github.com/tharwin-carr/smoothie-me-api2/internal/service"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	smoothieHandler := api.NewSmoothieHandler(service.NewSmoothieService(db))
	favoriteHandler := api.NewFavoriteHandler(service.NewFavoriteService(db))

	engine := router.SetupRouter(db, smoothieHandler, favoriteHandler)
	srv := server.New(cfg.Addr(), engine)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Printf("Starting server on %s", cfg.Addr())
		errChan <- srv.Start()
	}()

	// Block until we receive a signal or a server error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
