package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skyfare/skyfare/internal/catalog"
	"github.com/skyfare/skyfare/internal/handlers"
	"github.com/skyfare/skyfare/internal/router"
	"github.com/skyfare/skyfare/internal/service"
	"github.com/skyfare/skyfare/internal/storage"
	"github.com/skyfare/skyfare/internal/ws"
	"go.temporal.io/sdk/client"
)

const (
	DefaultPort    = "8080"
	DefaultDataDir = "./data"
)

func main() {
	ctx := context.Background()

	port := getEnv("API_PORT", DefaultPort)

	// Pick the catalog backend: Postgres when DATABASE_URL is set, remote
	// JSON when CATALOG_URL is set, demo fixtures otherwise.
	var provider catalog.Provider
	var slots storage.SlotStore

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		pool, err := pgxpool.New(ctx, dbURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()
		if err := pool.Ping(ctx); err != nil {
			log.Fatalf("Failed to ping database: %v", err)
		}
		log.Println("Using Postgres catalog and slot store")
		provider = catalog.NewPostgresCatalog(pool)
		slots = storage.NewPostgresStore(pool)
	} else {
		if catalogURL := os.Getenv("CATALOG_URL"); catalogURL != "" {
			log.Printf("Using remote catalog at %s", catalogURL)
			provider = catalog.NewHTTPCatalog(catalogURL)
		} else {
			log.Println("Using built-in sample catalog")
			provider = catalog.NewSampleCatalog()
		}

		fileStore, err := storage.NewFileStore(getEnv("CART_DATA_DIR", DefaultDataDir))
		if err != nil {
			log.Fatalf("Failed to open cart data dir: %v", err)
		}
		slots = fileStore
	}

	// Temporal is optional; without it checkout runs inline.
	var temporalClient client.Client
	if temporalHost := os.Getenv("TEMPORAL_HOST"); temporalHost != "" {
		c, err := client.Dial(client.Options{HostPort: temporalHost})
		if err != nil {
			log.Fatalf("Failed to create Temporal client: %v", err)
		}
		defer c.Close()
		log.Printf("Connected to Temporal server at %s", temporalHost)
		temporalClient = c
	}

	hub := ws.NewHub()
	go hub.Run()

	bookingService := service.NewBookingService(provider, slots, hub, temporalClient, service.Config{})
	h := handlers.NewHandler(bookingService)
	r := router.SetupRouter(h, hub)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("API Server starting on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
