package main

import (
	"context"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skyfare/skyfare/internal/checkout"
	"github.com/skyfare/skyfare/internal/storage"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"
)

func main() {
	ctx := context.Background()

	temporalHost := getEnv("TEMPORAL_HOST", "localhost:7233")

	// Receipts go wherever the server keeps its slots.
	var slots storage.SlotStore
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		log.Println("Connecting to database...")
		pool, err := pgxpool.New(ctx, dbURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()
		if err := pool.Ping(ctx); err != nil {
			log.Fatalf("Failed to ping database: %v", err)
		}
		slots = storage.NewPostgresStore(pool)
	} else {
		fileStore, err := storage.NewFileStore(getEnv("CART_DATA_DIR", "./data"))
		if err != nil {
			log.Fatalf("Failed to open data dir: %v", err)
		}
		slots = fileStore
	}

	log.Printf("Connecting to Temporal at %s...", temporalHost)
	c, err := client.Dial(client.Options{HostPort: temporalHost})
	if err != nil {
		log.Fatalf("Failed to connect to Temporal: %v", err)
	}
	defer c.Close()
	log.Println("Connected to Temporal")

	w := worker.New(c, checkout.TaskQueue, worker.Options{})

	w.RegisterWorkflowWithOptions(checkout.Workflow, workflow.RegisterOptions{Name: "CheckoutWorkflow"})

	acts := checkout.NewActivities(slots)
	w.RegisterActivityWithOptions(acts.RecordBooking, activity.RegisterOptions{Name: "RecordBooking"})
	w.RegisterActivityWithOptions(acts.NotifyConfirmation, activity.RegisterOptions{Name: "NotifyConfirmation"})

	log.Println("Starting checkout worker...")
	if err := w.Run(worker.InterruptCh()); err != nil {
		log.Fatalf("Worker failed: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
