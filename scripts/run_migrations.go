package main

import (
	"context"
	"log"
	"os"

	"github.com/safar/go-order-api/internal/config"
	"github.com/safar/go-order-api/internal/database"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run scripts/run_migrations.go [up|down]")
	}

	direction := os.Args[1]
	if direction != "up" && direction != "down" {
		log.Fatal("Direction must be 'up' or 'down'")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("Connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	switch direction {
	case "up":
		if err := database.EnsureSchema(ctx, db); err != nil {
			log.Fatalf("Ensure schema: %v", err)
		}
	case "down":
		if err := database.DropSchema(ctx, db); err != nil {
			log.Fatalf("Drop schema: %v", err)
		}
	}

	log.Printf("Migration %s complete", direction)
}
