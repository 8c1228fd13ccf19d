// Manual question-catalog re-seed.
//
// Seeding runs automatically on startup when the persisted catalog version
// differs from the compiled-in one. This script forces a wholesale replace
// regardless of version, for recovery after manual table edits.
//
// Usage: go run scripts/seed_catalog.go
package main

import (
	"log"
	"os"

	"cogscreen_backend/internal/catalog"
	"cogscreen_backend/internal/config"
	"cogscreen_backend/internal/repository"
	"cogscreen_backend/pkg/database"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("Failed to parse config file: %v", err)
	}

	db, err := database.InitDB(&cfg.Database, true)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	cat, err := catalog.Load()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	repo := repository.NewCatalogRepository(db)
	if err := repo.Replace(cat.Models()); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
	log.Printf("Question catalog re-seeded at version %s", cat.Version)
}
