// @title CogScreen Backend API
// @version 1.0
// @description Backend for the bilingual cognitive-decline screening service: questionnaire catalog, response ingest, instrument scoring and clinical review.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"cogscreen_backend/internal/app"
	"cogscreen_backend/internal/config"
	"cogscreen_backend/pkg/configwatcher"
	"cogscreen_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migration and exit")
	migrate := flag.Bool("migrate", false, "force database migration on startup")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if cfg.MigrateOnly {
		log.Println("Database migration completed, exiting")
		return
	}

	// Hot-reload for settings that take effect without a restart.
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		cfg.JWT = newCfg.JWT
		logger.Log.Info("Configuration reloaded")
	})

	application.Run()
}
