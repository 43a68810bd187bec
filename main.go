// @title DSA Roadmap API
// @version 1.0
// @description Backend for the data structures and algorithms learning roadmap.

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"

	"dsa_roadmap_backend/internal/app"
	"dsa_roadmap_backend/internal/config"
	"dsa_roadmap_backend/pkg/configwatcher"
	"dsa_roadmap_backend/pkg/logger"
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

	if *migrateOnly {
		log.Println("Database migration complete, exiting")
		return
	}

	go configwatcher.WatchConfig("configs/config.yaml", application.ApplyConfig)

	application.Run()
}
