package main

import (
	"context"
	"log"

	"github.com/UnknownOlympus/hestia/internal/config"
	"github.com/UnknownOlympus/hestia/internal/repository"
)

func main() {
	cfg := config.MustLoad()

	dbpool, dbErr := repository.NewDatabase(context.Background(), cfg.Postgres)
	if dbErr != nil {
		log.Fatalf("Failed to connect to DB: %v", dbErr)
	}
	defer dbpool.Close()

	if migrationErr := repository.Migrate(dbpool, cfg.Postgres.MigrationsDir); migrationErr != nil {
		log.Fatalf("Failed to apply migrations: %v", migrationErr) //nolint:gocritic // pool is released on exit
	}

	log.Println("✅ Migrations applied successfully")
}
