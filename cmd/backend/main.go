package main

import (
	"context"
	"log"
	"net/http"

	sqliteadapter "github.com/csg33k/employee-manager/internal/adapters/sqlite"
	"github.com/csg33k/employee-manager/internal/api"
	"github.com/csg33k/employee-manager/internal/config"
)

func main() {
	config.LoadDotEnv()
	var cfg config.Backend
	if err := config.Parse(&cfg); err != nil {
		log.Fatal(err)
	}
	logger := config.Logger(cfg.LogLevel)

	repo, err := sqliteadapter.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer repo.Close()
	if cfg.AutoMigrate {
		if err := repo.Migrate(context.Background()); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
	}

	h := api.New(repo, logger)

	log.Printf("Employee API running on http://localhost:%s", cfg.Port)
	log.Printf("Database: %s", cfg.DBPath)
	if err := http.ListenAndServe(":"+cfg.Port, h.Routes()); err != nil {
		log.Fatal(err)
	}
}
