package main

import (
	"log"
	"net/http"

	csvexport "github.com/csg33k/employee-manager/internal/adapters/csv"
	"github.com/csg33k/employee-manager/internal/adapters/pdf"
	"github.com/csg33k/employee-manager/internal/adapters/rest"
	"github.com/csg33k/employee-manager/internal/config"
	"github.com/csg33k/employee-manager/internal/console"
	"github.com/csg33k/employee-manager/internal/handlers"
)

func main() {
	config.LoadDotEnv()
	var cfg config.Console
	if err := config.Parse(&cfg); err != nil {
		log.Fatal(err)
	}
	logger := config.Logger(cfg.LogLevel)

	backend, err := rest.New(cfg.APIURL, nil)
	if err != nil {
		log.Fatalf("invalid EMPLOYEE_API_URL: %v", err)
	}

	store := console.NewStore(backend, logger)
	ctrl := console.NewController(store, logger)
	h := handlers.New(ctrl, logger, pdf.New(""), csvexport.New())

	log.Printf("Employee Manager running on http://localhost:%s", cfg.Port)
	log.Printf("Employee API: %s", cfg.APIURL)
	if err := http.ListenAndServe(":"+cfg.Port, h.Routes()); err != nil {
		log.Fatal(err)
	}
}
