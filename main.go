package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"aqari/internal/config"
	"aqari/internal/database"
	"aqari/internal/demo"
	"aqari/internal/router"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	// make sure the demo graph exists
	if err := database.Seed(db, cfg.Security.BcryptCost); err != nil {
		log.Printf("seed database: %v", err)
	}

	// demo reset scheduler; never runs in a release deployment
	if cfg.Server.Mode != "release" {
		interval := time.Duration(cfg.Demo.ResetIntervalMinutes) * time.Minute
		reset := demo.NewResetService(db, interval, cfg.Security.BcryptCost)
		reset.Start(context.Background())
	}

	// setup router
	r := router.SetupRouter(cfg, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
