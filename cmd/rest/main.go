package main

import (
	"context"
	"log"

	"ai-chatbox-be/internal/bootstrap"
	"ai-chatbox-be/internal/config"
	"ai-chatbox-be/internal/server"
	"ai-chatbox-be/pkg/database"
)

func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	go func() {
		log.Println("Background: Starting Audit Consumer...")
		if err := container.AuditService.Consume(context.Background()); err != nil {
			log.Printf("Background Audit Consumer Error: %v", err)
		}
	}()

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
