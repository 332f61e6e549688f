package main

import (
	"context"
	"log"

	"contentcraft-be/internal/bootstrap"
	"contentcraft-be/internal/config"
	"contentcraft-be/internal/server"
	"contentcraft-be/internal/tracer"
	"contentcraft-be/pkg/database"
)

func main() {
	// 1. Load Configuration (pulls in .env, so it must run before anything
	// that reads the environment)
	cfg := config.Load()

	// 2. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 3. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 5. Start Background Services
	// Note: In a larger app, we might use an errgroup or supervisor here
	go func() {
		log.Println("Background: Starting Audit Consumer Service...")
		if err := container.AuditConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 6. Initialize Server
	srv := server.New(cfg, container)

	// 7. Run Server
	log.Fatal(srv.Run())
}
