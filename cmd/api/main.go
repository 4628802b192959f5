// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/config"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/payment"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/infrastructure/database/postgres"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/infrastructure/database/redis"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/interfaces/http"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/interfaces/http/routes"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/pkg/email"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/pkg/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Connect to database
	db, err := postgres.NewConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Connect to Redis
	redisClient, err := redis.NewConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Run database migrations
	migration := postgres.NewMigration(db.DB)

	if err := migration.RunAutoMigrations(); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}

	if err := migration.CreateIndexes(); err != nil {
		log.Printf("Warning: Index creation failed: %v", err)
	}

	// Seed initial data in development
	if cfg.IsDevelopment() {
		if err := migration.SeedInitialData(); err != nil {
			log.Printf("Warning: Data seeding failed: %v", err)
		}
	}

	// Application logger for background workers
	appLogger := logrus.New()
	if cfg.Logging.Format == "json" {
		appLogger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	}
	if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
		appLogger.SetLevel(level)
	}

	// Background email dispatcher
	dispatcher := email.NewDispatcher(email.NewSMTPSender(&cfg.Email), &cfg.Email, cfg.App.Name, appLogger)
	defer dispatcher.Close()

	// File storage backend
	store, err := storage.New(context.Background(), &cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Payment gateway client, only when configured
	var gateway payment.GatewayVerifier
	if cfg.Gateway.BaseURL != "" {
		gateway = payment.NewRestGateway(&cfg.Gateway)
	}

	log.Println("✅ All systems operational!")

	// Create and start HTTP server
	server := http.NewServer(&routes.Dependencies{
		Config:     cfg,
		DB:         db.DB,
		Redis:      redisClient.GetClient(),
		Dispatcher: dispatcher,
		Storage:    store,
		Gateway:    gateway,
	})

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("👋 Shutting down gracefully...")

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.Printf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	log.Println("✅ Server shutdown completed")
}
