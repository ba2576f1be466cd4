package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"commonhub/internal/booking"
	"commonhub/internal/config"
	"commonhub/internal/db"
	"commonhub/internal/events"
	"commonhub/internal/facility"
	"commonhub/internal/logger"
	"commonhub/internal/server"

	"github.com/redis/go-redis/v9"
)

// @title CommonHub Facility Booking API
// @version 1.0
// @description Slot booking for shared community facilities.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat)
	logger.Info("Starting CommonHub booking service", "timezone", cfg.Timezone.String())

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Warn("Redis unreachable, facility cache and event queue degraded", "addr", cfg.RedisAddr, "error", err)
	}

	publisher, err := newPublisher(cfg)
	if err != nil {
		logger.Fatalf("Failed to create event publisher: %v", err)
	}
	queue := events.NewQueue(rdb, publisher)
	defer queue.Close()

	facilityRepo := facility.NewCachedRepository(facility.NewRepository(database), rdb, cfg.FacilityCacheTTL)
	facilityService := facility.NewService(facilityRepo)
	bookingService := booking.NewService(booking.NewRepository(database), facilityRepo, queue, cfg.Timezone)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go queue.Start(ctx)

	srv := server.New(cfg, server.Deps{
		Facilities: facilityService,
		Bookings:   bookingService,
		Database:   database,
		Events:     queue,
	})

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}
	cancel()

	logger.Info("Server stopped")
}

func newPublisher(cfg *config.Config) (events.Publisher, error) {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Warn("KAFKA_BROKERS not set, booking events go to the log")
		return events.LogPublisher{}, nil
	}

	logger.Info("Publishing booking events to Kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	return events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
}
