package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"battery-shipment-monitor/internal/config"
	"battery-shipment-monitor/internal/infrastructure/database/postgres"
	"battery-shipment-monitor/internal/logger"
	"battery-shipment-monitor/internal/notification"
	"battery-shipment-monitor/internal/realtime"
	"battery-shipment-monitor/internal/routes"
	"battery-shipment-monitor/pkg/lock"
	"battery-shipment-monitor/pkg/mqtt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("Failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	env := cfg.Server.Environment
	if env == "" {
		env = "development"
	}
	if err := logger.Init(env); err != nil {
		os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting battery shipment monitor",
		zap.String("environment", env),
	)

	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		logger.Fatal("Database configuration is missing. Please set DB_HOST and DB_NAME environment variables.")
	}
	if cfg.JWT.Secret == "" {
		logger.Fatal("JWT secret is missing. Please set JWT_SECRET environment variable.")
	}

	db, err := postgres.NewDB(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to migrate database schema", zap.Error(err))
	}

	// Per-contract exclusivity: the in-process keyed mutex is enough for a
	// single replica; Redis takes over when replicas share the database.
	var locker lock.Locker = lock.NewKeyMutex()
	if cfg.Redis.UseLock {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()

		locker = lock.NewRedisLocker(redisClient)
		logger.Info("Using Redis-backed contract locking",
			zap.String("address", cfg.Redis.Address),
		)
	}

	hub := realtime.NewHub()
	go hub.Run()
	defer hub.Stop()

	publishers := realtime.MultiPublisher{hub}
	if cfg.MQTT.Enabled {
		mqttClient := mqtt.NewClient(&mqtt.Config{
			Broker:   cfg.MQTT.Broker,
			ClientID: cfg.MQTT.ClientID,
			Username: cfg.MQTT.Username,
			Password: cfg.MQTT.Password,
		})
		if err := mqttClient.Connect(); err != nil {
			logger.Error("Failed to connect to MQTT broker, continuing without it", zap.Error(err))
		} else {
			defer mqttClient.Disconnect()
			publishers = append(publishers, realtime.NewMQTTPublisher(mqttClient, cfg.MQTT.TopicPrefix))
		}
	}

	dispatcher := notification.NewDispatcher(notification.NewEmailNotifier(cfg.SMTP))

	router := routes.SetupRoutes(cfg, &routes.Dependencies{
		DB:         db,
		Locker:     locker,
		Hub:        hub,
		Publisher:  publishers,
		Dispatcher: dispatcher,
	})

	host := cfg.Server.Host
	if host == "" {
		host = "0.0.0.0"
	}
	port := cfg.Server.Port
	if port == "" {
		port = "8080"
	}
	addr := net.JoinHostPort(host, port)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting",
			zap.String("address", addr),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutdown Server ...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Failed to shutdown server", zap.Error(err))
	}

	// Let in-flight notifications drain before the process exits.
	dispatcher.Wait()

	logger.Info("Server exited properly")
}
