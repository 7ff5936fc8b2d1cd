// cmd/server/main.go
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/velizon/tracking-api/internal/adapters/httpserver"
	"github.com/velizon/tracking-api/internal/adapters/redis"
	"github.com/velizon/tracking-api/internal/adapters/repository"
	"github.com/velizon/tracking-api/internal/application"
	"github.com/velizon/tracking-api/internal/config"
	"github.com/velizon/tracking-api/pkg/auth"
	"github.com/velizon/tracking-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zl := logger.New(cfg.LogFile)
	defer zl.Sync()

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		zl.Fatal("failed to open DB", zap.Error(err))
	}
	defer db.Close()

	// The pool is the only long-lived store handle; connections are
	// acquired per query and returned on every exit path.
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		zl.Fatal("failed to ping DB", zap.Error(err))
	}

	if err := initDB(db); err != nil {
		zl.Fatal("failed to init DB schema", zap.Error(err))
	}

	cache := redis.NewCache(cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, 0, 5*time.Minute)
	if err := cache.Ping(context.Background()); err != nil {
		zl.Fatal("failed to connect to Redis", zap.Error(err))
	}

	repo := repository.NewPostgresRepository(db)
	tokens := auth.NewTokenService(cfg.JWTSecret)
	authSvc := application.NewAuthService(repo, tokens, zl)
	shipmentSvc := application.NewShipmentService(repo, cache, cfg.FrontendURL, zl)

	srv := httpserver.NewServer(authSvc, shipmentSvc, zl)
	handler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(srv.Router())

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		zl.Info("server listening", zap.String("port", cfg.Port))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zl.Error("shutdown failed", zap.Error(err))
	}
}

func initDB(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS admins (
			id SERIAL PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			password TEXT NOT NULL,
			is_admin BOOLEAN NOT NULL DEFAULT false,
			is_owner BOOLEAN NOT NULL DEFAULT false,
			last_login TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS shipments (
			id SERIAL PRIMARY KEY,
			tracking_number TEXT UNIQUE NOT NULL,
			shipment_id TEXT NOT NULL,
			sender_name TEXT NOT NULL,
			sender_address TEXT NOT NULL,
			sender_email TEXT NOT NULL,
			sender_phone TEXT NOT NULL DEFAULT '',
			receiver_name TEXT NOT NULL,
			receiver_address TEXT NOT NULL,
			receiver_phone TEXT NOT NULL,
			receiver_email TEXT NOT NULL,
			receiver_country TEXT NOT NULL,
			origin_country TEXT NOT NULL,
			origin_location TEXT NOT NULL DEFAULT '',
			destination_country TEXT NOT NULL,
			destination_location TEXT NOT NULL DEFAULT '',
			current_location TEXT NOT NULL DEFAULT '',
			shipment_status TEXT NOT NULL,
			shipment_type TEXT NOT NULL DEFAULT '',
			weight TEXT NOT NULL DEFAULT '',
			expected_delivery DATE NOT NULL,
			dimensions TEXT NOT NULL DEFAULT '',
			contents TEXT NOT NULL DEFAULT '',
			custom_status TEXT NOT NULL DEFAULT '',
			remarks TEXT NOT NULL DEFAULT '',
			qr_code TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
			last_update TIMESTAMP
		)`,
	}
	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}
