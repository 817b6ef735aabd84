package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/emilythestrangee/like-me/backend/internal/config"
	"github.com/emilythestrangee/like-me/backend/internal/database"
	"github.com/emilythestrangee/like-me/backend/internal/server"
	"github.com/emilythestrangee/like-me/backend/internal/telemetry"
)

func gracefulShutdown(apiServer *http.Server, done chan<- struct{}) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Println("shutting down gracefully, press Ctrl+C again to force")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown with error: %v", err)
	}

	close(done)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	shutdownTracing, err := telemetry.Init(ctx, cfg.OTELEndpoint, cfg.OTELServiceName)
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(c)
	}()

	db, err := database.Open(ctx, cfg.DSN(), database.Options{
		MaxConns:         cfg.DBMaxConns,
		StatementTimeout: cfg.StatementTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	apiServer := server.New(cfg, db).HTTPServer()

	done := make(chan struct{})
	go gracefulShutdown(apiServer, done)

	log.Printf("🚀 API Like Me listening on http://localhost:%s\n", cfg.Port)
	fmt.Println("📝 Press Ctrl+C to stop the server")

	if err := apiServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("http server error: %v", err)
		return
	}

	<-done
	log.Println("Graceful shutdown complete.")
}
