package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"mk-watch-mods/app"
)

func main() {
	// Load .env file in development (ignores error if file doesn't exist)
	// In production, variables should be set directly
	envLoaded := false
	if os.Getenv("ENV") != "production" {
		// Use Overload to ensure .env values override system environment variables
		envLoaded = godotenv.Overload(".env") == nil
	}

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := app.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	if envLoaded {
		sugar.Infof("Successfully loaded environment variables from .env")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize application
	application, err := app.Initialize(ctx, cfg, sugar)
	if err != nil {
		sugar.Fatalw("failed to initialize application", zap.Error(err))
	}
	defer application.Close()

	go application.SweepSessions(ctx)

	// Listen on 0.0.0.0 to accept connections from all interfaces (required for Docker)
	addr := "0.0.0.0:" + cfg.Port
	server := &http.Server{
		Addr:              addr,
		Handler:           application.Handler,
		ReadHeaderTimeout: 10 * time.Second,
		// Reservation requests may wait on the mail server
		WriteTimeout: cfg.SMTPTimeout + 20*time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			sugar.Errorf("❌ Server shutdown failed: %v", err)
		}
	}()

	sugar.Infof("Server starting on %s", addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sugar.Fatalf("Server failed to start: %v", err)
	}
	sugar.Infof("Server stopped")
}
