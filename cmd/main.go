/*
Package main is the entry point for the PuchMatch server.

It loads configuration, initializes global logging, connects the profile
database, constructs the matchmaking engine and HTTP server, and handles
operating system interrupt signals (SIGINT, SIGTERM) for graceful shutdown.
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"puchmatch/internal/app/match"
	"puchmatch/internal/app/profile"
	"puchmatch/internal/configs"
	"puchmatch/internal/handler"
	"puchmatch/internal/pkg/logx"
)

func main() {
	// Load configuration from environment variables
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	logx.InitGlobalLogger(cfg.Environment == "development")
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Int("max_match_results", cfg.MaxMatchResults).
		Int("min_common_interests", cfg.MinCommonInterests).
		Msg("Configuration loaded successfully")

	if cfg.AuthToken == "changeme" {
		logx.Warn("AUTH_TOKEN is still 'changeme'. Set a secure token before exposing this server.")
	}
	if cfg.OwnerPhone == "" {
		logx.Warn("OWNER_PHONE is not set; /validate will report UNKNOWN.")
	}

	// Create a context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect the profile directory and run migrations
	pool, err := profile.NewPool(cfg.DatabaseDSN)
	if err != nil {
		logx.Fatal(err, "Failed to connect profile database")
	}
	defer pool.Close()

	directory := profile.NewDirectory(pool, cfg.MaxMatchResults, cfg.MinCommonInterests)

	// Initialize the matchmaking engine
	engine := match.NewEngine()

	// Setup HTTP server and routes
	deps := &handler.AppDeps{
		Engine:   engine,
		Config:   cfg,
		Profiles: directory,
	}
	router := handler.Router(deps)

	serverAddr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info(fmt.Sprintf("PuchMatch Server starting on http://localhost%s", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 5 seconds.
	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Fatal(err, "Server forced to shutdown")
	}

	engine.Shutdown()

	logx.Info("Server gracefully stopped.")
}
