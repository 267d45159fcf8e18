// Package main is the entry point for the newswire API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newswire/internal/cache"
	"newswire/internal/config"
	"newswire/internal/database"
	"newswire/internal/handlers"
	"newswire/internal/middleware"
	"newswire/internal/router"
	"newswire/internal/store"
)

func main() {
	// Structured logger as process-wide default.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey and set up the article listing cache.
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()
	listings := cache.NewListingCache(valkeyClient, cache.DefaultListingTTL)

	// Initialize data stores.
	topicStore := store.NewTopicStore(db)
	userStore := store.NewUserStore(db)
	articleStore := store.NewArticleStore(db)
	commentStore := store.NewCommentStore(db)

	// Create handler groups with their dependencies.
	docsHandlers := handlers.NewDocs()
	topicHandlers := handlers.NewTopics(topicStore)
	userHandlers := handlers.NewUsers(userStore)
	articleHandlers := handlers.NewArticles(articleStore, listings)
	commentHandlers := handlers.NewComments(commentStore, articleStore, listings)

	// Rate-limit writes per client IP.
	writeLimiter := middleware.NewRateLimiter(30, time.Minute)
	defer writeLimiter.Stop()

	// Set up the Chi router with all middleware and routes.
	r := router.New(writeLimiter, docsHandlers, topicHandlers, articleHandlers, commentHandlers, userHandlers)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
