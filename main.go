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

	sentry "github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"

	"reelcoach/internal/cache"
	"reelcoach/internal/config"
	"reelcoach/internal/handlers"
	"reelcoach/internal/llm"
	"reelcoach/internal/ratelimit"
	"reelcoach/internal/scraper"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Initialize Sentry (if DSN is provided)
	err = sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		Release:          cfg.Version,
		EnableTracing:    true,
		TracesSampleRate: 1.0,
		Debug:            cfg.Debug,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	defer sentry.Flush(2 * time.Second)

	// Pick the cache backend: shared Redis when configured, otherwise the
	// per-process in-memory store.
	var store cache.Store
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			sentry.CaptureException(err)
			log.Fatalf("Failed to connect to Redis at %s: %v", cfg.RedisAddr, err)
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.Printf("Error closing Redis client: %v", err)
			}
		}()
		store = cache.NewRedis(client, cache.DefaultTTL, "audit:")
		log.Printf("Using Redis cache at %s", cfg.RedisAddr)
	} else {
		store = cache.NewMemory(cache.DefaultTTL, nil)
	}

	limiter := ratelimit.New(ratelimit.DefaultMax, ratelimit.DefaultWindow, nil)
	fetcher := scraper.NewClient(scraper.DefaultBaseURL, cfg.ApifyActor, cfg.ApifyToken)
	auditor := llm.NewClient(llm.DefaultEndpoint, cfg.OpenAIModel, cfg.OpenAIAPIKey)

	auditHandler := handlers.NewAuditHandler(fetcher, auditor, store, limiter, cfg.AllowedOrigins)
	healthHandler := handlers.NewHealthHandler(cfg, nil)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.NewRouter(auditHandler, healthHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Creating context for application lifecycle
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Listening on :%s (env=%s, version=%s)", cfg.Port, cfg.AppEnv, cfg.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sentry.CaptureException(err)
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for context cancellation (e.g., SIGINT, SIGTERM)
	<-ctx.Done()

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sentry.CaptureException(err)
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete.")
}
