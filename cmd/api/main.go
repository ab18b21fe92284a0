package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-remodeling-backend/config"
	_ "go-remodeling-backend/docs" // Important for Swagger
	v1 "go-remodeling-backend/internal/delivery/http/v1"
	"go-remodeling-backend/internal/usecase"
	"go-remodeling-backend/pkg/analytics"
	"go-remodeling-backend/pkg/logger"
	"go-remodeling-backend/pkg/mailer"
	"go-remodeling-backend/pkg/ratelimit"
	"go-remodeling-backend/pkg/redis"
	"go-remodeling-backend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// @title           Remodeling Backend API
// @version         1.0
// @description     Lead pipeline backend for the Imperial Home Remodeling marketing site.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting remodeling backend", "port", cfg.Port)

	// 3. Register custom validators on gin's binding validator
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// 4. Setup Redis (optional; rate limiting degrades to in-memory)
	var store ratelimit.Store
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	} else {
		store = ratelimit.NewRedisStore(redis.Client())
		defer redis.Close()
	}

	// 5. Setup Mailer
	smtpMailer := mailer.NewSMTPMailer(cfg)
	if !smtpMailer.IsConfigured() {
		logger.Log.Warn("Mailer not fully configured - contact form will be unavailable")
	}

	// 6. Setup UseCases
	emitter := analytics.NewLogEmitter(logger.Log)
	contactUC := usecase.NewContactUsecase(smtpMailer, emitter, cfg)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:      contactUC,
		RateLimitStore: store,
		Config:         cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
