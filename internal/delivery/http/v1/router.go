package v1

import (
	"net/http"
	"time"

	"go-remodeling-backend/config"
	"go-remodeling-backend/internal/delivery/http/middleware"
	"go-remodeling-backend/internal/delivery/http/response"
	"go-remodeling-backend/internal/domain"
	"go-remodeling-backend/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	// Store backs the rate limiters; nil means in-memory only.
	RateLimitStore ratelimit.Store
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.SiteURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	globalCfg := middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)
	globalLimiter := ratelimit.NewLimiter(deps.RateLimitStore, globalCfg.Limit, globalCfg.Window, globalCfg.KeyPrefix)
	r.Use(middleware.RateLimit(globalLimiter, globalCfg))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Public routes: the contact form carries its own, stricter throttle
	contactCfg := middleware.ContactRateLimitConfig(deps.Config.RateLimitContactThreshold, window)
	contactLimiter := ratelimit.NewLimiter(deps.RateLimitStore, contactCfg.Limit, contactCfg.Window, contactCfg.KeyPrefix)
	NewContactHandler(v1, deps.ContactUC, middleware.RateLimit(contactLimiter, contactCfg))

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
