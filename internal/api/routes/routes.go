// Package routes handles the setup and configuration of API routes
package routes

import (
	"fmt"
	"log"
	"time"

	_ "podinfo/docs" // Import swagger docs
	"podinfo/internal/api/handlers"
	"podinfo/internal/api/middleware"
	"podinfo/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes and their handlers
func SetupRoutes(cfg *config.Config, collector handlers.InfoCollector, limiter *middleware.RateLimiter) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.API.TrustedProxies); err != nil {
		log.Printf("Ignoring invalid trusted proxies: %v", err)
		_ = r.SetTrustedProxies(nil)
	}

	r.Use(middleware.RequestID())
	r.Use(gin.LoggerWithFormatter(logFormatter))
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig(cfg.CORS)))
	r.Use(middleware.Compression(cfg.Compression))
	if cfg.RateLimit.Enabled {
		r.Use(limiter.Middleware())
	}

	infoHandler := handlers.NewInfoHandler(collector)
	healthHandler := handlers.NewHealthHandler()

	r.GET("/", infoHandler.Home)
	r.GET("/info", infoHandler.Info)
	r.GET("/health", healthHandler.Health)

	if cfg.API.EnableSwagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Accept", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}
	if cfg.AllowAllOrigins() {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.AllowedOrigins
	}
	return c
}

func logFormatter(param gin.LogFormatterParams) string {
	requestID, _ := param.Keys[middleware.RequestIDKey].(string)
	return fmt.Sprintf("%s | %3d | %13v | %15s | %-7s %#v | %s %s\n",
		param.TimeStamp.Format(time.RFC3339),
		param.StatusCode,
		param.Latency,
		param.ClientIP,
		param.Method,
		param.Path,
		requestID,
		param.ErrorMessage,
	)
}
