package server

import (
	"github.com/gin-gonic/gin"

	"datecheck-backend/internal/services/health"
	"datecheck-backend/internal/settings"
	"datecheck-backend/internal/shared/config"
	"datecheck-backend/internal/shared/metrics"
	"datecheck-backend/internal/shared/server/middleware"
	"datecheck-backend/internal/shared/server/respond"
	"datecheck-backend/internal/validation"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config            config.Config
	ValidationHandler *validation.Handler
	SettingsHandler   *settings.Handler
	Health            *health.Service
	RateLimiter       *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(rateLimitConfig(deps.RateLimiter)),
	)

	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService()
	}

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, healthSvc.Status())
	})
	r.GET("/metrics", metrics.Handler())

	if deps.ValidationHandler != nil {
		deps.ValidationHandler.RegisterRoutes(api)
	}
	if deps.SettingsHandler != nil {
		deps.SettingsHandler.RegisterRoutes(api)
	}

	return r
}

// rateLimitConfig gives status polling a higher budget than the
// validation endpoints, which do real parsing work per call.
func rateLimitConfig(limiter *middleware.RateLimiter) middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Limiter:      limiter,
		DefaultGroup: "DEFAULT",
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == "GET" {
				switch c.FullPath() {
				case "/api/v1/validations/:id", "/api/v1/validations", "/api/v1/health", "/api/v1/config":
					return "POLLING"
				}
			}
			return "DEFAULT"
		},
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT": {Rate: 2, Burst: 10},
			"POLLING": {Rate: 10, Burst: 30},
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
