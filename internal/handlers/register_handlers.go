package handlers

import (
	"github.com/SscSPs/freelance_books/cmd/docs"
	portssvc "github.com/SscSPs/freelance_books/internal/core/ports/services"
	"github.com/SscSPs/freelance_books/internal/middleware"
	"github.com/SscSPs/freelance_books/internal/platform/config"
	"github.com/SscSPs/freelance_books/internal/platform/telemetry"
	"github.com/SscSPs/freelance_books/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RouteDeps carries the optional infrastructure the router wires in.
// Nil fields switch the matching feature off.
type RouteDeps struct {
	Metrics     *telemetry.Metrics
	AuthLimiter *limiter.Limiter
	Posthog     *utils.PosthogClientWrapper
}

// ApplyGlobalMiddleware installs CORS, tracing, metrics and analytics on r.
func ApplyGlobalMiddleware(r *gin.Engine, cfg *config.Config, deps RouteDeps) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	corsConfig.ExposeHeaders = []string{"Content-Disposition", "X-Request-ID"}
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(corsConfig))
	}

	r.Use(middleware.TracingMiddleware())
	if deps.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(deps.Metrics))
	}
	if deps.Posthog.IsInitialized() {
		r.Use(middleware.PosthogMiddleware(deps.Posthog))
	}
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	api := r.Group("/api")

	api.GET("/health", getHealth(services.Health))
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	authMiddleware := middleware.AuthMiddleware(cfg.JWTSecret)
	registerAuthRoutes(api, authMiddleware, deps.AuthLimiter, services)

	protected := api.Group("", authMiddleware)
	RegisterClientRoutes(protected, services.Client)
	RegisterExpenseRoutes(protected, services.Expense)
	RegisterPaymentTermRoutes(protected, services.PaymentTerm)
	RegisterInvoiceRoutes(protected, services.Invoice)

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
