package handlers

import (
	"net/http"
	"strings"

	"github.com/budgetplanner/budget_planner_app/cmd/docs"
	"github.com/budgetplanner/budget_planner_app/internal/core/domain"
	portssvc "github.com/budgetplanner/budget_planner_app/internal/core/ports/services"
	"github.com/budgetplanner/budget_planner_app/internal/events"
	"github.com/budgetplanner/budget_planner_app/internal/middleware"
	"github.com/budgetplanner/budget_planner_app/internal/platform/config"
	"github.com/budgetplanner/budget_planner_app/internal/platform/readiness"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	gate *readiness.Gate,
	bus *events.Bus,
	adminLimiter *limiter.Limiter,
) {
	registerCustomValidators()

	r.Use(cors.New(corsConfig(cfg)))

	registerHomeRoute(r)

	// Liveness: always OK once the process is up
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Readiness: reflects store initialization
	r.GET("/health/ready", func(c *gin.Context) {
		if err := gate.Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "failed", "error": err.Error()})
			return
		}
		if !gate.Ready() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "initializing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	setupAPIV1Routes(r, services, gate, bus, adminLimiter)

	setupSwaggerRoutes(r, cfg)
}

// registerCustomValidators installs the domain validators used by binding tags.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("accounticon", func(fl validator.FieldLevel) bool {
			return domain.AccountIcon(fl.Field().String()).Valid()
		})
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = strings.Split(cfg.CORSAllowedOrigins, ",")
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	return corsCfg
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	service *portssvc.ServiceContainer,
	gate *readiness.Gate,
	bus *events.Bus,
	adminLimiter *limiter.Limiter,
) {
	// Every data route waits behind the readiness gate
	v1 := r.Group("/api/v1", middleware.RequireReady(gate))

	registerAccountRoutes(v1, service.Account)
	registerRecordRoutes(v1, service.Record)
	registerCategoryRoutes(v1, service.Category)
	registerBudgetRoutes(v1, service.Budget)
	registerDashboardRoutes(v1, service.Reporting)
	registerAdminRoutes(v1, service.Maintenance, adminLimiter)
	registerEventRoutes(v1, bus)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
