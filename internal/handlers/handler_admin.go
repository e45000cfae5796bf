package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/budgetplanner/budget_planner_app/internal/core/ports/services"
	"github.com/budgetplanner/budget_planner_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// adminHandler handles the destructive store maintenance endpoints.
type adminHandler struct {
	maintenanceService portssvc.MaintenanceSvcFacade
}

func newAdminHandler(ms portssvc.MaintenanceSvcFacade) *adminHandler {
	return &adminHandler{
		maintenanceService: ms,
	}
}

// registerAdminRoutes registers the rate-limited maintenance routes.
func registerAdminRoutes(rg *gin.RouterGroup, maintenanceService portssvc.MaintenanceSvcFacade, limiterInstance *limiter.Limiter) {
	h := newAdminHandler(maintenanceService)

	admin := rg.Group("/admin", middleware.RateLimit(limiterInstance))
	{
		admin.POST("/reset", h.resetData)
		admin.POST("/seed", h.seedData)
	}
}

// resetData godoc
// @Summary Clear all stored data
// @Description Empties every collection; id counters keep counting upward
// @Tags admin
// @Produce  json
// @Success 200 {object} map[string]string
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to clear data"
// @Router /admin/reset [post]
func (h *adminHandler) resetData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.maintenanceService.ClearAllData(c.Request.Context()); err != nil {
		logger.Error("Failed to clear data", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// seedData godoc
// @Summary Seed the default accounts and categories
// @Description No-op when any account already exists
// @Tags admin
// @Produce  json
// @Success 200 {object} map[string]string
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to seed data"
// @Router /admin/seed [post]
func (h *adminHandler) seedData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.maintenanceService.SeedInitialData(c.Request.Context()); err != nil {
		logger.Error("Failed to seed data", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "seeded"})
}
