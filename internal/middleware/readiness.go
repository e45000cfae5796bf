package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetplanner/budget_planner_app/internal/apperrors"
	"github.com/budgetplanner/budget_planner_app/internal/platform/readiness"
)

// RequireReady rejects requests until the store has finished initializing.
// Dependent views must not query the facade before the gate is ready; a
// failed initialization leaves every request answered with 503.
func RequireReady(gate *readiness.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := gate.Check()
		if err == nil {
			c.Next()
			return
		}
		if !errors.Is(err, apperrors.ErrNotReady) {
			GetLoggerFromCtx(c.Request.Context()).Error("Request rejected: initialization failed",
				slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Database initialization failed"})
			return
		}
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Database is initializing"})
	}
}
