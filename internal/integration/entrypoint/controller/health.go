// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	checkDatabase func() bool
}

// NewHealthController creates a new health controller instance.
func NewHealthController(checkDatabase func() bool) *HealthController {
	return &HealthController{
		checkDatabase: checkDatabase,
	}
}

// Check handles GET /health requests. The service reports degraded with 503
// when the database is unreachable so load balancers can rotate it out.
func (c *HealthController) Check(ctx *gin.Context) {
	if c.checkDatabase != nil && !c.checkDatabase() {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "degraded",
			"database": "down",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "up",
	})
}
