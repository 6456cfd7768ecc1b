package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/freelance_books/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// HealthResponse reports liveness and database reachability.
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"connected"`
}

// getHealth godoc
// @Summary Show the status of the server
// @Description Always answers 200 while the process is up; database tells whether the pool can reach Postgres.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func getHealth(health portssvc.HealthSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		database := "not connected"
		if health != nil && health.DatabaseConnected(c.Request.Context()) {
			database = "connected"
		}
		c.JSON(http.StatusOK, HealthResponse{Status: "ok", Database: database})
	}
}
