// internal/api/schedule_handlers.go
// Schedule generation and evaluation HTTP handlers

package api

import (
	"net/http"

	"league-scheduler/internal/services"

	"github.com/gin-gonic/gin"
)

// HandleGenerateSchedule runs the draft scheduler for a season
func HandleGenerateSchedule(schedulingService *services.SchedulingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		seasonID := c.Param("id")

		var req services.GenerateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		result, err := schedulingService.Generate(c.Request.Context(), seasonID, req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		status := http.StatusOK
		if !result.Success {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"result": result})
	}
}

// HandleEvaluateSchedule computes a quality report for a division's
// committed schedule
func HandleEvaluateSchedule(schedulingService *services.SchedulingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		seasonID := c.Param("id")
		divisionID := c.Query("division_id")

		report, err := schedulingService.Evaluate(c.Request.Context(), seasonID, divisionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"report": report})
	}
}
