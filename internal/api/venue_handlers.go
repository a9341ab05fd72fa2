// internal/api/venue_handlers.go
// Field and cage binding HTTP handlers

package api

import (
	"net/http"

	"league-scheduler/internal/services"

	"github.com/gin-gonic/gin"
)

// HandleAddFieldToSeason binds a catalog field into a season
func HandleAddFieldToSeason(seasonService *services.SeasonService) gin.HandlerFunc {
	return func(c *gin.Context) {
		seasonID := c.Param("id")

		var req struct {
			FieldID string `json:"field_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		sf, err := seasonService.AddFieldToSeason(c.Request.Context(), seasonID, req.FieldID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to bind field to season"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"season_field": sf})
	}
}

// HandleAddCageToSeason binds a catalog cage into a season
func HandleAddCageToSeason(seasonService *services.SeasonService) gin.HandlerFunc {
	return func(c *gin.Context) {
		seasonID := c.Param("id")

		var req struct {
			CageID string `json:"cage_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		sc, err := seasonService.AddCageToSeason(c.Request.Context(), seasonID, req.CageID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to bind cage to season"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"season_cage": sc})
	}
}
