// internal/api/season_handlers.go
// Season lifecycle HTTP handlers

package api

import (
	"net/http"

	"league-scheduler/internal/models"
	"league-scheduler/internal/services"

	"github.com/gin-gonic/gin"
)

// HandleCreateSeason creates a new season in draft status
func HandleCreateSeason(seasonService *services.SeasonService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.CreateSeasonRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
		req.OrganizerID = c.GetString("user_id")

		season, err := seasonService.CreateSeason(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create season"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"season": season})
	}
}

// HandleListSeasons lists every season
func HandleListSeasons(seasonService *services.SeasonService) gin.HandlerFunc {
	return func(c *gin.Context) {
		seasons, err := seasonService.ListSeasons(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve seasons"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"seasons": seasons})
	}
}

// HandleGetSeason retrieves a single season
func HandleGetSeason(seasonService *services.SeasonService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		season, err := seasonService.GetSeason(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Season not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"season": season})
	}
}

// HandlePublishSeason transitions a season from draft to published
func HandlePublishSeason(seasonService *services.SeasonService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		if err := seasonService.PublishSeason(c.Request.Context(), id); err != nil {
			if err == services.ErrInvalidInput {
				c.JSON(http.StatusConflict, gin.H{"error": "Season is not in draft status"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish season"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Season published"})
	}
}

// HandleAddBlackout appends a blackout window to a season's calendar
func HandleAddBlackout(seasonService *services.SeasonService) gin.HandlerFunc {
	return func(c *gin.Context) {
		seasonID := c.Param("id")

		var blackout models.Blackout
		if err := c.ShouldBindJSON(&blackout); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		if err := seasonService.AddBlackout(c.Request.Context(), seasonID, blackout); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add blackout"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Blackout added"})
	}
}
