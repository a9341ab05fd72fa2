// internal/api/division_handlers.go
// Division, team, and roster HTTP handlers

package api

import (
	"net/http"

	"league-scheduler/internal/services"

	"github.com/gin-gonic/gin"
)

// HandleCreateDivision creates a division and its scheduling config
func HandleCreateDivision(seasonService *services.SeasonService) gin.HandlerFunc {
	return func(c *gin.Context) {
		seasonID := c.Param("id")

		var req services.CreateDivisionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		division, err := seasonService.CreateDivision(c.Request.Context(), seasonID, req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create division"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"division": division})
	}
}

// HandleListDivisions lists every division in a season
func HandleListDivisions(seasonService *services.SeasonService) gin.HandlerFunc {
	return func(c *gin.Context) {
		seasonID := c.Param("id")

		divisions, err := seasonService.ListDivisions(c.Request.Context(), seasonID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve divisions"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"divisions": divisions})
	}
}

// HandleAddTeam registers a new team under a division
func HandleAddTeam(seasonService *services.SeasonService) gin.HandlerFunc {
	return func(c *gin.Context) {
		seasonID := c.Param("id")
		divisionID := c.Param("divisionId")

		var req struct {
			Name string `json:"name" binding:"required,min=1,max=255"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		team, err := seasonService.AddTeam(c.Request.Context(), seasonID, divisionID, req.Name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add team"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"team": team})
	}
}

// HandleListTeams lists every team in a season
func HandleListTeams(seasonService *services.SeasonService) gin.HandlerFunc {
	return func(c *gin.Context) {
		seasonID := c.Param("id")

		teams, err := seasonService.ListTeams(c.Request.Context(), seasonID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve teams"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"teams": teams})
	}
}
