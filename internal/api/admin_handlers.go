// internal/api/admin_handlers.go
// Admin-only HTTP handlers

package api

import (
	"net/http"

	"league-scheduler/internal/services"

	"github.com/gin-gonic/gin"
)

// HandleGetPlatformStats retrieves platform-wide statistics
func HandleGetPlatformStats(analyticsService *services.AnalyticsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := analyticsService.GetPlatformStats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve statistics"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"statistics": stats,
		})
	}
}

// HandleListUsers lists all users (admin only)
func HandleListUsers(userService *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// TODO: Implement user listing with pagination
		c.JSON(http.StatusNotImplemented, gin.H{"error": "User listing not implemented yet"})
	}
}

// HandleUpdateUserRole updates a user's role
func HandleUpdateUserRole(userService *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("id")
		_ = userID

		var req struct {
			Role string `json:"role" binding:"required,oneof=user organizer admin"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		// TODO: Implement role update
		c.JSON(http.StatusNotImplemented, gin.H{"error": "Role update not implemented yet"})
	}
}

// HandleListAllSeasons lists every season across all organizers (admin only)
func HandleListAllSeasons(seasonService *services.SeasonService) gin.HandlerFunc {
	return func(c *gin.Context) {
		seasons, err := seasonService.ListSeasons(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve seasons"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"seasons": seasons})
	}
}

// HandleForceDeleteSeason force deletes a season and its cascading divisions,
// teams, and events (admin only)
func HandleForceDeleteSeason(seasonService *services.SeasonService) gin.HandlerFunc {
	return func(c *gin.Context) {
		seasonID := c.Param("id")
		_ = seasonID

		// TODO: Implement hard delete with cascade
		c.JSON(http.StatusNotImplemented, gin.H{"error": "Force delete not implemented yet"})
	}
}
