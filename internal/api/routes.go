// internal/api/routes.go
// Central route registration for all API endpoints

package api

import (
	"league-scheduler/internal/middleware"
	"league-scheduler/internal/services"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers authentication-related routes
func RegisterAuthRoutes(router *gin.RouterGroup, services *services.Container) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", HandleRegister(services.Auth))
		auth.POST("/login", HandleLogin(services.Auth))
		auth.POST("/logout", middleware.RequireAuth(services.Auth), HandleLogout(services.Auth))
		auth.POST("/refresh", HandleRefreshToken(services.Auth))
		auth.POST("/forgot-password", HandleForgotPassword(services.Auth))
		auth.POST("/reset-password", HandleResetPassword(services.Auth))
		auth.POST("/verify-email", HandleVerifyEmail(services.Auth))
	}
}

// RegisterUserRoutes registers user-related routes
func RegisterUserRoutes(router *gin.RouterGroup, services *services.Container) {
	users := router.Group("/users")
	users.Use(middleware.RequireAuth(services.Auth))
	{
		users.GET("/me", HandleGetCurrentUser(services.User))
		users.PUT("/me", HandleUpdateProfile(services.User))
		users.PUT("/me/password", HandleChangePassword(services.Auth))
		users.GET("/me/preferences", HandleGetPreferences(services.User))
		users.PUT("/me/preferences", HandleUpdatePreferences(services.User))
		users.GET("/me/seasons", HandleGetUserSeasons(services.User))
		users.GET("/me/statistics", HandleGetUserStatistics(services.User))
	}
}

// RegisterSeasonRoutes registers season/division/team/venue routes
func RegisterSeasonRoutes(router *gin.RouterGroup, services *services.Container) {
	seasons := router.Group("/seasons")
	{
		// Public routes
		seasons.GET("", HandleListSeasons(services.Season))
		seasons.GET("/:id", HandleGetSeason(services.Season))
		seasons.GET("/:id/divisions", HandleListDivisions(services.Season))
		seasons.GET("/:id/teams", HandleListTeams(services.Season))

		// Protected routes
		seasons.Use(middleware.RequireAuth(services.Auth))
		seasons.POST("", HandleCreateSeason(services.Season))
		seasons.POST("/:id/publish", middleware.RequireSeasonOwner(services), HandlePublishSeason(services.Season))
		seasons.POST("/:id/blackouts", middleware.RequireSeasonOwner(services), HandleAddBlackout(services.Season))

		seasons.POST("/:id/divisions", middleware.RequireSeasonOwner(services), HandleCreateDivision(services.Season))
		seasons.POST("/:id/divisions/:divisionId/teams", middleware.RequireSeasonOwner(services), HandleAddTeam(services.Season))

		seasons.POST("/:id/fields", middleware.RequireSeasonOwner(services), HandleAddFieldToSeason(services.Season))
		seasons.POST("/:id/cages", middleware.RequireSeasonOwner(services), HandleAddCageToSeason(services.Season))

		seasons.POST("/:id/generate", middleware.RequireSeasonOwner(services), HandleGenerateSchedule(services.Scheduling))
		seasons.GET("/:id/schedule/report", HandleEvaluateSchedule(services.Scheduling))
	}
}

// RegisterAdminRoutes registers admin-only routes
func RegisterAdminRoutes(router *gin.RouterGroup, services *services.Container) {
	admin := router.Group("/admin")
	admin.Use(middleware.RequireAuth(services.Auth))
	admin.Use(middleware.RequireRole("admin"))
	{
		admin.GET("/stats", HandleGetPlatformStats(services.Analytics))
		admin.GET("/users", HandleListUsers(services.User))
		admin.PUT("/users/:id/role", HandleUpdateUserRole(services.User))
		admin.GET("/seasons", HandleListAllSeasons(services.Season))
		admin.DELETE("/seasons/:id", HandleForceDeleteSeason(services.Season))
	}
}
