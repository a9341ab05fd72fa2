// internal/services/container.go
// Service container provides dependency injection for all business logic services.
// This pattern makes testing easier and keeps services loosely coupled.

package services

import (
	"errors"
	"log"

	"league-scheduler/internal/config"
	"league-scheduler/internal/database"
	"league-scheduler/internal/repositories"
)

// Container holds all service instances and provides them to handlers
type Container struct {
	Auth         *AuthService
	User         *UserService
	Season       *SeasonService
	Scheduling   *SchedulingService
	Notification *NotificationService
	Cache        *CacheService
	Analytics    *AnalyticsService
}

// NewContainer creates a new service container with all dependencies
func NewContainer(db *database.Connections, cfg *config.Config, logger *log.Logger) *Container {
	// Initialize repositories
	repos := repositories.NewContainer(db)

	// Initialize cache service
	cache := NewCacheService(db.Redis, logger)

	// Initialize notification service
	notification := NewNotificationService(db, cfg, logger)

	// Initialize services with their dependencies
	auth := NewAuthService(repos.User, cfg.Auth, cache, logger)
	user := NewUserService(repos.User, repos.UserPreferences, logger)
	season := NewSeasonService(repos, cache, notification, logger)
	scheduling := NewSchedulingService(repos, cache, notification, logger)
	analytics := NewAnalyticsService(db.MongoDB, cache, logger)
	scheduling.SetAnalytics(analytics)

	return &Container{
		Auth:         auth,
		User:         user,
		Season:       season,
		Scheduling:   scheduling,
		Notification: notification,
		Cache:        cache,
		Analytics:    analytics,
	}
}

// Common errors used across services
var (
	ErrNotFound             = errors.New("resource not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidInput         = errors.New("invalid input")
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidToken         = errors.New("invalid token")
	ErrNoResourcesAvailable = errors.New("no fields or cages available for this season")
	ErrSchedulingImpossible = errors.New("scheduling impossible with current constraints")
)
