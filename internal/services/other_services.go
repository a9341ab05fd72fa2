// internal/services/other_services.go
// Additional services for notifications and analytics

package services

import (
	"context"
	"log"
	"time"

	"league-scheduler/internal/config"
	"league-scheduler/internal/database"
	"league-scheduler/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// NotificationService handles all notification operations
type NotificationService struct {
	db     *database.Connections
	config *config.Config
	logger *log.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(db *database.Connections, config *config.Config, logger *log.Logger) *NotificationService {
	return &NotificationService{
		db:     db,
		config: config,
		logger: logger,
	}
}

// NotifySeasonPublished sends notifications when a season moves to published
func (s *NotificationService) NotifySeasonPublished(season *models.Season) {
	// TODO: Implement actual notification sending
	s.logger.Printf("Would notify about season published: %s", season.Name)
}

// NotifyScheduleGenerated sends notifications when a generation run commits events
func (s *NotificationService) NotifyScheduleGenerated(seasonID string, eventsCreated int) {
	// TODO: Implement actual notification sending
	s.logger.Printf("Would notify coaches about %d events generated for season %s", eventsCreated, seasonID)
}

// NotifyEventCancelled sends notification about a cancelled event
func (s *NotificationService) NotifyEventCancelled(event *models.ScheduledEvent) {
	// TODO: Implement actual notification sending
	s.logger.Printf("Would notify participants about event %s cancelled", event.ID)
}

// ========================================

// AnalyticsService handles analytics and event tracking
type AnalyticsService struct {
	db     *mongo.Database
	cache  *CacheService
	logger *log.Logger
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(db *mongo.Database, cache *CacheService, logger *log.Logger) *AnalyticsService {
	return &AnalyticsService{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

// LogEvent logs an analytics event
func (s *AnalyticsService) LogEvent(ctx context.Context, eventType string, data map[string]interface{}) error {
	event := bson.M{
		"type":       eventType,
		"data":       data,
		"timestamp":  time.Now(),
		"created_at": time.Now(),
	}

	_, err := s.db.Collection("analytics_events").InsertOne(ctx, event)
	if err != nil {
		s.logger.Printf("Failed to log analytics event: %v", err)
		// Don't return error - analytics shouldn't break the app
	}

	return nil
}

// GetSeasonStats retrieves per-season scheduling statistics
func (s *AnalyticsService) GetSeasonStats(ctx context.Context, seasonID string) (map[string]interface{}, error) {
	// TODO: Implement aggregation queries over generation-run events
	return map[string]interface{}{
		"total_events_generated": 0,
		"total_generation_runs":  0,
		"last_generated_at":      nil,
	}, nil
}

// GetPlatformStats retrieves platform-wide statistics
func (s *AnalyticsService) GetPlatformStats(ctx context.Context) (map[string]interface{}, error) {
	// Try cache first
	var stats map[string]interface{}
	if err := s.cache.Get("platform_stats", &stats); err == nil {
		return stats, nil
	}

	// TODO: Implement aggregation queries
	stats = map[string]interface{}{
		"total_seasons":    0,
		"total_divisions":  0,
		"total_teams":      0,
		"active_seasons":   0,
	}

	// Cache for 5 minutes
	s.cache.Set("platform_stats", stats, 5*time.Minute)

	return stats, nil
}
