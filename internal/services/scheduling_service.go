// internal/services/scheduling_service.go
// Thin service wrapping the scheduling core's Generate/Evaluate entrypoints
// with the logging, caching, and notification conventions the rest of the
// service layer follows.

package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"league-scheduler/internal/repositories"
	"league-scheduler/internal/scheduling"
)

// generationLockTTL bounds how long a /generate run may hold the
// per-season idempotency lock before it's considered abandoned.
const generationLockTTL = 5 * time.Minute

// ProgressBroadcaster streams scheduling-log entries to subscribed clients
// as a generation run progresses. Satisfied by *websocket.Hub; kept as an
// interface here so this package doesn't import websocket.
type ProgressBroadcaster interface {
	BroadcastSchedulingProgress(seasonID string, updateType string, data interface{})
}

// SchedulingService runs schedule generation and evaluation for a season.
type SchedulingService struct {
	repos        *repositories.Container
	adapter      *repositories.SchedulingAdapter
	cache        *CacheService
	notification *NotificationService
	analytics    *AnalyticsService
	broadcaster  ProgressBroadcaster
	logger       *log.Logger
}

// NewSchedulingService creates a new scheduling service
func NewSchedulingService(
	repos *repositories.Container,
	cache *CacheService,
	notification *NotificationService,
	logger *log.Logger,
) *SchedulingService {
	return &SchedulingService{
		repos:        repos,
		adapter:      repositories.NewSchedulingAdapter(repos),
		cache:        cache,
		notification: notification,
		logger:       logger,
	}
}

// SetAnalytics wires the Mongo-backed analytics service used to persist
// each run's scheduling log. Separate from the constructor because the
// container builds AnalyticsService after SchedulingService.
func (s *SchedulingService) SetAnalytics(analytics *AnalyticsService) {
	s.analytics = analytics
}

// SetBroadcaster wires the websocket hub used to stream live progress.
// Separate from the constructor because the hub is only created once
// feature flags are checked, after the service container exists.
func (s *SchedulingService) SetBroadcaster(b ProgressBroadcaster) {
	s.broadcaster = b
}

// GenerateRequest is the payload for a generation run
type GenerateRequest struct {
	DivisionIDs    []string            `json:"division_ids"`
	ClearExisting  bool                `json:"clear_existing"`
	MaxAttempts    int                 `json:"max_attempts"`
	ScoringWeights *scheduling.Weights `json:"scoring_weights"`
}

// Generate runs the draft scheduler for a season and, on success, commits
// the resulting events through the repository layer. A Redis lock prevents
// two concurrent runs on the same season from racing each other.
func (s *SchedulingService) Generate(ctx context.Context, seasonID string, req GenerateRequest) (*scheduling.Result, error) {
	lockKey := fmt.Sprintf("generation_lock_%s", seasonID)
	acquired, err := s.cache.SetNX(lockKey, time.Now().Unix(), generationLockTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire generation lock: %w", err)
	}
	if !acquired {
		return nil, ErrSchedulingImpossible
	}
	defer s.cache.Delete(lockKey)

	s.logger.Printf("starting schedule generation for season %s", seasonID)
	if s.broadcaster != nil {
		s.broadcaster.BroadcastSchedulingProgress(seasonID, "generation_started", nil)
	}

	if req.ClearExisting {
		if err := s.adapter.DeleteScheduledEventsBulk(ctx, scheduling.EventFilter{SeasonID: seasonID}); err != nil {
			return nil, fmt.Errorf("failed to clear existing events: %w", err)
		}
	}

	result, err := scheduling.Generate(ctx, s.adapter, scheduling.Request{
		SeasonID:       seasonID,
		DivisionIDs:    req.DivisionIDs,
		ClearExisting:  req.ClearExisting,
		MaxAttempts:    req.MaxAttempts,
		ScoringWeights: req.ScoringWeights,
		OnLog: func(entry scheduling.LogEntry) {
			if s.broadcaster != nil {
				s.broadcaster.BroadcastSchedulingProgress(seasonID, "generation_progress", entry)
			}
		},
	})
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	if s.analytics != nil {
		go s.analytics.LogEvent(context.Background(), "schedule_generation", map[string]interface{}{
			"season_id":      seasonID,
			"success":        result.Success,
			"events_created": result.EventsCreated,
			"scheduling_log": result.SchedulingLog,
		})
	}

	if !result.Success {
		s.logger.Printf("generation for season %s did not succeed: %s", seasonID, result.Message)
		if s.broadcaster != nil {
			s.broadcaster.BroadcastSchedulingProgress(seasonID, "generation_failed", result.Message)
		}
		return result, nil
	}

	if err := s.adapter.InsertScheduledEventsBatch(ctx, result.Drafts); err != nil {
		return nil, fmt.Errorf("failed to persist generated events: %w", err)
	}

	s.cache.InvalidatePattern(fmt.Sprintf("season_%s_*", seasonID))
	go s.notification.NotifyScheduleGenerated(seasonID, result.EventsCreated)
	if s.broadcaster != nil {
		s.broadcaster.BroadcastSchedulingProgress(seasonID, "generation_complete", result.EventsCreated)
	}

	return result, nil
}

// Evaluate computes a quality report over a division's committed schedule.
func (s *SchedulingService) Evaluate(ctx context.Context, seasonID, divisionID string) (*scheduling.EvaluationReport, error) {
	events, err := s.adapter.ListScheduledEvents(ctx, scheduling.EventFilter{SeasonID: seasonID, DivisionID: divisionID})
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	fieldCapacity, cageCapacity, err := s.resourceCapacity(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute resource capacity: %w", err)
	}

	return scheduling.Evaluate(events, divisionID, fieldCapacity, cageCapacity), nil
}

// resourceCapacity counts the resolved open windows per field/cage across
// the season, giving Evaluate a denominator for utilization.
func (s *SchedulingService) resourceCapacity(ctx context.Context, seasonID string) (map[string]int, map[string]int, error) {
	season, err := s.repos.Season.GetByID(ctx, seasonID)
	if err != nil {
		return nil, nil, err
	}
	seasonFields, err := s.repos.Venue.ListSeasonFields(ctx, seasonID)
	if err != nil {
		return nil, nil, err
	}
	seasonCages, err := s.repos.Venue.ListSeasonCages(ctx, seasonID)
	if err != nil {
		return nil, nil, err
	}
	fieldAvail, err := s.repos.Venue.ListFieldAvailabilitiesForSeason(ctx, seasonID)
	if err != nil {
		return nil, nil, err
	}
	cageAvail, err := s.repos.Venue.ListCageAvailabilitiesForSeason(ctx, seasonID)
	if err != nil {
		return nil, nil, err
	}
	fieldOverrides, err := s.repos.Venue.ListFieldDateOverridesForSeason(ctx, seasonID)
	if err != nil {
		return nil, nil, err
	}
	cageOverrides, err := s.repos.Venue.ListCageDateOverridesForSeason(ctx, seasonID)
	if err != nil {
		return nil, nil, err
	}

	fieldIdx := scheduling.BuildFieldAvailabilityIndex(seasonFields, fieldAvail, fieldOverrides)
	cageIdx := scheduling.BuildCageAvailabilityIndex(seasonCages, cageAvail, cageOverrides)
	weeks := scheduling.EnumerateWeeks(season.StartDate, season.EndDate)

	fieldCapacity := make(map[string]int)
	for _, sf := range seasonFields {
		for _, w := range weeks {
			for _, d := range w.Dates {
				fieldCapacity[sf.FieldID] += len(fieldIdx.Resolve(sf.ID, d))
			}
		}
	}
	cageCapacity := make(map[string]int)
	for _, sc := range seasonCages {
		for _, w := range weeks {
			for _, d := range w.Dates {
				cageCapacity[sc.CageID] += len(cageIdx.Resolve(sc.ID, d))
			}
		}
	}

	return fieldCapacity, cageCapacity, nil
}
