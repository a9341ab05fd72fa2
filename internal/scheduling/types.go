// internal/scheduling/types.go
// Top-level request/result shapes and the repository interfaces the
// generator consumes. All repository methods are read-only during a run;
// writes happen once generation completes, via InsertScheduledEventsBatch.

package scheduling

import (
	"context"

	"league-scheduler/internal/models"
)

// Request is the sole entrypoint payload for Generate.
type Request struct {
	SeasonID       string
	DivisionIDs    []string // optional; empty means all divisions in the season
	ClearExisting  bool
	MaxAttempts    int // 0 means use DefaultMaxAttempts
	ScoringWeights *Weights
	Seed           int64

	// OnLog, if set, is called once per scheduling log entry, as each
	// division's entries become available, letting a caller stream
	// progress instead of waiting for the full Result.
	OnLog func(LogEntry)
}

// Statistics summarizes a completed (or partially completed) run.
type Statistics struct {
	EventsByType         map[models.EventType]int `json:"events_by_type"`
	EventsByDivision      map[string]int           `json:"events_by_division"`
	AverageEventsPerTeam float64                   `json:"average_events_per_team"`
	Utilization          map[string]float64        `json:"utilization"` // resourceID -> fraction of slots used
}

// LogEntry is a structured scheduling-log line emitted during generation,
// broadcast live over the websocket hub and returned in Result.
type LogEntry struct {
	Category   string `json:"category"`
	Message    string `json:"message"`
	DivisionID string `json:"division_id,omitempty"`
	WeekNumber *int   `json:"week_number,omitempty"`
}

// Result is returned by Generate.
type Result struct {
	Success       bool               `json:"success"`
	EventsCreated int                `json:"events_created"`
	Message       string             `json:"message"`
	Errors        []ScheduleError    `json:"errors,omitempty"`
	Warnings      []ScheduleWarning  `json:"warnings,omitempty"`
	Statistics    Statistics         `json:"statistics"`
	SchedulingLog []LogEntry         `json:"scheduling_log"`
	Drafts        []*models.Draft    `json:"drafts,omitempty"`
}

// EventFilter scopes a ListScheduledEvents / DeleteScheduledEventsBulk
// call.
type EventFilter struct {
	SeasonID    string
	DivisionID  string // optional
	StartDate   string // optional, YYYY-MM-DD
	EndDate     string // optional, YYYY-MM-DD
}

// Repository is the read-only collaborator the generator pulls inputs
// from, plus the two write operations it calls after a run completes.
// The thin HTTP/CRUD layer implements this against whatever store backs
// it; the core never imports a database driver directly.
type Repository interface {
	GetSeason(ctx context.Context, id string) (*models.Season, error)
	ListDivisions(ctx context.Context, seasonID string) ([]*models.Division, error)
	ListDivisionConfigs(ctx context.Context, seasonID string) ([]*models.DivisionConfig, error)
	ListTeams(ctx context.Context, seasonID string) ([]*models.Team, error)
	ListSeasonFields(ctx context.Context, seasonID string) ([]*models.SeasonField, error)
	ListSeasonCages(ctx context.Context, seasonID string) ([]*models.SeasonCage, error)
	ListFields(ctx context.Context, ids []string) ([]*models.Field, error)
	ListCages(ctx context.Context, ids []string) ([]*models.Cage, error)
	ListFieldAvailabilitiesForSeason(ctx context.Context, seasonID string) ([]*models.FieldAvailability, error)
	ListCageAvailabilitiesForSeason(ctx context.Context, seasonID string) ([]*models.CageAvailability, error)
	ListFieldDateOverridesForSeason(ctx context.Context, seasonID string) ([]*models.FieldDateOverride, error)
	ListCageDateOverridesForSeason(ctx context.Context, seasonID string) ([]*models.CageDateOverride, error)
	ListScheduledEvents(ctx context.Context, filter EventFilter) ([]*models.ScheduledEvent, error)

	InsertScheduledEventsBatch(ctx context.Context, drafts []*models.Draft) error
	DeleteScheduledEventsBulk(ctx context.Context, filter EventFilter) error
}

// DefaultMaxAttempts bounds the short-rest rebalancer's swap search per
// division, as referenced in the design's "bounded, e.g. 200 attempts".
const DefaultMaxAttempts = 200
