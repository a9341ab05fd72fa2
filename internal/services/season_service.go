// internal/services/season_service.go
// Core season/division/team/venue business logic: the CRUD surface the
// scheduling core's Repository reads from, plus season lifecycle rules.

package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"league-scheduler/internal/models"
	"league-scheduler/internal/repositories"
	"league-scheduler/internal/utils"
)

// SeasonService handles season, division, team, and venue business logic
type SeasonService struct {
	repos        *repositories.Container
	cache        *CacheService
	notification *NotificationService
	logger       *log.Logger
}

// NewSeasonService creates a new season service
func NewSeasonService(
	repos *repositories.Container,
	cache *CacheService,
	notification *NotificationService,
	logger *log.Logger,
) *SeasonService {
	return &SeasonService{
		repos:        repos,
		cache:        cache,
		notification: notification,
		logger:       logger,
	}
}

// CreateSeasonRequest is the payload for creating a new season
type CreateSeasonRequest struct {
	OrganizerID    string    `json:"-"`
	Name           string    `json:"name" binding:"required,min=3,max=255"`
	StartDate      time.Time `json:"start_date" binding:"required"`
	EndDate        time.Time `json:"end_date" binding:"required,gtfield=StartDate"`
	GamesStartDate time.Time `json:"games_start_date" binding:"required"`
}

// CreateSeason creates a new season in draft status
func (s *SeasonService) CreateSeason(ctx context.Context, req CreateSeasonRequest) (*models.Season, error) {
	season := &models.Season{
		ID:             utils.GenerateUUID(),
		OrganizerID:    req.OrganizerID,
		Name:           req.Name,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		GamesStartDate: req.GamesStartDate,
		Status:         models.SeasonDraft,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := s.repos.Season.Create(ctx, season); err != nil {
		return nil, fmt.Errorf("failed to create season: %w", err)
	}

	return season, nil
}

// IsOwner checks whether a user organizes the given season
func (s *SeasonService) IsOwner(ctx context.Context, seasonID, userID string) (bool, error) {
	season, err := s.repos.Season.GetByID(ctx, seasonID)
	if err != nil {
		return false, err
	}
	return season.OrganizerID == userID, nil
}

// GetSeason retrieves a season by ID
func (s *SeasonService) GetSeason(ctx context.Context, id string) (*models.Season, error) {
	return s.repos.Season.GetByID(ctx, id)
}

// ListSeasons retrieves every season
func (s *SeasonService) ListSeasons(ctx context.Context) ([]*models.Season, error) {
	return s.repos.Season.List(ctx)
}

// PublishSeason transitions a season from draft to published and notifies
// registered coaches
func (s *SeasonService) PublishSeason(ctx context.Context, id string) error {
	season, err := s.repos.Season.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("season not found: %w", err)
	}
	if season.Status != models.SeasonDraft {
		return ErrInvalidInput
	}

	if err := s.repos.Season.UpdateStatus(ctx, id, models.SeasonPublished); err != nil {
		return fmt.Errorf("failed to publish season: %w", err)
	}
	season.Status = models.SeasonPublished

	go s.notification.NotifySeasonPublished(season)
	s.cache.InvalidatePattern(fmt.Sprintf("season_%s_*", id))

	return nil
}

// AddBlackout appends a blackout window to a season's calendar
func (s *SeasonService) AddBlackout(ctx context.Context, seasonID string, blackout models.Blackout) error {
	season, err := s.repos.Season.GetByID(ctx, seasonID)
	if err != nil {
		return fmt.Errorf("season not found: %w", err)
	}
	season.BlackoutDates = append(season.BlackoutDates, blackout)
	return s.repos.Season.Update(ctx, season)
}

// CreateDivisionRequest is the payload for creating a division plus its
// scheduling config in one call
type CreateDivisionRequest struct {
	Name            string                `json:"name" binding:"required,min=1,max=255"`
	SchedulingOrder int                   `json:"scheduling_order"`
	Config          models.DivisionConfig `json:"config"`
}

// CreateDivision creates a division and its scheduling config together
func (s *SeasonService) CreateDivision(ctx context.Context, seasonID string, req CreateDivisionRequest) (*models.Division, error) {
	division := &models.Division{
		ID:              utils.GenerateUUID(),
		SeasonID:        seasonID,
		Name:            req.Name,
		SchedulingOrder: req.SchedulingOrder,
	}
	if err := s.repos.Division.Create(ctx, division); err != nil {
		return nil, fmt.Errorf("failed to create division: %w", err)
	}

	cfg := req.Config
	cfg.ID = utils.GenerateUUID()
	cfg.DivisionID = division.ID
	cfg.SeasonID = seasonID
	if err := s.repos.Division.CreateConfig(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to create division config: %w", err)
	}

	return division, nil
}

// ListDivisions retrieves every division in a season
func (s *SeasonService) ListDivisions(ctx context.Context, seasonID string) ([]*models.Division, error) {
	return s.repos.Division.ListBySeason(ctx, seasonID)
}

// AddTeam registers a new team under a division
func (s *SeasonService) AddTeam(ctx context.Context, seasonID, divisionID, name string) (*models.Team, error) {
	team := &models.Team{
		ID:         utils.GenerateUUID(),
		SeasonID:   seasonID,
		DivisionID: divisionID,
		Name:       name,
	}
	if err := s.repos.Team.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return team, nil
}

// ListTeams retrieves every team in a season
func (s *SeasonService) ListTeams(ctx context.Context, seasonID string) ([]*models.Team, error) {
	return s.repos.Team.ListBySeason(ctx, seasonID)
}

// AddFieldToSeason binds a catalog field into a season
func (s *SeasonService) AddFieldToSeason(ctx context.Context, seasonID, fieldID string) (*models.SeasonField, error) {
	sf := &models.SeasonField{ID: utils.GenerateUUID(), SeasonID: seasonID, FieldID: fieldID}
	if err := s.repos.Venue.CreateSeasonField(ctx, sf); err != nil {
		return nil, fmt.Errorf("failed to bind field to season: %w", err)
	}
	return sf, nil
}

// AddCageToSeason binds a catalog cage into a season
func (s *SeasonService) AddCageToSeason(ctx context.Context, seasonID, cageID string) (*models.SeasonCage, error) {
	sc := &models.SeasonCage{ID: utils.GenerateUUID(), SeasonID: seasonID, CageID: cageID}
	if err := s.repos.Venue.CreateSeasonCage(ctx, sc); err != nil {
		return nil, fmt.Errorf("failed to bind cage to season: %w", err)
	}
	return sc, nil
}
