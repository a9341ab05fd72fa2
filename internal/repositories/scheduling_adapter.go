// internal/repositories/scheduling_adapter.go
// SchedulingAdapter composes the per-entity repositories into the single
// read-mostly collaborator the scheduling core depends on
// (scheduling.Repository), plus ID generation for newly committed drafts.

package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"league-scheduler/internal/models"
	"league-scheduler/internal/scheduling"
)

// SchedulingAdapter implements scheduling.Repository by delegating to the
// season/division/team/venue/event repositories.
type SchedulingAdapter struct {
	Seasons   *SeasonRepository
	Divisions *DivisionRepository
	Teams     *TeamRepository
	Venues    *VenueRepository
	Events    *EventRepository
}

// NewSchedulingAdapter builds a SchedulingAdapter over an existing
// Container's repositories.
func NewSchedulingAdapter(c *Container) *SchedulingAdapter {
	return &SchedulingAdapter{
		Seasons:   c.Season,
		Divisions: c.Division,
		Teams:     c.Team,
		Venues:    c.Venue,
		Events:    c.Event,
	}
}

func (a *SchedulingAdapter) GetSeason(ctx context.Context, id string) (*models.Season, error) {
	return a.Seasons.GetByID(ctx, id)
}

func (a *SchedulingAdapter) ListDivisions(ctx context.Context, seasonID string) ([]*models.Division, error) {
	return a.Divisions.ListBySeason(ctx, seasonID)
}

func (a *SchedulingAdapter) ListDivisionConfigs(ctx context.Context, seasonID string) ([]*models.DivisionConfig, error) {
	return a.Divisions.ListConfigsBySeason(ctx, seasonID)
}

func (a *SchedulingAdapter) ListTeams(ctx context.Context, seasonID string) ([]*models.Team, error) {
	return a.Teams.ListBySeason(ctx, seasonID)
}

func (a *SchedulingAdapter) ListSeasonFields(ctx context.Context, seasonID string) ([]*models.SeasonField, error) {
	return a.Venues.ListSeasonFields(ctx, seasonID)
}

func (a *SchedulingAdapter) ListSeasonCages(ctx context.Context, seasonID string) ([]*models.SeasonCage, error) {
	return a.Venues.ListSeasonCages(ctx, seasonID)
}

func (a *SchedulingAdapter) ListFields(ctx context.Context, ids []string) ([]*models.Field, error) {
	return a.Venues.GetFieldsByIDs(ctx, ids)
}

func (a *SchedulingAdapter) ListCages(ctx context.Context, ids []string) ([]*models.Cage, error) {
	return a.Venues.GetCagesByIDs(ctx, ids)
}

func (a *SchedulingAdapter) ListFieldAvailabilitiesForSeason(ctx context.Context, seasonID string) ([]*models.FieldAvailability, error) {
	return a.Venues.ListFieldAvailabilitiesForSeason(ctx, seasonID)
}

func (a *SchedulingAdapter) ListCageAvailabilitiesForSeason(ctx context.Context, seasonID string) ([]*models.CageAvailability, error) {
	return a.Venues.ListCageAvailabilitiesForSeason(ctx, seasonID)
}

func (a *SchedulingAdapter) ListFieldDateOverridesForSeason(ctx context.Context, seasonID string) ([]*models.FieldDateOverride, error) {
	return a.Venues.ListFieldDateOverridesForSeason(ctx, seasonID)
}

func (a *SchedulingAdapter) ListCageDateOverridesForSeason(ctx context.Context, seasonID string) ([]*models.CageDateOverride, error) {
	return a.Venues.ListCageDateOverridesForSeason(ctx, seasonID)
}

func (a *SchedulingAdapter) ListScheduledEvents(ctx context.Context, filter scheduling.EventFilter) ([]*models.ScheduledEvent, error) {
	return a.Events.ListFiltered(ctx, filter.SeasonID, filter.DivisionID, filter.StartDate, filter.EndDate)
}

// InsertScheduledEventsBatch assigns IDs and timestamps to drafts, marks
// them committed, and writes them in one transaction.
func (a *SchedulingAdapter) InsertScheduledEventsBatch(ctx context.Context, drafts []*models.Draft) error {
	now := time.Now()
	for _, d := range drafts {
		if d.ID == "" {
			d.ID = uuid.New().String()
		}
		d.Status = models.EventStatusCommitted
		d.CreatedAt = now
		d.UpdatedAt = now
	}
	return a.Events.InsertBatch(ctx, drafts)
}

func (a *SchedulingAdapter) DeleteScheduledEventsBulk(ctx context.Context, filter scheduling.EventFilter) error {
	return a.Events.DeleteBulk(ctx, filter.SeasonID, filter.DivisionID, filter.StartDate, filter.EndDate)
}

var _ scheduling.Repository = (*SchedulingAdapter)(nil)
