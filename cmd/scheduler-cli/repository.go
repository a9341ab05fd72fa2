// cmd/scheduler-cli/repository.go
// In-memory scheduling.Repository backed by a parsed config.SeasonRules
// file, so the CLI can run a generation without a live MySQL/Mongo/Redis
// stack.

package main

import (
	"context"

	"league-scheduler/internal/config"
	"league-scheduler/internal/models"
	"league-scheduler/internal/scheduling"
)

type memoryRepository struct {
	data   *config.SeasonModels
	events []*models.ScheduledEvent
}

func newMemoryRepository(rules *config.SeasonRules) *memoryRepository {
	return &memoryRepository{data: rules.ToModels()}
}

func (r *memoryRepository) GetSeason(ctx context.Context, id string) (*models.Season, error) {
	return r.data.Season, nil
}

func (r *memoryRepository) ListDivisions(ctx context.Context, seasonID string) ([]*models.Division, error) {
	return r.data.Divisions, nil
}

func (r *memoryRepository) ListDivisionConfigs(ctx context.Context, seasonID string) ([]*models.DivisionConfig, error) {
	return r.data.DivisionConfigs, nil
}

func (r *memoryRepository) ListTeams(ctx context.Context, seasonID string) ([]*models.Team, error) {
	return r.data.Teams, nil
}

func (r *memoryRepository) ListSeasonFields(ctx context.Context, seasonID string) ([]*models.SeasonField, error) {
	return r.data.SeasonFields, nil
}

func (r *memoryRepository) ListSeasonCages(ctx context.Context, seasonID string) ([]*models.SeasonCage, error) {
	return r.data.SeasonCages, nil
}

func (r *memoryRepository) ListFields(ctx context.Context, ids []string) ([]*models.Field, error) {
	return filterByIDs(r.data.Fields, ids, func(f *models.Field) string { return f.ID }), nil
}

func (r *memoryRepository) ListCages(ctx context.Context, ids []string) ([]*models.Cage, error) {
	return filterByIDs(r.data.Cages, ids, func(c *models.Cage) string { return c.ID }), nil
}

func (r *memoryRepository) ListFieldAvailabilitiesForSeason(ctx context.Context, seasonID string) ([]*models.FieldAvailability, error) {
	return r.data.FieldAvailability, nil
}

func (r *memoryRepository) ListCageAvailabilitiesForSeason(ctx context.Context, seasonID string) ([]*models.CageAvailability, error) {
	return r.data.CageAvailability, nil
}

func (r *memoryRepository) ListFieldDateOverridesForSeason(ctx context.Context, seasonID string) ([]*models.FieldDateOverride, error) {
	return nil, nil
}

func (r *memoryRepository) ListCageDateOverridesForSeason(ctx context.Context, seasonID string) ([]*models.CageDateOverride, error) {
	return nil, nil
}

func (r *memoryRepository) ListScheduledEvents(ctx context.Context, filter scheduling.EventFilter) ([]*models.ScheduledEvent, error) {
	var out []*models.ScheduledEvent
	for _, e := range r.events {
		if filter.DivisionID != "" && e.DivisionID != filter.DivisionID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *memoryRepository) InsertScheduledEventsBatch(ctx context.Context, drafts []*models.Draft) error {
	r.events = append(r.events, drafts...)
	return nil
}

func (r *memoryRepository) DeleteScheduledEventsBulk(ctx context.Context, filter scheduling.EventFilter) error {
	r.events = nil
	return nil
}

func filterByIDs[T any](items []*T, ids []string, idOf func(*T) string) []*T {
	if len(ids) == 0 {
		return items
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []*T
	for _, item := range items {
		if want[idOf(item)] {
			out = append(out, item)
		}
	}
	return out
}

var _ scheduling.Repository = (*memoryRepository)(nil)
