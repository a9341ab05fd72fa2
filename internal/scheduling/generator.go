// internal/scheduling/generator.go
// Generator API (C10): the top-level entrypoint. Loads inputs from the
// Repository, runs the draft scheduler and rebalancers, and returns
// drafts plus statistics and a structured log. Generate does not read
// Request.Seed; it performs no I/O beyond the Repository calls made at
// the boundary.

package scheduling

import (
	"context"
	"fmt"
	"sort"
	"time"

	"league-scheduler/internal/models"
)

// Generate is the sole operation the core exposes to collaborators.
func Generate(ctx context.Context, repo Repository, req Request) (*Result, error) {
	result := &Result{
		Statistics: Statistics{
			EventsByType:     make(map[models.EventType]int),
			EventsByDivision: make(map[string]int),
			Utilization:      make(map[string]float64),
		},
	}

	season, err := repo.GetSeason(ctx, req.SeasonID)
	if err != nil || season == nil {
		result.Errors = append(result.Errors, ScheduleError{Message: ErrNoSeason.Error()})
		result.Message = "generation aborted: season not found"
		return result, nil
	}

	allDivisions, err := repo.ListDivisions(ctx, req.SeasonID)
	if err != nil {
		result.Errors = append(result.Errors, ScheduleError{Message: err.Error()})
		return result, nil
	}
	divisions := filterDivisions(allDivisions, req.DivisionIDs)
	if len(divisions) == 0 {
		result.Errors = append(result.Errors, ScheduleError{Message: "no divisions matched the request"})
		result.Message = "generation aborted: no divisions to schedule"
		return result, nil
	}
	if err := validateSchedulingOrder(divisions); err != nil {
		result.Errors = append(result.Errors, ScheduleError{Message: err.Error()})
		result.Message = "generation aborted: invalid division configuration"
		return result, nil
	}

	configs, err := repo.ListDivisionConfigs(ctx, req.SeasonID)
	if err != nil {
		result.Errors = append(result.Errors, ScheduleError{Message: err.Error()})
		return result, nil
	}
	configByDivision := make(map[string]*models.DivisionConfig)
	for _, c := range configs {
		configByDivision[c.DivisionID] = c
	}
	if err := validateDurations(configs); err != nil {
		result.Errors = append(result.Errors, ScheduleError{Message: err.Error()})
		result.Message = "generation aborted: invalid division configuration"
		return result, nil
	}

	teams, err := repo.ListTeams(ctx, req.SeasonID)
	if err != nil {
		result.Errors = append(result.Errors, ScheduleError{Message: err.Error()})
		return result, nil
	}
	if len(teams) == 0 {
		result.Errors = append(result.Errors, ScheduleError{Message: ErrNoTeams.Error()})
		result.Message = "generation aborted: no teams"
		return result, nil
	}
	teamsByDivision := make(map[string][]*models.Team)
	for _, t := range teams {
		teamsByDivision[t.DivisionID] = append(teamsByDivision[t.DivisionID], t)
	}

	seasonFields, err := repo.ListSeasonFields(ctx, req.SeasonID)
	if err != nil {
		result.Errors = append(result.Errors, ScheduleError{Message: err.Error()})
		return result, nil
	}
	seasonCages, err := repo.ListSeasonCages(ctx, req.SeasonID)
	if err != nil {
		result.Errors = append(result.Errors, ScheduleError{Message: err.Error()})
		return result, nil
	}
	if len(seasonFields) == 0 {
		result.Errors = append(result.Errors, ScheduleError{Message: ErrNoFields.Error()})
		result.Message = "generation aborted: no fields available for games"
		return result, nil
	}

	fieldIDs := make([]string, 0, len(seasonFields))
	for _, sf := range seasonFields {
		fieldIDs = append(fieldIDs, sf.FieldID)
	}
	cageIDs := make([]string, 0, len(seasonCages))
	for _, sc := range seasonCages {
		cageIDs = append(cageIDs, sc.CageID)
	}
	fieldList, err := repo.ListFields(ctx, fieldIDs)
	if err != nil {
		result.Errors = append(result.Errors, ScheduleError{Message: err.Error()})
		return result, nil
	}
	cageList, err := repo.ListCages(ctx, cageIDs)
	if err != nil {
		result.Errors = append(result.Errors, ScheduleError{Message: err.Error()})
		return result, nil
	}
	fieldsByID := make(map[string]*models.Field)
	for _, f := range fieldList {
		fieldsByID[f.ID] = f
	}
	cagesByID := make(map[string]*models.Cage)
	for _, c := range cageList {
		cagesByID[c.ID] = c
	}

	fieldAvail, err := repo.ListFieldAvailabilitiesForSeason(ctx, req.SeasonID)
	if err != nil {
		result.Errors = append(result.Errors, ScheduleError{Message: err.Error()})
		return result, nil
	}
	cageAvail, err := repo.ListCageAvailabilitiesForSeason(ctx, req.SeasonID)
	if err != nil {
		result.Errors = append(result.Errors, ScheduleError{Message: err.Error()})
		return result, nil
	}
	fieldOverrides, err := repo.ListFieldDateOverridesForSeason(ctx, req.SeasonID)
	if err != nil {
		result.Errors = append(result.Errors, ScheduleError{Message: err.Error()})
		return result, nil
	}
	cageOverrides, err := repo.ListCageDateOverridesForSeason(ctx, req.SeasonID)
	if err != nil {
		result.Errors = append(result.Errors, ScheduleError{Message: err.Error()})
		return result, nil
	}

	fieldAvailIdx := BuildFieldAvailabilityIndex(seasonFields, fieldAvail, fieldOverrides)
	cageAvailIdx := BuildCageAvailabilityIndex(seasonCages, cageAvail, cageOverrides)

	weeks := EnumerateWeeks(season.StartDate, season.EndDate)
	allDates := weeksToDates(weeks)

	index := NewConflictIndex()
	if !req.ClearExisting {
		existing, err := repo.ListScheduledEvents(ctx, EventFilter{SeasonID: req.SeasonID})
		if err != nil {
			result.Errors = append(result.Errors, ScheduleError{Message: err.Error()})
			return result, nil
		}
		index.SeedExisting(existing)
	}

	weights := req.ScoringWeights
	if weights == nil {
		weights = DefaultWeights()
	}

	sort.Slice(divisions, func(i, j int) bool { return divisions[i].SchedulingOrder < divisions[j].SchedulingOrder })

	var drafts []*models.Draft

	for _, div := range divisions {
		cfg := configByDivision[div.ID]
		if cfg == nil {
			result.Warnings = append(result.Warnings, ScheduleWarning{
				Category: WarnInsufficientResources, Message: "no division config", DivisionID: div.ID,
			})
			continue
		}
		divTeams := teamsByDivision[div.ID]
		if len(divTeams) == 0 {
			result.Warnings = append(result.Warnings, ScheduleWarning{
				Category: WarnInsufficientResources, Message: "no teams in division", DivisionID: div.ID,
			})
			continue
		}
		teamIDs := make([]string, 0, len(divTeams))
		for _, t := range divTeams {
			teamIDs = append(teamIDs, t.ID)
		}

		blackouts := NewBlackoutChecker(season, div.ID)
		di := &divisionInputs{
			Division: div,
			Config:   cfg,
			Teams:    divTeams,
			Weeks:    weeks,
			Fields:   fieldsByID,
			Cages:    cagesByID,
		}

		states := InitializeTeamStates(teamIDs)
		scoringCtx := &ScoringContext{
			States:           states,
			Index:            index,
			Config:           cfg,
			Weeks:            weeks,
			ResourceCapacity: make(map[string]int),
			ResourceUsage:    make(map[string]int),
			TeamsInDivision:  teamIDs,
			EarliestSlotStart: make(map[string]int),
		}

		divDrafts, log, warnings := scheduleDivision(di, index, states, scoringCtx, weights, season, seasonFields, seasonCages, fieldAvailIdx, cageAvailIdx, blackouts, allDates)
		drafts = append(drafts, divDrafts...)
		result.SchedulingLog = append(result.SchedulingLog, log...)
		result.Warnings = append(result.Warnings, warnings...)
		if req.OnLog != nil {
			for _, entry := range log {
				req.OnLog(entry)
			}
		}
	}

	ceilingByDivision := make(map[string]int)
	for id, c := range configByDivision {
		ceilingByDivision[id] = c.HomeAwayDiffCeiling
	}
	RebalanceHomeAway(gamesOnly(drafts), ceilingByDivision)
	for _, div := range divisions {
		divTeamIDs := teamIDsOf(teamsByDivision[div.ID])
		if len(divTeamIDs) == 0 {
			continue
		}
		cfg := configByDivision[div.ID]
		if cfg != nil && cfg.GameSpacingEnabled {
			maxAttempts := req.MaxAttempts
			if maxAttempts <= 0 {
				maxAttempts = DefaultMaxAttempts
			}
			// index carries the real committed dates for every team, so the
			// rebalancer always reads live short-rest counts rather than a
			// fresh, all-zero snapshot.
			RebalanceShortRest(index, divTeamIDs, maxAttempts)
		}
	}

	if err := postCheck(drafts); err != nil {
		result.Errors = append(result.Errors, ScheduleError{Message: err.Error(), Details: drafts})
		result.Message = "generation failed invariant post-check"
		result.Success = false
		return result, nil
	}

	for _, d := range drafts {
		result.Statistics.EventsByType[d.EventType]++
		result.Statistics.EventsByDivision[d.DivisionID]++
	}
	if len(teams) > 0 {
		result.Statistics.AverageEventsPerTeam = float64(len(drafts)*2) / float64(len(teams))
	}

	result.Success = true
	result.EventsCreated = len(drafts)
	result.Drafts = drafts
	result.Message = fmt.Sprintf("generated %d events across %d division(s)", len(drafts), len(divisions))
	return result, nil
}

func filterDivisions(all []*models.Division, ids []string) []*models.Division {
	if len(ids) == 0 {
		return all
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []*models.Division
	for _, d := range all {
		if want[d.ID] {
			out = append(out, d)
		}
	}
	return out
}

func validateSchedulingOrder(divisions []*models.Division) error {
	seen := make(map[int]bool)
	for _, d := range divisions {
		if seen[d.SchedulingOrder] {
			return ErrDuplicateSchedulingOrder
		}
		seen[d.SchedulingOrder] = true
	}
	return nil
}

func validateDurations(configs []*models.DivisionConfig) error {
	for _, c := range configs {
		if c.GameDurationHours <= 0 || c.PracticeDurationHours <= 0 {
			return ErrNonPositiveDuration
		}
		if c.CageSessionsPerWeek > 0 && c.CageSessionDurationHours <= 0 {
			return ErrNonPositiveDuration
		}
	}
	return nil
}

func weeksToDates(weeks []models.WeekDefinition) []time.Time {
	var dates []time.Time
	for _, w := range weeks {
		dates = append(dates, w.Dates...)
	}
	return dates
}
