// internal/scheduling/teamstate.go
// Per-team scheduling state bookkeeping used by the draft scheduler (C6).

package scheduling

import "league-scheduler/internal/models"

// InitializeTeamStates builds a fresh TeamSchedulingState for every team
// in a division, per C3's initializeTeamState.
func InitializeTeamStates(teamIDs []string) map[string]*models.TeamSchedulingState {
	states := make(map[string]*models.TeamSchedulingState, len(teamIDs))
	for _, id := range teamIDs {
		states[id] = models.NewTeamSchedulingState(id)
	}
	return states
}

// TargetGamesForSeason sums the division's per-week game quota (honoring
// gameWeekOverrides) across weeks, capped by maxGamesPerSeason.
func TargetGamesForSeason(cfg *models.DivisionConfig, weeks []models.WeekDefinition) int {
	total := 0
	for _, w := range weeks {
		total += cfg.GamesPerWeekFor(w.WeekNumber)
	}
	if cfg.MaxGamesPerSeason > 0 && total > cfg.MaxGamesPerSeason {
		return cfg.MaxGamesPerSeason
	}
	return total
}
