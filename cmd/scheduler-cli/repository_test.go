package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"league-scheduler/internal/config"
	"league-scheduler/internal/scheduling"
)

const fixtureRulesYAML = `
season_id: season-1
season_name: "Fixture Season"
start_date: "2026-04-06"
end_date: "2026-06-15"
games_start_date: "2026-04-06"

divisions:
  - id: division-minors
    name: Minors
    scheduling_order: 1
    teams: [Angels, Astros, Orioles, Mariners]
    practices_per_week: 0
    practice_duration_hours: 1.5
    games_per_week: 1
    game_duration_hours: 1.5
    home_away_diff_ceiling: 2
    min_consecutive_day_gap: 1

fields:
  - id: field-1
    name: Memorial Field
    availability:
      - day_of_week: 1
        start_time: "16:00"
        end_time: "21:00"
      - day_of_week: 3
        start_time: "16:00"
        end_time: "21:00"
      - day_of_week: 6
        start_time: "09:00"
        end_time: "18:00"
      - day_of_week: 0
        start_time: "09:00"
        end_time: "18:00"
`

func TestMemoryRepositorySatisfiesGenerate(t *testing.T) {
	rules, err := config.LoadSeasonRulesFromBytes([]byte(fixtureRulesYAML))
	require.NoError(t, err)

	repo := newMemoryRepository(rules)
	result, err := scheduling.Generate(context.Background(), repo, scheduling.Request{SeasonID: rules.SeasonID})
	require.NoError(t, err)
	require.True(t, result.Success, "generation message: %s", result.Message)
	require.NotEmpty(t, result.Drafts)

	require.NoError(t, repo.InsertScheduledEventsBatch(context.Background(), result.Drafts))
	events, err := repo.ListScheduledEvents(context.Background(), scheduling.EventFilter{SeasonID: rules.SeasonID, DivisionID: "division-minors"})
	require.NoError(t, err)
	require.Len(t, events, len(result.Drafts))
}

func TestMemoryRepositoryDeleteScheduledEventsBulkClears(t *testing.T) {
	rules, err := config.LoadSeasonRulesFromBytes([]byte(fixtureRulesYAML))
	require.NoError(t, err)

	repo := newMemoryRepository(rules)

	result, err := scheduling.Generate(context.Background(), repo, scheduling.Request{SeasonID: rules.SeasonID})
	require.NoError(t, err)
	require.NoError(t, repo.InsertScheduledEventsBatch(context.Background(), result.Drafts))

	require.NoError(t, repo.DeleteScheduledEventsBulk(context.Background(), scheduling.EventFilter{SeasonID: rules.SeasonID}))
	events, err := repo.ListScheduledEvents(context.Background(), scheduling.EventFilter{SeasonID: rules.SeasonID})
	require.NoError(t, err)
	require.Empty(t, events)
}
