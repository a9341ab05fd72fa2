package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSeasonRulesYAML = `
season_id: season-1
season_name: "Spring 2026"
start_date: "2026-04-01"
end_date: "2026-06-15"
games_start_date: "2026-04-11"

blackouts:
  - start_date: "2026-05-25"
    end_date: "2026-05-25"
    reason: "Memorial Day"
    event_types: [game]

divisions:
  - id: division-minors
    name: Minors
    scheduling_order: 1
    teams: [Angels, Astros, Orioles]
    practices_per_week: 1
    practice_duration_hours: 1.5
    games_per_week: 2
    game_duration_hours: 1.5
    home_away_diff_ceiling: 1
  - id: division-majors
    name: Majors
    scheduling_order: 2
    teams: [Cubs, Padres]
    practices_per_week: 1
    practice_duration_hours: 1.5
    games_per_week: 2
    game_duration_hours: 1.5
    home_away_diff_ceiling: 1

fields:
  - id: field-1
    name: Memorial Field
    availability:
      - day_of_week: 6
        start_time: "09:00"
        end_time: "17:00"

cages:
  - id: cage-1
    name: Batting Cage A
    availability:
      - day_of_week: 6
        start_time: "09:00"
        end_time: "12:00"
`

func TestLoadSeasonRulesFromBytes(t *testing.T) {
	rules, err := LoadSeasonRulesFromBytes([]byte(testSeasonRulesYAML))
	require.NoError(t, err)

	assert.Equal(t, "season-1", rules.SeasonID)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), rules.StartDate.Time)
	assert.Len(t, rules.Divisions, 2)
	assert.Len(t, rules.Blackouts, 1)
	assert.Equal(t, "Memorial Day", rules.Blackouts[0].Reason)
}

func TestLoadSeasonRulesValidation(t *testing.T) {
	t.Run("end before start", func(t *testing.T) {
		yaml := `
season_id: s1
start_date: "2026-06-01"
end_date: "2026-05-01"
divisions:
  - id: d1
    name: A
    teams: [T1]
fields:
  - id: f1
    name: F1
`
		_, err := LoadSeasonRulesFromBytes([]byte(yaml))
		assert.Error(t, err)
	})

	t.Run("no teams in division", func(t *testing.T) {
		yaml := `
season_id: s1
start_date: "2026-04-01"
end_date: "2026-05-01"
divisions:
  - id: d1
    name: A
    teams: []
fields:
  - id: f1
    name: F1
`
		_, err := LoadSeasonRulesFromBytes([]byte(yaml))
		assert.Error(t, err)
	})

	t.Run("duplicate scheduling order", func(t *testing.T) {
		yaml := `
season_id: s1
start_date: "2026-04-01"
end_date: "2026-05-01"
divisions:
  - id: d1
    name: A
    scheduling_order: 1
    teams: [T1]
  - id: d2
    name: B
    scheduling_order: 1
    teams: [T2]
fields:
  - id: f1
    name: F1
`
		_, err := LoadSeasonRulesFromBytes([]byte(yaml))
		assert.Error(t, err)
	})

	t.Run("no fields", func(t *testing.T) {
		yaml := `
season_id: s1
start_date: "2026-04-01"
end_date: "2026-05-01"
divisions:
  - id: d1
    name: A
    teams: [T1]
fields: []
`
		_, err := LoadSeasonRulesFromBytes([]byte(yaml))
		assert.Error(t, err)
	})
}

func TestSeasonRulesToModels(t *testing.T) {
	rules, err := LoadSeasonRulesFromBytes([]byte(testSeasonRulesYAML))
	require.NoError(t, err)

	out := rules.ToModels()

	require.NotNil(t, out.Season)
	assert.Equal(t, "season-1", out.Season.ID)
	assert.Len(t, out.Season.BlackoutDates, 1)

	require.Len(t, out.Divisions, 2)
	assert.Equal(t, "division-minors", out.Divisions[0].ID)

	require.Len(t, out.DivisionConfigs, 2)
	assert.Equal(t, 1, out.DivisionConfigs[0].HomeAwayDiffCeiling)

	require.Len(t, out.Teams, 5)
	for _, team := range out.Teams {
		assert.NotEmpty(t, team.ID)
		assert.NotEmpty(t, team.DivisionID)
	}

	require.Len(t, out.Fields, 1)
	require.Len(t, out.SeasonFields, 1)
	assert.Equal(t, "field-1", out.SeasonFields[0].FieldID)
	require.Len(t, out.FieldAvailability, 1)

	require.Len(t, out.Cages, 1)
	require.Len(t, out.CageAvailability, 1)
}
