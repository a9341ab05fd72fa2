// internal/config/season_rules.go
// YAML season-rules format: a standalone, database-free description of a
// season's divisions, teams, venues, and constraints. Used as the input
// format for the CLI's offline generation path and as the fixture format
// for scheduling core tests, following the same Date-wrapper and
// LoadFromBytes/LoadFromFile shape the rest of the pack uses for YAML
// config.

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"league-scheduler/internal/models"
)

// Date wraps time.Time so season rules files can write plain "2006-01-02"
// strings instead of RFC3339 timestamps.
type Date struct {
	Time time.Time
}

// UnmarshalYAML implements yaml.Unmarshaler for Date.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	t, err := time.Parse("2006-01-02", value.Value)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", value.Value, err)
	}
	d.Time = t
	return nil
}

// BlackoutRule is the YAML shape of a models.Blackout.
type BlackoutRule struct {
	StartDate  Date     `yaml:"start_date"`
	EndDate    Date     `yaml:"end_date"`
	Divisions  []string `yaml:"divisions,omitempty"`
	EventTypes []string `yaml:"event_types,omitempty"`
	Reason     string   `yaml:"reason"`
}

// AvailabilityRule is one recurring weekly open window on a field or cage.
type AvailabilityRule struct {
	DayOfWeek       int    `yaml:"day_of_week"`
	StartTime       string `yaml:"start_time"`
	EndTime         string `yaml:"end_time"`
	SingleEventOnly bool   `yaml:"single_event_only"`
}

// FieldRule describes a ballfield and the season-scoped availability
// attached to it.
type FieldRule struct {
	ID           string             `yaml:"id"`
	Name         string             `yaml:"name"`
	Divisions    []string           `yaml:"divisions,omitempty"`
	Availability []AvailabilityRule `yaml:"availability"`
}

// CageRule is the batting-cage equivalent of FieldRule.
type CageRule struct {
	ID           string             `yaml:"id"`
	Name         string             `yaml:"name"`
	Divisions    []string           `yaml:"divisions,omitempty"`
	Availability []AvailabilityRule `yaml:"availability"`
}

// DivisionRule bundles a division's roster with its DivisionConfig.
type DivisionRule struct {
	ID                          string   `yaml:"id"`
	Name                        string   `yaml:"name"`
	SchedulingOrder             int      `yaml:"scheduling_order"`
	Teams                       []string `yaml:"teams"`
	PracticesPerWeek            int      `yaml:"practices_per_week"`
	PracticeDurationHours       float64  `yaml:"practice_duration_hours"`
	GamesPerWeek                int      `yaml:"games_per_week"`
	GameDurationHours           float64  `yaml:"game_duration_hours"`
	GameArriveBeforeHours       float64  `yaml:"game_arrive_before_hours"`
	CageSessionsPerWeek         int      `yaml:"cage_sessions_per_week"`
	CageSessionDurationHours    float64  `yaml:"cage_session_duration_hours"`
	FieldPreferences            []string `yaml:"field_preferences,omitempty"`
	MaxGamesPerSeason           int      `yaml:"max_games_per_season"`
	SundayPairedPracticeEnabled bool     `yaml:"sunday_paired_practice_enabled"`
	PairedPracticeDurationHours float64  `yaml:"paired_practice_duration_hours"`
	GameSpacingEnabled          bool     `yaml:"game_spacing_enabled"`
	PracticeArriveBeforeMinutes int      `yaml:"practice_arrive_before_minutes"`
	MinConsecutiveDayGap        int      `yaml:"min_consecutive_day_gap"`
	HomeAwayDiffCeiling         int      `yaml:"home_away_diff_ceiling"`
}

// SeasonRules is the full offline description of a season: everything
// scheduling.Generate needs, expressed as YAML instead of rows pulled
// through the repository layer.
type SeasonRules struct {
	SeasonID       string         `yaml:"season_id"`
	SeasonName     string         `yaml:"season_name"`
	StartDate      Date           `yaml:"start_date"`
	EndDate        Date           `yaml:"end_date"`
	GamesStartDate Date           `yaml:"games_start_date"`
	Blackouts      []BlackoutRule `yaml:"blackouts,omitempty"`
	Divisions      []DivisionRule `yaml:"divisions"`
	Fields         []FieldRule    `yaml:"fields"`
	Cages          []CageRule     `yaml:"cages,omitempty"`
}

// LoadSeasonRulesFromBytes parses YAML bytes into SeasonRules and validates it.
func LoadSeasonRulesFromBytes(data []byte) (*SeasonRules, error) {
	var rules SeasonRules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parsing season rules: %w", err)
	}
	if err := rules.validate(); err != nil {
		return nil, err
	}
	return &rules, nil
}

// LoadSeasonRulesFromYAML reads and parses a season rules YAML file.
func LoadSeasonRulesFromYAML(path string) (*SeasonRules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading season rules file: %w", err)
	}
	return LoadSeasonRulesFromBytes(data)
}

func (r *SeasonRules) validate() error {
	if !r.EndDate.Time.After(r.StartDate.Time) {
		return fmt.Errorf("end date %s must be after start date %s",
			r.EndDate.Time.Format("2006-01-02"), r.StartDate.Time.Format("2006-01-02"))
	}
	if len(r.Divisions) == 0 {
		return fmt.Errorf("at least one division is required")
	}
	if len(r.Fields) == 0 {
		return fmt.Errorf("at least one field is required")
	}
	seen := make(map[int]bool)
	for _, d := range r.Divisions {
		if len(d.Teams) == 0 {
			return fmt.Errorf("division %q has no teams", d.Name)
		}
		if seen[d.SchedulingOrder] {
			return fmt.Errorf("duplicate scheduling_order %d in division %q", d.SchedulingOrder, d.Name)
		}
		seen[d.SchedulingOrder] = true
	}
	return nil
}

// SeasonModels is the result of converting SeasonRules into the domain
// model shapes the scheduling core and repository layer share.
type SeasonModels struct {
	Season             *models.Season
	Divisions          []*models.Division
	DivisionConfigs    []*models.DivisionConfig
	Teams              []*models.Team
	Fields             []*models.Field
	Cages              []*models.Cage
	SeasonFields       []*models.SeasonField
	SeasonCages        []*models.SeasonCage
	FieldAvailability  []*models.FieldAvailability
	CageAvailability   []*models.CageAvailability
}

// ToModels converts the parsed rules into the domain models the scheduling
// core consumes, synthesizing the IDs a MySQL-backed repository would
// otherwise assign via auto-increment or UUID.
func (r *SeasonRules) ToModels() *SeasonModels {
	out := &SeasonModels{
		Season: &models.Season{
			ID:             r.SeasonID,
			Name:           r.SeasonName,
			StartDate:      r.StartDate.Time,
			EndDate:        r.EndDate.Time,
			GamesStartDate: r.GamesStartDate.Time,
			Status:         models.SeasonPublished,
		},
	}
	for _, b := range r.Blackouts {
		out.Season.BlackoutDates = append(out.Season.BlackoutDates, models.Blackout{
			StartDate:         b.StartDate.Time,
			EndDate:           b.EndDate.Time,
			DivisionIDs:       b.Divisions,
			BlockedEventTypes: eventTypesOf(b.EventTypes),
			Reason:            b.Reason,
		})
	}

	for _, d := range r.Divisions {
		out.Divisions = append(out.Divisions, &models.Division{
			ID:              d.ID,
			SeasonID:        r.SeasonID,
			Name:            d.Name,
			SchedulingOrder: d.SchedulingOrder,
		})
		out.DivisionConfigs = append(out.DivisionConfigs, &models.DivisionConfig{
			ID:                          d.ID + "-config",
			DivisionID:                  d.ID,
			SeasonID:                    r.SeasonID,
			PracticesPerWeek:            d.PracticesPerWeek,
			PracticeDurationHours:       d.PracticeDurationHours,
			GamesPerWeek:                d.GamesPerWeek,
			GameDurationHours:           d.GameDurationHours,
			GameArriveBeforeHours:       d.GameArriveBeforeHours,
			CageSessionsPerWeek:         d.CageSessionsPerWeek,
			CageSessionDurationHours:    d.CageSessionDurationHours,
			FieldPreferences:            d.FieldPreferences,
			MaxGamesPerSeason:           d.MaxGamesPerSeason,
			SundayPairedPracticeEnabled: d.SundayPairedPracticeEnabled,
			PairedPracticeDurationHours: d.PairedPracticeDurationHours,
			GameSpacingEnabled:          d.GameSpacingEnabled,
			PracticeArriveBeforeMinutes: d.PracticeArriveBeforeMinutes,
			MinConsecutiveDayGap:        d.MinConsecutiveDayGap,
			HomeAwayDiffCeiling:         d.HomeAwayDiffCeiling,
		})
		for i, teamName := range d.Teams {
			out.Teams = append(out.Teams, &models.Team{
				ID:         fmt.Sprintf("%s-team-%d", d.ID, i+1),
				SeasonID:   r.SeasonID,
				DivisionID: d.ID,
				Name:       teamName,
			})
		}
	}

	for _, f := range r.Fields {
		out.Fields = append(out.Fields, &models.Field{ID: f.ID, Name: f.Name, DivisionCompatibility: f.Divisions})
		out.SeasonFields = append(out.SeasonFields, &models.SeasonField{ID: f.ID + "-sf", SeasonID: r.SeasonID, FieldID: f.ID})
		for i, a := range f.Availability {
			out.FieldAvailability = append(out.FieldAvailability, &models.FieldAvailability{
				ID:              fmt.Sprintf("%s-avail-%d", f.ID, i),
				SeasonFieldID:   f.ID + "-sf",
				DayOfWeek:       a.DayOfWeek,
				StartTime:       a.StartTime,
				EndTime:         a.EndTime,
				SingleEventOnly: a.SingleEventOnly,
			})
		}
	}

	for _, c := range r.Cages {
		out.Cages = append(out.Cages, &models.Cage{ID: c.ID, Name: c.Name, DivisionCompatibility: c.Divisions})
		out.SeasonCages = append(out.SeasonCages, &models.SeasonCage{ID: c.ID + "-sc", SeasonID: r.SeasonID, CageID: c.ID})
		for i, a := range c.Availability {
			out.CageAvailability = append(out.CageAvailability, &models.CageAvailability{
				ID:              fmt.Sprintf("%s-avail-%d", c.ID, i),
				SeasonCageID:    c.ID + "-sc",
				DayOfWeek:       a.DayOfWeek,
				StartTime:       a.StartTime,
				EndTime:         a.EndTime,
				SingleEventOnly: a.SingleEventOnly,
			})
		}
	}

	return out
}

func eventTypesOf(names []string) []models.EventType {
	if len(names) == 0 {
		return nil
	}
	out := make([]models.EventType, len(names))
	for i, n := range names {
		out[i] = models.EventType(n)
	}
	return out
}
