// internal/repositories/division_repository.go
// Division and per-division scheduling configuration data access

package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"league-scheduler/internal/models"
)

// DivisionRepository handles division and division-config data access
type DivisionRepository struct {
	db *sql.DB
}

// NewDivisionRepository creates a new division repository
func NewDivisionRepository(db *sql.DB) *DivisionRepository {
	return &DivisionRepository{db: db}
}

// Create inserts a new division
func (r *DivisionRepository) Create(ctx context.Context, division *models.Division) error {
	query := `
		INSERT INTO divisions (id, season_id, name, scheduling_order)
		VALUES (?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query, division.ID, division.SeasonID, division.Name, division.SchedulingOrder)
	return err
}

// GetByID retrieves a division by ID
func (r *DivisionRepository) GetByID(ctx context.Context, id string) (*models.Division, error) {
	query := `SELECT id, season_id, name, scheduling_order FROM divisions WHERE id = ?`

	var d models.Division
	err := r.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.SeasonID, &d.Name, &d.SchedulingOrder)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("division not found")
	}
	return &d, err
}

// ListBySeason retrieves every division in a season, in scheduling order
func (r *DivisionRepository) ListBySeason(ctx context.Context, seasonID string) ([]*models.Division, error) {
	query := `
		SELECT id, season_id, name, scheduling_order
		FROM divisions
		WHERE season_id = ?
		ORDER BY scheduling_order
	`

	rows, err := r.db.QueryContext(ctx, query, seasonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	divisions := make([]*models.Division, 0)
	for rows.Next() {
		var d models.Division
		if err := rows.Scan(&d.ID, &d.SeasonID, &d.Name, &d.SchedulingOrder); err != nil {
			return nil, err
		}
		divisions = append(divisions, &d)
	}
	return divisions, nil
}

// Update updates division information
func (r *DivisionRepository) Update(ctx context.Context, division *models.Division) error {
	query := `UPDATE divisions SET name = ?, scheduling_order = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, division.Name, division.SchedulingOrder, division.ID)
	return err
}

// Delete removes a division
func (r *DivisionRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM divisions WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

// CreateConfig inserts a new division config
func (r *DivisionRepository) CreateConfig(ctx context.Context, cfg *models.DivisionConfig) error {
	query := `
		INSERT INTO division_configs (
			id, division_id, season_id, practices_per_week, practice_duration_hours,
			games_per_week, game_duration_hours, game_arrive_before_hours,
			game_day_preferences, cage_sessions_per_week, cage_session_duration_hours,
			field_preferences, game_week_overrides, max_games_per_season,
			sunday_paired_practice_enabled, paired_practice_duration_hours,
			paired_practice_field_id, paired_practice_cage_id, game_spacing_enabled,
			practice_arrive_before_minutes, min_consecutive_day_gap, home_away_diff_ceiling
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		cfg.ID, cfg.DivisionID, cfg.SeasonID, cfg.PracticesPerWeek, cfg.PracticeDurationHours,
		cfg.GamesPerWeek, cfg.GameDurationHours, cfg.GameArriveBeforeHours,
		cfg.GameDayPreferences, cfg.CageSessionsPerWeek, cfg.CageSessionDurationHours,
		cfg.FieldPreferences, cfg.GameWeekOverrides, cfg.MaxGamesPerSeason,
		cfg.SundayPairedPracticeEnabled, cfg.PairedPracticeDurationHours,
		cfg.PairedPracticeFieldID, cfg.PairedPracticeCageID, cfg.GameSpacingEnabled,
		cfg.PracticeArriveBeforeMinutes, cfg.MinConsecutiveDayGap, cfg.HomeAwayDiffCeiling,
	)
	return err
}

// GetConfigByDivisionID retrieves the scheduling config for one division
func (r *DivisionRepository) GetConfigByDivisionID(ctx context.Context, divisionID string) (*models.DivisionConfig, error) {
	query := `
		SELECT id, division_id, season_id, practices_per_week, practice_duration_hours,
			games_per_week, game_duration_hours, game_arrive_before_hours,
			game_day_preferences, cage_sessions_per_week, cage_session_duration_hours,
			field_preferences, game_week_overrides, max_games_per_season,
			sunday_paired_practice_enabled, paired_practice_duration_hours,
			paired_practice_field_id, paired_practice_cage_id, game_spacing_enabled,
			practice_arrive_before_minutes, min_consecutive_day_gap, home_away_diff_ceiling
		FROM division_configs
		WHERE division_id = ?
	`

	var c models.DivisionConfig
	err := r.db.QueryRowContext(ctx, query, divisionID).Scan(
		&c.ID, &c.DivisionID, &c.SeasonID, &c.PracticesPerWeek, &c.PracticeDurationHours,
		&c.GamesPerWeek, &c.GameDurationHours, &c.GameArriveBeforeHours,
		&c.GameDayPreferences, &c.CageSessionsPerWeek, &c.CageSessionDurationHours,
		&c.FieldPreferences, &c.GameWeekOverrides, &c.MaxGamesPerSeason,
		&c.SundayPairedPracticeEnabled, &c.PairedPracticeDurationHours,
		&c.PairedPracticeFieldID, &c.PairedPracticeCageID, &c.GameSpacingEnabled,
		&c.PracticeArriveBeforeMinutes, &c.MinConsecutiveDayGap, &c.HomeAwayDiffCeiling,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("division config not found")
	}
	return &c, err
}

// ListConfigsBySeason retrieves every division config in a season
func (r *DivisionRepository) ListConfigsBySeason(ctx context.Context, seasonID string) ([]*models.DivisionConfig, error) {
	query := `
		SELECT id, division_id, season_id, practices_per_week, practice_duration_hours,
			games_per_week, game_duration_hours, game_arrive_before_hours,
			game_day_preferences, cage_sessions_per_week, cage_session_duration_hours,
			field_preferences, game_week_overrides, max_games_per_season,
			sunday_paired_practice_enabled, paired_practice_duration_hours,
			paired_practice_field_id, paired_practice_cage_id, game_spacing_enabled,
			practice_arrive_before_minutes, min_consecutive_day_gap, home_away_diff_ceiling
		FROM division_configs
		WHERE season_id = ?
	`

	rows, err := r.db.QueryContext(ctx, query, seasonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	configs := make([]*models.DivisionConfig, 0)
	for rows.Next() {
		var c models.DivisionConfig
		if err := rows.Scan(
			&c.ID, &c.DivisionID, &c.SeasonID, &c.PracticesPerWeek, &c.PracticeDurationHours,
			&c.GamesPerWeek, &c.GameDurationHours, &c.GameArriveBeforeHours,
			&c.GameDayPreferences, &c.CageSessionsPerWeek, &c.CageSessionDurationHours,
			&c.FieldPreferences, &c.GameWeekOverrides, &c.MaxGamesPerSeason,
			&c.SundayPairedPracticeEnabled, &c.PairedPracticeDurationHours,
			&c.PairedPracticeFieldID, &c.PairedPracticeCageID, &c.GameSpacingEnabled,
			&c.PracticeArriveBeforeMinutes, &c.MinConsecutiveDayGap, &c.HomeAwayDiffCeiling,
		); err != nil {
			return nil, err
		}
		configs = append(configs, &c)
	}
	return configs, nil
}

// UpdateConfig updates a division's scheduling config
func (r *DivisionRepository) UpdateConfig(ctx context.Context, cfg *models.DivisionConfig) error {
	query := `
		UPDATE division_configs SET
			practices_per_week = ?, practice_duration_hours = ?, games_per_week = ?,
			game_duration_hours = ?, game_arrive_before_hours = ?, game_day_preferences = ?,
			cage_sessions_per_week = ?, cage_session_duration_hours = ?, field_preferences = ?,
			game_week_overrides = ?, max_games_per_season = ?, sunday_paired_practice_enabled = ?,
			paired_practice_duration_hours = ?, paired_practice_field_id = ?,
			paired_practice_cage_id = ?, game_spacing_enabled = ?,
			practice_arrive_before_minutes = ?, min_consecutive_day_gap = ?, home_away_diff_ceiling = ?
		WHERE id = ?
	`
	_, err := r.db.ExecContext(ctx, query,
		cfg.PracticesPerWeek, cfg.PracticeDurationHours, cfg.GamesPerWeek,
		cfg.GameDurationHours, cfg.GameArriveBeforeHours, cfg.GameDayPreferences,
		cfg.CageSessionsPerWeek, cfg.CageSessionDurationHours, cfg.FieldPreferences,
		cfg.GameWeekOverrides, cfg.MaxGamesPerSeason, cfg.SundayPairedPracticeEnabled,
		cfg.PairedPracticeDurationHours, cfg.PairedPracticeFieldID,
		cfg.PairedPracticeCageID, cfg.GameSpacingEnabled,
		cfg.PracticeArriveBeforeMinutes, cfg.MinConsecutiveDayGap, cfg.HomeAwayDiffCeiling,
		cfg.ID,
	)
	return err
}
