// internal/repositories/season_repository.go
// Season data access layer

package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"league-scheduler/internal/models"
)

// SeasonRepository handles season data access
type SeasonRepository struct {
	db *sql.DB
}

// NewSeasonRepository creates a new season repository
func NewSeasonRepository(db *sql.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

// Create inserts a new season
func (r *SeasonRepository) Create(ctx context.Context, season *models.Season) error {
	query := `
		INSERT INTO seasons (
			id, organizer_id, name, start_date, end_date, games_start_date, status,
			blackout_dates, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		season.ID,
		season.OrganizerID,
		season.Name,
		season.StartDate,
		season.EndDate,
		season.GamesStartDate,
		season.Status,
		season.BlackoutDates,
		season.CreatedAt,
		season.UpdatedAt,
	)

	return err
}

// GetByID retrieves a season by ID
func (r *SeasonRepository) GetByID(ctx context.Context, id string) (*models.Season, error) {
	query := `
		SELECT id, organizer_id, name, start_date, end_date, games_start_date, status,
			blackout_dates, created_at, updated_at
		FROM seasons
		WHERE id = ?
	`

	var season models.Season
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&season.ID,
		&season.OrganizerID,
		&season.Name,
		&season.StartDate,
		&season.EndDate,
		&season.GamesStartDate,
		&season.Status,
		&season.BlackoutDates,
		&season.CreatedAt,
		&season.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("season not found")
	}

	return &season, err
}

// List retrieves all seasons, most recent start date first
func (r *SeasonRepository) List(ctx context.Context) ([]*models.Season, error) {
	query := `
		SELECT id, organizer_id, name, start_date, end_date, games_start_date, status,
			blackout_dates, created_at, updated_at
		FROM seasons
		ORDER BY start_date DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seasons := make([]*models.Season, 0)
	for rows.Next() {
		var s models.Season
		if err := rows.Scan(
			&s.ID, &s.OrganizerID, &s.Name, &s.StartDate, &s.EndDate, &s.GamesStartDate,
			&s.Status, &s.BlackoutDates, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		seasons = append(seasons, &s)
	}

	return seasons, nil
}

// Update updates season information, including its blackout calendar
func (r *SeasonRepository) Update(ctx context.Context, season *models.Season) error {
	query := `
		UPDATE seasons SET
			name = ?, start_date = ?, end_date = ?, games_start_date = ?,
			status = ?, blackout_dates = ?, updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.ExecContext(ctx, query,
		season.Name,
		season.StartDate,
		season.EndDate,
		season.GamesStartDate,
		season.Status,
		season.BlackoutDates,
		time.Now(),
		season.ID,
	)

	return err
}

// UpdateStatus transitions a season's lifecycle status
func (r *SeasonRepository) UpdateStatus(ctx context.Context, id string, status models.SeasonStatus) error {
	query := `UPDATE seasons SET status = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	return err
}

// Delete removes a season
func (r *SeasonRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM seasons WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
