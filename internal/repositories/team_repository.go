// internal/repositories/team_repository.go
// Team data access layer

package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"league-scheduler/internal/models"
)

// TeamRepository handles team data access
type TeamRepository struct {
	db *sql.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *sql.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create inserts a new team
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	query := `INSERT INTO teams (id, season_id, division_id, name) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, team.ID, team.SeasonID, team.DivisionID, team.Name)
	return err
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(ctx context.Context, id string) (*models.Team, error) {
	query := `SELECT id, season_id, division_id, name FROM teams WHERE id = ?`

	var t models.Team
	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.SeasonID, &t.DivisionID, &t.Name)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("team not found")
	}
	return &t, err
}

// ListBySeason retrieves every team in a season, across all divisions
func (r *TeamRepository) ListBySeason(ctx context.Context, seasonID string) ([]*models.Team, error) {
	query := `SELECT id, season_id, division_id, name FROM teams WHERE season_id = ? ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, seasonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]*models.Team, 0)
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.SeasonID, &t.DivisionID, &t.Name); err != nil {
			return nil, err
		}
		teams = append(teams, &t)
	}
	return teams, nil
}

// ListByDivision retrieves every team in one division
func (r *TeamRepository) ListByDivision(ctx context.Context, divisionID string) ([]*models.Team, error) {
	query := `SELECT id, season_id, division_id, name FROM teams WHERE division_id = ? ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, divisionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]*models.Team, 0)
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.SeasonID, &t.DivisionID, &t.Name); err != nil {
			return nil, err
		}
		teams = append(teams, &t)
	}
	return teams, nil
}

// Update updates team information
func (r *TeamRepository) Update(ctx context.Context, team *models.Team) error {
	query := `UPDATE teams SET name = ?, division_id = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, team.Name, team.DivisionID, team.ID)
	return err
}

// Delete removes a team
func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM teams WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
