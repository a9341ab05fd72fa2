// internal/repositories/event_repository.go
// Scheduled-event data access: committed/draft events produced by the
// generator, plus the batch write path used once a generation run
// completes.

package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"league-scheduler/internal/models"
)

// eventBatchSize caps how many rows go into one multi-row INSERT, keeping
// well clear of MySQL's max_allowed_packet and placeholder limits.
const eventBatchSize = 50

// EventRepository handles scheduled-event data access
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// ListFiltered retrieves scheduled events matching a filter, ordered by
// date then start time for stable pagination-free reads.
func (r *EventRepository) ListFiltered(ctx context.Context, seasonID, divisionID, startDate, endDate string) ([]*models.ScheduledEvent, error) {
	var b strings.Builder
	b.WriteString(`
		SELECT id, season_id, division_id, event_type, date, start_time, end_time,
			field_id, cage_id, team_id, home_team_id, away_team_id, paired_team_id,
			status, notes, created_at, updated_at
		FROM scheduled_events
		WHERE season_id = ?
	`)
	args := []interface{}{seasonID}

	if divisionID != "" {
		b.WriteString(" AND division_id = ?")
		args = append(args, divisionID)
	}
	if startDate != "" {
		b.WriteString(" AND date >= ?")
		args = append(args, startDate)
	}
	if endDate != "" {
		b.WriteString(" AND date <= ?")
		args = append(args, endDate)
	}
	b.WriteString(" ORDER BY date, start_time")

	rows, err := r.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*models.ScheduledEvent, 0)
	for rows.Next() {
		var e models.ScheduledEvent
		if err := rows.Scan(
			&e.ID, &e.SeasonID, &e.DivisionID, &e.EventType, &e.Date, &e.StartTime, &e.EndTime,
			&e.FieldID, &e.CageID, &e.TeamID, &e.HomeTeamID, &e.AwayTeamID, &e.PairedTeamID,
			&e.Status, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, &e)
	}
	return events, nil
}

// GetByID retrieves a single scheduled event
func (r *EventRepository) GetByID(ctx context.Context, id string) (*models.ScheduledEvent, error) {
	query := `
		SELECT id, season_id, division_id, event_type, date, start_time, end_time,
			field_id, cage_id, team_id, home_team_id, away_team_id, paired_team_id,
			status, notes, created_at, updated_at
		FROM scheduled_events
		WHERE id = ?
	`
	var e models.ScheduledEvent
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.SeasonID, &e.DivisionID, &e.EventType, &e.Date, &e.StartTime, &e.EndTime,
		&e.FieldID, &e.CageID, &e.TeamID, &e.HomeTeamID, &e.AwayTeamID, &e.PairedTeamID,
		&e.Status, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("scheduled event not found")
	}
	return &e, err
}

// InsertBatch writes committed drafts in chunks within a single
// transaction, so a generation run's output lands atomically.
func (r *EventRepository) InsertBatch(ctx context.Context, drafts []*models.ScheduledEvent) error {
	if len(drafts) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for start := 0; start < len(drafts); start += eventBatchSize {
		end := start + eventBatchSize
		if end > len(drafts) {
			end = len(drafts)
		}
		if err := insertEventChunk(ctx, tx, drafts[start:end]); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func insertEventChunk(ctx context.Context, tx *sql.Tx, chunk []*models.ScheduledEvent) error {
	var b strings.Builder
	b.WriteString(`
		INSERT INTO scheduled_events (
			id, season_id, division_id, event_type, date, start_time, end_time,
			field_id, cage_id, team_id, home_team_id, away_team_id, paired_team_id,
			status, notes, created_at, updated_at
		) VALUES
	`)
	args := make([]interface{}, 0, len(chunk)*17)
	for i, e := range chunk {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString("(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
		args = append(args,
			e.ID, e.SeasonID, e.DivisionID, e.EventType, e.Date, e.StartTime, e.EndTime,
			e.FieldID, e.CageID, e.TeamID, e.HomeTeamID, e.AwayTeamID, e.PairedTeamID,
			e.Status, e.Notes, e.CreatedAt, e.UpdatedAt,
		)
	}
	_, err := tx.ExecContext(ctx, b.String(), args...)
	return err
}

// DeleteBulk removes every event matching a filter, used both for
// clear-and-regenerate runs and for ad hoc season cleanup.
func (r *EventRepository) DeleteBulk(ctx context.Context, seasonID, divisionID, startDate, endDate string) error {
	var b strings.Builder
	b.WriteString(`DELETE FROM scheduled_events WHERE season_id = ?`)
	args := []interface{}{seasonID}

	if divisionID != "" {
		b.WriteString(" AND division_id = ?")
		args = append(args, divisionID)
	}
	if startDate != "" {
		b.WriteString(" AND date >= ?")
		args = append(args, startDate)
	}
	if endDate != "" {
		b.WriteString(" AND date <= ?")
		args = append(args, endDate)
	}

	_, err := r.db.ExecContext(ctx, b.String(), args...)
	return err
}

// UpdateStatus transitions a single event's status (e.g. draft -> committed)
func (r *EventRepository) UpdateStatus(ctx context.Context, id string, status models.EventStatus) error {
	query := `UPDATE scheduled_events SET status = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, status, id)
	return err
}
