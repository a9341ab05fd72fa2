// internal/repositories/venue_repository.go
// Field and cage resource data access: the global catalog, season
// bindings, recurring weekly availability, and date-specific overrides.

package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"league-scheduler/internal/models"
)

// VenueRepository handles field and cage data access
type VenueRepository struct {
	db *sql.DB
}

// NewVenueRepository creates a new venue repository
func NewVenueRepository(db *sql.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

// CreateField inserts a new field into the global catalog
func (r *VenueRepository) CreateField(ctx context.Context, field *models.Field) error {
	query := `INSERT INTO fields (id, name, division_compatibility) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, field.ID, field.Name, field.DivisionCompatibility)
	return err
}

// CreateCage inserts a new cage into the global catalog
func (r *VenueRepository) CreateCage(ctx context.Context, cage *models.Cage) error {
	query := `INSERT INTO cages (id, name, division_compatibility) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, cage.ID, cage.Name, cage.DivisionCompatibility)
	return err
}

// GetFieldsByIDs retrieves fields by ID, in the order MySQL returns them
func (r *VenueRepository) GetFieldsByIDs(ctx context.Context, ids []string) ([]*models.Field, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}
	query := fmt.Sprintf(`SELECT id, name, division_compatibility FROM fields WHERE id IN (%s)`, strings.Join(placeholders, ","))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fields := make([]*models.Field, 0, len(ids))
	for rows.Next() {
		var f models.Field
		if err := rows.Scan(&f.ID, &f.Name, &f.DivisionCompatibility); err != nil {
			return nil, err
		}
		fields = append(fields, &f)
	}
	return fields, nil
}

// GetCagesByIDs retrieves cages by ID
func (r *VenueRepository) GetCagesByIDs(ctx context.Context, ids []string) ([]*models.Cage, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}
	query := fmt.Sprintf(`SELECT id, name, division_compatibility FROM cages WHERE id IN (%s)`, strings.Join(placeholders, ","))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cages := make([]*models.Cage, 0, len(ids))
	for rows.Next() {
		var c models.Cage
		if err := rows.Scan(&c.ID, &c.Name, &c.DivisionCompatibility); err != nil {
			return nil, err
		}
		cages = append(cages, &c)
	}
	return cages, nil
}

// CreateSeasonField binds a field into a season
func (r *VenueRepository) CreateSeasonField(ctx context.Context, sf *models.SeasonField) error {
	query := `INSERT INTO season_fields (id, season_id, field_id) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, sf.ID, sf.SeasonID, sf.FieldID)
	return err
}

// CreateSeasonCage binds a cage into a season
func (r *VenueRepository) CreateSeasonCage(ctx context.Context, sc *models.SeasonCage) error {
	query := `INSERT INTO season_cages (id, season_id, cage_id) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, sc.ID, sc.SeasonID, sc.CageID)
	return err
}

// ListSeasonFields retrieves every field bound into a season
func (r *VenueRepository) ListSeasonFields(ctx context.Context, seasonID string) ([]*models.SeasonField, error) {
	query := `SELECT id, season_id, field_id FROM season_fields WHERE season_id = ?`

	rows, err := r.db.QueryContext(ctx, query, seasonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*models.SeasonField, 0)
	for rows.Next() {
		var sf models.SeasonField
		if err := rows.Scan(&sf.ID, &sf.SeasonID, &sf.FieldID); err != nil {
			return nil, err
		}
		out = append(out, &sf)
	}
	return out, nil
}

// ListSeasonCages retrieves every cage bound into a season
func (r *VenueRepository) ListSeasonCages(ctx context.Context, seasonID string) ([]*models.SeasonCage, error) {
	query := `SELECT id, season_id, cage_id FROM season_cages WHERE season_id = ?`

	rows, err := r.db.QueryContext(ctx, query, seasonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*models.SeasonCage, 0)
	for rows.Next() {
		var sc models.SeasonCage
		if err := rows.Scan(&sc.ID, &sc.SeasonID, &sc.CageID); err != nil {
			return nil, err
		}
		out = append(out, &sc)
	}
	return out, nil
}

// CreateFieldAvailability inserts a recurring weekly availability rule
func (r *VenueRepository) CreateFieldAvailability(ctx context.Context, a *models.FieldAvailability) error {
	query := `
		INSERT INTO field_availabilities (id, season_field_id, day_of_week, start_time, end_time, single_event_only)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query, a.ID, a.SeasonFieldID, a.DayOfWeek, a.StartTime, a.EndTime, a.SingleEventOnly)
	return err
}

// CreateCageAvailability inserts a recurring weekly availability rule
func (r *VenueRepository) CreateCageAvailability(ctx context.Context, a *models.CageAvailability) error {
	query := `
		INSERT INTO cage_availabilities (id, season_cage_id, day_of_week, start_time, end_time, single_event_only)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query, a.ID, a.SeasonCageID, a.DayOfWeek, a.StartTime, a.EndTime, a.SingleEventOnly)
	return err
}

// ListFieldAvailabilitiesForSeason retrieves every weekly rule for every
// field bound into the season, via a join on season_fields
func (r *VenueRepository) ListFieldAvailabilitiesForSeason(ctx context.Context, seasonID string) ([]*models.FieldAvailability, error) {
	query := `
		SELECT fa.id, fa.season_field_id, fa.day_of_week, fa.start_time, fa.end_time, fa.single_event_only
		FROM field_availabilities fa
		JOIN season_fields sf ON sf.id = fa.season_field_id
		WHERE sf.season_id = ?
	`

	rows, err := r.db.QueryContext(ctx, query, seasonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*models.FieldAvailability, 0)
	for rows.Next() {
		var a models.FieldAvailability
		if err := rows.Scan(&a.ID, &a.SeasonFieldID, &a.DayOfWeek, &a.StartTime, &a.EndTime, &a.SingleEventOnly); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, nil
}

// ListCageAvailabilitiesForSeason retrieves every weekly rule for every
// cage bound into the season
func (r *VenueRepository) ListCageAvailabilitiesForSeason(ctx context.Context, seasonID string) ([]*models.CageAvailability, error) {
	query := `
		SELECT ca.id, ca.season_cage_id, ca.day_of_week, ca.start_time, ca.end_time, ca.single_event_only
		FROM cage_availabilities ca
		JOIN season_cages sc ON sc.id = ca.season_cage_id
		WHERE sc.season_id = ?
	`

	rows, err := r.db.QueryContext(ctx, query, seasonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*models.CageAvailability, 0)
	for rows.Next() {
		var a models.CageAvailability
		if err := rows.Scan(&a.ID, &a.SeasonCageID, &a.DayOfWeek, &a.StartTime, &a.EndTime, &a.SingleEventOnly); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, nil
}

// CreateFieldDateOverride inserts a one-off exception for a season field
func (r *VenueRepository) CreateFieldDateOverride(ctx context.Context, o *models.FieldDateOverride) error {
	query := `
		INSERT INTO field_date_overrides (id, season_field_id, date, override_type, start_time, end_time, single_event_only)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query, o.ID, o.SeasonFieldID, o.Date, o.OverrideType, o.StartTime, o.EndTime, o.SingleEventOnly)
	return err
}

// CreateCageDateOverride inserts a one-off exception for a season cage
func (r *VenueRepository) CreateCageDateOverride(ctx context.Context, o *models.CageDateOverride) error {
	query := `
		INSERT INTO cage_date_overrides (id, season_cage_id, date, override_type, start_time, end_time, single_event_only)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query, o.ID, o.SeasonCageID, o.Date, o.OverrideType, o.StartTime, o.EndTime, o.SingleEventOnly)
	return err
}

// ListFieldDateOverridesForSeason retrieves every date override for every
// field bound into the season
func (r *VenueRepository) ListFieldDateOverridesForSeason(ctx context.Context, seasonID string) ([]*models.FieldDateOverride, error) {
	query := `
		SELECT fo.id, fo.season_field_id, fo.date, fo.override_type, fo.start_time, fo.end_time, fo.single_event_only
		FROM field_date_overrides fo
		JOIN season_fields sf ON sf.id = fo.season_field_id
		WHERE sf.season_id = ?
	`

	rows, err := r.db.QueryContext(ctx, query, seasonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*models.FieldDateOverride, 0)
	for rows.Next() {
		var o models.FieldDateOverride
		if err := rows.Scan(&o.ID, &o.SeasonFieldID, &o.Date, &o.OverrideType, &o.StartTime, &o.EndTime, &o.SingleEventOnly); err != nil {
			return nil, err
		}
		out = append(out, &o)
	}
	return out, nil
}

// ListCageDateOverridesForSeason retrieves every date override for every
// cage bound into the season
func (r *VenueRepository) ListCageDateOverridesForSeason(ctx context.Context, seasonID string) ([]*models.CageDateOverride, error) {
	query := `
		SELECT co.id, co.season_cage_id, co.date, co.override_type, co.start_time, co.end_time, co.single_event_only
		FROM cage_date_overrides co
		JOIN season_cages sc ON sc.id = co.season_cage_id
		WHERE sc.season_id = ?
	`

	rows, err := r.db.QueryContext(ctx, query, seasonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*models.CageDateOverride, 0)
	for rows.Next() {
		var o models.CageDateOverride
		if err := rows.Scan(&o.ID, &o.SeasonCageID, &o.Date, &o.OverrideType, &o.StartTime, &o.EndTime, &o.SingleEventOnly); err != nil {
			return nil, err
		}
		out = append(out, &o)
	}
	return out, nil
}
