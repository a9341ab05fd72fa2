// internal/models/venue.go
// Field and cage resource models: global catalog, season bindings,
// recurring availability, and date-specific overrides.

package models

import "time"

// ResourceType distinguishes the two bookable resource kinds.
type ResourceType string

const (
	ResourceField ResourceType = "field"
	ResourceCage  ResourceType = "cage"
)

// Field is a global, season-independent ballfield. DivisionCompatibility
// restricts which divisions may use it; an empty list means all divisions
// may.
type Field struct {
	ID                   string     `json:"id" db:"id"`
	Name                 string     `json:"name" db:"name"`
	DivisionCompatibility StringList `json:"division_compatibility,omitempty" db:"division_compatibility"`
}

// Cage is a global, season-independent batting cage. Same compatibility
// semantics as Field.
type Cage struct {
	ID                   string     `json:"id" db:"id"`
	Name                 string     `json:"name" db:"name"`
	DivisionCompatibility StringList `json:"division_compatibility,omitempty" db:"division_compatibility"`
}

// SeasonField binds a global Field into a specific season so that
// availability rules can be attached to it.
type SeasonField struct {
	ID       string `json:"id" db:"id"`
	SeasonID string `json:"season_id" db:"season_id"`
	FieldID  string `json:"field_id" db:"field_id"`
}

// SeasonCage binds a global Cage into a specific season.
type SeasonCage struct {
	ID       string `json:"id" db:"id"`
	SeasonID string `json:"season_id" db:"season_id"`
	CageID   string `json:"cage_id" db:"cage_id"`
}

// FieldAvailability is a recurring weekly open window on a season field.
// SingleEventOnly restricts the window to hosting at most one event
// regardless of duration (used for fields that can only host one game per
// window even if the window is long enough for two).
type FieldAvailability struct {
	ID              string    `json:"id" db:"id"`
	SeasonFieldID   string    `json:"season_field_id" db:"season_field_id"`
	DayOfWeek       int       `json:"day_of_week" db:"day_of_week"`
	StartTime       string    `json:"start_time" db:"start_time"` // HH:MM
	EndTime         string    `json:"end_time" db:"end_time"`     // HH:MM
	SingleEventOnly bool      `json:"single_event_only" db:"single_event_only"`
}

// CageAvailability is the cage equivalent of FieldAvailability.
type CageAvailability struct {
	ID              string `json:"id" db:"id"`
	SeasonCageID    string `json:"season_cage_id" db:"season_cage_id"`
	DayOfWeek       int    `json:"day_of_week" db:"day_of_week"`
	StartTime       string `json:"start_time" db:"start_time"`
	EndTime         string `json:"end_time" db:"end_time"`
	SingleEventOnly bool   `json:"single_event_only" db:"single_event_only"`
}

// OverrideType distinguishes a one-off blackout from a one-off addition to
// the recurring availability.
type OverrideType string

const (
	OverrideBlackout OverrideType = "blackout"
	OverrideAdded    OverrideType = "added"
)

// FieldDateOverride is a one-off exception to the recurring weekly
// availability for a season field on a specific date. A blackout override
// with nil StartTime/EndTime blacks out the whole day; an added override
// with a nil StartTime or EndTime adds no window.
type FieldDateOverride struct {
	ID              string       `json:"id" db:"id"`
	SeasonFieldID   string       `json:"season_field_id" db:"season_field_id"`
	Date            time.Time    `json:"date" db:"date"`
	OverrideType    OverrideType `json:"override_type" db:"override_type"`
	StartTime       *string      `json:"start_time,omitempty" db:"start_time"`
	EndTime         *string      `json:"end_time,omitempty" db:"end_time"`
	SingleEventOnly bool         `json:"single_event_only" db:"single_event_only"`
}

// CageDateOverride is the cage equivalent of FieldDateOverride.
type CageDateOverride struct {
	ID              string       `json:"id" db:"id"`
	SeasonCageID    string       `json:"season_cage_id" db:"season_cage_id"`
	Date            time.Time    `json:"date" db:"date"`
	OverrideType    OverrideType `json:"override_type" db:"override_type"`
	StartTime       *string      `json:"start_time,omitempty" db:"start_time"`
	EndTime         *string      `json:"end_time,omitempty" db:"end_time"`
	SingleEventOnly bool         `json:"single_event_only" db:"single_event_only"`
}
