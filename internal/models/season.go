// internal/models/season.go
// Season and blackout models

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// SeasonStatus represents the current lifecycle state of a season
type SeasonStatus string

const (
	SeasonDraft     SeasonStatus = "draft"
	SeasonPublished SeasonStatus = "published"
	SeasonActive    SeasonStatus = "active"
	SeasonCompleted SeasonStatus = "completed"
)

// Season represents a league season: its date bounds and blackout calendar
type Season struct {
	ID              string         `json:"id" db:"id"`
	OrganizerID     string         `json:"organizer_id" db:"organizer_id"`
	Name            string         `json:"name" db:"name"`
	StartDate       time.Time      `json:"start_date" db:"start_date"`
	EndDate         time.Time      `json:"end_date" db:"end_date"`
	GamesStartDate  time.Time      `json:"games_start_date" db:"games_start_date"`
	Status          SeasonStatus   `json:"status" db:"status"`
	BlackoutDates   BlackoutList   `json:"blackout_dates,omitempty" db:"blackout_dates"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" db:"updated_at"`
}

// EventType enumerates the kinds of scheduled events the generator produces
type EventType string

const (
	EventGame            EventType = "game"
	EventPractice        EventType = "practice"
	EventCage             EventType = "cage"
	EventPairedPractice  EventType = "paired_practice"
)

// Blackout describes a date range (optionally scoped to divisions and event
// types) during which no events of the blocked types may be scheduled.
type Blackout struct {
	StartDate          time.Time   `json:"start_date"`
	EndDate            time.Time   `json:"end_date"`
	DivisionIDs        []string    `json:"division_ids,omitempty"`
	BlockedEventTypes  []EventType `json:"blocked_event_types,omitempty"`
	Reason             string      `json:"reason,omitempty"`
}

// Covers reports whether the blackout applies to the given date, division,
// and event type. An empty DivisionIDs list applies to all divisions; an
// empty BlockedEventTypes list blocks all event types.
func (b Blackout) Covers(date time.Time, divisionID string, eventType EventType) bool {
	if date.Before(b.StartDate) || date.After(b.EndDate) {
		return false
	}
	if len(b.DivisionIDs) > 0 {
		found := false
		for _, id := range b.DivisionIDs {
			if id == divisionID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(b.BlockedEventTypes) > 0 {
		found := false
		for _, et := range b.BlockedEventTypes {
			if et == eventType {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// BlackoutList is a JSON-encodable slice of Blackout, stored as a single
// column following the teacher's FormatConfig/OperationalHours convention.
type BlackoutList []Blackout

func (b *BlackoutList) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into BlackoutList", value)
	}
	return json.Unmarshal(bytes, b)
}

func (b BlackoutList) Value() (driver.Value, error) {
	return json.Marshal(b)
}
