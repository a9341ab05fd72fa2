// internal/scheduling/conflictindex.go
// Conflict index (C7): maintains (date, resourceId) -> events and
// per-team per-category date sets for O(1) conflict checks and fast
// scoring lookups.

package scheduling

import (
	"sort"
	"time"

	"league-scheduler/internal/models"
)

type dateResourceKey struct {
	date       string
	resourceID string
}

// ConflictIndex is owned exclusively by one generator run; different runs
// never share an instance.
type ConflictIndex struct {
	eventsByDateResource map[dateResourceKey][]*models.ScheduledEvent
	teamFieldDates       map[string]map[string]bool
	teamCageDates        map[string]map[string]bool
	teamGameDates        map[string][]time.Time
	teamEventsByDate     map[string]map[string][]*models.ScheduledEvent
}

func NewConflictIndex() *ConflictIndex {
	return &ConflictIndex{
		eventsByDateResource: make(map[dateResourceKey][]*models.ScheduledEvent),
		teamFieldDates:       make(map[string]map[string]bool),
		teamCageDates:        make(map[string]map[string]bool),
		teamGameDates:        make(map[string][]time.Time),
		teamEventsByDate:     make(map[string]map[string][]*models.ScheduledEvent),
	}
}

// SeedExisting loads pre-committed events as immutable constraints before
// the draft loop starts.
func (c *ConflictIndex) SeedExisting(events []*models.ScheduledEvent) {
	for _, e := range events {
		c.record(e)
	}
}

func teamsOf(e *models.ScheduledEvent) []string {
	var teams []string
	if e.TeamID != nil {
		teams = append(teams, *e.TeamID)
	}
	if e.HomeTeamID != nil {
		teams = append(teams, *e.HomeTeamID)
	}
	if e.AwayTeamID != nil {
		teams = append(teams, *e.AwayTeamID)
	}
	if e.PairedTeamID != nil {
		teams = append(teams, *e.PairedTeamID)
	}
	return teams
}

func (c *ConflictIndex) record(e *models.ScheduledEvent) {
	dateStr := FormatDate(e.Date)
	if e.FieldID != nil {
		key := dateResourceKey{dateStr, *e.FieldID}
		c.eventsByDateResource[key] = append(c.eventsByDateResource[key], e)
	}
	if e.CageID != nil {
		key := dateResourceKey{dateStr, *e.CageID}
		c.eventsByDateResource[key] = append(c.eventsByDateResource[key], e)
	}

	isFieldCategory := e.FieldID != nil
	isCageCategory := e.CageID != nil

	for _, t := range teamsOf(e) {
		if isFieldCategory {
			if c.teamFieldDates[t] == nil {
				c.teamFieldDates[t] = make(map[string]bool)
			}
			c.teamFieldDates[t][dateStr] = true
		}
		if isCageCategory {
			if c.teamCageDates[t] == nil {
				c.teamCageDates[t] = make(map[string]bool)
			}
			c.teamCageDates[t][dateStr] = true
		}
		if e.EventType == models.EventGame {
			c.teamGameDates[t] = insertSortedDate(c.teamGameDates[t], e.Date)
		}
		if c.teamEventsByDate[t] == nil {
			c.teamEventsByDate[t] = make(map[string][]*models.ScheduledEvent)
		}
		c.teamEventsByDate[t][dateStr] = append(c.teamEventsByDate[t][dateStr], e)
	}
}

// TeamEventsOnDate returns every event already committed for teamID on
// date, across all resource categories.
func (c *ConflictIndex) TeamEventsOnDate(teamID string, date time.Time) []*models.ScheduledEvent {
	return c.teamEventsByDate[teamID][FormatDate(date)]
}

func insertSortedDate(dates []time.Time, d time.Time) []time.Time {
	i := sort.Search(len(dates), func(i int) bool { return !dates[i].Before(d) })
	dates = append(dates, time.Time{})
	copy(dates[i+1:], dates[i:])
	dates[i] = d
	return dates
}

// Commit records a newly placed draft event and updates all indexes
// synchronously before the next candidate is scored.
func (c *ConflictIndex) Commit(e *models.ScheduledEvent) {
	c.record(e)
}

// uncommit removes a previously committed event from every index bucket.
// Used by the short-rest rebalancer to pull two events out before
// re-recording them at swapped dates.
func (c *ConflictIndex) uncommit(e *models.ScheduledEvent) {
	dateStr := FormatDate(e.Date)
	if e.FieldID != nil {
		key := dateResourceKey{dateStr, *e.FieldID}
		c.eventsByDateResource[key] = removeEventPtr(c.eventsByDateResource[key], e)
	}
	if e.CageID != nil {
		key := dateResourceKey{dateStr, *e.CageID}
		c.eventsByDateResource[key] = removeEventPtr(c.eventsByDateResource[key], e)
	}

	isFieldCategory := e.FieldID != nil
	isCageCategory := e.CageID != nil

	for _, t := range teamsOf(e) {
		if isFieldCategory {
			delete(c.teamFieldDates[t], dateStr)
		}
		if isCageCategory {
			delete(c.teamCageDates[t], dateStr)
		}
		if e.EventType == models.EventGame {
			c.teamGameDates[t] = removeDate(c.teamGameDates[t], e.Date)
		}
		c.teamEventsByDate[t][dateStr] = removeEventPtr(c.teamEventsByDate[t][dateStr], e)
	}
}

// SwapDates exchanges the calendar dates of two already-committed events,
// keeping each event's own resource, time of day, and participants
// unchanged, and keeps every index bucket consistent with the swap.
func (c *ConflictIndex) SwapDates(a, b *models.ScheduledEvent) {
	c.uncommit(a)
	c.uncommit(b)
	a.Date, b.Date = b.Date, a.Date
	c.record(a)
	c.record(b)
}

func removeEventPtr(list []*models.ScheduledEvent, target *models.ScheduledEvent) []*models.ScheduledEvent {
	out := list[:0]
	for _, e := range list {
		if e != target {
			out = append(out, e)
		}
	}
	return out
}

func removeDate(dates []time.Time, target time.Time) []time.Time {
	for i, d := range dates {
		if d.Equal(target) {
			return append(dates[:i], dates[i+1:]...)
		}
	}
	return dates
}

// overlaps reports whether [s1,e1) and [s2,e2) (minutes since midnight)
// intersect.
func overlaps(s1, e1, s2, e2 int) bool {
	return s1 < e2 && s2 < e1
}

// EventsOn returns every event already committed on (resourceID, date).
func (c *ConflictIndex) EventsOn(resourceID string, date time.Time) []*models.ScheduledEvent {
	return c.eventsByDateResource[dateResourceKey{FormatDate(date), resourceID}]
}

// HasResourceOverlap reports whether [startMin,endMin) conflicts with any
// event already committed on (resourceID, date).
func (c *ConflictIndex) HasResourceOverlap(resourceID string, date time.Time, startMin, endMin int) bool {
	for _, e := range c.EventsOn(resourceID, date) {
		s, _ := TimeToMinutes(e.StartTime)
		en, _ := TimeToMinutes(e.EndTime)
		if overlaps(s, en, startMin, endMin) {
			return true
		}
	}
	return false
}

// IsOccupied reports whether any event already sits on (resourceID, date),
// used to enforce singleEventOnly slots regardless of time overlap.
func (c *ConflictIndex) IsOccupied(resourceID string, date time.Time) bool {
	return len(c.EventsOn(resourceID, date)) > 0
}

// TeamHasFieldEvent reports whether teamID already has a field-category
// event on date.
func (c *ConflictIndex) TeamHasFieldEvent(teamID string, date time.Time) bool {
	return c.teamFieldDates[teamID][FormatDate(date)]
}

// TeamHasCageEvent reports whether teamID already has a cage event on
// date.
func (c *ConflictIndex) TeamHasCageEvent(teamID string, date time.Time) bool {
	return c.teamCageDates[teamID][FormatDate(date)]
}

// TeamGameDates returns teamID's sorted game dates.
func (c *ConflictIndex) TeamGameDates(teamID string) []time.Time {
	return c.teamGameDates[teamID]
}
