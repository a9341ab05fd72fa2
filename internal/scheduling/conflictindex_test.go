package scheduling

import (
	"testing"

	"league-scheduler/internal/models"
)

func TestConflictIndexDetectsResourceOverlap(t *testing.T) {
	idx := NewConflictIndex()
	date, _ := ParseDate("2026-03-02")
	fieldID := "field-1"
	idx.Commit(&models.ScheduledEvent{
		EventType: models.EventGame, Date: date,
		StartTime: "10:00", EndTime: "11:30", FieldID: &fieldID,
	})

	if !idx.HasResourceOverlap(fieldID, date, 660, 750) { // 11:00-12:30 overlaps 10:00-11:30
		t.Fatal("expected overlap to be detected")
	}
	if idx.HasResourceOverlap(fieldID, date, 690, 750) { // 11:30-12:30 does not overlap
		t.Fatal("adjacent, non-overlapping window should not be flagged")
	}
}

func TestConflictIndexTracksTeamCategoriesSeparately(t *testing.T) {
	idx := NewConflictIndex()
	date, _ := ParseDate("2026-03-02")
	team := "team-a"
	fieldID := "field-1"
	idx.Commit(&models.ScheduledEvent{
		EventType: models.EventPractice, Date: date,
		StartTime: "09:00", EndTime: "10:00", FieldID: &fieldID, TeamID: &team,
	})

	if !idx.TeamHasFieldEvent(team, date) {
		t.Fatal("expected field-category event to be recorded")
	}
	if idx.TeamHasCageEvent(team, date) {
		t.Fatal("a field event must not register as a cage event")
	}
}

func TestConflictIndexTeamGameDatesSorted(t *testing.T) {
	idx := NewConflictIndex()
	team := "team-a"
	d1, _ := ParseDate("2026-03-09")
	d2, _ := ParseDate("2026-03-02")
	fieldID := "field-1"
	idx.Commit(&models.ScheduledEvent{EventType: models.EventGame, Date: d1, StartTime: "10:00", EndTime: "11:00", FieldID: &fieldID, HomeTeamID: &team})
	idx.Commit(&models.ScheduledEvent{EventType: models.EventGame, Date: d2, StartTime: "10:00", EndTime: "11:00", FieldID: &fieldID, HomeTeamID: &team})

	dates := idx.TeamGameDates(team)
	if len(dates) != 2 || dates[0].After(dates[1]) {
		t.Fatalf("expected sorted game dates, got %v", dates)
	}
}

func TestConflictIndexIsOccupiedIgnoresTimeForSingleEventSlots(t *testing.T) {
	idx := NewConflictIndex()
	date, _ := ParseDate("2026-03-02")
	fieldID := "field-1"
	idx.Commit(&models.ScheduledEvent{EventType: models.EventGame, Date: date, StartTime: "09:00", EndTime: "10:00", FieldID: &fieldID})

	if !idx.IsOccupied(fieldID, date) {
		t.Fatal("expected resource to be reported occupied regardless of specific time queried")
	}
}
