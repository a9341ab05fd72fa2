package scheduling

import (
	"testing"

	"league-scheduler/internal/models"
)

func TestSubtractIntervalMiddleBlackout(t *testing.T) {
	// 09:00-12:00 (540-720) with a 10:00-10:30 (600-630) blackout leaves
	// two sub-windows, both above the 30-minute floor.
	out := subtractInterval(540, 720, 600, 630)
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
	if out[0] != [2]int{540, 600} || out[1] != [2]int{630, 720} {
		t.Fatalf("unexpected sub-windows: %v", out)
	}
}

func TestSubtractIntervalDropsShortRemainder(t *testing.T) {
	// 09:00-10:00 with a blackout from 09:50-09:55 leaves a 5-minute
	// remainder (09:55-10:00) below the 30-minute floor, which must be
	// dropped, while 09:00-09:50 survives.
	out := subtractInterval(540, 600, 590, 595)
	if len(out) != 1 || out[0] != [2]int{540, 590} {
		t.Fatalf("unexpected sub-windows: %v", out)
	}
}

func TestSubtractIntervalNoOverlap(t *testing.T) {
	out := subtractInterval(540, 600, 700, 720)
	if len(out) != 1 || out[0] != [2]int{540, 600} {
		t.Fatalf("non-overlapping blackout should leave window untouched: %v", out)
	}
}

func TestResolveDateAppliesBlackoutOverride(t *testing.T) {
	weekly := []weeklyRule{{DayOfWeek: 1, StartMinutes: 540, EndMinutes: 720}}
	blkStart, blkEnd := 600, 630
	overrides := []dateOverride{{OverrideType: models.OverrideBlackout, StartMinutes: &blkStart, EndMinutes: &blkEnd}}

	windows := resolveDate(weekly, overrides)
	if len(windows) != 2 {
		t.Fatalf("len(windows) = %d, want 2", len(windows))
	}
}

func TestResolveDateFullDayBlackoutClearsAll(t *testing.T) {
	weekly := []weeklyRule{{DayOfWeek: 1, StartMinutes: 540, EndMinutes: 720}}
	overrides := []dateOverride{{OverrideType: models.OverrideBlackout, StartMinutes: nil, EndMinutes: nil}}

	windows := resolveDate(weekly, overrides)
	if len(windows) != 0 {
		t.Fatalf("full-day blackout should clear all windows, got %v", windows)
	}
}

func TestResolveDateIgnoresAddedOverrideWithNullTimes(t *testing.T) {
	var weekly []weeklyRule
	overrides := []dateOverride{{OverrideType: models.OverrideAdded, StartMinutes: nil, EndMinutes: nil}}

	windows := resolveDate(weekly, overrides)
	if len(windows) != 0 {
		t.Fatalf("an added override with null times must be ignored, got %v", windows)
	}
}

func TestResolveDateAppliesAddedOverride(t *testing.T) {
	var weekly []weeklyRule
	start, end := 540, 600
	overrides := []dateOverride{{OverrideType: models.OverrideAdded, StartMinutes: &start, EndMinutes: &end}}

	windows := resolveDate(weekly, overrides)
	if len(windows) != 1 || windows[0].StartMinutes != 540 || windows[0].EndMinutes != 600 {
		t.Fatalf("unexpected windows after added override: %v", windows)
	}
}

func TestBlackoutCheckerCoversSeasonWideBlackout(t *testing.T) {
	start, _ := ParseDate("2026-04-01")
	end, _ := ParseDate("2026-04-07")
	season := &models.Season{
		BlackoutDates: models.BlackoutList{
			{StartDate: start, EndDate: end, Reason: "spring break"},
		},
	}
	checker := NewBlackoutChecker(season, "div-1")
	mid, _ := ParseDate("2026-04-03")
	if !checker.Covers(mid, models.EventGame) {
		t.Fatal("expected season-wide blackout to cover division and event type")
	}
	outside, _ := ParseDate("2026-04-10")
	if checker.Covers(outside, models.EventGame) {
		t.Fatal("blackout should not cover a date outside its range")
	}
}

func TestBlackoutCheckerScopedToDivision(t *testing.T) {
	start, _ := ParseDate("2026-04-01")
	end, _ := ParseDate("2026-04-07")
	season := &models.Season{
		BlackoutDates: models.BlackoutList{
			{StartDate: start, EndDate: end, DivisionIDs: []string{"div-2"}},
		},
	}
	checker := NewBlackoutChecker(season, "div-1")
	mid, _ := ParseDate("2026-04-03")
	if checker.Covers(mid, models.EventGame) {
		t.Fatal("blackout scoped to div-2 should not cover div-1")
	}
}

func TestFieldAvailabilityIndexResolve(t *testing.T) {
	seasonFields := []*models.SeasonField{{ID: "sf1", SeasonID: "s1", FieldID: "f1"}}
	avail := []*models.FieldAvailability{
		{SeasonFieldID: "sf1", DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
	}
	idx := BuildFieldAvailabilityIndex(seasonFields, avail, nil)

	monday, _ := ParseDate("2026-03-02")
	windows := idx.Resolve("sf1", monday)
	if len(windows) != 1 || windows[0].StartMinutes != 540 || windows[0].EndMinutes != 720 {
		t.Fatalf("unexpected resolved windows: %v", windows)
	}

	tuesday, _ := ParseDate("2026-03-03")
	if windows := idx.Resolve("sf1", tuesday); len(windows) != 0 {
		t.Fatalf("expected no windows on a day with no weekly rule, got %v", windows)
	}
}
