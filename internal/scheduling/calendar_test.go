package scheduling

import (
	"testing"
	"time"
)

func TestParseDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2026-03-02")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	if got := FormatDate(d); got != "2026-03-02" {
		t.Fatalf("FormatDate = %q, want %q", got, "2026-03-02")
	}
	if DayOfWeek(d) != 1 {
		t.Fatalf("DayOfWeek = %d, want 1 (Monday)", DayOfWeek(d))
	}
}

func TestParseDateRejectsMalformed(t *testing.T) {
	if _, err := ParseDate("not-a-date"); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestTimeToMinutesAndBack(t *testing.T) {
	mins, err := TimeToMinutes("14:30")
	if err != nil {
		t.Fatalf("TimeToMinutes returned error: %v", err)
	}
	if mins != 870 {
		t.Fatalf("TimeToMinutes = %d, want 870", mins)
	}
	if got := MinutesToTime(mins); got != "14:30" {
		t.Fatalf("MinutesToTime = %q, want %q", got, "14:30")
	}
}

func TestTimeToMinutesRejectsOutOfRange(t *testing.T) {
	if _, err := TimeToMinutes("25:00"); err == nil {
		t.Fatal("expected error for out-of-range hour")
	}
}

func TestEnumerateWeeksSpansPartialFirstWeek(t *testing.T) {
	start, _ := ParseDate("2026-03-04") // Wednesday
	end, _ := ParseDate("2026-03-15")   // second Sunday
	weeks := EnumerateWeeks(start, end)
	if len(weeks) != 2 {
		t.Fatalf("len(weeks) = %d, want 2", len(weeks))
	}
	if len(weeks[0].Dates) != 5 {
		t.Fatalf("first week should clip to [start,sunday]: got %d dates, want 5", len(weeks[0].Dates))
	}
	if len(weeks[1].Dates) != 7 {
		t.Fatalf("second week should be full: got %d dates, want 7", len(weeks[1].Dates))
	}
	for _, d := range weeks[0].Dates {
		if d.Before(start) {
			t.Fatalf("week 0 contains date before start: %v", d)
		}
	}
}

func TestWeekNumberFor(t *testing.T) {
	start, _ := ParseDate("2026-03-02")
	end, _ := ParseDate("2026-03-22")
	weeks := EnumerateWeeks(start, end)
	mid, _ := ParseDate("2026-03-10")
	if wn := WeekNumberFor(weeks, mid); wn != 1 {
		t.Fatalf("WeekNumberFor = %d, want 1", wn)
	}
	outside := mid.AddDate(1, 0, 0)
	if wn := WeekNumberFor(weeks, outside); wn != -1 {
		t.Fatalf("WeekNumberFor(outside) = %d, want -1", wn)
	}
}

func TestDaysBetween(t *testing.T) {
	a, _ := ParseDate("2026-03-01")
	b, _ := ParseDate("2026-03-08")
	if got := DaysBetween(a, b); got != 7 {
		t.Fatalf("DaysBetween = %d, want 7", got)
	}
	if got := DaysBetween(b, a); got != 7 {
		t.Fatalf("DaysBetween should be symmetric, got %d", got)
	}
}

func TestMondayOfHandlesSunday(t *testing.T) {
	sun, _ := ParseDate("2026-03-08") // Sunday
	mon := mondayOf(sun)
	if DayOfWeek(mon) != 1 {
		t.Fatalf("mondayOf(sunday) did not land on Monday: %v", mon)
	}
	if !mon.Before(sun) || sun.Sub(mon) > 7*24*time.Hour {
		t.Fatalf("mondayOf(sunday) out of range: %v vs %v", mon, sun)
	}
}
