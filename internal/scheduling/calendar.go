// internal/scheduling/calendar.go
// Time & calendar utilities (C1): date/time string parsing, local-noon
// day-of-week resolution, and Monday-Sunday week enumeration.

package scheduling

import (
	"fmt"
	"time"

	"league-scheduler/internal/models"
)

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a local-noon wall-clock
// instant, avoiding the timezone slippage a midnight instant can suffer
// when crossing a DST boundary and shifting day-of-week by one.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrMalformedInput, s, err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.Local), nil
}

// FormatDate renders a date instant back to YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// DayOfWeek returns 0=Sunday..6=Saturday for a local-noon date instant.
func DayOfWeek(t time.Time) int {
	return int(t.Weekday())
}

// TimeToMinutes parses "HH:MM" into minutes since midnight.
func TimeToMinutes(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedInput, s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q out of range", ErrMalformedInput, s)
	}
	return h*60 + m, nil
}

// MinutesToTime renders minutes since midnight back to "HH:MM".
func MinutesToTime(mins int) string {
	h := mins / 60
	m := mins % 60
	return fmt.Sprintf("%02d:%02d", h, m)
}

// DaysBetween returns the rounded absolute day distance between a and b.
func DaysBetween(a, b time.Time) int {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return int((d + 12*time.Hour) / (24 * time.Hour))
}

// mondayOf rewinds t to the Monday of its week (Sunday rewinds 6 days).
func mondayOf(t time.Time) time.Time {
	wd := int(t.Weekday())
	offset := (wd + 6) % 7 // Monday=0 .. Sunday=6
	return t.AddDate(0, 0, -offset)
}

// EnumerateWeeks rewinds start to its Monday, then yields consecutive
// 7-day windows until past end. Each week lists only the dates that fall
// within [start,end].
func EnumerateWeeks(start, end time.Time) []models.WeekDefinition {
	var weeks []models.WeekDefinition
	monday := mondayOf(start)
	weekNumber := 0
	for !monday.After(end) {
		sunday := monday.AddDate(0, 0, 6)
		var dates []time.Time
		for d := monday; !d.After(sunday); d = d.AddDate(0, 0, 1) {
			if d.Before(start) || d.After(end) {
				continue
			}
			dates = append(dates, d)
		}
		weeks = append(weeks, models.WeekDefinition{
			WeekNumber: weekNumber,
			Monday:     monday,
			Sunday:     sunday,
			Dates:      dates,
		})
		weekNumber++
		monday = monday.AddDate(0, 0, 7)
	}
	return weeks
}

// WeekNumberFor returns the weekNumber of the WeekDefinition containing
// date d, or -1 if none contains it.
func WeekNumberFor(weeks []models.WeekDefinition, d time.Time) int {
	for _, w := range weeks {
		if d.Before(w.Monday) || d.After(w.Sunday) {
			continue
		}
		return w.WeekNumber
	}
	return -1
}
