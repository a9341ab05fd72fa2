// internal/scheduling/paired_practice.go
// Paired-practice builder (C9): optional Sunday pairings that occupy both
// a field half and a cage half simultaneously.

package scheduling

import (
	"sort"
	"time"

	"league-scheduler/internal/models"
)

// TeamPair is one Sunday paired-practice partnership.
type TeamPair struct {
	TeamA string
	TeamB string
}

// GenerateTeamPairingsForWeek rotates partners via the circle method keyed
// by week number, so partners change every week. Teams are rounded down
// to even; the leftover team (if n is odd) sits out that week.
func GenerateTeamPairingsForWeek(teamIDs []string, weekNumber int) []TeamPair {
	n := len(teamIDs)
	if n < 2 {
		return nil
	}
	sorted := make([]string, n)
	copy(sorted, teamIDs)
	sort.Strings(sorted)

	if n%2 != 0 {
		sorted = sorted[:n-1]
		n--
	}

	arr := sorted
	for i := 0; i < weekNumber%n; i++ {
		arr = rotateCircle(arr)
	}

	var pairs []TeamPair
	for i := 0; i < n/2; i++ {
		pairs = append(pairs, TeamPair{TeamA: arr[i], TeamB: arr[n-1-i]})
	}
	return pairs
}

// findPairedSlot looks for a Sunday date among weekDates with both a
// compatible field and a compatible cage simultaneously open for
// duration, honoring the conflict index. It returns the first match in
// (date, field, cage) sorted order for determinism.
func findPairedSlot(
	di *divisionInputs,
	idx *ConflictIndex,
	weekDates []time.Time,
	fieldID, cageID string,
	durationMin int,
) (time.Time, int, bool) {
	for _, d := range weekDates {
		if DayOfWeek(d) != 0 {
			continue
		}
		fieldSlots := di.FieldSlots[FormatDate(d)]
		cageSlots := di.CageSlots[FormatDate(d)]

		var fieldWindow, cageWindow *models.ResourceSlot
		for i := range fieldSlots {
			if fieldSlots[i].ResourceID == fieldID {
				fieldWindow = &fieldSlots[i]
				break
			}
		}
		for i := range cageSlots {
			if cageSlots[i].ResourceID == cageID {
				cageWindow = &cageSlots[i]
				break
			}
		}
		if fieldWindow == nil || cageWindow == nil {
			continue
		}

		fStart, _ := TimeToMinutes(fieldWindow.StartTime)
		cStart, _ := TimeToMinutes(cageWindow.StartTime)
		start := fStart
		if cStart > start {
			start = cStart
		}
		end := start + durationMin
		fEnd := fStart + fieldWindow.DurationMinutes
		cEnd := cStart + cageWindow.DurationMinutes
		if end > fEnd || end > cEnd {
			continue
		}
		if fieldWindow.SingleEventOnly && idx.IsOccupied(fieldID, d) {
			continue
		}
		if cageWindow.SingleEventOnly && idx.IsOccupied(cageID, d) {
			continue
		}
		if idx.HasResourceOverlap(fieldID, d, start, end) || idx.HasResourceOverlap(cageID, d, start, end) {
			continue
		}
		return d, start, true
	}
	return time.Time{}, 0, false
}

// commitPairedPractice commits a single paired_practice draft that
// occupies both resources and counts as both a practice and a cage
// session for both teams.
func commitPairedPractice(idx *ConflictIndex, states map[string]*models.TeamSchedulingState, seasonID, divisionID string, date time.Time, start, durationMin int, fieldID, cageID string, pair TeamPair, weekNumber int) *models.Draft {
	end := start + durationMin
	fID, cID := fieldID, cageID
	teamA, teamB := pair.TeamA, pair.TeamB
	d := &models.Draft{
		SeasonID:     seasonID,
		DivisionID:   divisionID,
		EventType:    models.EventPairedPractice,
		Date:         date,
		StartTime:    MinutesToTime(start),
		EndTime:      MinutesToTime(end),
		FieldID:      &fID,
		CageID:       &cID,
		TeamID:       &teamA,
		PairedTeamID: &teamB,
		Status:       models.EventStatusDraft,
	}
	idx.Commit(d)

	cand := Candidate{EventType: models.EventPairedPractice, Date: date, WeekNumber: weekNumber}
	updateStateForEvent(states[teamA], cand)
	updateStateForEvent(states[teamB], cand)
	return d
}
