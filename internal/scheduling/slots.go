// internal/scheduling/slots.go
// Slot generator (C3): turns resolved availability windows into discrete
// ResourceSlots per (resource, date), gated by season/division blackouts.

package scheduling

import (
	"time"

	"league-scheduler/internal/models"
)

// GenerateFieldSlots produces one ResourceSlot per open window for every
// seasonField across the given dates, for the given event type. Dates
// fully blacked out by the season/division blackout checker yield no
// slots for any seasonField.
func GenerateFieldSlots(
	dates []time.Time,
	seasonFields []*models.SeasonField,
	idx *FieldAvailabilityIndex,
	blackouts *BlackoutChecker,
	eventType models.EventType,
) []models.ResourceSlot {
	var slots []models.ResourceSlot
	for _, d := range dates {
		if blackouts != nil && blackouts.Covers(d, eventType) {
			continue
		}
		for _, sf := range seasonFields {
			for _, w := range idx.Resolve(sf.ID, d) {
				slots = append(slots, models.ResourceSlot{
					ResourceType:    models.ResourceField,
					ResourceID:      sf.FieldID,
					Date:            d,
					DayOfWeek:       DayOfWeek(d),
					StartTime:       MinutesToTime(w.StartMinutes),
					EndTime:         MinutesToTime(w.EndMinutes),
					DurationMinutes: w.EndMinutes - w.StartMinutes,
					SingleEventOnly: w.SingleEventOnly,
				})
			}
		}
	}
	return slots
}

// GenerateCageSlots is the cage equivalent of GenerateFieldSlots.
func GenerateCageSlots(
	dates []time.Time,
	seasonCages []*models.SeasonCage,
	idx *CageAvailabilityIndex,
	blackouts *BlackoutChecker,
	eventType models.EventType,
) []models.ResourceSlot {
	var slots []models.ResourceSlot
	for _, d := range dates {
		if blackouts != nil && blackouts.Covers(d, eventType) {
			continue
		}
		for _, sc := range seasonCages {
			for _, w := range idx.Resolve(sc.ID, d) {
				slots = append(slots, models.ResourceSlot{
					ResourceType:    models.ResourceCage,
					ResourceID:      sc.CageID,
					Date:            d,
					DayOfWeek:       DayOfWeek(d),
					StartTime:       MinutesToTime(w.StartMinutes),
					EndTime:         MinutesToTime(w.EndMinutes),
					DurationMinutes: w.EndMinutes - w.StartMinutes,
					SingleEventOnly: w.SingleEventOnly,
				})
			}
		}
	}
	return slots
}

// candidateStartTimes enumerates start-minute offsets inside a slot at the
// given granularity, for an event of durationMinutes that may not start
// until arriveBeforeMinutes after the slot opens. Practices/cages use
// 60-minute granularity; games use 30-minute granularity, per the design's
// runtime-vs-quality tradeoff.
func candidateStartTimes(slot models.ResourceSlot, durationMinutes, arriveBeforeMinutes, granularityMinutes int) []int {
	startMin, _ := TimeToMinutes(slot.StartTime)
	earliestStart := startMin + arriveBeforeMinutes
	var starts []int
	for t := earliestStart; t+durationMinutes <= startMin+slot.DurationMinutes; t += granularityMinutes {
		starts = append(starts, t)
	}
	return starts
}
