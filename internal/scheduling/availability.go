// internal/scheduling/availability.go
// Availability resolver (C2): materializes per-date open time-windows per
// field/cage from weekly rules, date overrides, and season/division
// blackouts.

package scheduling

import (
	"sort"
	"time"

	"league-scheduler/internal/models"
)

// minSubWindowMinutes is the hard floor below which a sub-window produced
// by subtracting a blackout is discarded: no event can fit in less than
// 30 minutes.
const minSubWindowMinutes = 30

// ResolvedWindow is one open [start,end) window on one date for one
// resource.
type ResolvedWindow struct {
	StartMinutes    int
	EndMinutes      int
	SingleEventOnly bool
}

// weeklyRule is the resource-type-agnostic shape of a recurring weekly
// availability row.
type weeklyRule struct {
	DayOfWeek       int
	StartMinutes    int
	EndMinutes      int
	SingleEventOnly bool
}

// dateOverride is the resource-type-agnostic shape of a date override row.
type dateOverride struct {
	Date            time.Time
	OverrideType    models.OverrideType
	StartMinutes    *int
	EndMinutes      *int
	SingleEventOnly bool
}

// subtractInterval removes [blkStart,blkEnd) from [s,e), returning 0, 1, or
// 2 remaining sub-windows in chronological order. Sub-windows shorter than
// minSubWindowMinutes are dropped.
func subtractInterval(s, e, blkStart, blkEnd int) [][2]int {
	if blkEnd <= s || blkStart >= e {
		return [][2]int{{s, e}}
	}
	var out [][2]int
	if blkStart > s {
		if blkStart-s >= minSubWindowMinutes {
			out = append(out, [2]int{s, blkStart})
		}
	}
	if blkEnd < e {
		if e-blkEnd >= minSubWindowMinutes {
			out = append(out, [2]int{blkEnd, e})
		}
	}
	return out
}

// resolveDate computes the open windows for one resource on one date,
// given its weekly rules (already filtered to the date's day-of-week) and
// the overrides that apply to this exact date.
func resolveDate(weekly []weeklyRule, overrides []dateOverride) []ResolvedWindow {
	var windows []ResolvedWindow
	for _, w := range weekly {
		windows = append(windows, ResolvedWindow{w.StartMinutes, w.EndMinutes, w.SingleEventOnly})
	}

	for _, ov := range overrides {
		switch ov.OverrideType {
		case models.OverrideAdded:
			if ov.StartMinutes == nil || ov.EndMinutes == nil {
				// An "added" override with null times is ambiguous; per
				// the open question this implementation rejects it by
				// ignoring the record rather than inventing a window.
				continue
			}
			windows = append(windows, ResolvedWindow{*ov.StartMinutes, *ov.EndMinutes, ov.SingleEventOnly})
		case models.OverrideBlackout:
			if ov.StartMinutes == nil || ov.EndMinutes == nil {
				windows = nil
				continue
			}
			var next []ResolvedWindow
			for _, win := range windows {
				for _, sub := range subtractInterval(win.StartMinutes, win.EndMinutes, *ov.StartMinutes, *ov.EndMinutes) {
					next = append(next, ResolvedWindow{sub[0], sub[1], win.SingleEventOnly})
				}
			}
			windows = next
		}
	}

	sort.Slice(windows, func(i, j int) bool { return windows[i].StartMinutes < windows[j].StartMinutes })
	return windows
}

// BlackoutChecker decides whether a season/division blackout covers a
// given date for the given event type.
type BlackoutChecker struct {
	season     *models.Season
	divisionID string
}

func NewBlackoutChecker(season *models.Season, divisionID string) *BlackoutChecker {
	return &BlackoutChecker{season: season, divisionID: divisionID}
}

func (b *BlackoutChecker) Covers(date time.Time, eventType models.EventType) bool {
	for _, bo := range b.season.BlackoutDates {
		if bo.Covers(date, b.divisionID, eventType) {
			return true
		}
	}
	return false
}

// FieldAvailabilityIndex exposes resolved windows per (fieldID,date) for a
// season, built once per generation run.
type FieldAvailabilityIndex struct {
	weekly    map[string][]weeklyRule         // seasonFieldID -> rules
	overrides map[string]map[string][]dateOverride // seasonFieldID -> date string -> overrides
	fieldOfSeasonField map[string]string // seasonFieldID -> fieldID
}

func BuildFieldAvailabilityIndex(
	seasonFields []*models.SeasonField,
	avail []*models.FieldAvailability,
	overrides []*models.FieldDateOverride,
) *FieldAvailabilityIndex {
	idx := &FieldAvailabilityIndex{
		weekly:             make(map[string][]weeklyRule),
		overrides:          make(map[string]map[string][]dateOverride),
		fieldOfSeasonField: make(map[string]string),
	}
	for _, sf := range seasonFields {
		idx.fieldOfSeasonField[sf.ID] = sf.FieldID
	}
	for _, a := range avail {
		sm, _ := TimeToMinutes(a.StartTime)
		em, _ := TimeToMinutes(a.EndTime)
		idx.weekly[a.SeasonFieldID] = append(idx.weekly[a.SeasonFieldID], weeklyRule{
			DayOfWeek: a.DayOfWeek, StartMinutes: sm, EndMinutes: em, SingleEventOnly: a.SingleEventOnly,
		})
	}
	for _, o := range overrides {
		key := FormatDate(o.Date)
		var sm, em *int
		if o.StartTime != nil {
			v, _ := TimeToMinutes(*o.StartTime)
			sm = &v
		}
		if o.EndTime != nil {
			v, _ := TimeToMinutes(*o.EndTime)
			em = &v
		}
		if idx.overrides[o.SeasonFieldID] == nil {
			idx.overrides[o.SeasonFieldID] = make(map[string][]dateOverride)
		}
		idx.overrides[o.SeasonFieldID][key] = append(idx.overrides[o.SeasonFieldID][key], dateOverride{
			Date: o.Date, OverrideType: o.OverrideType, StartMinutes: sm, EndMinutes: em, SingleEventOnly: o.SingleEventOnly,
		})
	}
	return idx
}

// Resolve returns the open windows for seasonFieldID on date d.
func (idx *FieldAvailabilityIndex) Resolve(seasonFieldID string, d time.Time) []ResolvedWindow {
	dow := DayOfWeek(d)
	var weekly []weeklyRule
	for _, r := range idx.weekly[seasonFieldID] {
		if r.DayOfWeek == dow {
			weekly = append(weekly, r)
		}
	}
	overrides := idx.overrides[seasonFieldID][FormatDate(d)]
	return resolveDate(weekly, overrides)
}

// CageAvailabilityIndex is the cage equivalent of FieldAvailabilityIndex.
type CageAvailabilityIndex struct {
	weekly    map[string][]weeklyRule
	overrides map[string]map[string][]dateOverride
	cageOfSeasonCage map[string]string
}

func BuildCageAvailabilityIndex(
	seasonCages []*models.SeasonCage,
	avail []*models.CageAvailability,
	overrides []*models.CageDateOverride,
) *CageAvailabilityIndex {
	idx := &CageAvailabilityIndex{
		weekly:           make(map[string][]weeklyRule),
		overrides:        make(map[string]map[string][]dateOverride),
		cageOfSeasonCage: make(map[string]string),
	}
	for _, sc := range seasonCages {
		idx.cageOfSeasonCage[sc.ID] = sc.CageID
	}
	for _, a := range avail {
		sm, _ := TimeToMinutes(a.StartTime)
		em, _ := TimeToMinutes(a.EndTime)
		idx.weekly[a.SeasonCageID] = append(idx.weekly[a.SeasonCageID], weeklyRule{
			DayOfWeek: a.DayOfWeek, StartMinutes: sm, EndMinutes: em, SingleEventOnly: a.SingleEventOnly,
		})
	}
	for _, o := range overrides {
		key := FormatDate(o.Date)
		var sm, em *int
		if o.StartTime != nil {
			v, _ := TimeToMinutes(*o.StartTime)
			sm = &v
		}
		if o.EndTime != nil {
			v, _ := TimeToMinutes(*o.EndTime)
			em = &v
		}
		if idx.overrides[o.SeasonCageID] == nil {
			idx.overrides[o.SeasonCageID] = make(map[string][]dateOverride)
		}
		idx.overrides[o.SeasonCageID][key] = append(idx.overrides[o.SeasonCageID][key], dateOverride{
			Date: o.Date, OverrideType: o.OverrideType, StartMinutes: sm, EndMinutes: em, SingleEventOnly: o.SingleEventOnly,
		})
	}
	return idx
}

func (idx *CageAvailabilityIndex) Resolve(seasonCageID string, d time.Time) []ResolvedWindow {
	dow := DayOfWeek(d)
	var weekly []weeklyRule
	for _, r := range idx.weekly[seasonCageID] {
		if r.DayOfWeek == dow {
			weekly = append(weekly, r)
		}
	}
	overrides := idx.overrides[seasonCageID][FormatDate(d)]
	return resolveDate(weekly, overrides)
}
