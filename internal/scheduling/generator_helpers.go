// internal/scheduling/generator_helpers.go
// Per-division phase orchestration for the draft scheduler (C6), plus the
// post-generation invariant checks described in §7 of the design.

package scheduling

import (
	"fmt"
	"sort"
	"time"

	"league-scheduler/internal/models"
)

func teamIDsOf(teams []*models.Team) []string {
	ids := make([]string, 0, len(teams))
	for _, t := range teams {
		ids = append(ids, t.ID)
	}
	return ids
}

func gamesOnly(drafts []*models.Draft) []*models.Draft {
	var out []*models.Draft
	for _, d := range drafts {
		if d.EventType == models.EventGame {
			out = append(out, d)
		}
	}
	return out
}

// recordEarliestSlotStart tracks, per (date, resourceID), the earliest
// open start minute seen across all generated slots so earliestTimeScore
// can reward candidates that don't push a team toward the end of the day.
func recordEarliestSlotStart(sctx *ScoringContext, slots []models.ResourceSlot) {
	for _, s := range slots {
		start, err := TimeToMinutes(s.StartTime)
		if err != nil {
			continue
		}
		key := FormatDate(s.Date) + "|" + s.ResourceID
		if existing, ok := sctx.EarliestSlotStart[key]; !ok || start < existing {
			sctx.EarliestSlotStart[key] = start
		}
	}
}

func indexSlotsByDate(slots []models.ResourceSlot) map[string][]models.ResourceSlot {
	m := make(map[string][]models.ResourceSlot)
	for _, s := range slots {
		k := FormatDate(s.Date)
		m[k] = append(m[k], s)
	}
	return m
}

func weekNumberPtr(w int) *int { return &w }

// deriveGamesPerMatchup infers the round-robin cycle count k from the
// division's per-team season game quota, since the data model expresses
// load as weekly quotas rather than a direct k.
func deriveGamesPerMatchup(totalTeamGames, n int) int {
	if n <= 1 {
		return 1
	}
	k := (totalTeamGames + (n-2)/2) / (n - 1)
	if k < 1 {
		k = 1
	}
	return k
}

func datesOnOrAfter(dates []time.Time, floor time.Time) []time.Time {
	var out []time.Time
	for _, d := range dates {
		if !d.Before(floor) {
			out = append(out, d)
		}
	}
	return out
}

// scheduleDivision runs Phases G, P, C, and PP for one division in
// schedulingOrder, returning the drafts it committed plus log/warning
// entries.
func scheduleDivision(
	di *divisionInputs,
	idx *ConflictIndex,
	states map[string]*models.TeamSchedulingState,
	sctx *ScoringContext,
	weights *Weights,
	season *models.Season,
	seasonFields []*models.SeasonField,
	seasonCages []*models.SeasonCage,
	fieldAvailIdx *FieldAvailabilityIndex,
	cageAvailIdx *CageAvailabilityIndex,
	blackouts *BlackoutChecker,
	allDates []time.Time,
) ([]*models.Draft, []LogEntry, []ScheduleWarning) {
	var drafts []*models.Draft
	var log []LogEntry
	var warnings []ScheduleWarning

	teamIDs := teamIDsOf(di.Teams)
	sort.Strings(teamIDs)
	teamNames := make(map[string]string, len(di.Teams))
	for _, t := range di.Teams {
		teamNames[t.ID] = t.Name
	}

	totalTeamGames := TargetGamesForSeason(di.Config, di.Weeks)
	k := deriveGamesPerMatchup(totalTeamGames, len(teamIDs))
	matchups := BuildMatchups(teamIDs, k)
	byWeek := AssignMatchupsToWeeks(matchups, len(di.Weeks), di.Config.GamesPerWeek)

	log = append(log, LogEntry{Category: "division_start", Message: fmt.Sprintf("scheduling division %s (%d teams, k=%d)", di.Division.Name, len(teamIDs), k), DivisionID: di.Division.ID})

	// Phase G: games.
	for _, wd := range di.Weeks {
		weekMatchups := byWeek[wd.WeekNumber]
		if len(weekMatchups) == 0 {
			continue
		}
		gameDates := datesOnOrAfter(wd.Dates, season.GamesStartDate)
		if len(gameDates) == 0 {
			continue
		}
		fieldSlots := GenerateFieldSlots(gameDates, seasonFields, fieldAvailIdx, blackouts, models.EventGame)
		di.FieldSlots = indexSlotsByDate(fieldSlots)
		for _, s := range fieldSlots {
			sctx.ResourceCapacity[s.ResourceID]++
		}
		recordEarliestSlotStart(sctx, fieldSlots)

		sort.Slice(weekMatchups, func(i, j int) bool {
			if weekMatchups[i].Home != weekMatchups[j].Home {
				return weekMatchups[i].Home < weekMatchups[j].Home
			}
			return weekMatchups[i].Away < weekMatchups[j].Away
		})

		for _, mu := range weekMatchups {
			candidates := generateGameCandidates(di, idx, gameDates, mu.Home, mu.Away, wd.WeekNumber, mu.Spillover)
			sctx.States = states
			best := selectBest(sctx, candidates, weights, false)
			if best == nil {
				warnings = append(warnings, ScheduleWarning{
					Category: WarnInsufficientResources,
					Message:  fmt.Sprintf("no slot available for %s vs %s", mu.Home, mu.Away),
					DivisionID: di.Division.ID, WeekNumber: weekNumberPtr(wd.WeekNumber),
				})
				continue
			}
			sctx.ResourceUsage[best.ResourceID]++
			drafts = append(drafts, commitDraft(idx, states, *best))
		}
	}

	// Phase P: practices.
	practiceDurationMin := int(di.Config.PracticeDurationHours * 60)
	for _, wd := range di.Weeks {
		fieldSlots := GenerateFieldSlots(wd.Dates, seasonFields, fieldAvailIdx, blackouts, models.EventPractice)
		di.FieldSlots = indexSlotsByDate(fieldSlots)
		for _, s := range fieldSlots {
			sctx.ResourceCapacity[s.ResourceID]++
		}
		recordEarliestSlotStart(sctx, fieldSlots)

		order := orderTeamsForPractice(teamIDs, states, teamNames, wd.WeekNumber)
		for _, teamID := range order {
			for states[teamID].WeekFor(wd.WeekNumber).Practices < di.Config.PracticesPerWeek {
				candidates := generateSingleTeamCandidates(
					di, idx, wd.Dates, teamID, wd.WeekNumber,
					models.EventPractice, models.ResourceField,
					practiceDurationMin, di.Config.PracticeArriveBeforeMinutes,
					di.FieldSlots,
					func(resourceID string) bool { return fieldCompatible(di.Fields[resourceID], di.Division.ID) },
				)
				best := selectBest(sctx, candidates, weights, true)
				if best == nil {
					warnings = append(warnings, ScheduleWarning{
						Category: WarnInsufficientResources,
						Message:  fmt.Sprintf("no practice slot available for team %s", teamID),
						DivisionID: di.Division.ID, WeekNumber: weekNumberPtr(wd.WeekNumber),
					})
					break
				}
				sctx.ResourceUsage[best.ResourceID]++
				drafts = append(drafts, commitDraft(idx, states, *best))
			}
		}
	}

	// Phase C: cages.
	cageDurationMin := int(di.Config.CageSessionDurationHours * 60)
	if di.Config.CageSessionsPerWeek > 0 {
		for _, wd := range di.Weeks {
			cageSlots := GenerateCageSlots(wd.Dates, seasonCages, cageAvailIdx, blackouts, models.EventCage)
			di.CageSlots = indexSlotsByDate(cageSlots)
			for _, s := range cageSlots {
				sctx.ResourceCapacity[s.ResourceID]++
			}
			recordEarliestSlotStart(sctx, cageSlots)

			order := orderTeamsForPractice(teamIDs, states, teamNames, wd.WeekNumber)
			for _, teamID := range order {
				for states[teamID].WeekFor(wd.WeekNumber).Cages < di.Config.CageSessionsPerWeek {
					candidates := generateSingleTeamCandidates(
						di, idx, wd.Dates, teamID, wd.WeekNumber,
						models.EventCage, models.ResourceCage,
						cageDurationMin, 0,
						di.CageSlots,
						func(resourceID string) bool { return cageCompatible(di.Cages[resourceID], di.Division.ID) },
					)
					best := selectBest(sctx, candidates, weights, true)
					if best == nil {
						warnings = append(warnings, ScheduleWarning{
							Category: WarnInsufficientResources,
							Message:  fmt.Sprintf("no cage slot available for team %s", teamID),
							DivisionID: di.Division.ID, WeekNumber: weekNumberPtr(wd.WeekNumber),
						})
						break
					}
					sctx.ResourceUsage[best.ResourceID]++
					drafts = append(drafts, commitDraft(idx, states, *best))
				}
			}
		}
	}

	// Phase PP: optional Sunday paired practices.
	if di.Config.SundayPairedPracticeEnabled && di.Config.PairedPracticeFieldID != nil && di.Config.PairedPracticeCageID != nil {
		durationMin := int(di.Config.PairedPracticeDurationHours * 60)
		fieldID := *di.Config.PairedPracticeFieldID
		cageID := *di.Config.PairedPracticeCageID
		for _, wd := range di.Weeks {
			fieldSlots := GenerateFieldSlots(wd.Dates, seasonFields, fieldAvailIdx, blackouts, models.EventPairedPractice)
			cageSlots := GenerateCageSlots(wd.Dates, seasonCages, cageAvailIdx, blackouts, models.EventPairedPractice)
			di.FieldSlots = indexSlotsByDate(fieldSlots)
			di.CageSlots = indexSlotsByDate(cageSlots)

			pairs := GenerateTeamPairingsForWeek(teamIDs, wd.WeekNumber)
			for _, pair := range pairs {
				date, start, ok := findPairedSlot(di, idx, wd.Dates, fieldID, cageID, durationMin)
				if !ok {
					warnings = append(warnings, ScheduleWarning{
						Category: WarnInsufficientResources,
						Message:  fmt.Sprintf("no paired-practice slot for %s/%s", pair.TeamA, pair.TeamB),
						DivisionID: di.Division.ID, WeekNumber: weekNumberPtr(wd.WeekNumber),
					})
					continue
				}
				sctx.ResourceUsage[fieldID]++
				sctx.ResourceUsage[cageID]++
				drafts = append(drafts, commitPairedPractice(idx, states, di.Division.SeasonID, di.Division.ID, date, start, durationMin, fieldID, cageID, pair, wd.WeekNumber))
			}
		}
	}

	return drafts, log, warnings
}

// orderTeamsForPractice sorts teams by (backToBackPracticesCount DESC,
// name ASC) with a per-week rotation offset so first-pick rotates fairly.
func orderTeamsForPractice(teamIDs []string, states map[string]*models.TeamSchedulingState, names map[string]string, weekNumber int) []string {
	order := append([]string{}, teamIDs...)
	sort.Slice(order, func(i, j int) bool {
		si, sj := states[order[i]], states[order[j]]
		if si.BackToBackPracticesCount != sj.BackToBackPracticesCount {
			return si.BackToBackPracticesCount > sj.BackToBackPracticesCount
		}
		return names[order[i]] < names[order[j]]
	})
	n := len(order)
	if n == 0 {
		return order
	}
	offset := weekNumber % n
	return append(append([]string{}, order[offset:]...), order[:offset]...)
}

// postCheck performs the invariant post-checks the design requires after
// rebalancing: no double-booked resource, no double-booked team-day
// within a category.
func postCheck(drafts []*models.Draft) error {
	type resourceKey struct {
		resourceID string
		date       string
	}
	byResource := make(map[resourceKey][]*models.Draft)
	for _, d := range drafts {
		if d.FieldID != nil {
			k := resourceKey{*d.FieldID, FormatDate(d.Date)}
			byResource[k] = append(byResource[k], d)
		}
		if d.CageID != nil {
			k := resourceKey{*d.CageID, FormatDate(d.Date)}
			byResource[k] = append(byResource[k], d)
		}
	}
	for _, events := range byResource {
		for i := 0; i < len(events); i++ {
			for j := i + 1; j < len(events); j++ {
				s1, _ := TimeToMinutes(events[i].StartTime)
				e1, _ := TimeToMinutes(events[i].EndTime)
				s2, _ := TimeToMinutes(events[j].StartTime)
				e2, _ := TimeToMinutes(events[j].EndTime)
				if overlaps(s1, e1, s2, e2) {
					return ErrInvariantViolation
				}
			}
		}
	}

	teamFieldDay := make(map[string]map[string]int)
	teamCageDay := make(map[string]map[string]int)
	for _, d := range drafts {
		dateStr := FormatDate(d.Date)
		for _, t := range teamsOf(d) {
			if d.FieldID != nil {
				if teamFieldDay[t] == nil {
					teamFieldDay[t] = make(map[string]int)
				}
				teamFieldDay[t][dateStr]++
				if teamFieldDay[t][dateStr] > 1 {
					return ErrInvariantViolation
				}
			}
			if d.CageID != nil {
				if teamCageDay[t] == nil {
					teamCageDay[t] = make(map[string]int)
				}
				teamCageDay[t][dateStr]++
				if teamCageDay[t][dateStr] > 1 {
					return ErrInvariantViolation
				}
			}
		}
	}
	return nil
}
