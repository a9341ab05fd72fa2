// internal/scheduling/draft.go
// Draft scheduler (C6): orchestrates division order, week order,
// event-type passes, and per-team rounds; generates candidates, scores
// them, and commits the best one.

package scheduling

import (
	"sort"
	"time"

	"league-scheduler/internal/models"
)

// divisionInputs bundles everything the draft loop needs for one
// division, assembled once by the generator (C10) before Phase G starts.
type divisionInputs struct {
	Division     *models.Division
	Config       *models.DivisionConfig
	Teams        []*models.Team
	Weeks        []models.WeekDefinition
	FieldSlots   map[string][]models.ResourceSlot // date string -> slots
	CageSlots    map[string][]models.ResourceSlot
	Fields       map[string]*models.Field // fieldID -> Field
	Cages        map[string]*models.Cage
}

// scoredCandidate pairs a Candidate with the committed-event shape it
// would become plus its score, for sorting.
type scoredCandidate struct {
	cand  Candidate
	score float64
}

// candidateLess implements the deterministic tie-break: higher score
// first; ties broken by (date asc, startTime asc, resourceId asc,
// homeTeamId/teamId asc).
func candidateLess(a, b scoredCandidate) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	if !a.cand.Date.Equal(b.cand.Date) {
		return a.cand.Date.Before(b.cand.Date)
	}
	if a.cand.StartMinutes != b.cand.StartMinutes {
		return a.cand.StartMinutes < b.cand.StartMinutes
	}
	if a.cand.ResourceID != b.cand.ResourceID {
		return a.cand.ResourceID < b.cand.ResourceID
	}
	aID := a.cand.HomeTeamID
	if aID == "" {
		aID = a.cand.TeamID
	}
	bID := b.cand.HomeTeamID
	if bID == "" {
		bID = b.cand.TeamID
	}
	return aID < bID
}

// selectBest implements the one-phase and two-phase (practices) selection
// modes described in the design.
func selectBest(ctx *ScoringContext, candidates []Candidate, w *Weights, twoPhase bool) *Candidate {
	if len(candidates) == 0 {
		return nil
	}

	if !twoPhase {
		var scored []scoredCandidate
		for _, c := range candidates {
			b := Score(ctx, c, w, false)
			scored = append(scored, scoredCandidate{c, b.Total})
		}
		sort.Slice(scored, func(i, j int) bool { return candidateLess(scored[i], scored[j]) })
		return &scored[0].cand
	}

	byDate := make(map[string][]Candidate)
	var dateOrder []string
	for _, c := range candidates {
		k := dateKey(c.Date)
		if _, ok := byDate[k]; !ok {
			dateOrder = append(dateOrder, k)
		}
		byDate[k] = append(byDate[k], c)
	}

	bestDate := ""
	bestDateScore := 0.0
	first := true
	for _, k := range dateOrder {
		dateBest := -1.0
		for _, c := range byDate[k] {
			b := Score(ctx, c, w, true)
			if b.Total > dateBest {
				dateBest = b.Total
			}
		}
		if first || dateBest > bestDateScore {
			bestDateScore = dateBest
			bestDate = k
			first = false
		}
	}

	var scored []scoredCandidate
	for _, c := range byDate[bestDate] {
		b := Score(ctx, c, w, false)
		scored = append(scored, scoredCandidate{c, b.Total})
	}
	sort.Slice(scored, func(i, j int) bool { return candidateLess(scored[i], scored[j]) })
	return &scored[0].cand
}

// fieldCompatible reports whether a field may host events for a division.
func fieldCompatible(f *models.Field, divisionID string) bool {
	if f == nil || len(f.DivisionCompatibility) == 0 {
		return true
	}
	for _, id := range f.DivisionCompatibility {
		if id == divisionID {
			return true
		}
	}
	return false
}

func cageCompatible(c *models.Cage, divisionID string) bool {
	if c == nil || len(c.DivisionCompatibility) == 0 {
		return true
	}
	for _, id := range c.DivisionCompatibility {
		if id == divisionID {
			return true
		}
	}
	return false
}

func isAvoidDay(cfg *models.DivisionConfig, date time.Time) bool {
	dow := DayOfWeek(date)
	for _, p := range cfg.GameDayPreferences {
		if p.DayOfWeek == dow && p.Priority == models.PriorityAvoid {
			return true
		}
	}
	return false
}

// generateGameCandidates builds every feasible (date,start,field) game
// candidate for one matchup within a week's dates.
func generateGameCandidates(
	di *divisionInputs,
	idx *ConflictIndex,
	weekDates []time.Time,
	home, away string,
	weekNumber int,
	spillover bool,
) []Candidate {
	var out []Candidate
	durationMin := int(di.Config.GameDurationHours * 60)
	arriveBeforeMin := int(di.Config.GameArriveBeforeHours * 60)
	required := durationMin + arriveBeforeMin

	for _, d := range weekDates {
		if d.Before(di.Weeks[0].Monday) {
			continue
		}
		if isAvoidDay(di.Config, d) {
			continue
		}
		if idx.TeamHasFieldEvent(home, d) || idx.TeamHasFieldEvent(away, d) {
			continue
		}
		slots := di.FieldSlots[FormatDate(d)]
		for _, s := range slots {
			if !fieldCompatible(di.Fields[s.ResourceID], di.Division.ID) {
				continue
			}
			if s.DurationMinutes < required {
				continue
			}
			if s.SingleEventOnly && idx.IsOccupied(s.ResourceID, d) {
				continue
			}
			for _, t := range candidateStartTimes(s, durationMin, arriveBeforeMin, 30) {
				end := t + durationMin
				if idx.HasResourceOverlap(s.ResourceID, d, t, end) {
					continue
				}
				out = append(out, Candidate{
					SeasonID:        di.Division.SeasonID,
					DivisionID:      di.Division.ID,
					EventType:       models.EventGame,
					Date:            d,
					StartMinutes:    t,
					EndMinutes:      end,
					ResourceID:      s.ResourceID,
					ResourceType:    models.ResourceField,
					HomeTeamID:      home,
					AwayTeamID:      away,
					WeekNumber:      weekNumber,
					SingleEventOnly: s.SingleEventOnly,
					Spillover:       spillover,
				})
			}
		}
	}
	return out
}

// generateSingleTeamCandidates is shared by practice and cage candidate
// generation: both place one team on one resource category.
func generateSingleTeamCandidates(
	di *divisionInputs,
	idx *ConflictIndex,
	weekDates []time.Time,
	teamID string,
	weekNumber int,
	eventType models.EventType,
	resourceType models.ResourceType,
	durationMin int,
	arriveBeforeMin int,
	slotsByDate map[string][]models.ResourceSlot,
	compatible func(resourceID string) bool,
) []Candidate {
	var out []Candidate
	required := durationMin + arriveBeforeMin
	const granularity = 60

	for _, d := range weekDates {
		already := idx.TeamHasFieldEvent(teamID, d)
		if resourceType == models.ResourceCage {
			already = idx.TeamHasCageEvent(teamID, d)
		}
		if already {
			continue
		}
		slots := slotsByDate[FormatDate(d)]
		for _, s := range slots {
			if !compatible(s.ResourceID) {
				continue
			}
			if s.DurationMinutes < required {
				continue
			}
			if s.SingleEventOnly && idx.IsOccupied(s.ResourceID, d) {
				continue
			}
			for _, t := range candidateStartTimes(s, durationMin, arriveBeforeMin, granularity) {
				end := t + durationMin
				if idx.HasResourceOverlap(s.ResourceID, d, t, end) {
					continue
				}
				out = append(out, Candidate{
					SeasonID:        di.Division.SeasonID,
					DivisionID:      di.Division.ID,
					EventType:       eventType,
					Date:            d,
					StartMinutes:    t,
					EndMinutes:      end,
					ResourceID:      s.ResourceID,
					ResourceType:    resourceType,
					TeamID:          teamID,
					WeekNumber:      weekNumber,
					SingleEventOnly: s.SingleEventOnly,
				})
			}
		}
	}
	return out
}

// commitDraft converts a chosen candidate into a models.Draft, records it
// in the conflict index, and updates the team scheduling state(s).
func commitDraft(idx *ConflictIndex, states map[string]*models.TeamSchedulingState, cand Candidate) *models.Draft {
	d := &models.Draft{
		SeasonID:   cand.SeasonID,
		DivisionID: cand.DivisionID,
		EventType:  cand.EventType,
		Date:       cand.Date,
		StartTime:  MinutesToTime(cand.StartMinutes),
		EndTime:    MinutesToTime(cand.EndMinutes),
		Status:     models.EventStatusDraft,
	}
	if cand.ResourceType == models.ResourceField {
		id := cand.ResourceID
		d.FieldID = &id
	} else {
		id := cand.ResourceID
		d.CageID = &id
	}
	if cand.TeamID != "" {
		id := cand.TeamID
		d.TeamID = &id
		updateStateForEvent(states[cand.TeamID], cand)
	} else {
		home, away := cand.HomeTeamID, cand.AwayTeamID
		d.HomeTeamID = &home
		d.AwayTeamID = &away
		updateStateForEvent(states[home], cand)
		updateStateForEvent(states[away], cand)
		if hs := states[home]; hs != nil {
			hs.HomeGames++
			hs.RecordHome(models.NewMatchupKey(home, away), home)
		}
		if as := states[away]; as != nil {
			as.AwayGames++
		}
	}
	idx.Commit(d)
	return d
}

// updateStateForEvent applies the counters, day-of-week usage, and
// date-used bookkeeping common to every event type.
func updateStateForEvent(st *models.TeamSchedulingState, cand Candidate) {
	if st == nil {
		return
	}
	dateStr := dateKey(cand.Date)
	dow := DayOfWeek(cand.Date)
	st.DayOfWeekUsage[dow]++
	wc := st.WeekFor(cand.WeekNumber)

	switch cand.EventType {
	case models.EventGame:
		st.GamesScheduled++
		if cand.Spillover {
			wc.SpilloverGames++
		} else {
			wc.Games++
		}
		st.FieldDatesUsed[dateStr] = true
		for _, gd := range st.GameDates {
			if DaysBetween(gd, cand.Date) <= 2 {
				st.ShortRestGamesCount++
				break
			}
		}
		st.GameDates = insertSortedDate(st.GameDates, cand.Date)
	case models.EventPractice:
		st.PracticesScheduled++
		wc.Practices++
		st.FieldDatesUsed[dateStr] = true
		if wasAdjacentPractice(st, cand.Date) {
			st.BackToBackPracticesCount++
		}
	case models.EventCage:
		st.CagesScheduled++
		wc.Cages++
		st.CageDatesUsed[dateStr] = true
	case models.EventPairedPractice:
		st.PracticesScheduled++
		st.CagesScheduled++
		wc.Practices++
		wc.Cages++
		st.FieldDatesUsed[dateStr] = true
		st.CageDatesUsed[dateStr] = true
	}
}

func wasAdjacentPractice(st *models.TeamSchedulingState, date time.Time) bool {
	for dStr := range st.FieldDatesUsed {
		d, err := ParseDate(dStr)
		if err != nil {
			continue
		}
		if DaysBetween(d, date) == 1 {
			return true
		}
	}
	return false
}
