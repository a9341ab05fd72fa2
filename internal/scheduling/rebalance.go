// internal/scheduling/rebalance.go
// Rebalancers (C8): post-passes run after the draft loop completes for a
// division. Home/away swap flips labels only; short-rest rebalance swaps
// game placements between teams without touching resources or times.

package scheduling

import (
	"sort"
	"time"

	"league-scheduler/internal/models"
)

// RebalanceHomeAway flips home/away labels on already-committed games so
// that every matchup's home-count difference is within each game's
// division ceiling (DivisionConfig.HomeAwayDiffCeiling, default 1 when a
// division has no config entry). It never moves a date or resource.
// Pairs are processed in descending-imbalance order and, within a pair,
// games are flipped in sorted (date, start) order for determinism.
func RebalanceHomeAway(games []*models.Draft, ceilingByDivision map[string]int) {
	type group struct {
		key   models.MatchupKey
		games []*models.Draft
	}
	byPair := make(map[models.MatchupKey][]*models.Draft)
	for _, g := range games {
		if g.EventType != models.EventGame || g.HomeTeamID == nil || g.AwayTeamID == nil {
			continue
		}
		key := models.NewMatchupKey(*g.HomeTeamID, *g.AwayTeamID)
		byPair[key] = append(byPair[key], g)
	}

	var groups []group
	for k, gs := range byPair {
		groups = append(groups, group{k, gs})
	}
	sort.Slice(groups, func(i, j int) bool {
		return imbalance(groups[i].games) > imbalance(groups[j].games)
	})

	for _, grp := range groups {
		gs := grp.games
		sort.Slice(gs, func(i, j int) bool {
			if !gs[i].Date.Equal(gs[j].Date) {
				return gs[i].Date.Before(gs[j].Date)
			}
			return gs[i].StartTime < gs[j].StartTime
		})
		ceiling := 1
		if len(gs) > 0 {
			if c, ok := ceilingByDivision[gs[0].DivisionID]; ok && c > 0 {
				ceiling = c
			}
		}
		for imbalance(gs) > ceiling {
			over := overrepresentedHome(gs)
			flipped := false
			for _, g := range gs {
				if *g.HomeTeamID == over {
					g.HomeTeamID, g.AwayTeamID = g.AwayTeamID, g.HomeTeamID
					flipped = true
					break
				}
			}
			if !flipped {
				break
			}
		}
	}
}

func homeCounts(games []*models.Draft) map[string]int {
	counts := make(map[string]int)
	for _, g := range games {
		counts[*g.HomeTeamID]++
		if _, ok := counts[*g.AwayTeamID]; !ok {
			counts[*g.AwayTeamID] = 0
		}
	}
	return counts
}

func imbalance(games []*models.Draft) int {
	if len(games) == 0 {
		return 0
	}
	counts := homeCounts(games)
	min, max := -1, -1
	for _, c := range counts {
		if min == -1 || c < min {
			min = c
		}
		if max == -1 || c > max {
			max = c
		}
	}
	if min == -1 {
		return 0
	}
	return max - min
}

func overrepresentedHome(games []*models.Draft) string {
	counts := homeCounts(games)
	best := ""
	bestCount := -1
	for team, c := range counts {
		if c > bestCount {
			bestCount = c
			best = team
		}
	}
	return best
}

// RebalanceShortRest attempts, within a bounded number of attempts, to
// swap the calendar dates of a high-short-rest team's game and a
// low-short-rest team's game (keeping each game's own resource, time of
// day, and participants) so that max(shortRest)-min(shortRest) <= 1
// across the division, without creating a same-day conflict or a
// same-pair rematch gap below 7 days. It recomputes short-rest counts
// from idx before every decision, so it always sees the real, committed
// draft rather than a caller-supplied snapshot, and it undoes any swap
// that would raise the division's total short-rest count.
func RebalanceShortRest(idx *ConflictIndex, teamIDs []string, maxAttempts int) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	sorted := append([]string{}, teamIDs...)
	sort.Strings(sorted)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		counts := shortRestCounts(idx, sorted)
		high, low := shortRestExtremes(counts, sorted)
		if high == "" || low == "" || counts[high]-counts[low] <= 1 {
			return
		}

		swapped := false
		for _, ga := range teamGames(idx, high) {
			for _, gb := range teamGames(idx, low) {
				if ga.Date.Equal(gb.Date) || !shortRestSwapValid(idx, ga, gb) {
					continue
				}
				before := totalShortRest(counts)
				idx.SwapDates(ga, gb)
				if after := totalShortRest(shortRestCounts(idx, sorted)); after > before {
					idx.SwapDates(ga, gb)
					continue
				}
				swapped = true
				break
			}
			if swapped {
				break
			}
		}
		if !swapped {
			return
		}
	}
}

// shortRestCounts computes, per team, the number of consecutive committed
// game dates less than or equal to 2 days apart - the same definition the
// evaluator (C11) uses for ShortRestCountByTeam.
func shortRestCounts(idx *ConflictIndex, teamIDs []string) map[string]int {
	counts := make(map[string]int, len(teamIDs))
	for _, t := range teamIDs {
		dates := idx.TeamGameDates(t)
		c := 0
		for i := 1; i < len(dates); i++ {
			if DaysBetween(dates[i-1], dates[i]) <= 2 {
				c++
			}
		}
		counts[t] = c
	}
	return counts
}

func totalShortRest(counts map[string]int) int {
	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}

func shortRestExtremes(counts map[string]int, teamIDs []string) (high, low string) {
	highCount, lowCount := -1, -1
	for _, t := range teamIDs {
		c, ok := counts[t]
		if !ok {
			continue
		}
		if highCount == -1 || c > highCount {
			highCount = c
			high = t
		}
		if lowCount == -1 || c < lowCount {
			lowCount = c
			low = t
		}
	}
	return high, low
}

// teamGames returns a team's committed game drafts in sorted-date order,
// matching the deterministic iteration order used everywhere else in the
// swap search.
func teamGames(idx *ConflictIndex, teamID string) []*models.Draft {
	var out []*models.Draft
	for _, d := range idx.TeamGameDates(teamID) {
		for _, e := range idx.TeamEventsOnDate(teamID, d) {
			if e.EventType == models.EventGame {
				out = append(out, e)
			}
		}
	}
	return out
}

// hasOtherFieldEvent reports whether teamID already carries a
// field-category commitment on date, other than except1/except2
// themselves - the two events a candidate swap is about to relocate.
func hasOtherFieldEvent(idx *ConflictIndex, teamID string, date time.Time, except1, except2 *models.Draft) bool {
	for _, e := range idx.TeamEventsOnDate(teamID, date) {
		if e == except1 || e == except2 {
			continue
		}
		if e.FieldID != nil {
			return true
		}
	}
	return false
}

// shortRestSwapValid checks the two guards §4.8 requires before a
// candidate date swap between ga and gb is committed: neither event's
// participants may already have a field-category commitment on the
// other event's date, and neither event's matchup pair may end up with
// a rematch gap under 7 days.
func shortRestSwapValid(idx *ConflictIndex, ga, gb *models.Draft) bool {
	for _, t := range teamsOf(ga) {
		if hasOtherFieldEvent(idx, t, gb.Date, ga, gb) {
			return false
		}
	}
	for _, t := range teamsOf(gb) {
		if hasOtherFieldEvent(idx, t, ga.Date, ga, gb) {
			return false
		}
	}
	if ga.HomeTeamID != nil && ga.AwayTeamID != nil {
		for _, d := range matchupDatesExcept(idx, *ga.HomeTeamID, *ga.AwayTeamID, ga) {
			if DaysBetween(d, gb.Date) < 7 {
				return false
			}
		}
	}
	if gb.HomeTeamID != nil && gb.AwayTeamID != nil {
		for _, d := range matchupDatesExcept(idx, *gb.HomeTeamID, *gb.AwayTeamID, gb) {
			if DaysBetween(d, ga.Date) < 7 {
				return false
			}
		}
	}
	return true
}

// matchupDatesExcept returns the dates teamA and teamB already play each
// other, excluding the except draft itself.
func matchupDatesExcept(idx *ConflictIndex, teamA, teamB string, except *models.Draft) []time.Time {
	var dates []time.Time
	for _, g := range teamGames(idx, teamA) {
		if g == except {
			continue
		}
		if (g.HomeTeamID != nil && *g.HomeTeamID == teamB) || (g.AwayTeamID != nil && *g.AwayTeamID == teamB) {
			dates = append(dates, g.Date)
		}
	}
	return dates
}
