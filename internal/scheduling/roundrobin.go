// internal/scheduling/roundrobin.go
// Round-robin builder (C4): builds matchups for a division with per-pair
// and global home/away balance, then assigns matchups to target weeks.

package scheduling

import (
	"sort"

	"league-scheduler/internal/models"
)

const byeTeamID = ""

// Matchup is one (home, away) pairing produced by the round-robin
// builder, tagged with the round it was generated in. Spillover marks a
// matchup whose target week fell beyond the season's available weeks and
// was clamped onto the final week.
type Matchup struct {
	Home      string
	Away      string
	Round     int
	Spillover bool
}

// homeAwayTracker accumulates home/away bookkeeping across the whole
// build so the tie-break rules in BuildMatchups can see prior decisions.
type homeAwayTracker struct {
	pairHome      map[models.MatchupKey]map[string]int
	globalHome    map[string]int
	totalMeetings map[models.MatchupKey]int
}

func newHomeAwayTracker() *homeAwayTracker {
	return &homeAwayTracker{
		pairHome:      make(map[models.MatchupKey]map[string]int),
		globalHome:    make(map[string]int),
		totalMeetings: make(map[models.MatchupKey]int),
	}
}

// decide picks the home team for an (a,b) pairing using the three-level
// tie-break: pair balance, then global home-count balance, then
// alternation keyed by total meetings with lexicographic order.
func (t *homeAwayTracker) decide(a, b string) (home, away string) {
	key := models.NewMatchupKey(a, b)
	counts := t.pairHome[key]
	if counts == nil {
		counts = make(map[string]int)
		t.pairHome[key] = counts
	}

	if counts[a] != counts[b] {
		if counts[a] < counts[b] {
			home, away = a, b
		} else {
			home, away = b, a
		}
	} else if t.globalHome[a] != t.globalHome[b] {
		if t.globalHome[a] < t.globalHome[b] {
			home, away = a, b
		} else {
			home, away = b, a
		}
	} else {
		lo, hi := a, b
		if hi < lo {
			lo, hi = hi, lo
		}
		if t.totalMeetings[key]%2 == 0 {
			home, away = lo, hi
		} else {
			home, away = hi, lo
		}
	}

	counts[home]++
	t.globalHome[home]++
	t.totalMeetings[key]++
	return home, away
}

// sumLastCharCodes sums the last byte of every id, used to pick a
// deterministic-but-season-varying rotation offset for the circle method.
func sumLastCharCodes(ids []string) int {
	sum := 0
	for _, id := range ids {
		if len(id) == 0 {
			continue
		}
		sum += int(id[len(id)-1])
	}
	return sum
}

// rotateCircle rotates arr clockwise about its fixed first element: index
// 0 stays put, the rest shift by one with the last element wrapping to
// index 1.
func rotateCircle(arr []string) []string {
	n := len(arr)
	if n < 2 {
		return arr
	}
	out := make([]string, n)
	out[0] = arr[0]
	out[1] = arr[n-1]
	for i := 2; i < n; i++ {
		out[i] = arr[i-1]
	}
	return out
}

// BuildMatchups builds gamesPerMatchup cycles of round-robin rounds for
// teamIDs via the circle method, with home/away balanced per the
// three-level tie-break. Returned matchups are grouped by Round, in
// ascending round order; BYE pairings are omitted from the output.
func BuildMatchups(teamIDs []string, gamesPerMatchup int) []Matchup {
	n := len(teamIDs)
	if n == 0 || gamesPerMatchup <= 0 {
		return nil
	}

	sorted := make([]string, n)
	copy(sorted, teamIDs)
	sort.Strings(sorted)

	offset := sumLastCharCodes(sorted) % n
	rotated := append(append([]string{}, sorted[offset:]...), sorted[:offset]...)

	arr := rotated
	if len(arr)%2 != 0 {
		arr = append(arr, byeTeamID)
	}
	m := len(arr)

	tracker := newHomeAwayTracker()
	var matchups []Matchup
	round := 0
	for cycle := 0; cycle < gamesPerMatchup; cycle++ {
		cur := append([]string{}, arr...)
		for r := 0; r < m-1; r++ {
			for i := 0; i < m/2; i++ {
				a, b := cur[i], cur[m-1-i]
				if a == byeTeamID || b == byeTeamID {
					continue
				}
				home, away := tracker.decide(a, b)
				matchups = append(matchups, Matchup{Home: home, Away: away, Round: round})
			}
			round++
			cur = rotateCircle(cur)
		}
	}
	return matchups
}

// AssignMatchupsToWeeks walks matchups in round order, filling the
// current week with whole rounds until it reaches gamesPerTeamPerWeek
// rounds, then advancing to the next week. The returned map groups
// matchups by the week number they land in; weeks beyond the available
// totalWeeks are clamped to the final week (spillover).
func AssignMatchupsToWeeks(matchups []Matchup, totalWeeks int, gamesPerTeamPerWeek int) map[int][]Matchup {
	byWeek := make(map[int][]Matchup)
	if totalWeeks <= 0 || gamesPerTeamPerWeek <= 0 {
		return byWeek
	}

	weekIdx := 0
	roundsInWeek := 0
	lastRound := -1
	for _, mu := range matchups {
		if mu.Round != lastRound {
			if lastRound != -1 {
				roundsInWeek++
				if roundsInWeek >= gamesPerTeamPerWeek {
					weekIdx++
					roundsInWeek = 0
				}
			}
			lastRound = mu.Round
		}
		w := weekIdx
		if w >= totalWeeks {
			w = totalWeeks - 1
			mu.Spillover = true
		}
		byWeek[w] = append(byWeek[w], mu)
	}
	return byWeek
}
