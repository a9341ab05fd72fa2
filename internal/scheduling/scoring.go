// internal/scheduling/scoring.go
// Scoring engine (C5): computes per-factor raw scores in [0,1] for a
// candidate placement, multiplies by configured weights, and sums. Raw
// factors are kept as a fixed, ordered list of (raw_fn, weight) pairs with
// no runtime registration, per the design notes; Breakdown exposes every
// factor individually for test introspection.

package scheduling

import (
	"time"

	"league-scheduler/internal/models"
)

// Weights holds the tunable multiplier for every scoring factor. The
// exact values are tunable; what the design requires is that the
// relative ordering of factor magnitudes be preserved (practiceSpacing
// dominates, sameDayEvent is an effectively-hard veto).
type Weights struct {
	DaySpread                 float64
	WeekBalance               float64
	ResourceUtilization       float64
	GameDayPreference         float64
	TimeQuality               float64
	HomeAwayBalance           float64
	MatchupHomeAwayBalance    float64
	DayGap                    float64
	PracticeSpacing           float64
	TimeAdjacency             float64
	EarliestTime              float64
	FieldPreference           float64
	SameDayEvent              float64 // negative
	Scarcity                  float64 // negative
	SameDayCageFieldGap       float64 // negative
	WeekendMorningPractice    float64 // negative
	ShortRestBalance          float64 // negative
	BackToBackPracticeBalance float64 // negative
	LargeGapPenalty           float64 // negative
}

// DefaultWeights returns the observed-behavior defaults from the design.
func DefaultWeights() *Weights {
	return &Weights{
		DaySpread:                 10,
		WeekBalance:               10,
		ResourceUtilization:       5,
		GameDayPreference:         20,
		TimeQuality:               8,
		HomeAwayBalance:           25,
		MatchupHomeAwayBalance:    30,
		DayGap:                    15,
		PracticeSpacing:           500,
		TimeAdjacency:             5,
		EarliestTime:              3,
		FieldPreference:           10,
		SameDayEvent:              -1000,
		Scarcity:                  -8,
		SameDayCageFieldGap:       -12,
		WeekendMorningPractice:    -6,
		ShortRestBalance:          -20,
		BackToBackPracticeBalance: -15,
		LargeGapPenalty:           -10,
	}
}

// Candidate is a concrete (eventType, date, start, end, resource,
// team(s)) tuple that could be committed.
type Candidate struct {
	SeasonID        string
	DivisionID      string
	EventType       models.EventType
	Date            time.Time
	StartMinutes    int
	EndMinutes      int
	ResourceID      string
	ResourceType    models.ResourceType
	HomeTeamID      string
	AwayTeamID      string
	TeamID          string
	WeekNumber      int
	SingleEventOnly bool
	Spillover       bool // matchup's target week was clamped onto the final week
}

// teams returns every team id participating in the candidate.
func (c Candidate) teams() []string {
	if c.TeamID != "" {
		return []string{c.TeamID}
	}
	var t []string
	if c.HomeTeamID != "" {
		t = append(t, c.HomeTeamID)
	}
	if c.AwayTeamID != "" {
		t = append(t, c.AwayTeamID)
	}
	return t
}

// ScoringContext is the read side the engine consults; it never mutates
// team state or the conflict index (that happens on commit, in draft.go).
type ScoringContext struct {
	States            map[string]*models.TeamSchedulingState
	Index             *ConflictIndex
	Config            *models.DivisionConfig
	Weeks             []models.WeekDefinition
	ResourceCapacity  map[string]int // resourceID -> total slots observed across the season
	ResourceUsage     map[string]int // resourceID -> events committed so far
	TeamsInDivision   []string
	EarliestSlotStart map[string]int // "date|resourceID" -> earliest open start minute that day
}

// Breakdown exposes every scoring factor's raw and weighted value.
type Breakdown struct {
	DaySpread                 float64
	WeekBalance               float64
	ResourceUtilization       float64
	GameDayPreference         float64
	TimeQuality               float64
	HomeAwayBalance           float64
	MatchupHomeAwayBalance    float64
	DayGap                    float64
	PracticeSpacing           float64
	TimeAdjacency             float64
	EarliestTime              float64
	FieldPreference           float64
	SameDayEvent              float64
	Scarcity                  float64
	SameDayCageFieldGap       float64
	WeekendMorningPractice    float64
	ShortRestBalance          float64
	BackToBackPracticeBalance float64
	LargeGapPenalty           float64
	Total                     float64
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Score computes the weighted sum for a candidate. excludeTimeFactors
// drops earliestTime and timeAdjacency from the total, used by the
// two-phase date-then-slot selection for practices.
func Score(ctx *ScoringContext, cand Candidate, w *Weights, excludeTimeFactors bool) Breakdown {
	var b Breakdown

	teams := cand.teams()

	b.DaySpread = avgOverTeams(teams, func(t string) float64 {
		st := ctx.States[t]
		if st == nil {
			return 1
		}
		total := st.GamesScheduled + st.PracticesScheduled + st.CagesScheduled
		if total == 0 {
			return 1
		}
		return clamp01(1 - float64(st.DayOfWeekUsage[DayOfWeek(cand.Date)])/float64(total))
	})

	b.WeekBalance = avgOverTeams(teams, func(t string) float64 {
		st := ctx.States[t]
		if st == nil || ctx.Config == nil {
			return 1
		}
		wc := st.WeekFor(cand.WeekNumber)
		quota := quotaForType(ctx.Config, cand.WeekNumber, cand.EventType)
		if quota <= 0 {
			return 0
		}
		count := countForType(wc, cand.EventType)
		return clamp01(1 - float64(count)/float64(quota))
	})

	if capacity := ctx.ResourceCapacity[cand.ResourceID]; capacity > 0 {
		used := ctx.ResourceUsage[cand.ResourceID]
		b.ResourceUtilization = clamp01(1 - float64(used)/float64(capacity))
	} else {
		b.ResourceUtilization = 1
	}

	b.GameDayPreference = gameDayPreferenceScore(ctx.Config, cand.Date)

	b.TimeQuality = timeQualityScore(cand)

	if cand.EventType == models.EventGame {
		b.HomeAwayBalance = avgOverTeams(teams, func(t string) float64 {
			return homeAwayBalanceScore(ctx.States[t], t == cand.HomeTeamID)
		})
		b.MatchupHomeAwayBalance = matchupBalanceScore(ctx, cand)
	}

	b.DayGap = avgOverTeams(teams, func(t string) float64 {
		return dayGapScore(ctx.States[t], cand)
	})

	if cand.EventType == models.EventPractice {
		b.PracticeSpacing = avgOverTeams(teams, func(t string) float64 {
			return practiceSpacingScore(ctx.States[t], cand)
		})
	}

	if !excludeTimeFactors {
		b.TimeAdjacency = timeAdjacencyScore(ctx, cand)
		if cand.EventType == models.EventGame {
			b.EarliestTime = earliestTimeScore(ctx, cand)
		}
	}

	if cand.EventType == models.EventGame || cand.EventType == models.EventPractice || cand.EventType == models.EventCage {
		b.FieldPreference = fieldPreferenceScore(ctx.Config, cand)
	}

	b.SameDayEvent = avgOverTeams(teams, func(t string) float64 {
		return sameDayEventScore(ctx.Index, t, cand)
	})

	b.Scarcity = scarcityScore(ctx, cand)

	b.SameDayCageFieldGap = avgOverTeams(teams, func(t string) float64 {
		return sameDayCageFieldGapScore(ctx.Index, t, cand)
	})

	b.WeekendMorningPractice = weekendMorningPracticeScore(cand)

	if cand.EventType == models.EventGame {
		b.ShortRestBalance = avgOverTeams(teams, func(t string) float64 {
			return shortRestBalanceScore(ctx, t, cand)
		})
	}

	if cand.EventType == models.EventPractice {
		b.BackToBackPracticeBalance = avgOverTeams(teams, func(t string) float64 {
			return backToBackPracticeBalanceScore(ctx, t, cand)
		})
	}

	b.LargeGapPenalty = avgOverTeams(teams, func(t string) float64 {
		return largeGapPenaltyScore(ctx.States[t], cand)
	})

	b.Total = b.DaySpread*w.DaySpread +
		b.WeekBalance*w.WeekBalance +
		b.ResourceUtilization*w.ResourceUtilization +
		b.GameDayPreference*w.GameDayPreference +
		b.TimeQuality*w.TimeQuality +
		b.HomeAwayBalance*w.HomeAwayBalance +
		b.MatchupHomeAwayBalance*w.MatchupHomeAwayBalance +
		b.DayGap*w.DayGap +
		b.PracticeSpacing*w.PracticeSpacing +
		b.TimeAdjacency*w.TimeAdjacency +
		b.EarliestTime*w.EarliestTime +
		b.FieldPreference*w.FieldPreference +
		b.SameDayEvent*w.SameDayEvent +
		b.Scarcity*w.Scarcity +
		b.SameDayCageFieldGap*w.SameDayCageFieldGap +
		b.WeekendMorningPractice*w.WeekendMorningPractice +
		b.ShortRestBalance*w.ShortRestBalance +
		b.BackToBackPracticeBalance*w.BackToBackPracticeBalance +
		b.LargeGapPenalty*w.LargeGapPenalty

	return b
}

func avgOverTeams(teams []string, f func(string) float64) float64 {
	if len(teams) == 0 {
		return 0
	}
	sum := 0.0
	for _, t := range teams {
		sum += f(t)
	}
	return sum / float64(len(teams))
}

func quotaForType(cfg *models.DivisionConfig, weekNumber int, et models.EventType) int {
	switch et {
	case models.EventGame:
		return cfg.GamesPerWeekFor(weekNumber)
	case models.EventPractice:
		return cfg.PracticesPerWeek
	case models.EventCage:
		return cfg.CageSessionsPerWeek
	}
	return 0
}

func countForType(wc *models.WeekCounts, et models.EventType) int {
	switch et {
	case models.EventGame:
		return wc.Games
	case models.EventPractice:
		return wc.Practices
	case models.EventCage:
		return wc.Cages
	}
	return 0
}

func gameDayPreferenceScore(cfg *models.DivisionConfig, date time.Time) float64 {
	if cfg == nil {
		return 1
	}
	dow := DayOfWeek(date)
	for _, p := range cfg.GameDayPreferences {
		if p.DayOfWeek != dow {
			continue
		}
		switch p.Priority {
		case models.PriorityRequired, models.PriorityPreferred:
			return 1.0
		case models.PriorityAcceptable:
			return 0.7
		case models.PriorityAvoid:
			return 0.0
		}
	}
	return 1.0
}

// timeQualityScore is a triangular function peaking at 15:00 (900 min),
// used for practices and cage sessions; games rely on earliestTime instead.
func timeQualityScore(cand Candidate) float64 {
	if cand.EventType != models.EventPractice && cand.EventType != models.EventCage {
		return 1
	}
	peak := 15 * 60
	spread := 6 * 60
	dist := cand.StartMinutes - peak
	if dist < 0 {
		dist = -dist
	}
	return clamp01(1 - float64(dist)/float64(spread))
}

func homeAwayBalanceScore(st *models.TeamSchedulingState, isHome bool) float64 {
	if st == nil {
		return 0.5
	}
	diff := st.HomeGames - st.AwayGames
	switch {
	case isHome && diff < 0:
		return 1
	case !isHome && diff > 0:
		return 1
	case diff == 0:
		return 0.5
	default:
		return 0
	}
}

func matchupBalanceScore(ctx *ScoringContext, cand Candidate) float64 {
	st := ctx.States[cand.HomeTeamID]
	if st == nil {
		return 0.5
	}
	key := models.NewMatchupKey(cand.HomeTeamID, cand.AwayTeamID)
	homeCount := st.HomeCountFor(key, cand.HomeTeamID)
	awayTeamHome := st.HomeCountFor(key, cand.AwayTeamID)
	if homeCount < awayTeamHome {
		return 1
	}
	if homeCount == awayTeamHome {
		return 0.5
	}
	return 0
}

func dateKey(d time.Time) string { return FormatDate(d) }

func dayGapScore(st *models.TeamSchedulingState, cand Candidate) float64 {
	if st == nil {
		return 1
	}
	used := st.FieldDatesUsed
	if cand.ResourceType == models.ResourceCage {
		used = st.CageDatesUsed
	}
	nearest := -1
	for dStr := range used {
		d, err := ParseDate(dStr)
		if err != nil {
			continue
		}
		gap := DaysBetween(d, cand.Date)
		if nearest == -1 || gap < nearest {
			nearest = gap
		}
	}
	switch {
	case nearest == -1:
		return 1
	case nearest == 0:
		return 0
	case nearest == 1:
		return 0.5
	default:
		return 1
	}
}

// practiceSpacingScore excludes game dates from its lookup, per the
// design: only distance from other practices matters here.
func practiceSpacingScore(st *models.TeamSchedulingState, cand Candidate) float64 {
	if st == nil {
		return 1
	}
	nearest := -1
	for dStr := range st.FieldDatesUsed {
		d, err := ParseDate(dStr)
		if err != nil {
			continue
		}
		isGameDate := false
		for _, gd := range st.GameDates {
			if FormatDate(gd) == dStr {
				isGameDate = true
				break
			}
		}
		if isGameDate {
			continue
		}
		gap := DaysBetween(d, cand.Date)
		if nearest == -1 || gap < nearest {
			nearest = gap
		}
	}
	switch {
	case nearest == -1:
		return 1.0
	case nearest == 0:
		return 0.0
	case nearest == 1:
		return 0.3
	default:
		return 1.0
	}
}

func timeAdjacencyScore(ctx *ScoringContext, cand Candidate) float64 {
	for _, e := range ctx.Index.EventsOn(cand.ResourceID, cand.Date) {
		s, _ := TimeToMinutes(e.StartTime)
		en, _ := TimeToMinutes(e.EndTime)
		if s == cand.EndMinutes || en == cand.StartMinutes {
			return 1
		}
	}
	return 0
}

func earliestTimeScore(ctx *ScoringContext, cand Candidate) float64 {
	key := dateKey(cand.Date) + "|" + cand.ResourceID
	earliest, ok := ctx.EarliestSlotStart[key]
	if !ok {
		return 1
	}
	spread := 8 * 60
	delta := cand.StartMinutes - earliest
	if delta < 0 {
		delta = 0
	}
	return clamp01(1 - float64(delta)/float64(spread))
}

func fieldPreferenceScore(cfg *models.DivisionConfig, cand Candidate) float64 {
	if cfg == nil || len(cfg.FieldPreferences) == 0 {
		return 0
	}
	for i, id := range cfg.FieldPreferences {
		if id == cand.ResourceID {
			return clamp01(1 - float64(i)/float64(len(cfg.FieldPreferences)))
		}
	}
	return 0
}

func sameDayEventScore(idx *ConflictIndex, teamID string, cand Candidate) float64 {
	if cand.ResourceType == models.ResourceField {
		if idx.TeamHasFieldEvent(teamID, cand.Date) {
			return 1
		}
		return 0
	}
	if idx.TeamHasCageEvent(teamID, cand.Date) {
		return 1
	}
	return 0
}

func scarcityScore(ctx *ScoringContext, cand Candidate) float64 {
	capacity := ctx.ResourceCapacity[cand.ResourceID]
	if capacity == 0 {
		return 0
	}
	used := ctx.ResourceUsage[cand.ResourceID]
	return clamp01(float64(used) / float64(capacity))
}

// sameDayCageFieldGapScore flags a team that already has a cage event and
// a field event on the same date with more than gapThresholdMinutes
// between them: a split commute the scorer should discourage.
func sameDayCageFieldGapScore(idx *ConflictIndex, teamID string, cand Candidate) float64 {
	const gapThresholdMinutes = 180
	for _, e := range idx.TeamEventsOnDate(teamID, cand.Date) {
		isOtherCategory := (cand.ResourceType == models.ResourceField && e.CageID != nil) ||
			(cand.ResourceType == models.ResourceCage && e.FieldID != nil)
		if !isOtherCategory {
			continue
		}
		s, _ := TimeToMinutes(e.StartTime)
		en, _ := TimeToMinutes(e.EndTime)
		gap := cand.StartMinutes - en
		if gap < 0 {
			gap = s - cand.EndMinutes
		}
		if gap > gapThresholdMinutes {
			return 1
		}
	}
	return 0
}

func weekendMorningPracticeScore(cand Candidate) float64 {
	if cand.EventType != models.EventPractice {
		return 0
	}
	dow := DayOfWeek(cand.Date)
	if (dow == 0 || dow == 6) && cand.StartMinutes < 12*60 {
		return 1
	}
	return 0
}

func shortRestBalanceScore(ctx *ScoringContext, teamID string, cand Candidate) float64 {
	st := ctx.States[teamID]
	if st == nil {
		return 0
	}
	withinShortRest := false
	for _, gd := range st.GameDates {
		if DaysBetween(gd, cand.Date) <= 2 {
			withinShortRest = true
			break
		}
	}
	if !withinShortRest {
		return 0
	}
	avg := divisionAverageShortRest(ctx)
	if float64(st.ShortRestGamesCount) > avg {
		return 1
	}
	return 0
}

func divisionAverageShortRest(ctx *ScoringContext) float64 {
	if len(ctx.TeamsInDivision) == 0 {
		return 0
	}
	total := 0
	for _, t := range ctx.TeamsInDivision {
		if st := ctx.States[t]; st != nil {
			total += st.ShortRestGamesCount
		}
	}
	return float64(total) / float64(len(ctx.TeamsInDivision))
}

func divisionAverageB2B(ctx *ScoringContext) float64 {
	if len(ctx.TeamsInDivision) == 0 {
		return 0
	}
	total := 0
	for _, t := range ctx.TeamsInDivision {
		if st := ctx.States[t]; st != nil {
			total += st.BackToBackPracticesCount
		}
	}
	return float64(total) / float64(len(ctx.TeamsInDivision))
}

func backToBackPracticeBalanceScore(ctx *ScoringContext, teamID string, cand Candidate) float64 {
	st := ctx.States[teamID]
	if st == nil {
		return 0
	}
	adjacent := dayGapScore(st, cand) == 0.5
	if !adjacent {
		return 0
	}
	avg := divisionAverageB2B(ctx)
	diff := float64(st.BackToBackPracticesCount) - avg
	if diff <= 0 {
		return 0
	}
	return clamp01(diff / (avg + 1))
}

func largeGapPenaltyScore(st *models.TeamSchedulingState, cand Candidate) float64 {
	if st == nil || cand.EventType != models.EventGame || len(st.GameDates) == 0 {
		return 0
	}
	nearest := -1
	for _, gd := range st.GameDates {
		gap := DaysBetween(gd, cand.Date)
		if nearest == -1 || gap < nearest {
			nearest = gap
		}
	}
	if nearest <= 5 {
		return 0
	}
	return clamp01(float64(nearest-5) / 10)
}
