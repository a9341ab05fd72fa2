// internal/scheduling/evaluator.go
// Schedule evaluator: a separate read-only pass that computes quality
// reports over an already-committed schedule, independent of generation.

package scheduling

import (
	"sort"

	"league-scheduler/internal/models"
)

// EvaluationReport summarizes schedule quality for one division.
type EvaluationReport struct {
	DivisionID            string             `json:"division_id"`
	TotalGames             int                `json:"total_games"`
	TotalPractices         int                `json:"total_practices"`
	TotalCages             int                `json:"total_cages"`
	HomeAwayDiffByTeam     map[string]int     `json:"home_away_diff_by_team"`
	MatchupHomeDiff        map[string]int     `json:"matchup_home_diff"` // key "teamA|teamB" -> |hc(a)-hc(b)|
	ShortRestCountByTeam   map[string]int     `json:"short_rest_count_by_team"`
	FieldUtilization       map[string]float64 `json:"field_utilization"`
	CageUtilization        map[string]float64 `json:"cage_utilization"`
	Violations             []string           `json:"violations"`
}

// Evaluate computes an EvaluationReport from a committed event list for
// one division. fieldCapacity/cageCapacity map resourceID to the total
// number of slots available across the season, used for utilization.
func Evaluate(events []*models.ScheduledEvent, divisionID string, fieldCapacity, cageCapacity map[string]int) *EvaluationReport {
	report := &EvaluationReport{
		DivisionID:           divisionID,
		HomeAwayDiffByTeam:   make(map[string]int),
		MatchupHomeDiff:      make(map[string]int),
		ShortRestCountByTeam: make(map[string]int),
		FieldUtilization:     make(map[string]float64),
		CageUtilization:      make(map[string]float64),
	}

	homeGames := make(map[string]int)
	awayGames := make(map[string]int)
	pairHome := make(map[models.MatchupKey]map[string]int)
	fieldUsage := make(map[string]int)
	cageUsage := make(map[string]int)
	gameDatesByTeam := make(map[string][]string)

	for _, e := range events {
		if e.DivisionID != divisionID {
			continue
		}
		if e.FieldID != nil {
			fieldUsage[*e.FieldID]++
		}
		if e.CageID != nil {
			cageUsage[*e.CageID]++
		}

		switch e.EventType {
		case models.EventGame:
			report.TotalGames++
			if e.HomeTeamID != nil {
				homeGames[*e.HomeTeamID]++
				gameDatesByTeam[*e.HomeTeamID] = append(gameDatesByTeam[*e.HomeTeamID], FormatDate(e.Date))
			}
			if e.AwayTeamID != nil {
				awayGames[*e.AwayTeamID]++
				gameDatesByTeam[*e.AwayTeamID] = append(gameDatesByTeam[*e.AwayTeamID], FormatDate(e.Date))
			}
			if e.HomeTeamID != nil && e.AwayTeamID != nil {
				key := models.NewMatchupKey(*e.HomeTeamID, *e.AwayTeamID)
				if pairHome[key] == nil {
					pairHome[key] = make(map[string]int)
				}
				pairHome[key][*e.HomeTeamID]++
			}
		case models.EventPractice:
			report.TotalPractices++
		case models.EventCage:
			report.TotalCages++
		case models.EventPairedPractice:
			report.TotalPractices++
			report.TotalCages++
		}
	}

	teamSet := make(map[string]bool)
	for t := range homeGames {
		teamSet[t] = true
	}
	for t := range awayGames {
		teamSet[t] = true
	}
	for t := range teamSet {
		report.HomeAwayDiffByTeam[t] = abs(homeGames[t] - awayGames[t])
	}

	var pairKeys []models.MatchupKey
	for k := range pairHome {
		pairKeys = append(pairKeys, k)
	}
	sort.Slice(pairKeys, func(i, j int) bool {
		if pairKeys[i].TeamA != pairKeys[j].TeamA {
			return pairKeys[i].TeamA < pairKeys[j].TeamA
		}
		return pairKeys[i].TeamB < pairKeys[j].TeamB
	})
	for _, k := range pairKeys {
		counts := pairHome[k]
		diff := abs(counts[k.TeamA] - counts[k.TeamB])
		report.MatchupHomeDiff[k.TeamA+"|"+k.TeamB] = diff
		if diff > 1 {
			report.Violations = append(report.Violations, "matchup home/away imbalance exceeds 1 for "+k.TeamA+" vs "+k.TeamB)
		}
	}

	for team, dates := range gameDatesByTeam {
		sort.Strings(dates)
		count := 0
		for i := 1; i < len(dates); i++ {
			d1, _ := ParseDate(dates[i-1])
			d2, _ := ParseDate(dates[i])
			if DaysBetween(d1, d2) <= 2 {
				count++
			}
		}
		report.ShortRestCountByTeam[team] = count
	}

	for resourceID, capacity := range fieldCapacity {
		if capacity == 0 {
			continue
		}
		report.FieldUtilization[resourceID] = float64(fieldUsage[resourceID]) / float64(capacity)
	}
	for resourceID, capacity := range cageCapacity {
		if capacity == 0 {
			continue
		}
		report.CageUtilization[resourceID] = float64(cageUsage[resourceID]) / float64(capacity)
	}

	return report
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
