package scheduling

import (
	"testing"

	"league-scheduler/internal/models"
)

func TestEvaluateTalliesHomeAwayAndUtilization(t *testing.T) {
	date1, _ := ParseDate("2026-03-02")
	date2, _ := ParseDate("2026-03-09")
	teamA, teamB := "team-a", "team-b"
	fieldID := "field-1"

	events := []*models.ScheduledEvent{
		{DivisionID: "div-1", EventType: models.EventGame, Date: date1, FieldID: &fieldID, HomeTeamID: &teamA, AwayTeamID: &teamB},
		{DivisionID: "div-1", EventType: models.EventGame, Date: date2, FieldID: &fieldID, HomeTeamID: &teamA, AwayTeamID: &teamB},
	}

	report := Evaluate(events, "div-1", map[string]int{"field-1": 4}, nil)
	if report.TotalGames != 2 {
		t.Fatalf("TotalGames = %d, want 2", report.TotalGames)
	}
	if report.HomeAwayDiffByTeam[teamA] != 2 {
		t.Fatalf("HomeAwayDiffByTeam[teamA] = %d, want 2 (2 home, 0 away)", report.HomeAwayDiffByTeam[teamA])
	}
	if diff := report.MatchupHomeDiff[teamA+"|"+teamB]; diff != 2 {
		t.Fatalf("MatchupHomeDiff = %d, want 2", diff)
	}
	if len(report.Violations) == 0 {
		t.Fatal("expected a home/away imbalance violation to be flagged")
	}
	if util := report.FieldUtilization["field-1"]; util != 0.5 {
		t.Fatalf("FieldUtilization = %v, want 0.5 (2 used of 4 capacity)", util)
	}
}

func TestEvaluatePairedPracticeCountsTowardBothQuotas(t *testing.T) {
	date, _ := ParseDate("2026-03-08")
	teamA, teamB := "team-a", "team-b"
	fieldID, cageID := "field-1", "cage-1"
	events := []*models.ScheduledEvent{
		{DivisionID: "div-1", EventType: models.EventPairedPractice, Date: date, FieldID: &fieldID, CageID: &cageID, TeamID: &teamA, PairedTeamID: &teamB},
	}
	report := Evaluate(events, "div-1", nil, nil)
	if report.TotalPractices != 1 || report.TotalCages != 1 {
		t.Fatalf("paired practice should count toward both quotas, got practices=%d cages=%d", report.TotalPractices, report.TotalCages)
	}
}

func TestEvaluateFiltersByDivision(t *testing.T) {
	date, _ := ParseDate("2026-03-02")
	events := []*models.ScheduledEvent{
		{DivisionID: "div-1", EventType: models.EventGame, Date: date},
		{DivisionID: "div-2", EventType: models.EventGame, Date: date},
	}
	report := Evaluate(events, "div-1", nil, nil)
	if report.TotalGames != 1 {
		t.Fatalf("TotalGames = %d, want 1 (scoped to div-1)", report.TotalGames)
	}
}
