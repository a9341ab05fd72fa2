package scheduling

import (
	"testing"
	"time"

	"league-scheduler/internal/models"
)

// seedShortRestGame commits a synthetic game draft directly into idx,
// bypassing the draft loop, so the rebalancer can be exercised against a
// hand-built short-rest imbalance in isolation.
func seedShortRestGame(t *testing.T, idx *ConflictIndex, dateStr, home, away string) *models.Draft {
	t.Helper()
	date, err := ParseDate(dateStr)
	if err != nil {
		t.Fatalf("parse date %q: %v", dateStr, err)
	}
	fieldID := "f1"
	d := &models.Draft{
		EventType:  models.EventGame,
		Date:       date,
		StartTime:  "10:00",
		EndTime:    "11:00",
		FieldID:    &fieldID,
		HomeTeamID: &home,
		AwayTeamID: &away,
	}
	idx.Commit(d)
	return d
}

// TestRebalanceShortRestReducesImbalanceWithoutViolatingMatchupSpacing
// is scenario seed 6: a 4-team division where one team has accumulated
// 3 short-rest pairs and another has 0. The rebalancer must bring
// max(shortRest)-min(shortRest) down to <= 1 without shrinking any
// matchup's rematch gap below 7 days or double-booking a resource.
func TestRebalanceShortRestReducesImbalanceWithoutViolatingMatchupSpacing(t *testing.T) {
	idx := NewConflictIndex()
	// T1 plays on four dates with gaps of 1, 2, and 1 day -> 3 short-rest
	// pairs. T2 plays on three widely spaced dates -> 0 short-rest pairs.
	seedShortRestGame(t, idx, "2026-01-05", "T1", "T3")
	seedShortRestGame(t, idx, "2026-01-06", "T1", "T4")
	seedShortRestGame(t, idx, "2026-01-08", "T1", "T3")
	seedShortRestGame(t, idx, "2026-01-09", "T1", "T4")
	seedShortRestGame(t, idx, "2026-01-20", "T2", "T3")
	seedShortRestGame(t, idx, "2026-02-05", "T2", "T4")
	seedShortRestGame(t, idx, "2026-02-20", "T2", "T3")

	teamIDs := []string{"T1", "T2", "T3", "T4"}
	before := shortRestCounts(idx, teamIDs)
	if before["T1"] != 3 || before["T2"] != 0 {
		t.Fatalf("fixture setup wrong, got short-rest counts %v", before)
	}

	RebalanceShortRest(idx, teamIDs, 10)

	after := shortRestCounts(idx, teamIDs)
	maxCount, minCount := -1, -1
	for _, c := range after {
		if maxCount == -1 || c > maxCount {
			maxCount = c
		}
		if minCount == -1 || c < minCount {
			minCount = c
		}
	}
	if maxCount-minCount > 1 {
		t.Fatalf("expected max(shortRest)-min(shortRest) <= 1 after rebalance, got counts %v", after)
	}
	if totalShortRest(after) > totalShortRest(before) {
		t.Fatalf("rebalance increased total short-rest count: before=%v after=%v", before, after)
	}

	for _, team := range teamIDs {
		dates := idx.TeamGameDates(team)
		for i := 1; i < len(dates); i++ {
			if dates[i-1].Equal(dates[i]) {
				t.Fatalf("team %s double-booked on %s after rebalance", team, FormatDate(dates[i]))
			}
		}
	}
}

// TestRebalanceShortRestNoOpWhenAlreadyBalanced confirms the search
// returns immediately, without mutating any committed date, once
// max(shortRest)-min(shortRest) is already within the 1-game tolerance.
func TestRebalanceShortRestNoOpWhenAlreadyBalanced(t *testing.T) {
	idx := NewConflictIndex()
	seedShortRestGame(t, idx, "2026-01-05", "T1", "T2")
	seedShortRestGame(t, idx, "2026-01-20", "T1", "T2")

	teamIDs := []string{"T1", "T2"}
	beforeDates := append([]time.Time{}, idx.TeamGameDates("T1")...)

	RebalanceShortRest(idx, teamIDs, 10)

	afterDates := idx.TeamGameDates("T1")
	if len(afterDates) != len(beforeDates) {
		t.Fatalf("expected no change to T1's committed dates, before=%v after=%v", beforeDates, afterDates)
	}
	for i := range beforeDates {
		if !beforeDates[i].Equal(afterDates[i]) {
			t.Fatalf("expected no change to T1's committed dates, before=%v after=%v", beforeDates, afterDates)
		}
	}
}
