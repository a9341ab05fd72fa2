package scheduling

import (
	"testing"

	"league-scheduler/internal/models"
)

func TestUpdateStateForEventRoutesSpilloverGamesSeparately(t *testing.T) {
	st := models.NewTeamSchedulingState("t1")
	date, _ := ParseDate("2026-04-06")

	updateStateForEvent(st, Candidate{
		EventType:  models.EventGame,
		Date:       date,
		WeekNumber: 3,
		HomeTeamID: "t1",
		AwayTeamID: "t2",
		Spillover:  true,
	})

	wc := st.WeekFor(3)
	if wc.SpilloverGames != 1 {
		t.Fatalf("SpilloverGames = %d, want 1", wc.SpilloverGames)
	}
	if wc.Games != 0 {
		t.Fatalf("Games = %d, want 0 for a spillover candidate", wc.Games)
	}
	if st.GamesScheduled != 1 {
		t.Fatalf("GamesScheduled = %d, want 1", st.GamesScheduled)
	}
}

func TestUpdateStateForEventCountsOrdinaryGameNormally(t *testing.T) {
	st := models.NewTeamSchedulingState("t1")
	date, _ := ParseDate("2026-04-06")

	updateStateForEvent(st, Candidate{
		EventType:  models.EventGame,
		Date:       date,
		WeekNumber: 3,
		HomeTeamID: "t1",
		AwayTeamID: "t2",
		Spillover:  false,
	})

	wc := st.WeekFor(3)
	if wc.Games != 1 {
		t.Fatalf("Games = %d, want 1", wc.Games)
	}
	if wc.SpilloverGames != 0 {
		t.Fatalf("SpilloverGames = %d, want 0 for a non-spillover candidate", wc.SpilloverGames)
	}
}

func TestCommitDraftPropagatesSpilloverThroughBothTeams(t *testing.T) {
	states := InitializeTeamStates([]string{"home", "away"})
	idx := NewConflictIndex()
	date, _ := ParseDate("2026-04-13")
	fieldID := "field-1"

	commitDraft(idx, states, Candidate{
		EventType:    models.EventGame,
		Date:         date,
		StartMinutes: 600,
		EndMinutes:   660,
		ResourceID:   fieldID,
		ResourceType: models.ResourceField,
		HomeTeamID:   "home",
		AwayTeamID:   "away",
		WeekNumber:   5,
		Spillover:    true,
	})

	for _, teamID := range []string{"home", "away"} {
		wc := states[teamID].WeekFor(5)
		if wc.SpilloverGames != 1 || wc.Games != 0 {
			t.Fatalf("team %s: SpilloverGames=%d Games=%d, want 1/0", teamID, wc.SpilloverGames, wc.Games)
		}
	}
}
