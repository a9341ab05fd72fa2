package scheduling

import "testing"

func TestBuildMatchupsTwoTeamsSingleGame(t *testing.T) {
	matchups := BuildMatchups([]string{"team-a", "team-b"}, 1)
	if len(matchups) != 1 {
		t.Fatalf("len(matchups) = %d, want 1", len(matchups))
	}
	m := matchups[0]
	if (m.Home != "team-a" && m.Home != "team-b") || m.Away == m.Home {
		t.Fatalf("unexpected matchup: %+v", m)
	}
}

func TestBuildMatchupsFourTeamsDoubleRoundRobin(t *testing.T) {
	teams := []string{"t1", "t2", "t3", "t4"}
	matchups := BuildMatchups(teams, 2)

	// 4 teams, 3 rounds per cycle, 2 cycles => 6 rounds, 2 games/round = 12 games.
	if len(matchups) != 12 {
		t.Fatalf("len(matchups) = %d, want 12", len(matchups))
	}

	meetings := make(map[[2]string]int)
	homeCounts := make(map[string]int)
	for _, m := range matchups {
		lo, hi := m.Home, m.Away
		if hi < lo {
			lo, hi = hi, lo
		}
		meetings[[2]string{lo, hi}]++
		homeCounts[m.Home]++
	}
	for pair, count := range meetings {
		if count != 2 {
			t.Fatalf("pair %v met %d times, want 2", pair, count)
		}
	}
	total := 0
	for _, count := range homeCounts {
		total += count
	}
	if total != len(matchups) {
		t.Fatalf("home counts sum to %d, want %d", total, len(matchups))
	}
	for team, count := range homeCounts {
		if count < 1 || count > 5 {
			t.Fatalf("team %s played home %d times, want a balanced spread within [1,5]", team, count)
		}
	}
}

func TestBuildMatchupsOddCountOmitsBye(t *testing.T) {
	teams := []string{"t1", "t2", "t3"}
	matchups := BuildMatchups(teams, 1)
	for _, m := range matchups {
		if m.Home == "" || m.Away == "" {
			t.Fatalf("BYE pairing leaked into output: %+v", m)
		}
	}
}

func TestAssignMatchupsToWeeksClampsSpillover(t *testing.T) {
	matchups := BuildMatchups([]string{"t1", "t2", "t3", "t4"}, 2)
	byWeek := AssignMatchupsToWeeks(matchups, 2, 1)
	for week := range byWeek {
		if week >= 2 {
			t.Fatalf("matchup assigned to week %d beyond totalWeeks=2", week)
		}
	}
	if len(byWeek[1]) == 0 {
		t.Fatal("expected spillover rounds clamped into the final week")
	}
	spillover := false
	for _, mu := range byWeek[1] {
		if mu.Spillover {
			spillover = true
		}
	}
	if !spillover {
		t.Fatal("expected at least one matchup clamped into the final week to be flagged Spillover")
	}
}

func TestHomeAwayTrackerBalancesPair(t *testing.T) {
	tr := newHomeAwayTracker()
	h1, a1 := tr.decide("a", "b")
	h2, a2 := tr.decide("a", "b")
	if h1 == h2 {
		t.Fatalf("expected alternating home team across two meetings, got %s both times", h1)
	}
	if a1 == h1 || a2 == h2 {
		t.Fatal("home and away must differ within a single matchup")
	}
}
