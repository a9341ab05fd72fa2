package scheduling

import (
	"context"
	"testing"

	"league-scheduler/internal/models"
)

// fakeRepository is an in-memory Repository used for generator tests. It
// holds its fixtures directly rather than hitting a database.
type fakeRepository struct {
	season         *models.Season
	divisions      []*models.Division
	configs        []*models.DivisionConfig
	teams          []*models.Team
	seasonFields   []*models.SeasonField
	seasonCages    []*models.SeasonCage
	fields         []*models.Field
	cages          []*models.Cage
	fieldAvail     []*models.FieldAvailability
	cageAvail      []*models.CageAvailability
	fieldOverrides []*models.FieldDateOverride
	cageOverrides  []*models.CageDateOverride
	existingEvents []*models.ScheduledEvent

	inserted []*models.Draft
}

func (f *fakeRepository) GetSeason(ctx context.Context, id string) (*models.Season, error) {
	return f.season, nil
}
func (f *fakeRepository) ListDivisions(ctx context.Context, seasonID string) ([]*models.Division, error) {
	return f.divisions, nil
}
func (f *fakeRepository) ListDivisionConfigs(ctx context.Context, seasonID string) ([]*models.DivisionConfig, error) {
	return f.configs, nil
}
func (f *fakeRepository) ListTeams(ctx context.Context, seasonID string) ([]*models.Team, error) {
	return f.teams, nil
}
func (f *fakeRepository) ListSeasonFields(ctx context.Context, seasonID string) ([]*models.SeasonField, error) {
	return f.seasonFields, nil
}
func (f *fakeRepository) ListSeasonCages(ctx context.Context, seasonID string) ([]*models.SeasonCage, error) {
	return f.seasonCages, nil
}
func (f *fakeRepository) ListFields(ctx context.Context, ids []string) ([]*models.Field, error) {
	return f.fields, nil
}
func (f *fakeRepository) ListCages(ctx context.Context, ids []string) ([]*models.Cage, error) {
	return f.cages, nil
}
func (f *fakeRepository) ListFieldAvailabilitiesForSeason(ctx context.Context, seasonID string) ([]*models.FieldAvailability, error) {
	return f.fieldAvail, nil
}
func (f *fakeRepository) ListCageAvailabilitiesForSeason(ctx context.Context, seasonID string) ([]*models.CageAvailability, error) {
	return f.cageAvail, nil
}
func (f *fakeRepository) ListFieldDateOverridesForSeason(ctx context.Context, seasonID string) ([]*models.FieldDateOverride, error) {
	return f.fieldOverrides, nil
}
func (f *fakeRepository) ListCageDateOverridesForSeason(ctx context.Context, seasonID string) ([]*models.CageDateOverride, error) {
	return f.cageOverrides, nil
}
func (f *fakeRepository) ListScheduledEvents(ctx context.Context, filter EventFilter) ([]*models.ScheduledEvent, error) {
	return f.existingEvents, nil
}
func (f *fakeRepository) InsertScheduledEventsBatch(ctx context.Context, drafts []*models.Draft) error {
	f.inserted = append(f.inserted, drafts...)
	return nil
}
func (f *fakeRepository) DeleteScheduledEventsBulk(ctx context.Context, filter EventFilter) error {
	return nil
}

// twoTeamFixture builds the minimal "2 teams, 1 game per week" scenario:
// a 2-week season, one field open every day, one division with 2 teams.
func twoTeamFixture() *fakeRepository {
	start, _ := ParseDate("2026-03-02")
	end, _ := ParseDate("2026-03-15")
	season := &models.Season{
		ID: "season-1", Name: "Spring 2026",
		StartDate: start, EndDate: end, GamesStartDate: start,
		Status: models.SeasonActive,
	}
	division := &models.Division{ID: "div-1", SeasonID: "season-1", Name: "Minors", SchedulingOrder: 0}
	cfg := &models.DivisionConfig{
		ID: "cfg-1", DivisionID: "div-1", SeasonID: "season-1",
		PracticesPerWeek: 0, PracticeDurationHours: 1,
		GamesPerWeek: 1, GameDurationHours: 1.5, GameArriveBeforeHours: 0.5,
		HomeAwayDiffCeiling: 1,
	}
	teams := []*models.Team{
		{ID: "team-a", SeasonID: "season-1", DivisionID: "div-1", Name: "Athletics"},
		{ID: "team-b", SeasonID: "season-1", DivisionID: "div-1", Name: "Brewers"},
	}
	field := &models.Field{ID: "field-1", Name: "Main Diamond"}
	seasonField := &models.SeasonField{ID: "sf-1", SeasonID: "season-1", FieldID: "field-1"}
	avail := []*models.FieldAvailability{
		{SeasonFieldID: "sf-1", DayOfWeek: 0, StartTime: "09:00", EndTime: "18:00"},
		{SeasonFieldID: "sf-1", DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00"},
		{SeasonFieldID: "sf-1", DayOfWeek: 2, StartTime: "09:00", EndTime: "18:00"},
		{SeasonFieldID: "sf-1", DayOfWeek: 3, StartTime: "09:00", EndTime: "18:00"},
		{SeasonFieldID: "sf-1", DayOfWeek: 4, StartTime: "09:00", EndTime: "18:00"},
		{SeasonFieldID: "sf-1", DayOfWeek: 5, StartTime: "09:00", EndTime: "18:00"},
		{SeasonFieldID: "sf-1", DayOfWeek: 6, StartTime: "09:00", EndTime: "18:00"},
	}

	return &fakeRepository{
		season:       season,
		divisions:    []*models.Division{division},
		configs:      []*models.DivisionConfig{cfg},
		teams:        teams,
		seasonFields: []*models.SeasonField{seasonField},
		fields:       []*models.Field{field},
		fieldAvail:   avail,
	}
}

func TestGenerateTwoTeamsOneGamePerWeek(t *testing.T) {
	repo := twoTeamFixture()
	result, err := Generate(context.Background(), repo, Request{SeasonID: "season-1"})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !result.Success {
		t.Fatalf("Generate did not succeed: %+v", result.Errors)
	}
	games := 0
	for _, d := range result.Drafts {
		if d.EventType == models.EventGame {
			games++
		}
	}
	if games != 2 {
		t.Fatalf("games = %d, want 2 (one per week across a 2-week season)", games)
	}
}

func TestGenerateFailsWithoutSeason(t *testing.T) {
	repo := &fakeRepository{}
	result, err := Generate(context.Background(), repo, Request{SeasonID: "missing"})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if result.Success {
		t.Fatal("expected failure when season is missing")
	}
}

func TestGenerateAllowsSameDayFieldAndCageForSameTeam(t *testing.T) {
	repo := twoTeamFixture()
	repo.configs[0].CageSessionsPerWeek = 1
	repo.configs[0].CageSessionDurationHours = 0.5
	cage := &models.Cage{ID: "cage-1", Name: "Batting Cage"}
	seasonCage := &models.SeasonCage{ID: "sc-1", SeasonID: "season-1", CageID: "cage-1"}
	repo.cages = []*models.Cage{cage}
	repo.seasonCages = []*models.SeasonCage{seasonCage}
	for dow := 0; dow <= 6; dow++ {
		repo.cageAvail = append(repo.cageAvail, &models.CageAvailability{
			SeasonCageID: "sc-1", DayOfWeek: dow, StartTime: "09:00", EndTime: "18:00",
		})
	}

	result, err := Generate(context.Background(), repo, Request{SeasonID: "season-1"})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !result.Success {
		t.Fatalf("Generate did not succeed: %+v", result.Errors)
	}

	cages := 0
	for _, d := range result.Drafts {
		if d.EventType == models.EventCage {
			cages++
		}
	}
	if cages == 0 {
		t.Fatal("expected at least one cage session to be scheduled alongside games")
	}
}
