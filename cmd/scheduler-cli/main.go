// cmd/scheduler-cli/main.go
// Standalone generation/evaluation CLI: runs the scheduling core directly
// against a YAML season-rules file, with no MySQL/Mongo/Redis dependency.
// Useful for commissioners sanity-checking a season's rules before
// publishing them through the API, and as a fixture-driven smoke test.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"league-scheduler/internal/config"
	"league-scheduler/internal/scheduling"
)

const defaultRulesFile = "season.yaml"

func resolveRulesPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if _, err := os.Stat(defaultRulesFile); err == nil {
		return defaultRulesFile, nil
	}
	return "", fmt.Errorf("no season rules file found. Either create %s in the current directory or pass the path as an argument", defaultRulesFile)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "scheduler-cli",
		Short: "League scheduler offline generation tool",
	}

	var maxAttempts int
	generateCmd := &cobra.Command{
		Use:          "generate [season.yaml]",
		Short:        "Generate a schedule from a season rules file",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rulesPath, err := resolveRulesPath(args)
			if err != nil {
				return err
			}
			return runGenerate(rulesPath, maxAttempts)
		},
	}
	generateCmd.Flags().IntVar(&maxAttempts, "max-attempts", scheduling.DefaultMaxAttempts, "swap search bound for the short-rest rebalancer")

	evaluateCmd := &cobra.Command{
		Use:          "evaluate [season.yaml]",
		Short:        "Generate a schedule and print its evaluation report",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rulesPath, err := resolveRulesPath(args)
			if err != nil {
				return err
			}
			return runEvaluate(rulesPath)
		},
	}

	var initOutputPath string
	initCmd := &cobra.Command{
		Use:          "init",
		Short:        "Create a starter season.yaml in the current directory",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(initOutputPath)
		},
	}
	initCmd.Flags().StringVarP(&initOutputPath, "output", "o", defaultRulesFile, "Output path for the rules file")

	rootCmd.AddCommand(generateCmd, evaluateCmd, initCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runInit(outputPath string) error {
	if _, err := os.Stat(outputPath); err == nil {
		return fmt.Errorf("%s already exists; remove it first or use -o to write elsewhere", outputPath)
	}
	if err := os.WriteFile(outputPath, []byte(seasonRulesTemplate), 0644); err != nil {
		return fmt.Errorf("writing season rules file: %w", err)
	}
	fmt.Printf("Created %s\n", outputPath)
	return nil
}

func runGenerate(rulesPath string, maxAttempts int) error {
	rules, err := config.LoadSeasonRulesFromYAML(rulesPath)
	if err != nil {
		return fmt.Errorf("loading season rules: %w", err)
	}

	repo := newMemoryRepository(rules)
	ctx := context.Background()

	result, err := scheduling.Generate(ctx, repo, scheduling.Request{
		SeasonID:    rules.SeasonID,
		MaxAttempts: maxAttempts,
		OnLog: func(entry scheduling.LogEntry) {
			fmt.Printf("  [%s] %s\n", entry.Category, entry.Message)
		},
	})
	if err != nil {
		return fmt.Errorf("generation: %w", err)
	}
	if !result.Success {
		fmt.Printf("generation did not succeed: %s\n", result.Message)
		for _, e := range result.Errors {
			fmt.Printf("  error: %s\n", e.Message)
		}
		return fmt.Errorf("%d constraint violations found", len(result.Errors))
	}

	fmt.Printf("\n%s\n", result.Message)
	for _, w := range result.Warnings {
		fmt.Printf("  warning: %s\n", w.Message)
	}
	return nil
}

func runEvaluate(rulesPath string) error {
	rules, err := config.LoadSeasonRulesFromYAML(rulesPath)
	if err != nil {
		return fmt.Errorf("loading season rules: %w", err)
	}

	repo := newMemoryRepository(rules)
	ctx := context.Background()

	result, err := scheduling.Generate(ctx, repo, scheduling.Request{SeasonID: rules.SeasonID})
	if err != nil {
		return fmt.Errorf("generation: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("generation did not succeed: %s", result.Message)
	}
	if err := repo.InsertScheduledEventsBatch(ctx, result.Drafts); err != nil {
		return err
	}

	for _, div := range rules.Divisions {
		events, err := repo.ListScheduledEvents(ctx, scheduling.EventFilter{SeasonID: rules.SeasonID, DivisionID: div.ID})
		if err != nil {
			return err
		}
		report := scheduling.Evaluate(events, div.ID, fieldCapacity(rules), cageCapacity(rules))
		fmt.Printf("Division %s: %d games, %d practices, %d cage sessions\n", div.Name, report.TotalGames, report.TotalPractices, report.TotalCages)
		for resourceID, util := range report.FieldUtilization {
			fmt.Printf("  field %s utilization: %.0f%%\n", resourceID, util*100)
		}
		for _, v := range report.Violations {
			fmt.Printf("  violation: %s\n", v)
		}
	}
	return nil
}

// fieldCapacity/cageCapacity approximate resource capacity for the CLI's
// standalone report by counting availability windows directly, mirroring
// SchedulingService.resourceCapacity without a live repository round trip.
func fieldCapacity(rules *config.SeasonRules) map[string]int {
	capacity := make(map[string]int)
	weeks := scheduling.EnumerateWeeks(rules.StartDate.Time, rules.EndDate.Time)
	for _, f := range rules.Fields {
		for range weeks {
			capacity[f.ID] += len(f.Availability)
		}
	}
	return capacity
}

func cageCapacity(rules *config.SeasonRules) map[string]int {
	capacity := make(map[string]int)
	weeks := scheduling.EnumerateWeeks(rules.StartDate.Time, rules.EndDate.Time)
	for _, c := range rules.Cages {
		for range weeks {
			capacity[c.ID] += len(c.Availability)
		}
	}
	return capacity
}

const seasonRulesTemplate = `# League Scheduler Season Rules
# ==============================
# Offline description of a season, used by scheduler-cli generate/evaluate
# without a live database connection.

season_id: season-1
season_name: "Spring 2026"
start_date: "2026-04-01"
end_date: "2026-06-15"
games_start_date: "2026-04-11"

blackouts:
  - start_date: "2026-05-25"
    end_date: "2026-05-25"
    reason: "Memorial Day"

divisions:
  - id: division-minors
    name: Minors
    scheduling_order: 1
    teams: [Angels, Astros, Orioles, Mariners]
    practices_per_week: 1
    practice_duration_hours: 1.5
    games_per_week: 2
    game_duration_hours: 1.5
    game_arrive_before_hours: 0.5
    home_away_diff_ceiling: 1
    game_spacing_enabled: true
    min_consecutive_day_gap: 1

fields:
  - id: field-1
    name: Memorial Field
    availability:
      - day_of_week: 6
        start_time: "09:00"
        end_time: "17:00"
      - day_of_week: 0
        start_time: "12:00"
        end_time: "17:00"
`
