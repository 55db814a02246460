package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kurumalab/carfit/internal/cli"
	"github.com/kurumalab/carfit/internal/model"
	"github.com/kurumalab/carfit/internal/quote"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare lifecycle costs of grades",
		Long: `Show the year-by-year spend curve of the given grades over your
holding period: cumulative spend, per-year spend, and the breakdown into
initial cost, maintenance, and resale gain.`,
		RunE: runCompare,
	}

	cmd.Flags().StringP("grades", "g", "", "Comma-separated grade ids (required)")
	cmd.Flags().IntP("hours", "H", 1, "Hours of driving per day")
	cmd.Flags().IntP("years", "y", 5, "Years you plan to keep the car")
	_ = cmd.MarkFlagRequired("grades")

	return cmd
}

func runCompare(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	value, _ := cmd.Flags().GetString("grades")
	ids, err := parseIDFlag(value)
	if err != nil {
		return fmt.Errorf("--grades: %w", err)
	}
	if len(ids) == 0 {
		return fmt.Errorf("--grades: at least one grade id is required")
	}
	hours, _ := cmd.Flags().GetInt("hours")
	years, _ := cmd.Flags().GetInt("years")

	store, err := openStorage()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	quotes := make([]model.GradeQuote, 0, len(ids))
	for _, id := range ids {
		grade, err := store.GradeByID(ctx, id)
		if err != nil {
			return err
		}
		costs, err := quote.Compute(years, hours, *grade)
		if err != nil {
			return err
		}
		quotes = append(quotes, model.GradeQuote{Grade: *grade, Costs: costs})
	}

	fmt.Println(cli.FormatTitle("Lifecycle cost comparison"))
	fmt.Println(cli.RenderLifecycle(quote.LifecycleAll(years, quotes)))
	return nil
}
