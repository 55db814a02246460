package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kurumalab/carfit/internal/cli"
	"github.com/kurumalab/carfit/internal/common"
	"github.com/kurumalab/carfit/internal/model"
	"github.com/kurumalab/carfit/internal/quote"
	"github.com/kurumalab/carfit/internal/service"
	"github.com/kurumalab/carfit/internal/tui"
)

func quoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Find grades that fit your budget",
		Long: `Project the real monthly ownership cost of every grade over your
holding period and list the ones under your annual budget.

Without flags the command asks for your usage profile interactively.`,
		RunE: runQuote,
	}

	cmd.Flags().StringP("category", "c", "", "Vehicle category (e.g. SUV)")
	cmd.Flags().StringP("budget", "b", "", "Annual budget in whole currency units")
	cmd.Flags().IntP("hours", "H", 0, "Hours of driving per day")
	cmd.Flags().IntP("years", "y", 0, "Years you plan to keep the car")
	cmd.Flags().String("sort", "cost", "Sort order (cost, rank)")
	cmd.Flags().BoolP("interactive", "i", false, "Pick grades to compare and reserve")

	_ = viper.BindPFlag("quote.sort", cmd.Flags().Lookup("sort"))

	return cmd
}

func runQuote(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStorage()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	categories, err := store.Categories(ctx)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		return common.NewUserError("the catalog is empty, run 'carfit seed' first", common.ErrEmptyDatabase)
	}

	profile, err := resolveProfile(ctx, cmd, categories)
	if err != nil {
		return err
	}

	models, err := store.Models(ctx)
	if err != nil {
		return err
	}
	grades, err := store.Grades(ctx)
	if err != nil {
		return err
	}

	// Full recompute over the whole grade snapshot on every request.
	quotes, err := quote.ComputeAll(profile.HoldingYears, profile.DailyUsageHours, grades)
	if err != nil {
		if errors.Is(err, quote.ErrInvalidUsageProfile) {
			return common.NewUserError("check your holding period and daily hours", err)
		}
		return err
	}

	rows, err := quote.Search(models, profile.CarCategory, quotes, profile.AnnualBudget)
	if err != nil {
		if errors.Is(err, quote.ErrInvalidBudget) {
			return common.NewUserError("the budget must be a whole number of currency units per year", err)
		}
		return err
	}

	sortKey := quote.ParseSortKey(viper.GetString("quote.sort"))
	quote.SortRows(rows, sortKey)

	fmt.Println(cli.FormatTitle(fmt.Sprintf("%d grades fit your budget", len(rows))))
	fmt.Println(cli.RenderSearchTable(rows))

	if len(rows) == 0 || !mustBool(cmd, "interactive") {
		return nil
	}
	return runInteractiveSelection(ctx, store, profile, quotes, rows)
}

// resolveProfile builds the usage profile from flags, falling back to the
// interactive prompts when the category flag is absent.
func resolveProfile(ctx context.Context, cmd *cobra.Command, categories []model.Category) (model.UsageProfile, error) {
	category, _ := cmd.Flags().GetString("category")
	if category == "" {
		prompter := cli.NewPrompter(os.Stdin, os.Stdout)
		return prompter.PromptUsageProfile(ctx, categories)
	}

	budget, _ := cmd.Flags().GetString("budget")
	hours, _ := cmd.Flags().GetInt("hours")
	years, _ := cmd.Flags().GetInt("years")

	profile := model.UsageProfile{
		CarCategory:     category,
		AnnualBudget:    budget,
		DailyUsageHours: hours,
		HoldingYears:    years,
	}
	if err := profile.Validate(); err != nil {
		return model.UsageProfile{}, common.NewUserError("invalid usage profile", err)
	}
	return profile, nil
}

// runInteractiveSelection walks the post-search flow: toggle grades in the
// selector, compare their lifecycle costs, then optionally reserve one.
func runInteractiveSelection(ctx context.Context, store service.Storage, profile model.UsageProfile, quotes []model.GradeQuote, rows []model.SearchRow) error {
	selected, err := tui.RunSelector(rows)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		fmt.Println(cli.SubtleStyle.Render("Nothing selected."))
		return nil
	}

	chosen := quotesByGradeID(quotes, selected)
	fmt.Println(cli.FormatTitle("Lifecycle cost comparison"))
	fmt.Println(cli.RenderLifecycle(quote.LifecycleAll(profile.HoldingYears, chosen)))

	prompter := cli.NewPrompter(os.Stdin, os.Stdout)
	proceed, err := prompter.Confirm(ctx, "Reserve one of these grades?")
	if err != nil || !proceed {
		return err
	}

	grade, err := pickGrade(ctx, prompter, chosen)
	if err != nil {
		return err
	}
	return reserveGrade(ctx, store, prompter, *grade)
}

func quotesByGradeID(quotes []model.GradeQuote, rows []model.SearchRow) []model.GradeQuote {
	wanted := make(map[int64]bool, len(rows))
	for _, row := range rows {
		wanted[row.GradeID] = true
	}
	var chosen []model.GradeQuote
	for _, q := range quotes {
		if wanted[q.Grade.ID] {
			chosen = append(chosen, q)
		}
	}
	return chosen
}

func pickGrade(ctx context.Context, prompter *cli.Prompter, quotes []model.GradeQuote) (*model.Grade, error) {
	if len(quotes) == 1 {
		return &quotes[0].Grade, nil
	}
	for {
		fmt.Println(cli.PromptStyle.Render("Which grade?"))
		for _, q := range quotes {
			fmt.Printf("  [%d] %s\n", q.Grade.ID, q.Grade.NameDesc())
		}
		answer, err := prompter.PromptID(ctx, "Grade id")
		if err != nil {
			return nil, err
		}
		for i := range quotes {
			if quotes[i].Grade.ID == answer {
				return &quotes[i].Grade, nil
			}
		}
		fmt.Println(cli.FormatError(fmt.Sprintf("no grade with id %d in your selection", answer)))
	}
}
