package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kurumalab/carfit/internal/cli"
	"github.com/kurumalab/carfit/internal/model"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "catalog [categories|models|grades|options]",
		Short:     "Browse the vehicle catalog",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"categories", "models", "grades", "options"},
		RunE:      runCatalog,
	}

	cmd.Flags().Int64P("grade", "g", 0, "Grade id (for options)")
	cmd.Flags().String("kind", "color", "Option kind (color, interior, exterior)")

	return cmd
}

func runCatalog(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, err := openStorage()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	switch args[0] {
	case "categories":
		categories, err := store.Categories(ctx)
		if err != nil {
			return err
		}
		for _, c := range categories {
			fmt.Printf("%4d  %s\n", c.ID, c.Name)
		}

	case "models":
		models, err := store.Models(ctx)
		if err != nil {
			return err
		}
		for _, m := range models {
			fmt.Printf("%4d  %-20s %s\n", m.ID, m.Name, cli.SubtleStyle.Render(m.CategoryName))
		}

	case "grades":
		grades, err := store.Grades(ctx)
		if err != nil {
			return err
		}
		for _, g := range grades {
			fmt.Printf("%4d  %-40s %12s  rank %d\n", g.ID, g.NameDesc(), cli.FormatMoney(g.BasePrice), g.Rank)
		}

	case "options":
		gradeID, _ := cmd.Flags().GetInt64("grade")
		if gradeID == 0 {
			return fmt.Errorf("--grade is required for options")
		}
		kind := model.OptionKind(cmd.Flag("kind").Value.String())
		options, err := store.OptionsForGrade(ctx, kind, gradeID)
		if err != nil {
			return err
		}
		for _, opt := range options {
			fmt.Printf("%4d  %-30s +%s\n", opt.ID, opt.Name, cli.FormatMoney(opt.Price))
		}

	default:
		return fmt.Errorf("unknown catalog %q", args[0])
	}
	return nil
}
