package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kurumalab/carfit/internal/cli"
	"github.com/kurumalab/carfit/internal/model"
	"github.com/kurumalab/carfit/internal/service"
)

func reserveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reserve",
		Short: "Book a dealer reservation for a grade",
		Long: `Submit a dealer-reservation request for one grade, optionally with
color, interior, and exterior customizations.

With only --grade set, contact details and options are collected
interactively. The whole reservation is written atomically: either every
record lands or none do.`,
		RunE: runReserve,
	}

	cmd.Flags().Int64P("grade", "g", 0, "Grade id to reserve (required)")
	cmd.Flags().String("name", "", "Your name")
	cmd.Flags().String("email", "", "Your email address")
	cmd.Flags().String("region", "", "Your region")
	cmd.Flags().String("colors", "", "Comma-separated color ids")
	cmd.Flags().String("interiors", "", "Comma-separated interior option ids")
	cmd.Flags().String("exteriors", "", "Comma-separated exterior option ids")
	_ = cmd.MarkFlagRequired("grade")

	return cmd
}

func runReserve(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStorage()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	gradeID, _ := cmd.Flags().GetInt64("grade")
	grade, err := store.GradeByID(ctx, gradeID)
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		prompter := cli.NewPrompter(os.Stdin, os.Stdout)
		return reserveGrade(ctx, store, prompter, *grade)
	}

	email, _ := cmd.Flags().GetString("email")
	region, _ := cmd.Flags().GetString("region")

	req := model.ReservationRequest{
		UserName:   name,
		UserEmail:  email,
		UserRegion: region,
		GradeID:    grade.ID,
	}
	for _, flag := range []struct {
		target *[]int64
		name   string
	}{
		{target: &req.ColorIDs, name: "colors"},
		{target: &req.InteriorIDs, name: "interiors"},
		{target: &req.ExteriorIDs, name: "exteriors"},
	} {
		value, _ := cmd.Flags().GetString(flag.name)
		ids, err := parseIDFlag(value)
		if err != nil {
			return fmt.Errorf("--%s: %w", flag.name, err)
		}
		*flag.target = ids
	}

	return submitReservation(ctx, store, req, *grade)
}

// reserveGrade runs the interactive reservation form for a grade.
func reserveGrade(ctx context.Context, store service.Storage, prompter *cli.Prompter, grade model.Grade) error {
	colors, err := store.OptionsForGrade(ctx, model.OptionColor, grade.ID)
	if err != nil {
		return err
	}
	interiors, err := store.OptionsForGrade(ctx, model.OptionInterior, grade.ID)
	if err != nil {
		return err
	}
	exteriors, err := store.OptionsForGrade(ctx, model.OptionExterior, grade.ID)
	if err != nil {
		return err
	}

	req, err := prompter.PromptReservation(ctx, grade, colors, interiors, exteriors)
	if err != nil {
		return err
	}
	return submitReservation(ctx, store, req, grade)
}

func submitReservation(ctx context.Context, store service.Storage, req model.ReservationRequest, grade model.Grade) error {
	reservation, err := store.SaveReservation(ctx, req)
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess("Reservation confirmed. The dealer will contact you shortly."))
	fmt.Println(cli.RenderBox("Your reservation",
		fmt.Sprintf("Grade:     %s\nReference: %s", grade.NameDesc(), reservation.Reference)))
	return nil
}
