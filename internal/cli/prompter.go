package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kurumalab/carfit/internal/model"
)

// Prompter implements the interactive CLI flow: usage profile entry,
// option picking, and the dealer-reservation form.
type Prompter struct {
	reader *LineReader
	writer io.Writer
}

// NewPrompter creates a prompter over the given reader and writer.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}
	return &Prompter{
		reader: NewLineReader(reader),
		writer: writer,
	}
}

// PromptUsageProfile collects the user's category, budget, and usage
// parameters, re-prompting until the profile validates.
func (p *Prompter) PromptUsageProfile(ctx context.Context, categories []model.Category) (model.UsageProfile, error) {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	fmt.Fprintln(p.writer, FormatTitle("Tell us how you will use the car"))
	fmt.Fprintf(p.writer, "Available categories: %s\n", strings.Join(names, ", "))

	for {
		category, err := p.promptLine(ctx, "Category")
		if err != nil {
			return model.UsageProfile{}, err
		}
		budget, err := p.promptLine(ctx, "Annual budget")
		if err != nil {
			return model.UsageProfile{}, err
		}
		hours, err := p.promptInt(ctx, fmt.Sprintf("Hours of driving per day (%d-%d)", model.MinDailyUsageHours, model.MaxDailyUsageHours))
		if err != nil {
			return model.UsageProfile{}, err
		}
		years, err := p.promptInt(ctx, fmt.Sprintf("Years you plan to keep it (%d-%d)", model.MinHoldingYears, model.MaxHoldingYears))
		if err != nil {
			return model.UsageProfile{}, err
		}

		profile := model.UsageProfile{
			CarCategory:     category,
			AnnualBudget:    budget,
			DailyUsageHours: hours,
			HoldingYears:    years,
		}
		if err := profile.Validate(); err != nil {
			fmt.Fprintln(p.writer, FormatError(err.Error()))
			continue
		}
		return profile, nil
	}
}

// PromptReservation collects contact details and option choices for a
// grade the user decided to reserve.
func (p *Prompter) PromptReservation(ctx context.Context, grade model.Grade, colors, interiors, exteriors []model.Option) (model.ReservationRequest, error) {
	fmt.Fprintln(p.writer, FormatTitle("Dealer reservation"))
	fmt.Fprintln(p.writer, SubtleStyle.Render("Reserving: "+grade.NameDesc()))

	for {
		name, err := p.promptLine(ctx, "Your name")
		if err != nil {
			return model.ReservationRequest{}, err
		}
		email, err := p.promptLine(ctx, "Email")
		if err != nil {
			return model.ReservationRequest{}, err
		}
		region, err := p.promptLine(ctx, "Region")
		if err != nil {
			return model.ReservationRequest{}, err
		}

		colorIDs, err := p.promptOptions(ctx, "Colors", colors)
		if err != nil {
			return model.ReservationRequest{}, err
		}
		interiorIDs, err := p.promptOptions(ctx, "Interior options", interiors)
		if err != nil {
			return model.ReservationRequest{}, err
		}
		exteriorIDs, err := p.promptOptions(ctx, "Exterior options", exteriors)
		if err != nil {
			return model.ReservationRequest{}, err
		}

		req := model.ReservationRequest{
			UserName:    name,
			UserEmail:   email,
			UserRegion:  region,
			GradeID:     grade.ID,
			ColorIDs:    colorIDs,
			InteriorIDs: interiorIDs,
			ExteriorIDs: exteriorIDs,
		}
		if err := req.Validate(); err != nil {
			fmt.Fprintln(p.writer, FormatError(err.Error()))
			continue
		}
		return req, nil
	}
}

// Confirm asks a yes/no question, defaulting to no.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	answer, err := p.promptLine(ctx, question+" [y/N]")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

// PromptID reads one positive identifier, re-prompting on bad input.
func (p *Prompter) PromptID(ctx context.Context, label string) (int64, error) {
	for {
		answer, err := p.promptLine(ctx, label)
		if err != nil {
			return 0, err
		}
		id, err := strconv.ParseInt(answer, 10, 64)
		if err != nil || id <= 0 {
			fmt.Fprintln(p.writer, FormatError(fmt.Sprintf("%q is not a valid id", answer)))
			continue
		}
		return id, nil
	}
}

// promptOptions shows a catalog and reads a comma-separated id selection.
// An empty answer means no selection, which is valid.
func (p *Prompter) promptOptions(ctx context.Context, label string, options []model.Option) ([]int64, error) {
	if len(options) == 0 {
		return nil, nil
	}

	fmt.Fprintln(p.writer, PromptStyle.Render(label+":"))
	valid := make(map[int64]bool, len(options))
	for _, opt := range options {
		valid[opt.ID] = true
		fmt.Fprintf(p.writer, "  [%d] %s (+%s)\n", opt.ID, opt.Name, FormatMoney(opt.Price))
	}

	for {
		answer, err := p.promptLine(ctx, "Ids to add (comma separated, empty for none)")
		if err != nil {
			return nil, err
		}
		if answer == "" {
			return nil, nil
		}

		ids, err := parseIDList(answer)
		if err != nil {
			fmt.Fprintln(p.writer, FormatError(err.Error()))
			continue
		}
		ok := true
		for _, id := range ids {
			if !valid[id] {
				fmt.Fprintln(p.writer, FormatError(fmt.Sprintf("no option with id %d", id)))
				ok = false
				break
			}
		}
		if ok {
			return ids, nil
		}
	}
}

func (p *Prompter) promptLine(ctx context.Context, label string) (string, error) {
	fmt.Fprint(p.writer, FormatPrompt(label))
	return p.reader.ReadLine(ctx)
}

func (p *Prompter) promptInt(ctx context.Context, label string) (int, error) {
	for {
		answer, err := p.promptLine(ctx, label)
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Fprintln(p.writer, FormatError(fmt.Sprintf("%q is not a whole number", answer)))
			continue
		}
		return value, nil
	}
}

func parseIDList(s string) ([]int64, error) {
	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid id", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
