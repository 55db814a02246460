package quote

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kurumalab/carfit/internal/model"
)

// Search filters cost-augmented grades down to the ones that fit the
// requested category and annual budget, projected for display.
//
// A category matching no models and a budget no grade fits both yield an
// empty result, which is a business outcome rather than an error. A budget
// that does not parse as an integer yields ErrInvalidBudget and no result
// set. Every returned row starts with Selected=false; prior selections
// never carry over.
func Search(models []model.CarModel, categoryName string, quotes []model.GradeQuote, annualBudget string) ([]model.SearchRow, error) {
	budget, err := strconv.Atoi(strings.TrimSpace(annualBudget))
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a whole number", ErrInvalidBudget, annualBudget)
	}

	targetModels := make(map[int64]bool, len(models))
	for _, m := range models {
		if m.CategoryName == categoryName {
			targetModels[m.ID] = true
		}
	}

	// Strict comparison against the un-floored monthly budget.
	monthlyBudget := float64(budget) / 12

	rows := make([]model.SearchRow, 0, len(quotes))
	for _, q := range quotes {
		if !targetModels[q.Grade.ModelID] {
			continue
		}
		if float64(q.Costs.MonthlyRealCost) >= monthlyBudget {
			continue
		}
		rows = append(rows, model.SearchRow{
			GradeID:          q.Grade.ID,
			ImageURL:         q.Grade.ImageURL,
			NameDesc:         q.Grade.NameDesc(),
			MonthlyRealCost:  q.Costs.MonthlyRealCost,
			MonthlyTotalCost: q.Costs.MonthlyTotalCost,
			ResaleValue:      q.Costs.ResaleValue,
			Rank:             q.Grade.Rank,
			Selected:         false,
		})
	}
	return rows, nil
}
