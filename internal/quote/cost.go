package quote

import (
	"fmt"
	"math"

	"github.com/kurumalab/carfit/internal/model"
)

// Domain constants baked into the cost projection. Changing either would
// shift every figure the tool has ever produced, so they are not
// configurable.
const (
	// kmPerUsageHour is the assumed average distance covered per hour of
	// daily usage.
	kmPerUsageHour = 40
	// daysPerMonth is the day-count multiplier used for monthly figures.
	daysPerMonth = 30
)

// Compute derives the ownership-cost projection for one grade under the
// given holding period and daily usage. All truncations are toward zero on
// the float intermediate, matching the figures existing users have seen.
//
// MonthlyPriceDropRate is applied as-is: values outside [0, 1) produce
// resale values outside [0, BasePrice] and are deliberately not clamped
// here. The seed importer rejects such rates at the write boundary.
func Compute(holdingYears, dailyUsageHours int, g model.Grade) (model.CostBreakdown, error) {
	if holdingYears <= 0 {
		return model.CostBreakdown{}, fmt.Errorf("%w: holding years must be positive, got %d", ErrInvalidUsageProfile, holdingYears)
	}
	if dailyUsageHours <= 0 {
		return model.CostBreakdown{}, fmt.Errorf("%w: daily usage hours must be positive, got %d", ErrInvalidUsageProfile, dailyUsageHours)
	}

	holdMonth := float64(holdingYears * 12)

	fuelCost := int64(g.FuelCostPerKm * float64(dailyUsageHours) * kmPerUsageHour * holdMonth * daysPerMonth)
	mainteCost := int64(g.MonthlyMainteCost * holdMonth)
	insuranceCost := int64(g.MonthlyInsuranceCost * holdMonth)
	resaleValue := int64(float64(g.BasePrice) * math.Pow(1-g.MonthlyPriceDropRate, holdMonth))

	// The monthly total uses the already-truncated fuel cost.
	monthlyTotal := float64(fuelCost)/daysPerMonth + g.MonthlyMainteCost + g.MonthlyInsuranceCost
	monthlyReal := (float64(g.BasePrice) - float64(resaleValue) + monthlyTotal + monthlyTotal*holdMonth) / holdMonth

	return model.CostBreakdown{
		FuelCost:         fuelCost,
		MainteCost:       mainteCost,
		InsuranceCost:    insuranceCost,
		ResaleValue:      resaleValue,
		MonthlyTotalCost: int64(monthlyTotal),
		MonthlyRealCost:  int64(monthlyReal),
	}, nil
}

// ComputeAll runs Compute over every grade, preserving input order. The
// input slice is never mutated; cost figures live only in the returned
// quotes.
func ComputeAll(holdingYears, dailyUsageHours int, grades []model.Grade) ([]model.GradeQuote, error) {
	quotes := make([]model.GradeQuote, 0, len(grades))
	for _, g := range grades {
		costs, err := Compute(holdingYears, dailyUsageHours, g)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, model.GradeQuote{Grade: g, Costs: costs})
	}
	return quotes, nil
}
