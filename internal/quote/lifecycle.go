package quote

import (
	"github.com/kurumalab/carfit/internal/model"
)

// LifecyclePoint is one elapsed year of a grade's spend curve.
type LifecyclePoint struct {
	Year            int
	CumulativeSpend int64
	AnnualSpend     int64
}

// CostItem is one bucket of the spend breakdown. A resale gain carries a
// negative amount.
type CostItem struct {
	Label  string
	Amount int64
}

// LifecycleSeries is the comparison view of one quoted grade: spend per
// elapsed year plus the initial/maintenance/resale breakdown.
type LifecycleSeries struct {
	Label  string
	Points []LifecyclePoint
	Items  []CostItem
}

// Breakdown bucket labels.
const (
	ItemInitialCost = "initial cost"
	ItemMaintenance = "maintenance"
	ItemResaleGain  = "resale gain"
)

// Lifecycle expands a quote into its year-by-year spend series over the
// holding period. Cumulative spend at year N is the purchase price less the
// projected resale value plus N times the monthly running total.
func Lifecycle(holdingYears int, q model.GradeQuote) LifecycleSeries {
	series := LifecycleSeries{
		Label:  q.Grade.NameDesc(),
		Points: make([]LifecyclePoint, 0, holdingYears),
	}
	for year := 1; year <= holdingYears; year++ {
		series.Points = append(series.Points, LifecyclePoint{
			Year:            year,
			CumulativeSpend: q.Grade.BasePrice - q.Costs.ResaleValue + int64(year)*q.Costs.MonthlyTotalCost,
			AnnualSpend:     q.Costs.MonthlyTotalCost,
		})
	}
	series.Items = []CostItem{
		{Label: ItemInitialCost, Amount: q.Grade.BasePrice},
		{Label: ItemMaintenance, Amount: q.Costs.MainteCost},
		{Label: ItemResaleGain, Amount: -q.Costs.ResaleValue},
	}
	return series
}

// LifecycleAll expands every quote, preserving input order.
func LifecycleAll(holdingYears int, quotes []model.GradeQuote) []LifecycleSeries {
	out := make([]LifecycleSeries, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, Lifecycle(holdingYears, q))
	}
	return out
}
