package model

import "fmt"

// Grade is a specific trim/configuration of a CarModel, carrying its own
// base price and running-cost attributes. Grade rows are read-only once
// loaded; derived cost figures live in CostBreakdown, never here.
type Grade struct {
	Name        string
	Description string
	ModelName   string
	ImageURL    string

	ID      int64
	ModelID int64

	// BasePrice is the purchase price in whole currency units.
	BasePrice int64

	// Rank is a popularity ordering key, lower = more popular. It is
	// derived from confirmed reservation counts at load time.
	Rank int

	FuelCostPerKm        float64
	MonthlyMainteCost    float64
	MonthlyInsuranceCost float64
	// MonthlyParkingCost is carried from the catalog but not used by the
	// cost projection.
	MonthlyParkingCost   float64
	MonthlyPriceDropRate float64
}

// NameDesc returns the human-readable label for a grade. The grade name
// alone is not unique across models, so the model name and description are
// folded in.
func (g Grade) NameDesc() string {
	return fmt.Sprintf("%s - %s (%s)", g.ModelName, g.Name, g.Description)
}

// CostBreakdown holds the ownership-cost projection for one grade under
// one usage profile. All figures are truncated to whole currency units.
type CostBreakdown struct {
	FuelCost         int64
	MainteCost       int64
	InsuranceCost    int64
	ResaleValue      int64
	MonthlyTotalCost int64
	MonthlyRealCost  int64
}

// GradeQuote pairs a grade with its computed cost breakdown.
type GradeQuote struct {
	Grade Grade
	Costs CostBreakdown
}

// SearchRow is one row of a search result, projected for display. Selected
// starts false on every fresh search and is toggled by the user.
type SearchRow struct {
	ImageURL         string
	NameDesc         string
	GradeID          int64
	MonthlyRealCost  int64
	MonthlyTotalCost int64
	ResaleValue      int64
	Rank             int
	Selected         bool
}
