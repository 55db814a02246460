package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurumalab/carfit/internal/model"
)

func TestLifecycle(t *testing.T) {
	q := model.GradeQuote{
		Grade: model.Grade{
			ModelName:   "Aegis",
			Name:        "GX",
			Description: "entry",
			BasePrice:   5_000_000,
		},
		Costs: model.CostBreakdown{
			MainteCost:       360_000,
			ResaleValue:      2_000_000,
			MonthlyTotalCost: 30_000,
		},
	}

	series := Lifecycle(3, q)
	assert.Equal(t, "Aegis - GX (entry)", series.Label)
	require.Len(t, series.Points, 3)

	for i, p := range series.Points {
		year := i + 1
		assert.Equal(t, year, p.Year)
		assert.Equal(t, int64(5_000_000-2_000_000)+int64(year)*30_000, p.CumulativeSpend)
		assert.Equal(t, int64(30_000), p.AnnualSpend)
	}

	require.Len(t, series.Items, 3)
	assert.Equal(t, CostItem{Label: ItemInitialCost, Amount: 5_000_000}, series.Items[0])
	assert.Equal(t, CostItem{Label: ItemMaintenance, Amount: 360_000}, series.Items[1])
	assert.Equal(t, CostItem{Label: ItemResaleGain, Amount: -2_000_000}, series.Items[2])
}

func TestLifecycleAll_PreservesOrder(t *testing.T) {
	quotes := []model.GradeQuote{
		{Grade: model.Grade{ModelName: "A", Name: "1", Description: "x"}},
		{Grade: model.Grade{ModelName: "B", Name: "2", Description: "y"}},
	}
	series := LifecycleAll(2, quotes)
	require.Len(t, series, 2)
	assert.Equal(t, "A - 1 (x)", series[0].Label)
	assert.Equal(t, "B - 2 (y)", series[1].Label)
}
