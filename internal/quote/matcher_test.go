package quote

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurumalab/carfit/internal/model"
)

func testCatalog() ([]model.CarModel, []model.GradeQuote) {
	models := []model.CarModel{
		{ID: 1, Name: "Aegis", CategoryName: "SUV"},
		{ID: 2, Name: "Breeze", CategoryName: "Sedan"},
	}
	quotes := []model.GradeQuote{
		{
			Grade: model.Grade{ID: 10, ModelID: 1, ModelName: "Aegis", Name: "GX", Description: "entry", Rank: 2},
			Costs: model.CostBreakdown{MonthlyRealCost: 40_000, MonthlyTotalCost: 25_000, ResaleValue: 3_000_000},
		},
		{
			Grade: model.Grade{ID: 11, ModelID: 1, ModelName: "Aegis", Name: "ZX", Description: "top", Rank: 1},
			Costs: model.CostBreakdown{MonthlyRealCost: 90_000, MonthlyTotalCost: 50_000, ResaleValue: 5_000_000},
		},
		{
			Grade: model.Grade{ID: 12, ModelID: 2, ModelName: "Breeze", Name: "S", Description: "base", Rank: 3},
			Costs: model.CostBreakdown{MonthlyRealCost: 30_000, MonthlyTotalCost: 20_000, ResaleValue: 2_000_000},
		},
	}
	return models, quotes
}

func TestSearch_BudgetFilter(t *testing.T) {
	models, quotes := testCatalog()

	// 600000/12 = 50000: keeps the 40000 grade, drops the 90000 one.
	rows, err := Search(models, "SUV", quotes, "600000")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(10), rows[0].GradeID)

	for _, row := range rows {
		assert.Less(t, float64(row.MonthlyRealCost), 600000.0/12)
	}
}

func TestSearch_StrictInequality(t *testing.T) {
	models, quotes := testCatalog()

	// 480000/12 = 40000 exactly: the 40000 grade must be excluded.
	rows, err := Search(models, "SUV", quotes, "480000")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSearch_BudgetThresholdNotFloored(t *testing.T) {
	models, quotes := testCatalog()

	// 480001/12 = 40000.08...: strictly above 40000, so the grade fits.
	// The threshold itself must not be floored to 40000.
	rows, err := Search(models, "SUV", quotes, "480001")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(10), rows[0].GradeID)
}

func TestSearch_InvalidBudget(t *testing.T) {
	models, quotes := testCatalog()

	for _, budget := range []string{"abc", "", "12.5", "1,000,000"} {
		rows, err := Search(models, "SUV", quotes, budget)
		require.Error(t, err, "budget %q", budget)
		assert.True(t, errors.Is(err, ErrInvalidBudget))
		assert.Nil(t, rows, "no result set may exist on a bad budget")
	}
}

func TestSearch_UnknownCategoryIsEmptyNotError(t *testing.T) {
	models, quotes := testCatalog()

	rows, err := Search(models, "Kei", quotes, "10000000")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSearch_CategoryIsolation(t *testing.T) {
	models, quotes := testCatalog()

	rows, err := Search(models, "Sedan", quotes, "10000000")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(12), rows[0].GradeID, "only Breeze grades belong to Sedan")
}

func TestSearch_SelectionAlwaysReset(t *testing.T) {
	models, quotes := testCatalog()

	rows, err := Search(models, "SUV", quotes, "10000000")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	for _, row := range rows {
		assert.False(t, row.Selected)
	}

	// Toggling and searching again starts clean.
	rows[0].Selected = true
	again, err := Search(models, "SUV", quotes, "10000000")
	require.NoError(t, err)
	for _, row := range again {
		assert.False(t, row.Selected)
	}
}

func TestSearch_Projection(t *testing.T) {
	models, quotes := testCatalog()

	rows, err := Search(models, "Sedan", quotes, "10000000")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Breeze - S (base)", row.NameDesc)
	assert.Equal(t, int64(30_000), row.MonthlyRealCost)
	assert.Equal(t, int64(20_000), row.MonthlyTotalCost)
	assert.Equal(t, int64(2_000_000), row.ResaleValue)
	assert.Equal(t, 3, row.Rank)
}
