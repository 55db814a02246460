package quote

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurumalab/carfit/internal/model"
)

func testGrade() model.Grade {
	return model.Grade{
		ID:                   1,
		ModelID:              1,
		ModelName:            "Aegis",
		Name:                 "GX",
		Description:          "entry trim",
		BasePrice:            10_000_000,
		FuelCostPerKm:        10,
		MonthlyMainteCost:    10_000,
		MonthlyInsuranceCost: 4_000,
		MonthlyParkingCost:   12_000,
		MonthlyPriceDropRate: 0.02,
	}
}

func TestCompute_KnownFigures(t *testing.T) {
	costs, err := Compute(4, 1, testGrade())
	require.NoError(t, err)

	// hold_month = 48
	assert.Equal(t, int64(576_000), costs.FuelCost, "fuel: 10 * 1 * 40 * 48 * 30")
	assert.Equal(t, int64(480_000), costs.MainteCost)
	assert.Equal(t, int64(192_000), costs.InsuranceCost)

	wantResale := int64(10_000_000 * math.Pow(0.98, 48))
	assert.Equal(t, wantResale, costs.ResaleValue)

	// 576000/30 + 10000 + 4000 = 33200, already whole
	assert.Equal(t, int64(33_200), costs.MonthlyTotalCost)

	wantReal := int64((10_000_000 - float64(wantResale) + 33_200 + 33_200*48) / 48)
	assert.Equal(t, wantReal, costs.MonthlyRealCost)
}

func TestCompute_Deterministic(t *testing.T) {
	g := testGrade()
	first, err := Compute(7, 3, g)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := Compute(7, 3, g)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestCompute_InvalidProfile(t *testing.T) {
	tests := []struct {
		name  string
		years int
		hours int
	}{
		{name: "zero holding years", years: 0, hours: 1},
		{name: "negative holding years", years: -3, hours: 1},
		{name: "zero usage hours", years: 4, hours: 0},
		{name: "negative usage hours", years: 4, hours: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(tt.years, tt.hours, testGrade())
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidUsageProfile))
		})
	}
}

func TestCompute_MonotonicInBasePrice(t *testing.T) {
	cheap := testGrade()
	dear := testGrade()
	dear.BasePrice = cheap.BasePrice + 1_500_000

	for years := 1; years <= 20; years++ {
		a, err := Compute(years, 2, cheap)
		require.NoError(t, err)
		b, err := Compute(years, 2, dear)
		require.NoError(t, err)
		assert.LessOrEqual(t, a.MonthlyRealCost, b.MonthlyRealCost,
			"years=%d: raising the base price must not lower the monthly real cost", years)
	}
}

func TestCompute_DropRateNotClamped(t *testing.T) {
	// Rates at or above 1 are nonsense but deliberately passed through.
	g := testGrade()
	g.MonthlyPriceDropRate = 1.0
	costs, err := Compute(3, 1, g)
	require.NoError(t, err)
	assert.Equal(t, int64(0), costs.ResaleValue)
}

func TestCompute_DoesNotMutateGrade(t *testing.T) {
	g := testGrade()
	before := g
	_, err := Compute(5, 2, g)
	require.NoError(t, err)
	assert.Equal(t, before, g)
}

func TestComputeAll(t *testing.T) {
	grades := []model.Grade{testGrade(), testGrade(), testGrade()}
	grades[1].ID = 2
	grades[1].BasePrice = 12_000_000
	grades[2].ID = 3
	grades[2].BasePrice = 8_000_000

	quotes, err := ComputeAll(4, 1, grades)
	require.NoError(t, err)
	require.Len(t, quotes, 3)

	for i, q := range quotes {
		assert.Equal(t, grades[i].ID, q.Grade.ID, "input order must be preserved")
		want, err := Compute(4, 1, grades[i])
		require.NoError(t, err)
		assert.Equal(t, want, q.Costs)
	}
}

func TestComputeAll_InvalidProfile(t *testing.T) {
	_, err := ComputeAll(0, 1, []model.Grade{testGrade()})
	assert.True(t, errors.Is(err, ErrInvalidUsageProfile))
}
