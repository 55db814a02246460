package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurumalab/carfit/internal/model"
)

func TestPromptUsageProfile(t *testing.T) {
	input := strings.NewReader("SUV\n700000\n2\n5\n")
	var output bytes.Buffer
	p := NewPrompter(input, &output)

	profile, err := p.PromptUsageProfile(context.Background(), []model.Category{{ID: 1, Name: "SUV"}})
	require.NoError(t, err)
	assert.Equal(t, "SUV", profile.CarCategory)
	assert.Equal(t, "700000", profile.AnnualBudget)
	assert.Equal(t, 2, profile.DailyUsageHours)
	assert.Equal(t, 5, profile.HoldingYears)
	assert.Contains(t, output.String(), "SUV")
}

func TestPromptUsageProfile_RepromptsOnInvalid(t *testing.T) {
	// First pass has an out-of-range holding period; second pass is valid.
	input := strings.NewReader("SUV\n700000\n2\n0\nSUV\n700000\n2\n5\n")
	var output bytes.Buffer
	p := NewPrompter(input, &output)

	profile, err := p.PromptUsageProfile(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 5, profile.HoldingYears)
	assert.Contains(t, output.String(), "holding years")
}

func TestPromptUsageProfile_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPrompter(strings.NewReader(""), &bytes.Buffer{})
	_, err := p.PromptUsageProfile(ctx, nil)
	assert.ErrorIs(t, err, ErrInputCancelled)
}

func TestPromptReservation(t *testing.T) {
	grade := model.Grade{ID: 10, ModelName: "Aegis", Name: "GX", Description: "entry"}
	colors := []model.Option{{ID: 1, Name: "Pearl White", Price: 50_000, Kind: model.OptionColor}}
	interiors := []model.Option{{ID: 3, Name: "Leather", Price: 200_000, Kind: model.OptionInterior}}

	// name, email, region, color ids, interior ids; no exterior prompt
	// because the exterior catalog is empty.
	input := strings.NewReader("Taro\ntaro@example.com\nTokyo\n1\n\n")
	var output bytes.Buffer
	p := NewPrompter(input, &output)

	req, err := p.PromptReservation(context.Background(), grade, colors, interiors, nil)
	require.NoError(t, err)
	assert.Equal(t, "Taro", req.UserName)
	assert.Equal(t, int64(10), req.GradeID)
	assert.Equal(t, []int64{1}, req.ColorIDs)
	assert.Empty(t, req.InteriorIDs)
	assert.Empty(t, req.ExteriorIDs)
}

func TestPromptOptions_RejectsUnknownID(t *testing.T) {
	grade := model.Grade{ID: 10, ModelName: "Aegis", Name: "GX", Description: "entry"}
	colors := []model.Option{{ID: 1, Name: "Pearl White", Price: 50_000}}

	// "9" is not in the catalog; the prompt asks again and "1" succeeds.
	input := strings.NewReader("Taro\ntaro@example.com\nTokyo\n9\n1\n")
	var output bytes.Buffer
	p := NewPrompter(input, &output)

	req, err := p.PromptReservation(context.Background(), grade, colors, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, req.ColorIDs)
	assert.Contains(t, output.String(), "no option with id 9")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "y\n", want: true},
		{input: "yes\n", want: true},
		{input: "Y\n", want: true},
		{input: "n\n", want: false},
		{input: "\n", want: false},
		{input: "maybe\n", want: false},
	}
	for _, tt := range tests {
		p := NewPrompter(strings.NewReader(tt.input), &bytes.Buffer{})
		got, err := p.Confirm(context.Background(), "Proceed?")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestParseIDList(t *testing.T) {
	ids, err := parseIDList("1, 3,5")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 5}, ids)

	_, err = parseIDList("1,x")
	assert.Error(t, err)
}
