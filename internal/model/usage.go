package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Usage profile bounds enforced at the input boundary. The cost engine
// only guards against non-positive values; these keep the UI honest.
const (
	MinHoldingYears    = 1
	MaxHoldingYears    = 20
	MinDailyUsageHours = 1
	MaxDailyUsageHours = 23
)

// UsageProfile captures one user's stated needs for a single search. It is
// session-scoped and never persisted.
type UsageProfile struct {
	CarCategory string
	// AnnualBudget is kept as the raw user input; the matcher owns
	// parsing it so that a bad budget surfaces as a typed error.
	AnnualBudget    string
	DailyUsageHours int
	HoldingYears    int
}

// Validate checks the profile against the input bounds. The zero value is
// invalid.
func (p UsageProfile) Validate() error {
	if strings.TrimSpace(p.CarCategory) == "" {
		return fmt.Errorf("car category must be set")
	}
	if p.HoldingYears < MinHoldingYears || p.HoldingYears > MaxHoldingYears {
		return fmt.Errorf("holding years must be between %d and %d, got %d", MinHoldingYears, MaxHoldingYears, p.HoldingYears)
	}
	if p.DailyUsageHours < MinDailyUsageHours || p.DailyUsageHours > MaxDailyUsageHours {
		return fmt.Errorf("daily usage hours must be between %d and %d, got %d", MinDailyUsageHours, MaxDailyUsageHours, p.DailyUsageHours)
	}
	budget, err := strconv.Atoi(strings.TrimSpace(p.AnnualBudget))
	if err != nil {
		return fmt.Errorf("annual budget must be a whole number: %q", p.AnnualBudget)
	}
	if budget <= 0 {
		return fmt.Errorf("annual budget must be positive, got %d", budget)
	}
	return nil
}
