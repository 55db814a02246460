// Package quote implements the ownership-cost projection and the
// budget/category matching engine. Everything in this package is a pure
// function of its inputs; failures are typed so callers can tell bad input
// apart from an empty match.
package quote

import "errors"

var (
	// ErrInvalidUsageProfile is returned when the holding period or daily
	// usage hours are non-positive. A zero holding period would divide by
	// zero in the monthly figures, so it is rejected up front.
	ErrInvalidUsageProfile = errors.New("invalid usage profile")

	// ErrInvalidBudget is returned when the annual budget is not an
	// integer. Distinguished from an empty result: no result set exists
	// when this error is returned.
	ErrInvalidBudget = errors.New("invalid budget")
)
