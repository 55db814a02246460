package quote

import (
	"sort"

	"github.com/kurumalab/carfit/internal/model"
)

// SortKey selects the display ordering of a search result.
type SortKey string

const (
	// SortByCost orders cheapest monthly real cost first.
	SortByCost SortKey = "cost"
	// SortByRank orders most popular first (lower rank = more popular).
	SortByRank SortKey = "rank"
)

// ParseSortKey maps a user-supplied sort name onto a SortKey, defaulting
// to cost ordering for anything unrecognized.
func ParseSortKey(s string) SortKey {
	if SortKey(s) == SortByRank {
		return SortByRank
	}
	return SortByCost
}

// SortRows orders rows in place by the given key. The sort is stable, so
// ties keep the underlying row order and identical inputs always produce
// identical output.
func SortRows(rows []model.SearchRow, key SortKey) {
	switch key {
	case SortByRank:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Rank < rows[j].Rank
		})
	default:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].MonthlyRealCost < rows[j].MonthlyRealCost
		})
	}
}
