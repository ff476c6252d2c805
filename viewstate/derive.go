package viewstate

import (
	"slices"

	"github.com/status-im/market-dashboard/interfaces"
)

// Derive returns the coins to display: favorites filter first when tab is
// TabFavorites, then the query filter, then a stable sort on field. The input
// slice is never modified and the result never aliases it.
func Derive(coins []interfaces.CoinSummary, tab Tab, query string, favorites []string, field SortField, ascending bool) []interfaces.CoinSummary {
	result := make([]interfaces.CoinSummary, 0, len(coins))

	var favoriteSet map[string]struct{}
	if tab == TabFavorites {
		favoriteSet = make(map[string]struct{}, len(favorites))
		for _, id := range favorites {
			favoriteSet[id] = struct{}{}
		}
	}

	for _, coin := range coins {
		if favoriteSet != nil {
			if _, ok := favoriteSet[coin.ID]; !ok {
				continue
			}
		}
		if !coin.MatchesQuery(query) {
			continue
		}
		result = append(result, coin)
	}

	value := field.value
	slices.SortStableFunc(result, func(a, b interfaces.CoinSummary) int {
		va, vb := value(a), value(b)
		if ascending {
			return compareFloat(va, vb)
		}
		return compareFloat(vb, va)
	})

	return result
}

// Apply derives the visible list for state
func (s State) Apply(coins []interfaces.CoinSummary, favorites []string) []interfaces.CoinSummary {
	return Derive(coins, s.Tab, s.Query, favorites, s.SortField, s.SortAscending)
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
