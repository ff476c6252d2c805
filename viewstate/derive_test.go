package viewstate

import (
	"testing"

	"github.com/status-im/market-dashboard/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func btcEth() []interfaces.CoinSummary {
	return []interfaces.CoinSummary{
		{ID: "btc", Symbol: "btc", Name: "Bitcoin", CurrentPrice: 50000, PriceChangePercentage24h: 2.5},
		{ID: "eth", Symbol: "eth", Name: "Ethereum", CurrentPrice: 3000, PriceChangePercentage24h: -1.2},
	}
}

func ids(coins []interfaces.CoinSummary) []string {
	result := make([]string, 0, len(coins))
	for _, c := range coins {
		result = append(result, c.ID)
	}
	return result
}

func TestDerive_EndToEnd(t *testing.T) {
	coins := btcEth()
	favorites := []string{"eth"}

	tests := []struct {
		name      string
		tab       Tab
		query     string
		field     SortField
		ascending bool
		expected  []string
	}{
		{name: "favorites tab", tab: TabFavorites, field: SortByPrice, expected: []string{"eth"}},
		{name: "market by price descending", tab: TabMarket, field: SortByPrice, expected: []string{"btc", "eth"}},
		{name: "market by price ascending", tab: TabMarket, field: SortByPrice, ascending: true, expected: []string{"eth", "btc"}},
		{name: "search eth", tab: TabMarket, query: "eth", field: SortByPrice, expected: []string{"eth"}},
		{name: "search is case insensitive", tab: TabMarket, query: "BIT", field: SortByPrice, expected: []string{"btc"}},
		{name: "favorites and query", tab: TabFavorites, query: "bit", field: SortByPrice, expected: []string{}},
		{name: "by change descending", tab: TabMarket, field: SortByChange, expected: []string{"btc", "eth"}},
		{name: "no match", tab: TabMarket, query: "doge", field: SortByPrice, expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(coins, tt.tab, tt.query, favorites, tt.field, tt.ascending)
			assert.Equal(t, tt.expected, ids(got))
		})
	}
}

func TestDerive_FavoritesNotInPage(t *testing.T) {
	got := Derive(btcEth(), TabFavorites, "", []string{"solana"}, SortByPrice, false)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestDerive_DoesNotMutateInput(t *testing.T) {
	coins := btcEth()
	original := btcEth()

	got := Derive(coins, TabMarket, "", nil, SortByPrice, true)
	assert.Equal(t, original, coins)
	require.Len(t, got, 2)

	got[0].Name = "changed"
	assert.Equal(t, original, coins, "result must not alias the input")
}

func TestDerive_StableSort(t *testing.T) {
	coins := []interfaces.CoinSummary{
		{ID: "a", TotalVolume: 10},
		{ID: "b", TotalVolume: 20},
		{ID: "c", TotalVolume: 10},
		{ID: "d", TotalVolume: 20},
		{ID: "e", TotalVolume: 10},
	}

	assert.Equal(t, []string{"b", "d", "a", "c", "e"}, ids(Derive(coins, TabMarket, "", nil, SortByVolume, false)))
	assert.Equal(t, []string{"a", "c", "e", "b", "d"}, ids(Derive(coins, TabMarket, "", nil, SortByVolume, true)))
}

func TestDerive_ToggleTwiceReverses(t *testing.T) {
	coins := []interfaces.CoinSummary{
		{ID: "a", CurrentPrice: 3, PriceChangePercentage24h: -1, TotalVolume: 100},
		{ID: "b", CurrentPrice: 1, PriceChangePercentage24h: 5, TotalVolume: 300},
		{ID: "c", CurrentPrice: 2, PriceChangePercentage24h: 0, TotalVolume: 200},
	}

	for _, field := range []SortField{SortByPrice, SortByChange, SortByVolume} {
		t.Run(string(field), func(t *testing.T) {
			state := Default()
			state.SortField = SortByVolume
			if field == SortByVolume {
				state.SortField = SortByPrice
			}

			state.ToggleSort(field)
			first := ids(state.Apply(coins, nil))

			state.ToggleSort(field)
			second := ids(state.Apply(coins, nil))

			reversed := make([]string, len(first))
			for i, id := range first {
				reversed[len(first)-1-i] = id
			}
			assert.Equal(t, reversed, second)
		})
	}
}
