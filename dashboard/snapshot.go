package dashboard

import (
	"slices"
	"time"

	"github.com/status-im/market-dashboard/interfaces"
	"github.com/status-im/market-dashboard/viewstate"
)

// Snapshot is a point-in-time copy of everything needed to render the dashboard.
// It shares no memory with the controller.
type Snapshot struct {
	State viewstate.State
	// Coins is the derived, visible list
	Coins []interfaces.CoinSummary
	// LoadedCount is the size of the fetched page before filtering
	LoadedCount    int
	Loading        bool
	Error          string
	Favorites      []string
	ShowPagination bool
	PerPage        int
	LastUpdated    time.Time
	Detail         *DetailSnapshot
}

// DetailSnapshot describes the open detail modal
type DetailSnapshot struct {
	CoinID  string
	Loading bool
	Error   string
	Coin    *interfaces.CoinDetail
}

// IsFavorite reports whether id was a favorite when the snapshot was taken
func (s Snapshot) IsFavorite(id string) bool {
	return slices.Contains(s.Favorites, id)
}

// FavoritesCount returns the number of favorites
func (s Snapshot) FavoritesCount() int {
	return len(s.Favorites)
}

// IsEmpty reports whether there is nothing to list once loading finished without error
func (s Snapshot) IsEmpty() bool {
	return !s.Loading && s.Error == "" && len(s.Coins) == 0
}
