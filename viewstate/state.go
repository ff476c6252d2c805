package viewstate

import (
	"fmt"
	"strings"

	"github.com/status-im/market-dashboard/interfaces"
)

// Tab selects which list is shown
type Tab string

const (
	TabMarket    Tab = "market"
	TabFavorites Tab = "favorites"
)

// ParseTab converts a form or query value into a Tab
func ParseTab(s string) (Tab, error) {
	switch Tab(strings.ToLower(s)) {
	case TabMarket:
		return TabMarket, nil
	case TabFavorites:
		return TabFavorites, nil
	default:
		return "", fmt.Errorf("unknown tab %q", s)
	}
}

// SortField is the numeric column the list is ordered by
type SortField string

const (
	SortByPrice  SortField = "price"
	SortByChange SortField = "change"
	SortByVolume SortField = "volume"
)

// ParseSortField converts a form or query value into a SortField
func ParseSortField(s string) (SortField, error) {
	switch SortField(strings.ToLower(s)) {
	case SortByPrice:
		return SortByPrice, nil
	case SortByChange:
		return SortByChange, nil
	case SortByVolume:
		return SortByVolume, nil
	default:
		return "", fmt.Errorf("unknown sort field %q", s)
	}
}

func (f SortField) value(c interfaces.CoinSummary) float64 {
	switch f {
	case SortByChange:
		return c.PriceChangePercentage24h
	case SortByVolume:
		return c.TotalVolume
	default:
		return c.CurrentPrice
	}
}

// State is the user-controlled part of the dashboard. It is not persisted.
type State struct {
	Tab           Tab
	Query         string
	SortField     SortField
	SortAscending bool
	// Page is 1-based and only used by the market tab
	Page int
}

// Default returns the state of a freshly opened dashboard
func Default() State {
	return State{
		Tab:       TabMarket,
		SortField: SortByPrice,
		Page:      1,
	}
}

// ToggleSort flips the direction when field is already active; a new field
// starts descending.
func (s *State) ToggleSort(field SortField) {
	if s.SortField == field {
		s.SortAscending = !s.SortAscending
		return
	}
	s.SortField = field
	s.SortAscending = false
}

// ShowPagination reports whether page controls apply. Search and the favorites
// tab only filter the page that is currently loaded.
func (s State) ShowPagination() bool {
	return s.Tab == TabMarket && s.Query == ""
}

// NextPage advances one page
func (s *State) NextPage() {
	s.Page++
}

// PrevPage goes back one page, never below the first. It reports whether the page changed.
func (s *State) PrevPage() bool {
	if s.Page <= 1 {
		s.Page = 1
		return false
	}
	s.Page--
	return true
}
