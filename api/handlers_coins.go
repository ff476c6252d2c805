package api

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/status-im/market-dashboard/interfaces"
)

// coinsResponse is the JSON form of the visible list
type coinsResponse struct {
	Tab           string                   `json:"tab"`
	Query         string                   `json:"query"`
	SortField     string                   `json:"sort_field"`
	SortAscending bool                     `json:"sort_ascending"`
	Page          int                      `json:"page"`
	Loading       bool                     `json:"loading"`
	Error         string                   `json:"error,omitempty"`
	Coins         []interfaces.CoinSummary `json:"coins"`
}

// handleCoins returns the derived list exactly as the page shows it
func (s *Server) handleCoins(w http.ResponseWriter, r *http.Request) {
	snapshot := s.controller.Snapshot()
	s.sendJSONResponse(w, coinsResponse{
		Tab:           string(snapshot.State.Tab),
		Query:         snapshot.State.Query,
		SortField:     string(snapshot.State.SortField),
		SortAscending: snapshot.State.SortAscending,
		Page:          snapshot.State.Page,
		Loading:       snapshot.Loading,
		Error:         snapshot.Error,
		Coins:         snapshot.Coins,
	})
}

// handleSearchCoins searches the top coins by name or symbol
func (s *Server) handleSearchCoins(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		s.sendJSONError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}

	result := s.client.SearchCoins(r.Context(), query)
	if !result.IsOk() {
		s.sendJSONError(w, upstreamStatus(result.Err), result.Err.Message)
		return
	}
	s.sendJSONResponse(w, result.Value)
}

// handleCoinDetail proxies /coins/{id}
func (s *Server) handleCoinDetail(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result := s.client.FetchCoinDetail(r.Context(), id)
	if !result.IsOk() {
		s.sendJSONError(w, upstreamStatus(result.Err), result.Err.Message)
		return
	}
	s.sendJSONResponse(w, result.Value)
}

// handleFavorites returns the favorite ids
func (s *Server) handleFavorites(w http.ResponseWriter, r *http.Request) {
	s.sendJSONResponse(w, s.favorites.GetFavorites())
}

// upstreamStatus maps a failed CoinGecko call onto our response status.
// A missing coin stays a 404; anything else is a bad gateway.
func upstreamStatus(err *interfaces.FetchError) int {
	if err != nil && err.StatusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}
