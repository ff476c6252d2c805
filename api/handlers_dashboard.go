package api

import (
	"bytes"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/status-im/market-dashboard/dashboard"
	"github.com/status-im/market-dashboard/viewstate"
)

// handlePage renders the dashboard with the detail modal closed
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, s.controller.Snapshot())
}

// handleCoinPage renders the dashboard with the detail modal open for {id}
func (s *Server) handleCoinPage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.renderPage(w, s.controller.SnapshotWithDetail(r.Context(), id))
}

func (s *Server) renderPage(w http.ResponseWriter, snapshot dashboard.Snapshot) {
	var buf bytes.Buffer
	if err := s.renderer.Page(&buf, snapshot); err != nil {
		log.Printf("Error rendering page: %v", err)
		http.Error(w, "Error rendering page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

func (s *Server) handleSetTab(w http.ResponseWriter, r *http.Request) {
	tab, err := viewstate.ParseTab(getParamLowercase(r, "tab"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.controller.SetTab(tab)
	redirectHome(w, r)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	s.controller.SetQuery(r.FormValue("q"))
	redirectHome(w, r)
}

func (s *Server) handleSort(w http.ResponseWriter, r *http.Request) {
	field, err := viewstate.ParseSortField(getParamLowercase(r, "field"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.controller.ToggleSort(field)
	redirectHome(w, r)
}

func (s *Server) handleNextPage(w http.ResponseWriter, r *http.Request) {
	s.controller.NextPage()
	redirectHome(w, r)
}

func (s *Server) handlePrevPage(w http.ResponseWriter, r *http.Request) {
	s.controller.PrevPage()
	redirectHome(w, r)
}

// handleRefresh is the retry action of the error panel
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	s.controller.Refresh()
	redirectHome(w, r)
}

func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.controller.ToggleFavorite(id)
	redirectHome(w, r)
}

func (s *Server) handleClearFavorites(w http.ResponseWriter, r *http.Request) {
	s.controller.ClearFavorites()
	redirectHome(w, r)
}
