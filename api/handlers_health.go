package api

import (
	"net/http"
)

// handleHealth responds with 200 OK to indicate the service is running
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	snapshot := s.controller.Snapshot()

	services := map[string]string{
		"coingecko": "unknown",
	}
	if !snapshot.LastUpdated.IsZero() {
		services["coingecko"] = "up"
	}

	status := map[string]interface{}{
		"status":    "ok",
		"services":  services,
		"favorites": snapshot.FavoritesCount(),
	}
	if s.hub != nil {
		status["websocket_clients"] = s.hub.ClientCount()
	}

	s.sendJSONResponse(w, status)
}
