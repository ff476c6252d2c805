package api

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// errorResponse is the body of every JSON error
type errorResponse struct {
	Error string `json:"error"`
}

// sendJSONResponse is a common wrapper for JSON responses that sets Content-Type,
// Content-Length and ETag headers
func (s *Server) sendJSONResponse(w http.ResponseWriter, data interface{}) {
	s.sendJSONResponseWithStatus(w, http.StatusOK, data)
}

func (s *Server) sendJSONResponseWithStatus(w http.ResponseWriter, status int, data interface{}) {
	responseBytes, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}

	// ETag is the MD5 of the body
	hash := md5.Sum(responseBytes)
	etag := hex.EncodeToString(hash[:])

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(responseBytes)))
	w.Header().Set("ETag", "\""+etag+"\"")
	w.WriteHeader(status)

	if _, err := w.Write(responseBytes); err != nil {
		log.Printf("Error writing response: %v", err)
		return
	}
}

// sendJSONError writes {"error": message} with the given status
func (s *Server) sendJSONError(w http.ResponseWriter, status int, message string) {
	s.sendJSONResponseWithStatus(w, status, errorResponse{Error: message})
}

// redirectHome answers a form post with 303 See Other to the dashboard
func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down server: %v", err)
		}
	}
}

// getParamLowercase returns a query or form value in lower case
func getParamLowercase(r *http.Request, key string) string {
	if r == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(r.FormValue(key)))
}
