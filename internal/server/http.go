package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/gogevgelija/ggadmin/internal/logging"
)

// newMux wires the HTTP routes for the backend.
func (s *Server) newMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/forms", s.handleCatalog)
	mux.HandleFunc("/api/forms/", s.handleForm)
	mux.HandleFunc("/api/events", s.hub.HandleEvents)
	return mux
}

// handleCatalog serves the record index.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, s.store.Catalog())
}

// handleForm serves GET (fetch form) and POST (submit values) for one record.
// Record IDs contain a slash ("listing/42"), so everything after the prefix
// is the ID.
func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/forms/")
	if id == "" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.handleGetForm(w, r, id)
	case http.MethodPost:
		s.handleSubmit(w, r, id)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleGetForm(w http.ResponseWriter, r *http.Request, id string) {
	f := s.store.Get(id)
	if f == nil {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, f)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request, id string) {
	if s.store.Get(id) == nil {
		http.NotFound(w, r)
		return
	}

	var values map[string]string
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		http.Error(w, "invalid submission body", http.StatusBadRequest)
		return
	}

	result := s.store.Validate(id, values)
	if result.Valid {
		s.store.Apply(id, values)
	}

	// Push the verdict to subscribers before answering the submitter, so a
	// client that is both never sees its HTTP response race ahead of the
	// event it waits on.
	s.hub.Broadcast(result)

	logging.Debug("Submission handled",
		zap.String("form_id", id),
		zap.Bool("valid", result.Valid),
		zap.Int("error_count", len(result.Errors)),
	)
	writeJSON(w, result)
}

// writeJSON writes v as a JSON response body.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Warn("Failed to encode response", zap.Error(err))
	}
}
