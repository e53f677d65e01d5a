package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/render"
)

// revisionHeader carries the content revision a page was rendered from.
const revisionHeader = "X-Content-Revision"

type healthResponse struct {
	Status   string `json:"status"`
	Content  bool   `json:"content"`
	Revision string `json:"revision,omitempty"`
	Clients  int    `json:"clients,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Snapshot()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:   "ok",
		Content:  snap.Content != nil,
		Revision: snap.Revision,
		Clients:  s.hub.clients(),
	})
}

// handlePage renders a fresh document per request from the current snapshot.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Snapshot()

	opts := []render.Option{render.WithLogger(s.logger)}
	if s.cfg.LiveReload {
		opts = append(opts, render.WithLiveReload(LiveReloadPath, snap.Revision))
	}

	page, err := render.Render(snap.Shell, snap.Content, opts...)
	if err != nil {
		s.logger.Error("rendering page failed", zap.Error(err))
		http.Error(w, "rendering page failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	if snap.Revision != "" {
		w.Header().Set(revisionHeader, snap.Revision)
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(page))
}

func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Snapshot()
	if snap.Content == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "content not loaded"})
		return
	}
	raw, err := snap.Content.Raw()
	if err != nil {
		s.logger.Error("encoding content document failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "encoding content failed"})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set(revisionHeader, snap.Revision)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

func (s *Server) handleBehaviorScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(render.BehaviorScript))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
