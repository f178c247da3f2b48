package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/umputun/confdesk/pkg/preferences"
)

// keepAliveInterval of preference event streams
var keepAliveInterval = 30 * time.Second

func (s *Server) getPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	RenderJSON(w, r, http.StatusOK, s.prefs(r).Load(r.Context()))
}

// patchPreferencesHandler applies a partial update, nothing is stored if any field is invalid
func (s *Server) patchPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	var patch preferences.Patch
	if err := decodeJSON(r, &patch); err != nil {
		renderFailure(w, r, err)
		return
	}
	st := s.prefs(r)
	if err := st.Apply(r.Context(), patch); err != nil {
		renderFailure(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, st.Load(r.Context()))
}

// preferenceEventsHandler streams the caller's preference changes as server-sent events
func (s *Server) preferenceEventsHandler(w http.ResponseWriter, r *http.Request) {
	if s.Broadcaster == nil {
		RenderError(w, r, errors.New("preference events are not available"), http.StatusNotImplemented)
		return
	}
	rc := http.NewResponseController(w)
	changes, cancel := s.Broadcaster.Subscribe(caller(r).ID)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	if err := rc.Flush(); err != nil {
		log.Printf("[WARN] preference events can't be streamed: %v", err)
		return
	}

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()
	for {
		select {
		case <-r.Context().Done():
			return
		case <-keepAlive.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
		case c, ok := <-changes:
			if !ok {
				return
			}
			data, err := json.Marshal(c)
			if err != nil {
				log.Printf("[WARN] can't encode preference change: %v", err)
				continue
			}
			if _, err := fmt.Fprintf(w, "event: preference\ndata: %s\n\n", data); err != nil {
				return
			}
		}
		if err := rc.Flush(); err != nil {
			return
		}
	}
}
