package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
)

// StreamManager handles active SSE connections.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan string]struct{} // build id -> set of channels
	logger      *slog.Logger
}

// NewStreamManager creates an empty manager that reports dropped messages to logger.
func NewStreamManager(logger *slog.Logger) *StreamManager {
	return &StreamManager{
		subscribers: make(map[string]map[chan string]struct{}),
		logger:      logger,
	}
}

// Subscribe registers a buffered channel for one build.
// The returned func unregisters and closes it.
func (sm *StreamManager) Subscribe(buildID string) (chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan string, 10)
	if _, ok := sm.subscribers[buildID]; !ok {
		sm.subscribers[buildID] = make(map[chan string]struct{})
	}
	sm.subscribers[buildID][ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		subs := sm.subscribers[buildID]
		if _, ok := subs[ch]; !ok {
			return // already closed by Close
		}
		delete(subs, ch)
		close(ch)
		if len(subs) == 0 {
			delete(sm.subscribers, buildID)
		}
	}
}

// Close ends every stream of the build.
func (sm *StreamManager) Close(buildID string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	for ch := range sm.subscribers[buildID] {
		close(ch)
	}
	delete(sm.subscribers, buildID)
}

// Broadcast sends msg to every subscriber of the build.
// Slow clients with a full buffer miss the message.
func (sm *StreamManager) Broadcast(buildID string, msg string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	for ch := range sm.subscribers[buildID] {
		select {
		case ch <- msg:
		default:
			sm.logger.Warn("SSE: client buffer full, dropping message", "build", buildID)
		}
	}
}

// Subscribers returns the number of open streams for the build.
func (sm *StreamManager) Subscribers(buildID string) int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.subscribers[buildID])
}

// SubscribeEvents handles the GET /builds/{id}/events request (SSE).
// Each applied mutation is sent as an allocation diff.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	id := chi.URLParam(r, "buildID")
	if _, err := s.Builds.Snapshot(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cancel := s.Streams.Subscribe(id)
	defer cancel()
	s.logger.Info("SSE: subscribed", "build", id)

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.logger.Info("SSE: client disconnected", "build", id)
			return
		case msg, ok := <-ch:
			if !ok {
				s.logger.Info("SSE: stream closed", "build", id)
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}
