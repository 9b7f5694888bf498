package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	skilltree "github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/internal/logging"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/catalog"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/session"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server serves the workbench over HTTP.
type Server struct {
	Builds  *session.Manager
	Catalog *catalog.Catalog
	Streams *StreamManager

	metrics http.Handler
	logger  *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetricsHandler serves h on /metrics instead of the default registry.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// NewHandler creates the HTTP handler for the workbench.
// cat is the catalog listed by /catalog; new builds use the Manager's options.
func NewHandler(builds *session.Manager, cat *catalog.Catalog, opts ...Option) http.Handler {
	s := &Server{
		Builds:  builds,
		Catalog: cat,
		metrics: promhttp.Handler(),
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Streams = NewStreamManager(s.logger)
	return enableCORS(s.Routes())
}

// Routes builds the chi router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Method(http.MethodGet, "/metrics", s.metrics)
	r.Get("/catalog", s.GetCatalog)

	r.Route("/builds", func(r chi.Router) {
		r.Get("/", s.ListBuilds)
		r.Post("/", s.CreateBuild)

		r.Route("/{buildID}", func(r chi.Router) {
			r.Get("/", s.GetBuild)
			r.Delete("/", s.DeleteBuild)
			r.Get("/summary", s.GetSummary)
			r.Get("/radar", s.GetRadar)
			r.Get("/events", s.SubscribeEvents)

			r.Post("/skills/{skillID}/allocate", s.Allocate)
			r.Post("/skills/{skillID}/deallocate", s.Deallocate)
			r.Post("/skills/{skillID}/reset", s.ResetSkill)
			r.Post("/reset", s.ResetAll)
			r.Post("/undo", s.Undo)
			r.Post("/redo", s.Redo)
			r.Put("/tier", s.SetTier)
		})
	})
	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// TierRequest is the body of POST /builds and PUT /builds/{id}/tier.
type TierRequest struct {
	ExpeditionTier *int `json:"expedition_tier"`
}

// MutationResponse reports the outcome of a write.
type MutationResponse struct {
	Applied bool               `json:"applied"`
	Reason  string             `json:"reason,omitempty"`
	Build   skilltree.Snapshot `json:"build"`
}

// CreateResponse is returned by POST /builds.
type CreateResponse struct {
	ID    string             `json:"id"`
	Build skilltree.Snapshot `json:"build"`
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"app":     "skilltree-http",
		"version": strings.TrimSpace(skilltree.Version),
		"skills":  s.Catalog.Len(),
	})
}

// GetCatalog handles the GET /catalog request.
func (s *Server) GetCatalog(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Catalog.Skills())
}

// ListBuilds handles the GET /builds request.
func (s *Server) ListBuilds(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Builds.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"builds": ids})
}

// CreateBuild handles the POST /builds request. The body is optional.
func (s *Server) CreateBuild(w http.ResponseWriter, r *http.Request) {
	var body TierRequest
	if err := decodeBody(r, &body); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("CreateBuild: invalid request body", "err", err)
		return
	}

	var opts []skilltree.Option
	if body.ExpeditionTier != nil {
		if *body.ExpeditionTier < 0 {
			http.Error(w, "expedition_tier must not be negative", http.StatusBadRequest)
			return
		}
		opts = append(opts, skilltree.WithExpeditionTier(*body.ExpeditionTier))
	}

	id, err := s.Builds.Create(r.Context(), opts...)
	if err != nil {
		s.writeError(w, err)
		return
	}
	snap, err := s.Builds.Snapshot(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Location", "/builds/"+id)
	s.writeJSON(w, http.StatusCreated, CreateResponse{ID: id, Build: snap})
}

// GetBuild handles the GET /builds/{id} request.
func (s *Server) GetBuild(w http.ResponseWriter, r *http.Request) {
	snap, err := s.Builds.Snapshot(r.Context(), chi.URLParam(r, "buildID"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, snap)
}

// DeleteBuild handles the DELETE /builds/{id} request.
func (s *Server) DeleteBuild(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "buildID")
	if err := s.Builds.Delete(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	s.Streams.Close(id)
	w.WriteHeader(http.StatusNoContent)
}

// GetSummary handles the GET /builds/{id}/summary request.
func (s *Server) GetSummary(w http.ResponseWriter, r *http.Request) {
	s.read(w, r, func(p *skilltree.Planner) any { return p.BuildSummary() })
}

// GetRadar handles the GET /builds/{id}/radar request.
func (s *Server) GetRadar(w http.ResponseWriter, r *http.Request) {
	s.read(w, r, func(p *skilltree.Planner) any { return p.Radar() })
}

// Allocate handles POST /builds/{id}/skills/{skill}/allocate.
func (s *Server) Allocate(w http.ResponseWriter, r *http.Request) {
	skill := chi.URLParam(r, "skillID")
	s.mutate(w, r, func(p *skilltree.Planner) (bool, string) {
		reason := p.AllocationDenial(skill)
		return p.Allocate(skill), string(reason)
	})
}

// Deallocate handles POST /builds/{id}/skills/{skill}/deallocate.
func (s *Server) Deallocate(w http.ResponseWriter, r *http.Request) {
	skill := chi.URLParam(r, "skillID")
	s.mutate(w, r, func(p *skilltree.Planner) (bool, string) {
		reason := p.DeallocationDenial(skill)
		return p.Deallocate(skill), string(reason)
	})
}

// ResetSkill handles POST /builds/{id}/skills/{skill}/reset.
func (s *Server) ResetSkill(w http.ResponseWriter, r *http.Request) {
	skill := chi.URLParam(r, "skillID")
	s.mutate(w, r, func(p *skilltree.Planner) (bool, string) {
		reason := p.ResetDenial(skill)
		return p.ResetSkill(skill), string(reason)
	})
}

// ResetAll handles POST /builds/{id}/reset.
func (s *Server) ResetAll(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(p *skilltree.Planner) (bool, string) {
		return p.ResetAll(), ""
	})
}

// Undo handles POST /builds/{id}/undo.
func (s *Server) Undo(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(p *skilltree.Planner) (bool, string) {
		if p.Undo() {
			return true, ""
		}
		return false, ReasonNothingToUndo
	})
}

// Redo handles POST /builds/{id}/redo.
func (s *Server) Redo(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(p *skilltree.Planner) (bool, string) {
		if p.Redo() {
			return true, ""
		}
		return false, ReasonNothingToRedo
	})
}

// SetTier handles PUT /builds/{id}/tier.
func (s *Server) SetTier(w http.ResponseWriter, r *http.Request) {
	var body TierRequest
	if err := decodeBody(r, &body); err != nil || body.ExpeditionTier == nil {
		http.Error(w, "Invalid request body: expedition_tier is required", http.StatusBadRequest)
		s.logger.Warn("SetTier: invalid request body", "err", err)
		return
	}
	tier := *body.ExpeditionTier
	s.mutate(w, r, func(p *skilltree.Planner) (bool, string) {
		if p.SetExpeditionTier(tier) {
			return true, ""
		}
		return false, ReasonInvalidTier
	})
}

// Reasons reported for writes that are not skill gated.
const (
	ReasonNothingToUndo = "nothing_to_undo"
	ReasonNothingToRedo = "nothing_to_redo"
	ReasonInvalidTier   = "invalid_tier"
)

// mutate runs op under the build lock, broadcasts the resulting diff and
// answers with the updated read model.
func (s *Server) mutate(w http.ResponseWriter, r *http.Request, op func(p *skilltree.Planner) (bool, string)) {
	id := chi.URLParam(r, "buildID")

	var resp MutationResponse
	err := s.Builds.WithBuild(r.Context(), id, func(_ context.Context, p *skilltree.Planner) error {
		before := p.Allocation()
		applied, reason := op(p)

		resp.Applied = applied
		if !applied {
			resp.Reason = reason
		}
		resp.Build = p.Snapshot()

		// Broadcast never blocks; sending under the build lock keeps diffs in history order.
		if diff := domain.Diff(before, p.Allocation()); !diff.IsEmpty() {
			if payload, err := json.Marshal(diff); err == nil {
				s.Streams.Broadcast(id, string(payload))
			}
		}
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) read(w http.ResponseWriter, r *http.Request, fn func(p *skilltree.Planner) any) {
	var out any
	err := s.Builds.WithBuild(r.Context(), chi.URLParam(r, "buildID"), func(_ context.Context, p *skilltree.Planner) error {
		out = fn(p)
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, out)
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrBuildNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		s.logger.Error("request failed", "err", err)
		http.Error(w, fmt.Sprintf("internal error: %v", err), http.StatusInternalServerError)
	}
}
