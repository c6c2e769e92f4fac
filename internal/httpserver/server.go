// internal/httpserver/server.go
//
// HTTP server wiring for mission control.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/metrics".
//   - POST /missions: run a mission from inline planet/rover/commands text.
//   - Catalog endpoints (require auth): run a mission by catalog names,
//     read catalog definitions.
//
// Notes:
//   - Each request drives exactly one mission loop; nothing is kept between requests.
//   - Mission endpoints are rate limited per client IP.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/marsrover/internal/adapters"
	mlog "github.com/robalobadob/marsrover/internal/log"
	"github.com/robalobadob/marsrover/internal/mission"
	"github.com/robalobadob/marsrover/internal/store"
)

// Options configures a Server.
type Options struct {
	Catalog            store.Catalog
	JWTSecret          string
	ClientOrigin       string
	InterpretTimeout   time.Duration
	RateLimitPerMinute int
}

// Server bundles the router and the mission catalog.
type Server struct {
	r    *chi.Mux
	opts Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	s := &Server{r: chi.NewRouter(), opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(30 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))         // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"marsrover","endpoints":["/health","/metrics","POST /missions","POST /catalog/run"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	limit := rateLimit(opts.RateLimitPerMinute, time.Minute)

	// Inline missions: public
	s.r.With(limit).Post("/missions", s.handleInlineMission)

	// Catalog: require auth
	s.r.Route("/catalog", func(r chi.Router) {
		r.Use(requireAuth(opts.JWTSecret))
		r.With(limit).Post("/run", s.handleCatalogMission)
		r.Get("/planets/{name}", s.handleDefinition(opts.Catalog.Planet))
		r.Get("/rovers/{name}", s.handleDefinition(opts.Catalog.Rover))
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 10 * time.Second}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ------------------------------ MISSIONS -----------------------------------

// missionReq is the payload for both mission endpoints. For POST /missions
// Planet and Rover hold definition text; for POST /catalog/run they hold
// catalog names.
type missionReq struct {
	Planet   string `json:"planet"`
	Rover    string `json:"rover"`
	Commands string `json:"commands"`
}

type roverRes struct {
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Heading string `json:"heading"`
}

type missionRes struct {
	RunID   string    `json:"runId"`
	Outcome string    `json:"outcome"` // "completed" | "obstacle" | "failed"
	Report  string    `json:"report"`  // "x:y:H", "O:x:y:H" or the error message
	Rover   *roverRes `json:"rover,omitempty"`
}

func (s *Server) handleInlineMission(w http.ResponseWriter, r *http.Request) {
	s.runMission(w, r, adapters.InlineSource{})
}

func (s *Server) handleCatalogMission(w http.ResponseWriter, r *http.Request) {
	log.Debug().Str("subject", Subject(r.Context())).Msg("catalog mission")
	s.runMission(w, r, adapters.CatalogSource{Catalog: s.opts.Catalog})
}

// runMission decodes the request, drives one mission and renders its report.
// Failed missions answer 422 with the error line as report.
func (s *Server) runMission(w http.ResponseWriter, r *http.Request, src mission.MissionSource) {
	var req missionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	runID := uuid.NewString()
	ctx := mlog.ContextWithRunID(r.Context(), runID)
	rec := &adapters.RecordingReport{}
	in := &mission.Interpreter{
		Source:   src,
		Commands: adapters.StaticCommands(req.Commands),
		Report:   rec,
		Timeout:  s.opts.InterpretTimeout,
	}

	if _, err := mission.Run(ctx, mission.Mission{PlanetRef: req.Planet, RoverRef: req.Rover}, in); err != nil {
		log.Warn().Err(err).Str("run_id", runID).Msg("mission aborted")
		writeError(w, http.StatusServiceUnavailable, "aborted")
		return
	}

	outcome, line, rv, _ := rec.Result()
	res := missionRes{RunID: runID, Outcome: outcome, Report: line}
	if rv != nil {
		res.Rover = &roverRes{X: rv.Position.X, Y: rv.Position.Y, Heading: rv.Heading.String()}
	}
	if outcome == adapters.OutcomeFailed {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}
	_ = json.NewEncoder(w).Encode(res)
}

// ------------------------------ CATALOG ------------------------------------

type definitionRes struct {
	Name       string `json:"name"`
	Definition string `json:"definition"`
}

func (s *Server) handleDefinition(get func(context.Context, string) (string, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		def, err := get(r.Context(), name)
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		if err != nil {
			log.Error().Err(err).Str("name", name).Msg("catalog lookup")
			writeError(w, http.StatusInternalServerError, "catalog_error")
			return
		}
		_ = json.NewEncoder(w).Encode(definitionRes{Name: name, Definition: def})
	}
}

// writeError answers {"error": code}.
func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
