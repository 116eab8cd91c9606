// Package httpserver exposes the decision-tree search engine over HTTP:
// triggering, polling, and fetching solve runs, plus admin auth and
// run-history listing (spec §4.8). Modeled on the teacher's
// internal/httpserver/server.go chi + zerolog + JWT wiring.
package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/lorenzo-stoakes/wordle-solver/internal/config"
	"github.com/lorenzo-stoakes/wordle-solver/internal/historystore"
	"github.com/lorenzo-stoakes/wordle-solver/internal/solver"
	"github.com/lorenzo-stoakes/wordle-solver/internal/wordle"
)

// Server bundles the router, job table, and run-history store.
type Server struct {
	r *chi.Mux

	history   *historystore.Store
	jobs      *jobTable
	jwtSecret string
	tokenTTL  time.Duration
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg *config.Server, history *historystore.Store) *Server {
	s := &Server{
		r:         chi.NewRouter(),
		history:   history,
		jobs:      newJobTable(cfg.Jobs.ResultTTL),
		jwtSecret: cfg.Auth.JWTSecret,
		tokenTTL:  cfg.Auth.TokenTTL,
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(5 * time.Minute)) // solves themselves run in background jobs
	s.r.Use(jsonContentType)
	s.r.Use(requestLogger)

	s.r.Get("/health", s.handleHealth)

	s.r.Route("/api/v1", func(api chi.Router) {
		api.Post("/auth/login", s.handleLogin)

		api.Group(func(g chi.Router) {
			g.Use(s.requireAuth)
			g.Post("/solves", s.handleCreateSolve)
			g.Get("/solves/{jobId}", s.handleGetSolve)
			g.Get("/solves/{jobId}/solution", s.handleGetSolution)
			g.Get("/history", s.handleListHistory)
		})
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found: "+r.URL.Path)
	})

	return s
}

// Router exposes the underlying chi router, useful for tests.
func (s *Server) Router() chi.Router { return s.r }

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	log.Info().Str("addr", addr).Msg("serving")
	return http.ListenAndServe(addr, s.r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// loginReq/loginRes are POST /api/v1/auth/login payloads.
type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
type loginRes struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	admin, err := s.authenticateAdmin(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	tok, exp, err := s.signAdminToken(admin.Username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to sign token")
		return
	}
	writeJSON(w, http.StatusOK, loginRes{Token: tok, ExpiresAt: exp})
}

// createSolveReq/Res are POST /api/v1/solves payloads.
type createSolveReq struct {
	GuessesPath   string `json:"guessesPath"`
	SolutionsPath string `json:"solutionsPath"`
	PruneLimit    int    `json:"pruneLimit"`
}
type createSolveRes struct {
	JobID string `json:"jobId"`
}

func (s *Server) handleCreateSolve(w http.ResponseWriter, r *http.Request) {
	var req createSolveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.GuessesPath == "" || req.SolutionsPath == "" {
		writeError(w, http.StatusBadRequest, "guessesPath and solutionsPath are required")
		return
	}
	if req.PruneLimit <= 0 {
		req.PruneLimit = 8
	}

	id := uuid.NewString()
	s.jobs.Do(id, solveParams{
		guessesPath:   req.GuessesPath,
		solutionsPath: req.SolutionsPath,
		pruneLimit:    req.PruneLimit,
	}, func(list *wordle.WordList, table *wordle.MatchTable, result *solver.Result, durationMS int64) {
		stats := solver.ComputeStats(result.Root, result.NumSolutions)
		rec := historystore.RunRecord{
			ID:              id,
			GuessesPath:     req.GuessesPath,
			SolutionsPath:   req.SolutionsPath,
			NumValidGuesses: table.NumGuesses,
			NumSolutions:    table.NumSolutions,
			PruneLimit:      req.PruneLimit,
			SolvedCount:     stats.SolvedCount,
			UnsolvedCount:   stats.Unsolved,
			AverageGuesses:  stats.AverageGuesses(),
			DurationMS:      durationMS,
			CreatedAt:       time.Now(),
		}
		if err := s.history.InsertRun(context.Background(), rec); err != nil {
			log.Warn().Err(err).Str("jobId", id).Msg("failed to persist run record")
		}
	})

	writeJSON(w, http.StatusAccepted, createSolveRes{JobID: id})
}

func (s *Server) handleGetSolve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "jobId")
	summ, ok := s.jobs.Summary(id)
	if !ok {
		writeError(w, http.StatusNotFound, errJobNotFound.Error())
		return
	}
	writeJSON(w, http.StatusOK, summ)
}

func (s *Server) handleGetSolution(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "jobId")
	word := r.URL.Query().Get("word")
	if word == "" {
		writeError(w, http.StatusBadRequest, "word query parameter is required")
		return
	}
	line, err := s.jobs.RenderSolution(r.Context(), id, word)
	if err != nil {
		status := http.StatusBadRequest
		switch {
		case err == errJobNotFound:
			status = http.StatusNotFound
		case err == errJobResultExpired:
			status = http.StatusGone
		case isUnknownTargetSolution(err):
			status = http.StatusNotFound
		}
		writeError(w, status, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"line": line})
}

func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	runs, err := s.history.ListRuns(r.Context(), 50)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list history")
		return
	}
	writeJSON(w, http.StatusOK, runs)
}

// isUnknownTargetSolution reports whether err is a wordle.Error of kind
// KindUnknownTargetSolution, mapped to 404 per SPEC_FULL.md §7 rather than
// the handler's default 400. Word-list construction errors never reach
// this handler: they fail the background job instead.
func isUnknownTargetSolution(err error) bool {
	werr, ok := wordle.AsError(err)
	return ok && werr.Kind == wordle.KindUnknownTargetSolution
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
