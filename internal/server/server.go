// Package server exposes the simulator and its persisted runs over HTTP.
package server

import (
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/keremaydin/basketball-sim/internal/store"
	"github.com/keremaydin/basketball-sim/internal/tournament"
)

// Repository is the persistence surface the handlers need.
type Repository interface {
	SaveResult(seed int64, res *tournament.Result) (uuid.UUID, error)
	GetTournament(id uuid.UUID) (*store.SavedTournament, error)
	GetStandings(id uuid.UUID) ([]store.StandingRow, error)
}

// Server runs tournament simulations over a fixed roster set and serves
// stored results.
type Server struct {
	repo        Repository
	groups      []tournament.Group
	exhibitions map[string][]tournament.ExhibitionMatch
	router      *mux.Router
}

func New(repo Repository, groups []tournament.Group, exhibitions map[string][]tournament.ExhibitionMatch) *Server {
	s := &Server{
		repo:        repo,
		groups:      groups,
		exhibitions: exhibitions,
		router:      mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/simulations", s.handleSimulate).Methods(http.MethodPost)
	api.HandleFunc("/simulations/{id}", s.handleGetTournament).Methods(http.MethodGet)
	api.HandleFunc("/simulations/{id}/standings", s.handleGetStandings).Methods(http.MethodGet)
}

// Router returns the configured handler.
func (s *Server) Router() http.Handler { return s.router }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type pairJSON struct {
	Home string `json:"home"`
	Away string `json:"away"`
}

type simulationResponse struct {
	ID            uuid.UUID  `json:"id"`
	Seed          int64      `json:"seed"`
	Champion      string     `json:"champion"`
	RunnerUp      string     `json:"runnerUp"`
	ThirdPlace    string     `json:"thirdPlace"`
	Quarterfinals []pairJSON `json:"quarterfinals"`
}

// handleSimulate runs one tournament. The seed query parameter makes the run
// reproducible; third_place_playoff=true enables the semifinal-losers match.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	seed := time.Now().UnixNano()
	if raw := r.URL.Query().Get("seed"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "seed must be an integer")
			return
		}
		seed = parsed
	}
	opts := tournament.Options{
		ThirdPlacePlayoff: r.URL.Query().Get("third_place_playoff") == "true",
	}

	rng := rand.New(rand.NewSource(seed))
	res, err := tournament.Run(s.groups, s.exhibitions, rng, opts)
	if err != nil {
		// An unsatisfiable draw is a property of this roster/seed, not a
		// server fault.
		if err == tournament.ErrDrawUnsatisfiable {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	id, err := s.repo.SaveResult(seed, res)
	if err != nil {
		log.Printf("saving simulation: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to persist simulation")
		return
	}

	resp := simulationResponse{
		ID:         id,
		Seed:       seed,
		Champion:   res.Champion.Name,
		RunnerUp:   res.RunnerUp.Name,
		ThirdPlace: res.Third.Name,
	}
	for _, p := range res.Quarterfinals {
		resp.Quarterfinals = append(resp.Quarterfinals, pairJSON{Home: p.Home.Name, Away: p.Away.Name})
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetTournament(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	t, err := s.repo.GetTournament(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleGetStandings(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	standings, err := s.repo.GetStandings(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, standings)
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid simulation id")
		return uuid.Nil, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
