package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/AdamBeresnev/swiss-tournament/internal/httputil"
	"github.com/AdamBeresnev/swiss-tournament/internal/service"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type registerPlayerRequest struct {
	Name string `json:"name"`
}

type recordMatchRequest struct {
	WinnerID *int64 `json:"winner_id"`
	LoserID  *int64 `json:"loser_id"`
}

func newRouter(svc *service.TournamentService, timeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(timeout))

	r.Route("/players", func(r chi.Router) {
		r.Get("/count", func(w http.ResponseWriter, r *http.Request) {
			count, err := svc.CountPlayers(r.Context())
			if err != nil {
				httputil.Error(w, "Failed to count players", err)
				return
			}
			httputil.WriteJSON(w, http.StatusOK, map[string]int{"count": count})
		})

		r.Post("/", func(w http.ResponseWriter, r *http.Request) {
			var req registerPlayerRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				httputil.BadRequest(w, "Invalid request body", err)
				return
			}
			if len(req.Name) > 100 {
				httputil.BadRequest(w, "Player name exceeds 100 characters", nil)
				return
			}

			id, err := svc.RegisterPlayer(r.Context(), req.Name)
			if err != nil {
				httputil.Error(w, "Failed to register player", err)
				return
			}
			httputil.WriteJSON(w, http.StatusCreated, map[string]int64{"id": id})
		})

		r.Delete("/", func(w http.ResponseWriter, r *http.Request) {
			if err := svc.ResetPlayers(r.Context()); err != nil {
				httputil.Error(w, "Failed to reset players", err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})
	})

	r.Route("/matches", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			matches, err := svc.Matches(r.Context())
			if err != nil {
				httputil.Error(w, "Failed to list matches", err)
				return
			}
			httputil.WriteJSON(w, http.StatusOK, matches)
		})

		r.Post("/", func(w http.ResponseWriter, r *http.Request) {
			var req recordMatchRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				httputil.BadRequest(w, "Invalid request body", err)
				return
			}
			if req.WinnerID == nil {
				httputil.BadRequest(w, "winner_id is required", nil)
				return
			}

			id, err := svc.RecordMatch(r.Context(), *req.WinnerID, req.LoserID)
			if err != nil {
				httputil.Error(w, "Failed to record match", err)
				return
			}
			httputil.WriteJSON(w, http.StatusCreated, map[string]int64{"id": id})
		})

		r.Delete("/", func(w http.ResponseWriter, r *http.Request) {
			if err := svc.ResetMatches(r.Context()); err != nil {
				httputil.Error(w, "Failed to reset matches", err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})
	})

	r.Get("/standings", func(w http.ResponseWriter, r *http.Request) {
		standings, err := svc.Standings(r.Context())
		if err != nil {
			httputil.Error(w, "Failed to get standings", err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, standings)
	})

	r.Get("/pairings", func(w http.ResponseWriter, r *http.Request) {
		round, err := svc.PreviewRound(r.Context())
		if err != nil {
			httputil.Error(w, "Failed to compute pairings", err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, round)
	})

	r.Post("/rounds", func(w http.ResponseWriter, r *http.Request) {
		round, err := svc.PairRound(r.Context())
		if err != nil {
			httputil.Error(w, "Failed to pair round", err)
			return
		}
		httputil.WriteJSON(w, http.StatusCreated, round)
	})

	return r
}
