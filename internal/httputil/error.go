package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/AdamBeresnev/swiss-tournament/internal/swiss"
)

type errorBody struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func InternalServerError(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	WriteJSON(w, http.StatusInternalServerError, errorBody{Error: "Internal Server Error"})
}

func ServiceUnavailable(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	WriteJSON(w, http.StatusServiceUnavailable, errorBody{Error: "Storage unavailable"})
}

func BadRequest(w http.ResponseWriter, msg string, err error) {
	if err != nil {
		slog.Warn("bad request", "message", msg, "error", err)
	} else {
		slog.Warn("bad request", "message", msg)
	}
	WriteJSON(w, http.StatusBadRequest, errorBody{Error: msg})
}

func NotFound(w http.ResponseWriter, msg string, err error) {
	if err != nil {
		slog.Warn("not found", "message", msg, "error", err)
	} else {
		slog.Warn("not found", "message", msg)
	}
	WriteJSON(w, http.StatusNotFound, errorBody{Error: msg})
}

func Conflict(w http.ResponseWriter, msg string, err error) {
	slog.Warn("conflict", "message", msg, "error", err)
	WriteJSON(w, http.StatusConflict, errorBody{Error: msg})
}

// Error picks the response for an error coming out of the tournament service.
func Error(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, swiss.ErrStorageUnavailable):
		ServiceUnavailable(w, msg, err)
	case errors.Is(err, swiss.ErrPlayerNotFound):
		NotFound(w, err.Error(), err)
	case errors.Is(err, swiss.ErrInvalidName), errors.Is(err, swiss.ErrSamePlayer):
		BadRequest(w, err.Error(), err)
	case errors.Is(err, swiss.ErrDuplicateBye),
		errors.Is(err, swiss.ErrInsufficientPlayers),
		errors.Is(err, swiss.ErrNoValidPairingExists),
		errors.Is(err, swiss.ErrNoEligibleByeCandidate):
		Conflict(w, err.Error(), err)
	default:
		InternalServerError(w, msg, err)
	}
}
