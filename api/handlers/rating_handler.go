package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	ratingservice "github.com/gridiron-analytics/gridrank/app/modules/rating/application"
	ratingtypes "github.com/gridiron-analytics/gridrank/app/modules/rating/domain/types"
	ratingdb "github.com/gridiron-analytics/gridrank/app/modules/rating/infrastructure/repositories"
)

// RatingHandlers handles HTTP requests for game processing.
type RatingHandlers struct {
	service ratingservice.Service
}

// NewRatingHandlers creates a new RatingHandlers instance.
func NewRatingHandlers(service ratingservice.Service) *RatingHandlers {
	return &RatingHandlers{service: service}
}

// ProcessGame applies one game result to both teams' ratings.
func (h *RatingHandlers) ProcessGame(w http.ResponseWriter, r *http.Request) {
	gameID, err := uuid.Parse(chi.URLParam(r, "gameID"))
	if err != nil {
		http.Error(w, "Invalid game ID", http.StatusBadRequest)
		return
	}

	result, err := h.service.ProcessGame(r.Context(), gameID)
	if err != nil {
		var validationErr *ratingtypes.ValidationError
		switch {
		case errors.As(err, &validationErr):
			http.Error(w, validationErr.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, ratingdb.ErrGameNotFound):
			http.Error(w, "Game not found", http.StatusNotFound)
		default:
			http.Error(w, fmt.Sprintf("Failed to process game: %v", err), http.StatusInternalServerError)
		}
		return
	}

	if result.IsFailure() {
		// Reprocessing attempt: observable but not an error.
		writeJSON(w, http.StatusConflict, map[string]any{
			"already_processed": true,
			"game_id":           result.Failure.GameID,
		})
		return
	}
	writeJSON(w, http.StatusOK, result.Success)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, fmt.Sprintf("Failed to encode response: %v", err), http.StatusInternalServerError)
	}
}
