package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	predictionservice "github.com/gridiron-analytics/gridrank/app/modules/prediction/application"
	ratingdb "github.com/gridiron-analytics/gridrank/app/modules/rating/infrastructure/repositories"
)

// PredictionHandlers handles HTTP requests for forecasts.
type PredictionHandlers struct {
	service predictionservice.Service
}

// NewPredictionHandlers creates a new PredictionHandlers instance.
func NewPredictionHandlers(service predictionservice.Service) *PredictionHandlers {
	return &PredictionHandlers{service: service}
}

// PredictDto is the request body for a forecast.
type PredictDto struct {
	GameID uuid.UUID `json:"game_id"`
}

// Predict forecasts one unplayed game from live ratings.
func (h *PredictionHandlers) Predict(w http.ResponseWriter, r *http.Request) {
	var input PredictDto
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}
	if input.GameID == uuid.Nil {
		http.Error(w, "Missing game_id", http.StatusBadRequest)
		return
	}

	prediction, err := h.service.Predict(r.Context(), input.GameID)
	if err != nil {
		if errors.Is(err, ratingdb.ErrGameNotFound) {
			http.Error(w, "Game not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to predict: %v", err), http.StatusInternalServerError)
		return
	}
	if prediction == nil {
		// Expected for processed games and teams without usable ratings.
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"game_id":     input.GameID,
			"predictable": false,
		})
		return
	}
	writeJSON(w, http.StatusOK, prediction)
}

// Backfill generates retrospective forecasts for a whole season.
func (h *PredictionHandlers) Backfill(w http.ResponseWriter, r *http.Request) {
	season, err := queryInt(r, "season", 0)
	if err != nil || season == 0 {
		http.Error(w, "Missing or invalid season", http.StatusBadRequest)
		return
	}

	report, err := h.service.Backfill(r.Context(), season)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to backfill predictions: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// GetAccuracy returns the accuracy report over a season's resolved forecasts.
func (h *PredictionHandlers) GetAccuracy(w http.ResponseWriter, r *http.Request) {
	season, err := queryInt(r, "season", 0)
	if err != nil || season == 0 {
		http.Error(w, "Missing or invalid season", http.StatusBadRequest)
		return
	}

	report, err := h.service.GetSeasonAccuracy(r.Context(), season)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to compute accuracy: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
