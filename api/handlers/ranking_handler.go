package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	rankingservice "github.com/gridiron-analytics/gridrank/app/modules/ranking/application"
	ratingdb "github.com/gridiron-analytics/gridrank/app/modules/rating/infrastructure/repositories"
)

// RankingHandlers handles HTTP requests for standings, schedule strength,
// snapshots, and exports.
type RankingHandlers struct {
	service rankingservice.Service
}

// NewRankingHandlers creates a new RankingHandlers instance.
func NewRankingHandlers(service rankingservice.Service) *RankingHandlers {
	return &RankingHandlers{service: service}
}

// GetRankings returns current standings, optionally truncated.
func (h *RankingHandlers) GetRankings(w http.ResponseWriter, r *http.Request) {
	season, err := queryInt(r, "season", 0)
	if err != nil || season == 0 {
		http.Error(w, "Missing or invalid season", http.StatusBadRequest)
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil || limit < 0 {
		http.Error(w, "Invalid limit", http.StatusBadRequest)
		return
	}

	entries, err := h.service.GetCurrentRankings(r.Context(), season, limit)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to compute rankings: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// GetSOS returns one team's strength of schedule.
func (h *RankingHandlers) GetSOS(w http.ResponseWriter, r *http.Request) {
	team := chi.URLParam(r, "name")
	season, err := queryInt(r, "season", 0)
	if err != nil || season == 0 {
		http.Error(w, "Missing or invalid season", http.StatusBadRequest)
		return
	}

	sos, err := h.service.CalculateSOS(r.Context(), team, season)
	if err != nil {
		if errors.Is(err, ratingdb.ErrTeamNotFound) {
			http.Error(w, "Team not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to compute SOS: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"team":   team,
		"season": season,
		"sos":    sos,
	})
}

// SaveSnapshot persists one standings snapshot per team for a week.
func (h *RankingHandlers) SaveSnapshot(w http.ResponseWriter, r *http.Request) {
	season, err := queryInt(r, "season", 0)
	if err != nil || season == 0 {
		http.Error(w, "Missing or invalid season", http.StatusBadRequest)
		return
	}
	week, err := queryInt(r, "week", -1)
	if err != nil || week < 0 {
		http.Error(w, "Missing or invalid week", http.StatusBadRequest)
		return
	}

	if err := h.service.SaveWeeklySnapshot(r.Context(), season, week); err != nil {
		http.Error(w, fmt.Sprintf("Failed to save snapshot: %v", err), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ResetSeason reinitializes every team's rating state from preseason inputs.
func (h *RankingHandlers) ResetSeason(w http.ResponseWriter, r *http.Request) {
	season, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		http.Error(w, "Invalid season year", http.StatusBadRequest)
		return
	}

	if err := h.service.ResetSeason(r.Context(), season); err != nil {
		http.Error(w, fmt.Sprintf("Failed to reset season: %v", err), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetRatingChart renders a team's rating history as a PNG.
func (h *RankingHandlers) GetRatingChart(w http.ResponseWriter, r *http.Request) {
	team := chi.URLParam(r, "name")
	season, err := queryInt(r, "season", 0)
	if err != nil || season == 0 {
		http.Error(w, "Missing or invalid season", http.StatusBadRequest)
		return
	}

	png, err := h.service.GetRatingHistoryChart(r.Context(), season, team)
	if err != nil {
		if errors.Is(err, ratingdb.ErrTeamNotFound) {
			http.Error(w, "Team not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to render chart: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// ExportRankings streams the full standings as an XLSX workbook.
func (h *RankingHandlers) ExportRankings(w http.ResponseWriter, r *http.Request) {
	season, err := queryInt(r, "season", 0)
	if err != nil || season == 0 {
		http.Error(w, "Missing or invalid season", http.StatusBadRequest)
		return
	}

	workbook, err := h.service.ExportRankings(r.Context(), season)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to export rankings: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=rankings-%d.xlsx", season))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(workbook)
}

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
