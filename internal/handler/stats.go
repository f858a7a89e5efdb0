package handler

import (
	"net/http"
	"strconv"

	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
	"github.com/hollyoak/GrazeGarden_Go/internal/reward"
)

// AchievementsResponse wraps the computed unlocks
type AchievementsResponse struct {
	Achievements []domain.Achievement `json:"achievements"`
}

// HistoryResponse wraps the newest reward events
type HistoryResponse struct {
	Events []domain.RewardEvent `json:"events"`
}

// StatsHandler handles read-side stats HTTP requests
type StatsHandler struct {
	rewardSvc reward.Service
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(rewardSvc reward.Service) *StatsHandler {
	return &StatsHandler{rewardSvc: rewardSvc}
}

// HandleGetStats returns the combined cookie and garden aggregates
// @Summary Get user stats
// @Tags stats
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} domain.StatsSnapshot
// @Router /stats [get]
func (h *StatsHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	snapshot, err := h.rewardSvc.Snapshot(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetStatsFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, snapshot)
}

// HandleGetAchievements returns the user's achievement unlocks
// @Summary Get achievements
// @Tags stats
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} AchievementsResponse
// @Router /achievements [get]
func (h *StatsHandler) HandleGetAchievements(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	achievements, err := h.rewardSvc.Achievements(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetAchievementsFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, AchievementsResponse{Achievements: achievements})
}

// HandleGetHistory returns the user's newest reward events
// @Summary Get reward history
// @Tags stats
// @Produce json
// @Param user_id query string true "User ID"
// @Param limit query int false "Max events to return"
// @Success 200 {object} HistoryResponse
// @Router /rewards/history [get]
func (h *StatsHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	limit := 0
	if raw := GetOptionalQueryParam(r, "limit", ""); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
			return
		}
		limit = parsed
	}

	events, err := h.rewardSvc.History(r.Context(), userID, limit)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetHistoryFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, HistoryResponse{Events: events})
}
