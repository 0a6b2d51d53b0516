package handler

import (
	"context"
	"net/http"

	"github.com/osse101/TornBot_Go/internal/domain"
	"github.com/osse101/TornBot_Go/internal/logger"
)

// LeaderboardService is the part of the attacks service exposed over HTTP
type LeaderboardService interface {
	Sync(ctx context.Context, apiKey string) (*domain.SyncResult, error)
	OverallLeaderboard(ctx context.Context) (*domain.Leaderboard, error)
}

// KeyResolver resolves the faction credential for requests made on the bot's behalf
type KeyResolver interface {
	ResolveFactionKey(ctx context.Context, userID string) (string, error)
}

// HandleGetLeaderboard returns the all-time faction leaderboard from stored totals
// @Summary All-time faction leaderboard
// @Description Leaders per category from stored totals. No upstream call is made.
// @Tags leaderboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} DataResponse{data=domain.Leaderboard}
// @Failure 500 {object} ErrorResponse "Storage error"
// @Router /api/v1/leaderboard [get]
func HandleGetLeaderboard(svc LeaderboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lb, err := svc.OverallLeaderboard(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgLeaderboardError, "error", err)
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: lb})
	}
}

// HandleSync runs one sync pass with the global faction key.
// A partial result is still returned alongside the error when the backfill failed midway.
// @Summary Sync faction attacks now
// @Description Runs the recent pass then one backfill pass using the stored global faction key
// @Tags leaderboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} DataResponse{data=domain.SyncResult}
// @Failure 412 {object} ErrorResponse "No faction key stored"
// @Failure 502 {object} DataResponse{data=domain.SyncResult} "Torn API error, with partial progress when any"
// @Failure 504 {object} ErrorResponse "Timed out"
// @Router /api/v1/sync [post]
func HandleSync(svc LeaderboardService, keys KeyResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		apiKey, err := keys.ResolveFactionKey(ctx, "")
		if err != nil {
			respondError(w, err)
			return
		}

		log.Info(LogMsgSyncTriggered)
		res, err := svc.Sync(ctx, apiKey)
		if err != nil {
			log.Error(LogMsgSyncError, "error", err)
			status, resp := mapError(err)
			if res != nil {
				respondJSON(w, status, DataResponse{Message: resp.Error, Data: res})
				return
			}
			respondJSON(w, status, resp)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: res})
	}
}
