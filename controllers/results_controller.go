package controllers

import (
	"Whist/models/postgres"
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ResultsLister reads archived games.
type ResultsLister interface {
	ListResults(ctx context.Context, roomCode string) ([]postgres.GameResult, error)
}

type ResultsController struct {
	Archive ResultsLister
	Logger  *slog.Logger
}

type resultResponse struct {
	ID        string                 `json:"id"`
	RoomCode  string                 `json:"roomCode"`
	GameType  string                 `json:"type"`
	Rounds    int                    `json:"rounds"`
	Winner    string                 `json:"winner"`
	EndedAt   string                 `json:"endedAt"`
	Standings []postgres.StandingRow `json:"standings"`
}

// GetResults lists the archived games of a room code
// @Summary Archived results
// @Description Final standings of the finished games played under a room code, newest first
// @Tags results
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {array} resultResponse
// @Failure 500 {object} object{error=string}
// @Failure 503 {object} object{error=string}
// @Router /api/results/{code} [get]
func (rc *ResultsController) GetResults(c *gin.Context) {
	if rc.Archive == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "results archive is not configured"})
		return
	}

	results, err := rc.Archive.ListResults(c.Request.Context(), c.Param("code"))
	if err != nil {
		rc.Logger.Error("listing results", "room", c.Param("code"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	response := make([]resultResponse, 0, len(results))
	for _, r := range results {
		rows, err := r.Rows()
		if err != nil {
			rc.Logger.Error("decoding standings", "result", r.ID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		response = append(response, resultResponse{
			ID:        r.ID,
			RoomCode:  r.RoomCode,
			GameType:  r.GameType,
			Rounds:    r.Rounds,
			Winner:    r.Winner,
			EndedAt:   r.EndedAt.UTC().Format(time.RFC3339),
			Standings: rows,
		})
	}
	c.JSON(http.StatusOK, response)
}
