package controllers

import (
	"Whist/services/game"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

var conflicts = []error{
	game.ErrDuplicateName,
	game.ErrRoomFull,
	game.ErrGameStarted,
	game.ErrGameNotStarted,
	game.ErrGameEnded,
	game.ErrGameTypeLocked,
	game.ErrAlreadyBid,
	game.ErrAlreadyPlayed,
	game.ErrNotYourTurn,
	game.ErrBiddingNotFinished,
}

// StatusFor maps an engine error to an HTTP status.
func StatusFor(err error) int {
	switch {
	case !game.IsValidation(err):
		return http.StatusInternalServerError
	case errors.Is(err, game.ErrRoomNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrNotOwner):
		return http.StatusForbidden
	}
	for _, target := range conflicts {
		if errors.Is(err, target) {
			return http.StatusConflict
		}
	}
	return http.StatusBadRequest
}

func respondError(c *gin.Context, logger *slog.Logger, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
