package controllers

import (
	"Whist/middleware"
	redis_models "Whist/models/redis"
	"Whist/services/game"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// EventDispatcher delivers engine events to the connected players of a room.
type EventDispatcher interface {
	Dispatch(roomID string, events []game.Event)
}

type RoomController struct {
	Engine *game.Engine
	Tokens *middleware.TokenIssuer
	Events EventDispatcher
	Logger *slog.Logger
}

type newGameRequest struct {
	Username string                `json:"username" binding:"required"`
	Type     redis_models.GameType `json:"type"`
}

type joinGameRequest struct {
	Username string `json:"username" binding:"required"`
}

type playerResponse struct {
	RoomID   string `json:"roomId"`
	PlayerID string `json:"playerId"`
	Token    string `json:"token"`
}

// NewGame creates a room and seats the caller as its owner
// @Summary Creates a new game
// @Description Allocates a room code, joins the caller as owner and returns a player token
// @Tags room
// @Accept json
// @Produce json
// @Param body body newGameRequest true "Owner name and game type (1-8-1 or 8-1-8)"
// @Success 201 {object} playerResponse
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/new-game [post]
func (rc *RoomController) NewGame(c *gin.Context) {
	var req newGameRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Username) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}

	roomID, err := rc.Engine.CreateRoom(c.Request.Context(), req.Type)
	if err != nil {
		respondError(c, rc.Logger, err)
		return
	}
	rc.join(c, roomID, req.Username, http.StatusCreated)
}

// JoinGame seats the caller in an existing room
// @Summary Joins a game
// @Description Adds a player to a room that has not started yet and returns a player token
// @Tags room
// @Accept json
// @Produce json
// @Param code path string true "Room code"
// @Param body body joinGameRequest true "Player name"
// @Success 200 {object} playerResponse
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/join-game/{code} [post]
func (rc *RoomController) JoinGame(c *gin.Context) {
	var req joinGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}
	rc.join(c, c.Param("code"), req.Username, http.StatusOK)
}

func (rc *RoomController) join(c *gin.Context, roomID, username string, status int) {
	name := strings.TrimSpace(username)
	events, err := rc.Engine.Handle(c.Request.Context(), roomID, "", game.Join{Name: name})
	if err != nil {
		respondError(c, rc.Logger, err)
		return
	}

	playerID := redis_models.PlayerID(roomID, name)
	token, err := rc.Tokens.Issue(playerID)
	if err != nil {
		respondError(c, rc.Logger, err)
		return
	}
	if err := middleware.RememberToken(c, token); err != nil {
		rc.Logger.Warn("could not store token in session", "player", playerID, "error", err)
	}
	if rc.Events != nil {
		rc.Events.Dispatch(roomID, events)
	}

	c.JSON(status, playerResponse{RoomID: roomID, PlayerID: playerID, Token: token})
}

// WhoAmI returns the caller as seen in their room
// @Summary Current player
// @Description Returns the player the token was issued for, with their own cards
// @Tags room
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 200 {object} object{roomId=string,owner=boolean,player=redis.PlayerView}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/whoami [get]
// @Security ApiKeyAuth
func (rc *RoomController) WhoAmI(c *gin.Context) {
	playerID := middleware.PlayerID(c)
	roomID := middleware.RoomID(c)

	snap, err := rc.Engine.Snapshot(c.Request.Context(), roomID, playerID)
	if err != nil {
		respondError(c, rc.Logger, err)
		return
	}
	for _, p := range snap.Players {
		if p.ID == playerID {
			c.JSON(http.StatusOK, gin.H{"roomId": roomID, "owner": snap.OwnerID == playerID, "player": p})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "this user does not exist in the room"})
}

// GetRoom returns the public state of the caller's room
// @Summary Room state
// @Description Snapshot of the room, with the cards of other players hidden
// @Tags room
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param code path string true "Room code"
// @Success 200 {object} redis.RoomSnapshot
// @Failure 401 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/rooms/{code} [get]
// @Security ApiKeyAuth
func (rc *RoomController) GetRoom(c *gin.Context) {
	roomID := c.Param("code")
	if roomID != middleware.RoomID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "you are not a member of this room"})
		return
	}

	snap, err := rc.Engine.Snapshot(c.Request.Context(), roomID, middleware.PlayerID(c))
	if err != nil {
		respondError(c, rc.Logger, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
