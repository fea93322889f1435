package socket_io

import (
	"Whist/middleware"
	redis_models "Whist/models/redis"
	"Whist/services/game"
	"context"
	"errors"
	"strings"
)

var (
	ErrMissingToken = errors.New("missing token")
	ErrRoomMismatch = errors.New("token was issued for another room")
)

// Authenticate resolves a handshake token to a player seated in their room.
// wantRoom is optional; when given it must match the token's room.
func Authenticate(ctx context.Context, engine *game.Engine, tokens *middleware.TokenIssuer, token, wantRoom string) (playerID, roomID string, err error) {
	token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
	if token == "" {
		return "", "", ErrMissingToken
	}
	playerID, err = tokens.Parse(token)
	if err != nil {
		return "", "", err
	}
	roomID, ok := redis_models.RoomIDFromPlayerID(playerID)
	if !ok {
		return "", "", middleware.ErrInvalidToken
	}
	if wantRoom != "" && wantRoom != roomID {
		return "", "", ErrRoomMismatch
	}

	snap, err := engine.Snapshot(ctx, roomID, playerID)
	if err != nil {
		return "", "", err
	}
	for _, p := range snap.Players {
		if p.ID == playerID {
			return playerID, roomID, nil
		}
	}
	return "", "", game.ErrPlayerNotInRoom
}
