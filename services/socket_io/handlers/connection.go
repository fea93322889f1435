package handlers

import (
	game_constants "Whist/constants/game"
	"context"
)

// HandleConnected pushes the persisted room state to a socket that just connected.
// A client that reloads the page resumes from here: the room snapshot first, then
// its own cards when a round is being played.
func HandleConnected(s *Session) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	snap, err := s.Engine.Snapshot(ctx, s.RoomID, s.PlayerID)
	if err != nil {
		s.fail(err)
		return
	}
	s.Client.Emit(game_constants.EventPublicData, snap)

	if !snap.Started || snap.Ended {
		return
	}
	for _, p := range snap.Players {
		if p.ID == s.PlayerID {
			s.Client.Emit(game_constants.EventYourCards, p.Cards)
			return
		}
	}
}

// HandleDisconnecting forgets the socket. The player keeps their seat and can
// connect again with the same token.
func HandleDisconnecting(s *Session, forget func()) func(args ...any) {
	return func(args ...any) {
		forget()
		s.Logger.Info("player disconnected", "room", s.RoomID, "player", s.PlayerID, "reason", args)
	}
}
