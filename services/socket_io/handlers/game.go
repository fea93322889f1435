package handlers

import (
	game_constants "Whist/constants/game"
	redis_models "Whist/models/redis"
	"Whist/services/game"
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

const commandTimeout = 5 * time.Second

// Emitter is the part of a socket the handlers need.
type Emitter interface {
	Emit(ev string, args ...any) error
}

// Dispatcher fans engine events out to the room.
type Dispatcher interface {
	Dispatch(roomID string, events []game.Event)
}

// Session is one authenticated socket: a player bound to their room.
type Session struct {
	Engine   *game.Engine
	Events   Dispatcher
	Client   Emitter
	PlayerID string
	RoomID   string
	Logger   *slog.Logger
}

func (s *Session) run(cmd game.Command) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	events, err := s.Engine.Handle(ctx, s.RoomID, s.PlayerID, cmd)
	if err != nil {
		s.fail(err)
		return
	}
	s.Events.Dispatch(s.RoomID, events)
}

func (s *Session) fail(err error) {
	msg := err.Error()
	if !game.IsValidation(err) {
		s.Logger.Error("socket command failed", "room", s.RoomID, "player", s.PlayerID, "error", err)
		msg = "internal server error"
	}
	s.Client.Emit(game_constants.EventError, gin.H{"error": msg})
}

func (s *Session) badRequest(err error) {
	s.Client.Emit(game_constants.EventError, gin.H{"error": err.Error()})
}

// HandleGetPublicData answers with the room as this player may see it.
func HandleGetPublicData(s *Session) func(args ...any) {
	return func(args ...any) {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		snap, err := s.Engine.Snapshot(ctx, s.RoomID, s.PlayerID)
		if err != nil {
			s.fail(err)
			return
		}
		s.Client.Emit(game_constants.EventPublicData, snap)
	}
}

func HandleStartGame(s *Session) func(args ...any) {
	return func(args ...any) {
		s.run(game.StartGame{})
	}
}

func HandleChangeGameType(s *Session) func(args ...any) {
	return func(args ...any) {
		gameType, err := stringArg(args, "type")
		if err != nil {
			s.badRequest(err)
			return
		}
		s.run(game.SetGameType{Type: redis_models.GameType(gameType)})
	}
}

func HandleVote(s *Session) func(args ...any) {
	return func(args ...any) {
		bid, err := intArg(args, "vote")
		if err != nil {
			s.badRequest(err)
			return
		}
		s.run(game.PlaceBid{Bid: bid})
	}
}

func HandlePlayCard(s *Session) func(args ...any) {
	return func(args ...any) {
		card, err := stringArg(args, "card")
		if err != nil {
			s.badRequest(err)
			return
		}
		s.run(game.PlayCard{Card: card})
	}
}
