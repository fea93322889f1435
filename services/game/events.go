package game

import (
	game_constants "Whist/constants/game"
	redis_models "Whist/models/redis"
	"sort"
)

// Event is a message for the room produced by a successful command. An empty To
// addresses every member of the room, otherwise only the player with that id.
type Event struct {
	Name    string `json:"name"`
	To      string `json:"to,omitempty"`
	Payload any    `json:"payload,omitempty"`
}

type VotePayload struct {
	PlayerID string `json:"playerId"`
	Bid      int    `json:"vote"`
}

type PlayedCardPayload struct {
	PlayerID string `json:"playerId"`
	Card     string `json:"card"`
}

type TrickPayload struct {
	WinnerID string              `json:"winnerId"`
	Cards    []PlayedCardPayload `json:"cards"`
}

type GameTypePayload struct {
	Type redis_models.GameType `json:"type"`
}

// Standing is one line of the final ranking.
type Standing struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Points   int    `json:"points"`
}

type EndGamePayload struct {
	RoomID    string     `json:"roomId"`
	Standings []Standing `json:"standings"`
}

func broadcast(name string, payload any) Event {
	return Event{Name: name, Payload: payload}
}

func unicast(to, name string, payload any) Event {
	return Event{Name: name, To: to, Payload: payload}
}

// snapshots renders the room once per player, each with only their own hand visible.
func snapshots(name string, room *redis_models.Room) []Event {
	events := make([]Event, 0, len(room.Players))
	for _, p := range room.Players {
		events = append(events, unicast(p.ID, name, room.Snapshot(p.ID)))
	}
	return events
}

func handEvents(room *redis_models.Room) []Event {
	events := make([]Event, 0, len(room.Players))
	for _, p := range room.Players {
		events = append(events, unicast(p.ID, game_constants.EventYourCards, append([]string{}, p.Hand...)))
	}
	return events
}

// Standings ranks the players of a room by points, seat order breaking ties.
func Standings(room *redis_models.Room) []Standing {
	players := make([]*redis_models.Player, len(room.Players))
	copy(players, room.Players)
	sort.SliceStable(players, func(i, j int) bool {
		if players[i].Points != players[j].Points {
			return players[i].Points > players[j].Points
		}
		return players[i].SeatIndex < players[j].SeatIndex
	})

	standings := make([]Standing, len(players))
	for i, p := range players {
		standings[i] = Standing{PlayerID: p.ID, Name: p.Name, Points: p.Points}
	}
	return standings
}
