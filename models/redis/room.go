package redis

import (
	"fmt"
	"sort"
	"strings"
)

// GameType selects the hand size progression of a game.
type GameType string

const (
	GameTypeOneEightOne   GameType = "1-8-1"
	GameTypeEightOneEight GameType = "8-1-8"
)

// Valid reports whether t is one of the two known progressions.
func (t GameType) Valid() bool {
	return t == GameTypeOneEightOne || t == GameTypeEightOneEight
}

// Player is one seat in a Whist room.
type Player struct {
	ID              string   `json:"id"`
	SeatIndex       int      `json:"index"`          // join order, never changes
	TurnIndex       int      `json:"indexThisRound"` // play order inside the current trick
	Name            string   `json:"name"`
	Points          int      `json:"points"`
	PointsThisRound int      `json:"pointsThisRound"` // tricks won this round
	Bid             *int     `json:"voted"`           // nil until the player bids
	Hand            []string `json:"cards"`
	LastCardPlayed  string   `json:"lastCardPlayed,omitempty"`
}

// HasBid reports whether the player already bid this round.
func (p *Player) HasBid() bool {
	return p.Bid != nil
}

// HasPlayed reports whether the player already put a card on the current trick.
func (p *Player) HasPlayed() bool {
	return p.LastCardPlayed != ""
}

// HasCard reports whether card is in the player's hand.
func (p *Player) HasCard(card string) bool {
	for _, c := range p.Hand {
		if c == card {
			return true
		}
	}
	return false
}

// RemoveCard drops the first occurrence of card from the hand.
func (p *Player) RemoveCard(card string) bool {
	for i, c := range p.Hand {
		if c == card {
			p.Hand = append(p.Hand[:i:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// Room is the persisted state of one Whist game.
type Room struct {
	ID      string    `json:"id"`
	OwnerID string    `json:"ownerId,omitempty"`
	Type    GameType  `json:"type"`
	Round   int       `json:"round"`
	Cards   int       `json:"cardsThisRound"` // hand size dealt this round
	Trump   string    `json:"atu,omitempty"` // card code, empty on full hand rounds
	Started bool      `json:"started"`
	Ended   bool      `json:"ended"`
	Players []*Player `json:"users"` // sorted by SeatIndex
}

// PlayerID builds the identifier of a player from its room and name.
// It doubles as the key of the player's hash in the store.
func PlayerID(roomID, name string) string {
	return fmt.Sprintf("room#%s:user#%s", roomID, name)
}

// RoomIDFromPlayerID extracts the room code from a player identifier.
func RoomIDFromPlayerID(playerID string) (string, bool) {
	rest, ok := strings.CutPrefix(playerID, "room#")
	if !ok {
		return "", false
	}
	roomID, _, ok := strings.Cut(rest, ":user#")
	if !ok || roomID == "" {
		return "", false
	}
	return roomID, true
}

// Player returns the player with the given id, or nil.
func (r *Room) Player(id string) *Player {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PlayerByName returns the player with the given display name, or nil.
func (r *Room) PlayerByName(name string) *Player {
	for _, p := range r.Players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// SortBySeat orders Players by their fixed seat index.
func (r *Room) SortBySeat() {
	sort.Slice(r.Players, func(i, j int) bool {
		return r.Players[i].SeatIndex < r.Players[j].SeatIndex
	})
}

// PlayOrder returns the players ordered by their turn index for the current trick.
func (r *Room) PlayOrder() []*Player {
	order := make([]*Player, len(r.Players))
	copy(order, r.Players)
	sort.Slice(order, func(i, j int) bool {
		return order[i].TurnIndex < order[j].TurnIndex
	})
	return order
}

// Leader is the player opening the current trick.
func (r *Room) Leader() *Player {
	for _, p := range r.Players {
		if p.TurnIndex == 0 {
			return p
		}
	}
	return nil
}

// Clone returns a deep copy, so a command can be applied without touching the original.
func (r *Room) Clone() *Room {
	c := *r
	c.Players = make([]*Player, len(r.Players))
	for i, p := range r.Players {
		cp := *p
		cp.Hand = append([]string(nil), p.Hand...)
		if p.Bid != nil {
			bid := *p.Bid
			cp.Bid = &bid
		}
		c.Players[i] = &cp
	}
	return &c
}
