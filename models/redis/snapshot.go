package redis

import game_constants "Whist/constants/game"

// PlayerView is the public projection of a Player for one viewer.
type PlayerView struct {
	ID              string   `json:"id"`
	SeatIndex       int      `json:"index"`
	TurnIndex       int      `json:"indexThisRound"`
	Name            string   `json:"name"`
	Points          int      `json:"points"`
	PointsThisRound int      `json:"pointsThisRound"`
	Bid             *int     `json:"voted"`
	Cards           []string `json:"cards"`
	CardsLeft       int      `json:"cardsLeft"`
	LastCardPlayed  *string  `json:"lastCardPlayed"`
}

// RoomSnapshot is what a player is allowed to see of a room.
type RoomSnapshot struct {
	ID      string       `json:"id"`
	OwnerID string       `json:"ownerId"`
	Type    GameType     `json:"type"`
	Round   int          `json:"round"`
	Cards   int          `json:"cardsThisRound"`
	Trump   *string      `json:"atu"`
	Started bool         `json:"started"`
	Ended   bool         `json:"ended"`
	Players []PlayerView `json:"users"`
}

// Snapshot renders the room for viewerID. Hands of every other player are replaced
// by placeholders of the same length.
func (r *Room) Snapshot(viewerID string) RoomSnapshot {
	snap := RoomSnapshot{
		ID:      r.ID,
		OwnerID: r.OwnerID,
		Type:    r.Type,
		Round:   r.Round,
		Cards:   r.Cards,
		Started: r.Started,
		Ended:   r.Ended,
		Players: make([]PlayerView, 0, len(r.Players)),
	}
	if r.Trump != "" {
		trump := r.Trump
		snap.Trump = &trump
	}

	for _, p := range r.Players {
		view := PlayerView{
			ID:              p.ID,
			SeatIndex:       p.SeatIndex,
			TurnIndex:       p.TurnIndex,
			Name:            p.Name,
			Points:          p.Points,
			PointsThisRound: p.PointsThisRound,
			CardsLeft:       len(p.Hand),
			Cards:           make([]string, len(p.Hand)),
		}
		if p.Bid != nil {
			bid := *p.Bid
			view.Bid = &bid
		}
		if p.LastCardPlayed != "" {
			card := p.LastCardPlayed
			view.LastCardPlayed = &card
		}
		if p.ID == viewerID {
			copy(view.Cards, p.Hand)
		} else {
			for i := range view.Cards {
				view.Cards[i] = game_constants.HiddenCard
			}
		}
		snap.Players = append(snap.Players, view)
	}
	return snap
}
