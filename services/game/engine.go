package game

import (
	game_constants "Whist/constants/game"
	redis_models "Whist/models/redis"
	"Whist/services/whist"
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Store persists rooms. LoadRoom returns nil, nil when the room does not exist.
type Store interface {
	// CreateRoom writes an empty room and reports false when the code is already taken.
	CreateRoom(ctx context.Context, room *redis_models.Room) (bool, error)
	LoadRoom(ctx context.Context, roomID string) (*redis_models.Room, error)
	// AddPlayer registers a player and reports false when the name is already used.
	// The first player added with owner set becomes the owner of the room.
	AddPlayer(ctx context.Context, roomID string, player *redis_models.Player, owner bool) (bool, error)
	// SaveRoom writes the room and every player hash in one transaction.
	SaveRoom(ctx context.Context, room *redis_models.Room) error
}

// Archiver receives every finished game.
type Archiver interface {
	ArchiveGame(ctx context.Context, room *redis_models.Room) error
}

// Engine applies player commands to rooms. Commands on one room are serialized,
// different rooms proceed in parallel.
type Engine struct {
	store           Store
	archiver        Archiver
	logger          *slog.Logger
	locks           *roomLocks
	shuffle         func([]whist.Card)
	roomCode        func() string
	allowTypeChange bool
}

type Option func(*Engine)

// WithArchiver sends finished games to a.
func WithArchiver(a Archiver) Option {
	return func(e *Engine) { e.archiver = a }
}

// WithShuffle replaces the deck shuffle, mainly for deterministic deals in tests.
func WithShuffle(shuffle func([]whist.Card)) Option {
	return func(e *Engine) { e.shuffle = shuffle }
}

// WithRoomCodes replaces the room code generator.
func WithRoomCodes(next func() string) Option {
	return func(e *Engine) { e.roomCode = next }
}

// WithTypeChangeAfterStart controls whether the owner may switch the game type mid game.
func WithTypeChangeAfterStart(allow bool) Option {
	return func(e *Engine) { e.allowTypeChange = allow }
}

func NewEngine(store Store, logger *slog.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		store:           store,
		logger:          logger,
		locks:           newRoomLocks(),
		shuffle:         whist.Shuffle,
		roomCode:        randomRoomCode,
		allowTypeChange: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func randomRoomCode() string {
	return strconv.Itoa(rand.IntN(game_constants.RoomCodeRange))
}

// CreateRoom allocates a fresh room code and stores an empty room under it.
func (e *Engine) CreateRoom(ctx context.Context, gameType redis_models.GameType) (string, error) {
	if gameType == "" {
		gameType = redis_models.GameTypeOneEightOne
	}
	if !gameType.Valid() {
		return "", invalid(ErrInvalidGameType)
	}

	for attempt := 0; attempt < game_constants.MaxRoomCodeAttempts; attempt++ {
		code := e.roomCode()
		created, err := e.store.CreateRoom(ctx, &redis_models.Room{ID: code, Type: gameType})
		if err != nil {
			return "", fmt.Errorf("creating room %s: %w", code, err)
		}
		if created {
			e.logger.Info("room created", "room", code, "type", gameType)
			return code, nil
		}
	}
	return "", ErrNoRoomCode
}

// Snapshot returns the room as viewerID may see it. It takes no lock.
func (e *Engine) Snapshot(ctx context.Context, roomID, viewerID string) (*redis_models.RoomSnapshot, error) {
	room, err := e.store.LoadRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("loading room %s: %w", roomID, err)
	}
	if room == nil {
		return nil, invalid(ErrRoomNotFound)
	}
	snap := room.Snapshot(viewerID)
	return &snap, nil
}

// Handle applies cmd on behalf of playerID. On success it returns the events to
// deliver; on failure nothing was written.
func (e *Engine) Handle(ctx context.Context, roomID, playerID string, cmd Command) ([]Event, error) {
	unlock := e.locks.Lock(roomID)
	defer unlock()

	events, err := e.handle(ctx, roomID, playerID, cmd)
	if err != nil {
		if IsValidation(err) {
			e.logger.Debug("command rejected", "room", roomID, "player", playerID, "command", cmd.command(), "error", err)
		} else {
			e.logger.Error("command failed", "room", roomID, "player", playerID, "command", cmd.command(), "error", err)
		}
		return nil, err
	}
	return events, nil
}

func (e *Engine) handle(ctx context.Context, roomID, playerID string, cmd Command) ([]Event, error) {
	room, err := e.store.LoadRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("loading room %s: %w", roomID, err)
	}
	if room == nil {
		return nil, invalid(ErrRoomNotFound)
	}

	if join, ok := cmd.(Join); ok {
		return e.join(ctx, room, join)
	}

	player := room.Player(playerID)
	if player == nil {
		return nil, fmt.Errorf("%w: %s", ErrPlayerNotInRoom, playerID)
	}

	switch c := cmd.(type) {
	case StartGame:
		return e.startGame(ctx, room, player)
	case SetGameType:
		return e.setGameType(ctx, room, player, c)
	case PlaceBid:
		return e.placeBid(ctx, room, player, c)
	case PlayCard:
		return e.playCard(ctx, room, player, c)
	}
	return nil, invalid(ErrUnknownCommand)
}

func (e *Engine) join(ctx context.Context, room *redis_models.Room, cmd Join) ([]Event, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, invalid(ErrBlankName)
	}
	if room.Started {
		return nil, invalid(ErrGameStarted)
	}
	if len(room.Players) >= game_constants.MaxPlayers {
		return nil, invalid(ErrRoomFull)
	}
	if room.PlayerByName(name) != nil {
		return nil, invalid(ErrDuplicateName)
	}

	seat := len(room.Players)
	player := &redis_models.Player{
		ID:        redis_models.PlayerID(room.ID, name),
		SeatIndex: seat,
		TurnIndex: seat,
		Name:      name,
	}
	owner := seat == 0
	added, err := e.store.AddPlayer(ctx, room.ID, player, owner)
	if err != nil {
		return nil, fmt.Errorf("adding player %s: %w", player.ID, err)
	}
	if !added {
		return nil, invalid(ErrDuplicateName)
	}

	room.Players = append(room.Players, player)
	if owner {
		room.OwnerID = player.ID
	}
	e.logger.Info("player joined", "room", room.ID, "player", player.ID, "seat", seat)
	return snapshots(game_constants.EventNewPlayer, room), nil
}

func (e *Engine) startGame(ctx context.Context, room *redis_models.Room, player *redis_models.Player) ([]Event, error) {
	if room.Ended {
		return nil, invalid(ErrGameEnded)
	}
	if room.Started {
		return nil, invalid(ErrGameStarted)
	}
	if player.ID != room.OwnerID {
		return nil, invalid(ErrNotOwner)
	}
	n := len(room.Players)
	if n < game_constants.MinPlayers || n > game_constants.MaxPlayers {
		return nil, invalid(ErrInvalidPlayerCount)
	}

	next := room.Clone()
	next.Started = true
	for _, p := range next.Players {
		p.TurnIndex = p.SeatIndex
	}
	if err := e.advanceRound(next); err != nil {
		return nil, err
	}
	if err := e.store.SaveRoom(ctx, next); err != nil {
		return nil, fmt.Errorf("saving room %s: %w", next.ID, err)
	}

	e.logger.Info("game started", "room", next.ID, "players", n, "type", next.Type)
	events := []Event{broadcast(game_constants.EventStartGame, nil)}
	events = append(events, handEvents(next)...)
	return append(events, snapshots(game_constants.EventPublicData, next)...), nil
}

func (e *Engine) setGameType(ctx context.Context, room *redis_models.Room, player *redis_models.Player, cmd SetGameType) ([]Event, error) {
	if !cmd.Type.Valid() {
		return nil, invalid(ErrInvalidGameType)
	}
	if player.ID != room.OwnerID {
		return nil, invalid(ErrNotOwner)
	}
	if room.Ended {
		return nil, invalid(ErrGameEnded)
	}
	if room.Started && !e.allowTypeChange {
		return nil, invalid(ErrGameTypeLocked)
	}

	next := room.Clone()
	next.Type = cmd.Type
	if err := e.store.SaveRoom(ctx, next); err != nil {
		return nil, fmt.Errorf("saving room %s: %w", next.ID, err)
	}

	events := []Event{broadcast(game_constants.EventGameType, GameTypePayload{Type: next.Type})}
	return append(events, snapshots(game_constants.EventPublicData, next)...), nil
}

func (e *Engine) placeBid(ctx context.Context, room *redis_models.Room, player *redis_models.Player, cmd PlaceBid) ([]Event, error) {
	if err := inPlay(room); err != nil {
		return nil, err
	}
	if player.HasBid() {
		return nil, invalid(ErrAlreadyBid)
	}
	if !whist.BidInRange(room.Cards, cmd.Bid) {
		return nil, invalid(ErrBidOutOfRange)
	}

	isLast := true
	sumPrior := 0
	for _, p := range room.Players {
		if p.ID == player.ID {
			continue
		}
		if !p.HasBid() {
			isLast = false
			continue
		}
		sumPrior += *p.Bid
	}
	if !whist.IsBidLegal(isLast, room.Cards, sumPrior, cmd.Bid) {
		return nil, invalid(ErrIllegalBid)
	}

	next := room.Clone()
	bid := cmd.Bid
	next.Player(player.ID).Bid = &bid
	if err := e.store.SaveRoom(ctx, next); err != nil {
		return nil, fmt.Errorf("saving room %s: %w", next.ID, err)
	}

	events := []Event{broadcast(game_constants.EventVote, VotePayload{PlayerID: player.ID, Bid: bid})}
	return append(events, snapshots(game_constants.EventPublicData, next)...), nil
}

func (e *Engine) playCard(ctx context.Context, room *redis_models.Room, player *redis_models.Player, cmd PlayCard) ([]Event, error) {
	if err := inPlay(room); err != nil {
		return nil, err
	}
	card, err := whist.ParseCard(cmd.Card)
	if err != nil {
		return nil, invalid(err)
	}
	for _, p := range room.Players {
		if !p.HasBid() {
			return nil, invalid(ErrBiddingNotFinished)
		}
	}
	if player.HasPlayed() {
		return nil, invalid(ErrAlreadyPlayed)
	}
	for _, p := range room.Players {
		if p.TurnIndex < player.TurnIndex && !p.HasPlayed() {
			return nil, invalid(ErrNotYourTurn)
		}
	}

	hand, err := whist.ParseCards(player.Hand)
	if err != nil {
		return nil, fmt.Errorf("hand of %s: %w", player.ID, err)
	}
	trump, err := trumpSuit(room)
	if err != nil {
		return nil, err
	}
	lead := whist.NoSuit
	if leader := room.Leader(); leader != nil && leader.ID != player.ID && leader.HasPlayed() {
		leadCard, err := whist.ParseCard(leader.LastCardPlayed)
		if err != nil {
			return nil, fmt.Errorf("card led by %s: %w", leader.ID, err)
		}
		lead = leadCard.Suit
	}
	if err := whist.CheckPlay(hand, card, lead, trump); err != nil {
		return nil, invalid(err)
	}

	next := room.Clone()
	me := next.Player(player.ID)
	me.RemoveCard(card.String())
	me.LastCardPlayed = card.String()

	events := []Event{
		broadcast(game_constants.EventPlayedCard, PlayedCardPayload{PlayerID: me.ID, Card: me.LastCardPlayed}),
		unicast(me.ID, game_constants.EventYourCards, append([]string{}, me.Hand...)),
	}

	trickDone := true
	for _, p := range next.Players {
		if !p.HasPlayed() {
			trickDone = false
			break
		}
	}
	if trickDone {
		trickEvents, err := e.finishTrick(next, trump)
		if err != nil {
			return nil, err
		}
		events = append(events, trickEvents...)
	}

	if err := e.store.SaveRoom(ctx, next); err != nil {
		return nil, fmt.Errorf("saving room %s: %w", next.ID, err)
	}
	if next.Ended {
		e.archive(ctx, next)
	}
	return append(events, snapshots(game_constants.EventPublicData, next)...), nil
}

// finishTrick credits the trick, rotates the turn order to the winner and, when the
// hands are empty, scores the round and deals the next one.
func (e *Engine) finishTrick(room *redis_models.Room, trump whist.Suit) ([]Event, error) {
	order := room.PlayOrder()
	plays := make([]whist.Play, len(order))
	payload := TrickPayload{Cards: make([]PlayedCardPayload, len(order))}
	for i, p := range order {
		card, err := whist.ParseCard(p.LastCardPlayed)
		if err != nil {
			return nil, fmt.Errorf("card played by %s: %w", p.ID, err)
		}
		plays[i] = whist.Play{PlayerID: p.ID, Card: card}
		payload.Cards[i] = PlayedCardPayload{PlayerID: p.ID, Card: p.LastCardPlayed}
	}

	idx, err := whist.TrickWinner(plays, trump)
	if err != nil {
		return nil, fmt.Errorf("%w: room %s round %d: %v", ErrNoWinner, room.ID, room.Round, err)
	}
	winner := order[idx]
	winner.PointsThisRound++
	payload.WinnerID = winner.ID

	n := len(room.Players)
	winnerTurn := winner.TurnIndex
	for _, p := range room.Players {
		p.TurnIndex = whist.RotateTurn(p.TurnIndex, winnerTurn, n)
		p.LastCardPlayed = ""
	}
	events := []Event{broadcast(game_constants.EventEndTrick, payload)}

	for _, p := range room.Players {
		if len(p.Hand) > 0 {
			return events, nil
		}
	}

	for _, p := range room.Players {
		bid := 0
		if p.Bid != nil {
			bid = *p.Bid
		}
		p.Points += whist.RoundDelta(bid, p.PointsThisRound)
	}
	e.logger.Info("round finished", "room", room.ID, "round", room.Round)
	events = append(events, snapshots(game_constants.EventEndRound, room)...)

	if err := e.advanceRound(room); err != nil {
		return nil, err
	}
	if room.Ended {
		e.logger.Info("game finished", "room", room.ID)
		return append(events, broadcast(game_constants.EventEndGame, EndGamePayload{RoomID: room.ID, Standings: Standings(room)})), nil
	}
	return append(events, handEvents(room)...), nil
}

// advanceRound clears the per round state and deals the next round, or ends the game
// after the last one. The current turn order carries over.
func (e *Engine) advanceRound(room *redis_models.Room) error {
	room.SortBySeat()
	for _, p := range room.Players {
		p.Bid = nil
		p.PointsThisRound = 0
		p.LastCardPlayed = ""
		p.Hand = nil
	}

	n := len(room.Players)
	if room.Round+1 > whist.MaximumRoundNumber(n) {
		room.Ended = true
		room.Cards = 0
		room.Trump = ""
		return nil
	}
	room.Round++

	deal, err := whist.ShuffleCards(room.Round, room.Type, n, e.shuffle)
	if err != nil {
		return fmt.Errorf("dealing round %d of room %s: %w", room.Round, room.ID, err)
	}
	for seat, p := range room.Players {
		p.Hand = whist.Codes(deal.Hands[seat])
	}
	room.Cards = deal.HandSize
	room.Trump = ""
	if deal.HasTrump {
		room.Trump = deal.Trump.String()
	}
	return nil
}

func (e *Engine) archive(ctx context.Context, room *redis_models.Room) {
	if e.archiver == nil {
		return
	}
	if err := e.archiver.ArchiveGame(ctx, room); err != nil {
		e.logger.Error("archiving game", "room", room.ID, "error", err)
	}
}

func inPlay(room *redis_models.Room) error {
	if !room.Started {
		return invalid(ErrGameNotStarted)
	}
	if room.Ended {
		return invalid(ErrGameEnded)
	}
	return nil
}

func trumpSuit(room *redis_models.Room) (whist.Suit, error) {
	if room.Trump == "" {
		return whist.NoSuit, nil
	}
	card, err := whist.ParseCard(room.Trump)
	if err != nil {
		return whist.NoSuit, fmt.Errorf("trump of room %s: %w", room.ID, err)
	}
	return card.Suit, nil
}
