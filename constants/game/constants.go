package game_constants

const MinPlayers = 3
const MaxPlayers = 6

// Every seated player contributes this many cards to the deck slice.
const CardsPerPlayer = 8

// Hand size of the "full" rounds, which are played without trump
const FullHandSize = 8

// Added on top of the bid when a player wins exactly what they bid
const ExactBidBonus = 5

// Room codes are drawn from [0, RoomCodeRange)
const RoomCodeRange = 9999
const MaxRoomCodeAttempts = 100

// Placeholder used for the cards of other players in a public snapshot
const HiddenCard = "blank"

// Socket.io event names
const (
	EventNewPlayer     = "newPlayer"
	EventStartGame     = "startGame"
	EventPublicData    = "publicData"
	EventVote          = "vote"
	EventPlayedCard    = "playedCard"
	EventYourCards     = "yourCards"
	EventEndTrick      = "endTrick"
	EventEndRound      = "endRound"
	EventEndGame       = "endGame"
	EventGameType      = "gameType"
	EventError         = "error"
	EventGetPublicData = "getPublicData"
	EventChangeType    = "changeGameType"
	EventPlayCard      = "playCard"
)
