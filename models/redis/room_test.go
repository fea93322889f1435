package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoom() *Room {
	bid := 1
	return &Room{
		ID:      "42",
		OwnerID: PlayerID("42", "ana"),
		Type:    GameTypeOneEightOne,
		Round:   3,
		Cards:   2,
		Trump:   "KH",
		Started: true,
		Players: []*Player{
			{ID: PlayerID("42", "ana"), SeatIndex: 0, TurnIndex: 1, Name: "ana", Hand: []string{"AH", "2S"}, Bid: &bid},
			{ID: PlayerID("42", "bob"), SeatIndex: 1, TurnIndex: 2, Name: "bob", Hand: []string{"3D", "4D"}},
			{ID: PlayerID("42", "cid"), SeatIndex: 2, TurnIndex: 0, Name: "cid", Hand: []string{"5C"}, LastCardPlayed: "9C"},
		},
	}
}

func TestPlayerIDRoundTrip(t *testing.T) {
	id := PlayerID("1234", "some:name")
	assert.Equal(t, "room#1234:user#some:name", id)

	roomID, ok := RoomIDFromPlayerID(id)
	require.True(t, ok)
	assert.Equal(t, "1234", roomID)

	_, ok = RoomIDFromPlayerID("user#x")
	assert.False(t, ok)
	_, ok = RoomIDFromPlayerID("room#:user#x")
	assert.False(t, ok)
}

func TestSnapshotRedactsOtherHands(t *testing.T) {
	room := testRoom()
	snap := room.Snapshot(PlayerID("42", "ana"))

	require.Len(t, snap.Players, 3)
	assert.Equal(t, []string{"AH", "2S"}, snap.Players[0].Cards)
	assert.Equal(t, []string{"blank", "blank"}, snap.Players[1].Cards)
	assert.Equal(t, []string{"blank"}, snap.Players[2].Cards)
	assert.Equal(t, 1, snap.Players[2].CardsLeft)
	require.NotNil(t, snap.Players[2].LastCardPlayed)
	assert.Equal(t, "9C", *snap.Players[2].LastCardPlayed)
	assert.Nil(t, snap.Players[1].Bid)
	require.NotNil(t, snap.Trump)
	assert.Equal(t, "KH", *snap.Trump)

	// The snapshot must not alias the room's slices.
	snap.Players[0].Cards[0] = "XX"
	assert.Equal(t, "AH", room.Players[0].Hand[0])
}

func TestSnapshotIsStable(t *testing.T) {
	room := testRoom()
	viewer := PlayerID("42", "bob")
	assert.Equal(t, room.Snapshot(viewer), room.Snapshot(viewer))
}

func TestPlayOrderAndLeader(t *testing.T) {
	room := testRoom()
	order := room.PlayOrder()
	assert.Equal(t, "cid", order[0].Name)
	assert.Equal(t, "ana", order[1].Name)
	assert.Equal(t, "bob", order[2].Name)
	assert.Equal(t, "cid", room.Leader().Name)
	// seating is untouched
	assert.Equal(t, "ana", room.Players[0].Name)
}

func TestCloneIsDeep(t *testing.T) {
	room := testRoom()
	clone := room.Clone()
	clone.Players[0].Hand[0] = "QQ"
	*clone.Players[0].Bid = 7
	clone.Players[1].Name = "zed"

	assert.Equal(t, "AH", room.Players[0].Hand[0])
	assert.Equal(t, 1, *room.Players[0].Bid)
	assert.Equal(t, "bob", room.Players[1].Name)
}

func TestRemoveCard(t *testing.T) {
	p := &Player{Hand: []string{"AH", "2S", "3D"}}
	assert.True(t, p.RemoveCard("2S"))
	assert.Equal(t, []string{"AH", "3D"}, p.Hand)
	assert.False(t, p.RemoveCard("2S"))
	assert.False(t, p.HasCard("2S"))
	assert.True(t, p.HasCard("3D"))
}

func TestGameTypeValid(t *testing.T) {
	assert.True(t, GameTypeOneEightOne.Valid())
	assert.True(t, GameTypeEightOneEight.Valid())
	assert.False(t, GameType("1-2-3").Valid())
}
