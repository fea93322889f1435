package handlers

import (
	game_constants "Whist/constants/game"
	redis_models "Whist/models/redis"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleConnected(t *testing.T) {
	t.Run("lobby", func(t *testing.T) {
		_, sessions, _ := newSessions(t, "ana", "bea", "cris")
		HandleConnected(sessions[2])

		c := sessions[2].Client.(*fakeClient)
		require.Len(t, c.emitted, 1)
		assert.Equal(t, game_constants.EventPublicData, c.emitted[0].name)
	})

	t.Run("mid round", func(t *testing.T) {
		_, sessions, _ := newSessions(t, "ana", "bea", "cris")
		HandleStartGame(sessions[0])()
		HandleConnected(sessions[1])

		c := sessions[1].Client.(*fakeClient)
		require.Len(t, c.emitted, 2)
		snap := c.emitted[0].args[0].(*redis_models.RoomSnapshot)
		assert.True(t, snap.Started)
		for _, p := range snap.Players {
			if p.ID != sessions[1].PlayerID {
				assert.Equal(t, []string{game_constants.HiddenCard}, p.Cards)
			}
		}
		assert.Equal(t, game_constants.EventYourCards, c.emitted[1].name)
		assert.Equal(t, []string{"9S"}, c.emitted[1].args[0])
	})
}

func TestHandleDisconnecting(t *testing.T) {
	_, sessions, _ := newSessions(t, "ana", "bea", "cris")
	forgotten := false
	HandleDisconnecting(sessions[0], func() { forgotten = true })("transport close")

	assert.True(t, forgotten)
	assert.Empty(t, sessions[0].Client.(*fakeClient).emitted)
}
