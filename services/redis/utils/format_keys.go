package utils

/**
 * Key layout of a room in Redis. Player hashes are stored under the player id
 * itself, see redis_models.PlayerID.
 */

import "fmt"

func FormatRoomKey(roomID string) string {
	return fmt.Sprintf("room#%s", roomID)
}

func FormatRoomUsersKey(roomID string) string {
	return fmt.Sprintf("room#%s:users:unique", roomID)
}
