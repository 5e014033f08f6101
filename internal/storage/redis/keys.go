package redis

import (
	"fmt"

	"github.com/tmazur/sketchbluff/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "sketchbluff"

// roomKey returns the Redis key for a Room
func roomKey(id model.RoomID) string {
	return fmt.Sprintf("%s:room:%s", keyPrefix, id)
}

// tokenIndexKey returns the Redis key for the player-token ->
// (room, player) index
func tokenIndexKey(token string) string {
	return fmt.Sprintf("%s:idx:token:%s", keyPrefix, token)
}

// phrasePoolKey returns the Redis key for the phrase suggestion pool
func phrasePoolKey() string {
	return fmt.Sprintf("%s:phrase_pool", keyPrefix)
}
