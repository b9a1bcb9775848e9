package redis

import (
	"fmt"

	"github.com/bankrollhq/bankroll/internal/model"
)

// Key prefix for all banker data
const keyPrefix = "bankroll"

// roomKey returns the Redis key for a Room
func roomKey(code model.RoomCode) string {
	return fmt.Sprintf("%s:room:%s", keyPrefix, code)
}
