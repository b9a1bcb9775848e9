package storage

import (
	"context"

	"github.com/bankrollhq/bankroll/internal/model"
)

// Storage defines the interface for room persistence
type Storage interface {
	// SaveRoom stores a room, overwriting any existing room with the same code
	SaveRoom(ctx context.Context, room *model.Room) error

	// GetRoom retrieves a room by code, returning model.ErrRoomNotFound if absent
	GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error)

	// RoomExists reports whether a room with the given code exists
	RoomExists(ctx context.Context, code model.RoomCode) (bool, error)
}
