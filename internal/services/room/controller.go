package room

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/bankrollhq/bankroll/internal/dependencies/clock"
	"github.com/bankrollhq/bankroll/internal/dependencies/random"
	"github.com/bankrollhq/bankroll/internal/ledger"
	"github.com/bankrollhq/bankroll/internal/model"
	"github.com/bankrollhq/bankroll/internal/storage"
)

const (
	// RoomCodeLength is the length of generated room codes
	RoomCodeLength = 6
	// RoomCodeAlphabet is the characters used in room codes (avoid confusing chars)
	RoomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Controller manages room lifecycle and ledger operations
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	locks   *roomLocks
}

// NewController creates a new room Controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		locks:   newRoomLocks(),
	}
}

// NormalizeCode canonicalizes a room code for lookup.
// Codes are case-insensitive; the canonical form is upper case.
func NormalizeCode(code string) model.RoomCode {
	return model.RoomCode(strings.ToUpper(strings.TrimSpace(code)))
}

// CreateRoom creates a new empty room with a freshly generated code.
// Generation retries until the code does not collide with an existing room.
func (c *Controller) CreateRoom(ctx context.Context) (*model.Room, error) {
	var code model.RoomCode
	for {
		code = model.RoomCode(c.random.String(RoomCodeLength, RoomCodeAlphabet))
		exists, err := c.storage.RoomExists(ctx, code)
		if err != nil {
			return nil, err
		}
		if !exists {
			break
		}
	}

	room := model.NewRoom(code, c.clock.Now())
	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}

	return room, nil
}

// GetRoom retrieves a snapshot of a room by code. The per-room lock is
// held while the snapshot is taken, so a reader never observes a
// half-applied operation even on the memory backend, which stores the
// live room.
func (c *Controller) GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error) {
	unlock := c.locks.lock(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	return room.Clone(), nil
}

// JoinRoom admits a named player into a room
func (c *Controller) JoinRoom(ctx context.Context, code model.RoomCode, name string) (*model.Player, *model.Room, error) {
	unlock := c.locks.lock(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return nil, nil, err
	}

	player, err := ledger.Join(room, model.PlayerID(uuid.NewString()), name, c.clock.Now())
	if err != nil {
		return nil, nil, err
	}

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, nil, err
	}

	joined := *player
	return &joined, room.Clone(), nil
}

// Transfer moves money between bank and players within a room
func (c *Controller) Transfer(ctx context.Context, code model.RoomCode, from, to string, amount int64) (*model.Room, error) {
	return c.apply(ctx, code, func(room *model.Room) error {
		return ledger.Transfer(room, from, to, amount, c.clock.Now())
	})
}

// PayParking moves money from a player into the room's Free Parking pot
func (c *Controller) PayParking(ctx context.Context, code model.RoomCode, playerID model.PlayerID, amount int64) (*model.Room, error) {
	return c.apply(ctx, code, func(room *model.Room) error {
		return ledger.PayParking(room, playerID, amount, c.clock.Now())
	})
}

// CollectParking empties the Free Parking pot into a player's balance
func (c *Controller) CollectParking(ctx context.Context, code model.RoomCode, playerID model.PlayerID) (*model.Room, error) {
	return c.apply(ctx, code, func(room *model.Room) error {
		return ledger.CollectParking(room, playerID, c.clock.Now())
	})
}

// apply runs a ledger operation against a room under its lock and
// persists the result. The lock spans the whole load-mutate-save cycle
// so balance checks cannot race with concurrent requests. The returned
// room is a snapshot; the live room never leaves the lock.
func (c *Controller) apply(ctx context.Context, code model.RoomCode, op func(*model.Room) error) (*model.Room, error) {
	unlock := c.locks.lock(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := op(room); err != nil {
		return nil, err
	}

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}
	return room.Clone(), nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateRoom(ctx context.Context) (*model.Room, error)
	GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error)
	JoinRoom(ctx context.Context, code model.RoomCode, name string) (*model.Player, *model.Room, error)
	Transfer(ctx context.Context, code model.RoomCode, from, to string, amount int64) (*model.Room, error)
	PayParking(ctx context.Context, code model.RoomCode, playerID model.PlayerID, amount int64) (*model.Room, error)
	CollectParking(ctx context.Context, code model.RoomCode, playerID model.PlayerID) (*model.Room, error)
}

var _ ControllerInterface = (*Controller)(nil)
