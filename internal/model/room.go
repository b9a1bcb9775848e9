package model

import "time"

// RoomCode is a human-readable identifier for joining rooms
type RoomCode string

// PlayerID uniquely identifies a player within a room
type PlayerID string

// BankAccount is the reserved identifier addressing the room's bank
// in transfer operations
const BankAccount = "bank"

const (
	// InitialBankBalance is the bank balance at room creation.
	// The bank is treated as an unlimited source; the balance is
	// never decremented, it exists for display.
	InitialBankBalance int64 = 9_999_999_999_999

	// InitialPlayerBalance is the balance every player starts with
	InitialPlayerBalance int64 = 1500

	// MaxHistoryEntries caps a room's audit history
	MaxHistoryEntries = 50
)

// EventType categorizes audit history entries
type EventType string

const (
	EventJoin     EventType = "join"
	EventBank     EventType = "bank"
	EventParking  EventType = "parking"
	EventTransfer EventType = "transfer"
)

// HistoryEntry is a single human-readable audit record
type HistoryEntry struct {
	Time time.Time
	Type EventType
	Text string
}

// Player represents a participant in a room
type Player struct {
	ID       PlayerID
	Name     string
	Balance  int64
	JoinedAt time.Time
}

// HasSufficientFunds reports whether the player can cover a debit
func (p *Player) HasSufficientFunds(amount int64) bool {
	return p.Balance >= amount
}

// Debit removes funds from the player's balance.
// Callers must validate amount and funds first; Debit enforces both.
func (p *Player) Debit(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if !p.HasSufficientFunds(amount) {
		return ErrInsufficientFunds
	}
	p.Balance -= amount
	return nil
}

// Credit adds funds to the player's balance unconditionally
func (p *Player) Credit(amount int64) {
	p.Balance += amount
}

// Room is an isolated game session: bank, Free Parking pot, players
// in join order, and a bounded newest-first audit history
type Room struct {
	Code    RoomCode
	Bank    int64
	Parking int64
	Players []*Player
	History []HistoryEntry

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRoom creates an empty room with the given code
func NewRoom(code RoomCode, now time.Time) *Room {
	return &Room{
		Code:      code,
		Bank:      InitialBankBalance,
		Parking:   0,
		Players:   []*Player{},
		History:   []HistoryEntry{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// FindPlayer returns the player with the given ID, or nil if not found
func (r *Room) FindPlayer(id PlayerID) *Player {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Clone returns a deep copy of the room. Callers that hand room state
// out of the owning lock must hand out a clone, never the live room.
func (r *Room) Clone() *Room {
	players := make([]*Player, len(r.Players))
	for i, p := range r.Players {
		copied := *p
		players[i] = &copied
	}

	history := make([]HistoryEntry, len(r.History))
	copy(history, r.History)

	return &Room{
		Code:      r.Code,
		Bank:      r.Bank,
		Parking:   r.Parking,
		Players:   players,
		History:   history,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
