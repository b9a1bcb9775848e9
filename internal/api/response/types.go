package response

import (
	"time"

	"github.com/bankrollhq/bankroll/internal/model"
)

// Player represents a player in API responses
type Player struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Balance int64  `json:"balance"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:      string(p.ID),
		Name:    p.Name,
		Balance: p.Balance,
	}
}

// HistoryEntry represents an audit log entry
type HistoryEntry struct {
	Time time.Time `json:"time"`
	Type string    `json:"type"`
	Text string    `json:"text"`
}

// HistoryEntryFromModel converts model.HistoryEntry
func HistoryEntryFromModel(e model.HistoryEntry) HistoryEntry {
	return HistoryEntry{
		Time: e.Time,
		Type: string(e.Type),
		Text: e.Text,
	}
}

// Room represents a room in API responses
type Room struct {
	Code    string         `json:"code"`
	Bank    int64          `json:"bank"`
	Parking int64          `json:"parking"`
	Players []Player       `json:"players"`
	History []HistoryEntry `json:"history"`
}

// RoomFromModel converts model.Room
func RoomFromModel(r *model.Room) Room {
	players := make([]Player, len(r.Players))
	for i, p := range r.Players {
		players[i] = PlayerFromModel(p)
	}

	history := make([]HistoryEntry, len(r.History))
	for i, e := range r.History {
		history[i] = HistoryEntryFromModel(e)
	}

	return Room{
		Code:    string(r.Code),
		Bank:    r.Bank,
		Parking: r.Parking,
		Players: players,
		History: history,
	}
}

// CreateRoomResponse is the response for room creation
type CreateRoomResponse struct {
	Code string `json:"code"`
}

// RoomResponse wraps a room for state-returning endpoints
type RoomResponse struct {
	OK   bool `json:"ok"`
	Room Room `json:"room"`
}

// RoomResponseFromModel builds the standard ok+room envelope
func RoomResponseFromModel(r *model.Room) RoomResponse {
	return RoomResponse{
		OK:   true,
		Room: RoomFromModel(r),
	}
}

// JoinResponse is the response for joining a room
type JoinResponse struct {
	OK     bool   `json:"ok"`
	Player Player `json:"player"`
	Room   Room   `json:"room"`
}
