package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting command results
type Output struct {
	format string
}

// NewOutput creates an Output for the given format
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"error": err.Error()})
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case CreateRoomResult:
		fmt.Printf("Room code: %s\n", v.Code)
	case RoomResult:
		o.printRoom(v.Room)
	case JoinResult:
		fmt.Printf("Joined as %s (%s)\n", v.Player.Name, v.Player.ID)
		o.printRoom(v.Room)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Room response type (matches API)
type Room struct {
	Code    string         `json:"code"`
	Bank    int64          `json:"bank"`
	Parking int64          `json:"parking"`
	Players []Player       `json:"players"`
	History []HistoryEntry `json:"history"`
}

// Player response type
type Player struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Balance int64  `json:"balance"`
}

// HistoryEntry response type
type HistoryEntry struct {
	Time time.Time `json:"time"`
	Type string    `json:"type"`
	Text string    `json:"text"`
}

// CreateRoomResult is the create-room response
type CreateRoomResult struct {
	Code string `json:"code"`
}

// RoomResult is the ok+room envelope
type RoomResult struct {
	OK   bool `json:"ok"`
	Room Room `json:"room"`
}

// JoinResult is the join response
type JoinResult struct {
	OK     bool   `json:"ok"`
	Player Player `json:"player"`
	Room   Room   `json:"room"`
}

// HealthResult is the health check response
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printRoom(r Room) {
	fmt.Printf("Room: %s\n", r.Code)
	fmt.Printf("Bank: $%d\n", r.Bank)
	fmt.Printf("Free Parking: $%d\n", r.Parking)
	fmt.Printf("Players (%d):\n", len(r.Players))
	for _, p := range r.Players {
		fmt.Printf("  %s: $%d (%s)\n", p.Name, p.Balance, p.ID)
	}
	if len(r.History) > 0 {
		fmt.Println("History:")
		for _, e := range r.History {
			fmt.Printf("  [%s] %s\n", e.Time.Format(time.Kitchen), e.Text)
		}
	}
}
