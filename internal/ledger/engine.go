// Package ledger implements the money-movement rules for a single room.
//
// Every function here is a pure state transition over a *model.Room:
// no I/O, no locking, no knowledge of storage or transport. Validation
// always happens before any mutation, so a returned error guarantees
// the room is untouched.
package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/bankrollhq/bankroll/internal/model"
)

// Join admits a new player to the room. The name is trimmed and must be
// non-empty. Duplicate names are allowed; the id must be unique.
func Join(room *model.Room, id model.PlayerID, name string, now time.Time) (*model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrNameRequired
	}

	player := &model.Player{
		ID:       id,
		Name:     name,
		Balance:  model.InitialPlayerBalance,
		JoinedAt: now,
	}

	room.Players = append(room.Players, player)
	appendHistory(room, model.EventJoin, fmt.Sprintf("%s joined the game", name), now)
	return player, nil
}

// Transfer moves amount between two accounts, each either the bank
// sentinel or a player id. The bank is an unlimited source: crediting a
// player from the bank never decrements the bank balance. Paying the
// bank or another player requires sufficient funds. A player paying
// themselves is permitted and nets to zero.
func Transfer(room *model.Room, from, to string, amount int64, now time.Time) error {
	if amount <= 0 {
		return model.ErrInvalidAmount
	}
	if from == "" || to == "" {
		return model.ErrInvalidTransfer
	}

	// Bank-to-bank has no meaning; reject it outright rather than
	// letting it fall through to a player lookup of "bank".
	if from == model.BankAccount && to == model.BankAccount {
		return model.ErrInvalidTransfer
	}

	switch {
	case from == model.BankAccount:
		player := room.FindPlayer(model.PlayerID(to))
		if player == nil {
			return model.ErrPlayerNotFound
		}
		player.Credit(amount)
		appendHistory(room, model.EventBank,
			fmt.Sprintf("Bank → %s ($%d)", player.Name, amount), now)

	case to == model.BankAccount:
		player := room.FindPlayer(model.PlayerID(from))
		if player == nil {
			return model.ErrPlayerNotFound
		}
		if err := player.Debit(amount); err != nil {
			return err
		}
		room.Bank += amount
		appendHistory(room, model.EventBank,
			fmt.Sprintf("%s → Bank ($%d)", player.Name, amount), now)

	default:
		fromPlayer := room.FindPlayer(model.PlayerID(from))
		if fromPlayer == nil {
			return model.ErrPlayerNotFound
		}
		toPlayer := room.FindPlayer(model.PlayerID(to))
		if toPlayer == nil {
			return model.ErrPlayerNotFound
		}
		if err := fromPlayer.Debit(amount); err != nil {
			return err
		}
		toPlayer.Credit(amount)
		appendHistory(room, model.EventTransfer,
			fmt.Sprintf("%s → %s ($%d)", fromPlayer.Name, toPlayer.Name, amount), now)
	}

	return nil
}

// PayParking moves amount from a player into the Free Parking pot
func PayParking(room *model.Room, playerID model.PlayerID, amount int64, now time.Time) error {
	if amount <= 0 {
		return model.ErrInvalidAmount
	}

	player := room.FindPlayer(playerID)
	if player == nil {
		return model.ErrPlayerNotFound
	}
	if err := player.Debit(amount); err != nil {
		return err
	}
	room.Parking += amount

	appendHistory(room, model.EventParking,
		fmt.Sprintf("%s → Free Parking ($%d)", player.Name, amount), now)
	return nil
}

// CollectParking empties the Free Parking pot into a player's balance.
// Collecting an empty pot succeeds and still records a history entry.
func CollectParking(room *model.Room, playerID model.PlayerID, now time.Time) error {
	player := room.FindPlayer(playerID)
	if player == nil {
		return model.ErrPlayerNotFound
	}

	pot := room.Parking
	room.Parking = 0
	player.Credit(pot)

	appendHistory(room, model.EventParking,
		fmt.Sprintf("%s collected Free Parking ($%d)", player.Name, pot), now)
	return nil
}

// appendHistory prepends an entry, keeping the newest MaxHistoryEntries
func appendHistory(room *model.Room, eventType model.EventType, text string, now time.Time) {
	entry := model.HistoryEntry{
		Time: now,
		Type: eventType,
		Text: text,
	}

	room.History = append([]model.HistoryEntry{entry}, room.History...)
	if len(room.History) > model.MaxHistoryEntries {
		room.History = room.History[:model.MaxHistoryEntries]
	}
	room.UpdatedAt = now
}
