package model

import "errors"

// Common errors used across the application
var (
	// Room errors
	ErrRoomNotFound = errors.New("room not found")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrNameRequired   = errors.New("name is required")

	// Ledger errors
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("amount must be a positive number")
	ErrInvalidTransfer   = errors.New("invalid transfer")
)
