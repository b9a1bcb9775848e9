package request

// JoinRequest is the request body for joining a room
type JoinRequest struct {
	Name string `json:"name"`
}

// TransferRequest is the request body for a transfer.
// From and To are each the "bank" sentinel or a player id.
type TransferRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

// ParkingPayRequest is the request body for paying into Free Parking
type ParkingPayRequest struct {
	PlayerID string `json:"playerId"`
	Amount   int64  `json:"amount"`
}

// ParkingCollectRequest is the request body for collecting Free Parking
type ParkingCollectRequest struct {
	PlayerID string `json:"playerId"`
}
