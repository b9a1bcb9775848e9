package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bankrollhq/bankroll/internal/api/apierr"
	"github.com/bankrollhq/bankroll/internal/api/request"
	"github.com/bankrollhq/bankroll/internal/api/response"
	"github.com/bankrollhq/bankroll/internal/model"
	"github.com/bankrollhq/bankroll/internal/services/room"
)

// RoomHandler handles room and ledger endpoints
type RoomHandler struct {
	rooms room.ControllerInterface
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(rooms room.ControllerInterface) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

// roomCode extracts and canonicalizes the room code path variable
func roomCode(r *http.Request) model.RoomCode {
	return room.NormalizeCode(mux.Vars(r)["code"])
}

// Create handles POST /api/v1/rooms
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	created, err := h.rooms.CreateRoom(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.CreateRoomResponse{
		Code: string(created.Code),
	})
}

// Get handles GET /api/v1/rooms/{code}
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.rooms.GetRoom(r.Context(), roomCode(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomResponseFromModel(found))
}

// Join handles POST /api/v1/rooms/{code}/join
func (h *RoomHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req request.JoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	player, joined, err := h.rooms.JoinRoom(r.Context(), roomCode(r), req.Name)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.JoinResponse{
		OK:     true,
		Player: response.PlayerFromModel(player),
		Room:   response.RoomFromModel(joined),
	})
}

// Transfer handles POST /api/v1/rooms/{code}/transfer
func (h *RoomHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req request.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid transfer data"))
		return
	}

	updated, err := h.rooms.Transfer(r.Context(), roomCode(r), req.From, req.To, req.Amount)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomResponseFromModel(updated))
}

// ParkingPay handles POST /api/v1/rooms/{code}/parking/pay
func (h *RoomHandler) ParkingPay(w http.ResponseWriter, r *http.Request) {
	var req request.ParkingPayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	updated, err := h.rooms.PayParking(r.Context(), roomCode(r), model.PlayerID(req.PlayerID), req.Amount)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomResponseFromModel(updated))
}

// ParkingCollect handles POST /api/v1/rooms/{code}/parking/collect
func (h *RoomHandler) ParkingCollect(w http.ResponseWriter, r *http.Request) {
	var req request.ParkingCollectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	updated, err := h.rooms.CollectParking(r.Context(), roomCode(r), model.PlayerID(req.PlayerID))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomResponseFromModel(updated))
}
