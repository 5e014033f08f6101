package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tmazur/sketchbluff/internal/api/apierr"
	"github.com/tmazur/sketchbluff/internal/api/response"
	"github.com/tmazur/sketchbluff/internal/model"
	"github.com/tmazur/sketchbluff/internal/storage"
)

// RoomsHandler serves room lookups so clients can validate a share
// code before opening a WebSocket and joining.
type RoomsHandler struct {
	storage storage.Storage
}

// NewRoomsHandler creates a new RoomsHandler
func NewRoomsHandler(storage storage.Storage) *RoomsHandler {
	return &RoomsHandler{storage: storage}
}

// RoomInfoResponse is the public summary of a room
type RoomInfoResponse struct {
	ID          model.RoomID    `json:"id"`
	State       model.RoomState `json:"state"`
	PlayerCount int             `json:"playerCount"`
	Joinable    bool            `json:"joinable"`
}

// Get returns the public summary of a room
func (h *RoomsHandler) Get(w http.ResponseWriter, r *http.Request) {
	roomID := model.RoomID(mux.Vars(r)["id"])

	room, err := h.storage.GetRoom(r.Context(), roomID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, RoomInfoResponse{
		ID:          room.ID,
		State:       room.State,
		PlayerCount: len(room.Players),
		Joinable:    room.State == model.RoomNotStarted,
	})
}
