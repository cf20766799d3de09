package adaptor

import (
	"net/http"

	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/usecase"
	"cinema-manager/pkg/utils"

	"go.uber.org/zap"
)

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

// GetRooms handles GET /api/rooms
func (h *RoomHandler) GetRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.GetRooms(r.Context())
	if err != nil {
		writeError(w, h.log, err, "get rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// GetRoomByID handles GET /api/rooms/{id}
func (h *RoomHandler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	roomID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	room, err := h.service.GetRoomByID(r.Context(), roomID)
	if err != nil {
		writeError(w, h.log, err, "get room by ID")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// CreateRoom handles POST /api/rooms (admin only)
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.RoomRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err, "create room")
		return
	}

	utils.ResponseCreated(w, "Room created", room)
}

// UpdateRoom handles PUT /api/rooms/{id} (admin only)
func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	roomID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.RoomRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.UpdateRoom(r.Context(), roomID, &req)
	if err != nil {
		writeError(w, h.log, err, "update room")
		return
	}

	utils.ResponseSuccess(w, "Room updated", room)
}

// DeleteRoom handles DELETE /api/rooms/{id} (admin only)
func (h *RoomHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	roomID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteRoom(r.Context(), roomID); err != nil {
		writeError(w, h.log, err, "delete room")
		return
	}

	utils.ResponseSuccess(w, "Room deleted", nil)
}
