package http

import (
	"net/http"
	"strings"

	"github.com/dormdesk/dormdesk/internal/domain"
	"github.com/dormdesk/dormdesk/internal/service"
	"github.com/dormdesk/dormdesk/pkg/dormsdk"
	"github.com/dormdesk/dormdesk/pkg/httpx"
)

const maxBatchCount = 200

// RoomsHandler serves room management under owned dorms.
type RoomsHandler struct {
	RoomService *service.RoomService
}

// HandleCreate godoc
//
//	@Summary	Create room
//	@Tags		Rooms
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string				true	"Dorm id"
//	@Param		body	body		dormsdk.RoomRequest	true	"Room"
//	@Success	201		{object}	dormsdk.RoomResponse
//	@Failure	403		{object}	httpx.ErrorResponse	"message"
//	@Failure	409		{object}	httpx.ErrorResponse	"message"
//	@Router		/v1/dorms/{id}/rooms [post].
func (h *RoomsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req dormsdk.RoomRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Room name is required")
		return
	}

	room, err := h.RoomService.Create(r.Context(), r.PathValue("id"), httpx.UserID(r.Context()), service.RoomParams{
		Name:        req.Name,
		Floor:       req.Floor,
		MonthlyRent: req.MonthlyRent,
		Deposit:     req.Deposit,
	})
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toRoomResponse(room))
}

// HandleBatchCreate godoc
//
//	@Summary		Batch create rooms
//	@Description	Generates rooms named prefix+number for a consecutive run. Mode "skip" drops colliding names; "strict" fails the whole batch on the first collision.
//	@Tags			Rooms
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string					true	"Dorm id"
//	@Param			body	body		dormsdk.BatchRoomRequest	true	"Batch"
//	@Success		201		{array}		dormsdk.RoomResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"message"
//	@Failure		403		{object}	httpx.ErrorResponse	"message"
//	@Failure		409		{object}	httpx.ErrorResponse	"message"
//	@Router			/v1/dorms/{id}/rooms/batch [post].
func (h *RoomsHandler) HandleBatchCreate(w http.ResponseWriter, r *http.Request) {
	var req dormsdk.BatchRoomRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Count <= 0 || req.Count > maxBatchCount {
		httpx.WriteError(w, http.StatusBadRequest, "Count must be between 1 and 200")
		return
	}

	var mode service.BatchCollisionMode
	switch req.Mode {
	case "", string(service.BatchSkip):
		mode = service.BatchSkip
	case string(service.BatchStrict):
		mode = service.BatchStrict
	default:
		httpx.WriteError(w, http.StatusBadRequest, "Mode must be skip or strict")
		return
	}

	rooms, err := h.RoomService.BatchCreate(r.Context(), r.PathValue("id"), httpx.UserID(r.Context()), service.BatchCreateParams{
		Prefix:      req.Prefix,
		Start:       req.Start,
		Count:       req.Count,
		Floor:       req.Floor,
		MonthlyRent: req.MonthlyRent,
		Deposit:     req.Deposit,
		Mode:        mode,
	})
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	out := make([]dormsdk.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, toRoomResponse(room))
	}
	httpx.WriteJSON(w, http.StatusCreated, out)
}

// HandleList godoc
//
//	@Summary	List rooms in a dorm
//	@Tags		Rooms
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string	true	"Dorm id"
//	@Param		status	query		string	false	"Filter by status"	Enums(available, reserved, occupied, maintenance)
//	@Success	200		{array}		dormsdk.RoomResponse
//	@Failure	404		{object}	httpx.ErrorResponse	"message"
//	@Router		/v1/dorms/{id}/rooms [get].
func (h *RoomsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	status := domain.RoomStatus(r.URL.Query().Get("status"))
	rooms, err := h.RoomService.ListByDorm(r.Context(), r.PathValue("id"), status, parsePage(r))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	out := make([]dormsdk.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, toRoomResponse(room))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleUpdate godoc
//
//	@Summary	Update room
//	@Tags		Rooms
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string				true	"Room id"
//	@Param		body	body		dormsdk.RoomRequest	true	"Room"
//	@Success	200		{object}	dormsdk.RoomResponse
//	@Failure	403		{object}	httpx.ErrorResponse	"message"
//	@Failure	404		{object}	httpx.ErrorResponse	"message"
//	@Router		/v1/rooms/{id} [put].
func (h *RoomsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req dormsdk.RoomRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	room, err := h.RoomService.Update(r.Context(), r.PathValue("id"), httpx.UserID(r.Context()), service.RoomParams{
		Name:        req.Name,
		Floor:       req.Floor,
		MonthlyRent: req.MonthlyRent,
		Deposit:     req.Deposit,
	})
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toRoomResponse(room))
}

// HandleSetStatus godoc
//
//	@Summary		Set room status
//	@Description	Manual status change by the dorm owner, validated against the room state machine.
//	@Tags			Rooms
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Room id"
//	@Param			body	body		dormsdk.RoomStatusRequest	true	"Target status"
//	@Success		200		{object}	dormsdk.RoomResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"message"
//	@Failure		403		{object}	httpx.ErrorResponse	"message"
//	@Router			/v1/rooms/{id}/status [post].
func (h *RoomsHandler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	var req dormsdk.RoomStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	room, err := h.RoomService.SetStatus(r.Context(), r.PathValue("id"), httpx.UserID(r.Context()), domain.RoomStatus(req.Status))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toRoomResponse(room))
}

// HandleDelete godoc
//
//	@Summary	Delete room
//	@Tags		Rooms
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Room id"
//	@Success	204
//	@Failure	403	{object}	httpx.ErrorResponse	"message"
//	@Failure	404	{object}	httpx.ErrorResponse	"message"
//	@Router		/v1/rooms/{id} [delete].
func (h *RoomsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.RoomService.Delete(r.Context(), r.PathValue("id"), httpx.UserID(r.Context())); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
