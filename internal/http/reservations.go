package http

import (
	"net/http"

	"github.com/dormdesk/dormdesk/internal/domain"
	"github.com/dormdesk/dormdesk/internal/service"
	"github.com/dormdesk/dormdesk/pkg/dormsdk"
	"github.com/dormdesk/dormdesk/pkg/httpx"
)

// ReservationsHandler serves the reservation flow: tenants place and cancel,
// owners approve and reject.
type ReservationsHandler struct {
	ReservationService *service.ReservationService
}

// HandleCreate godoc
//
//	@Summary		Reserve a room
//	@Description	Places a pending reservation on an available room and marks the room reserved.
//	@Tags			Reservations
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		dormsdk.ReserveRequest	true	"Room to reserve"
//	@Success		201		{object}	dormsdk.ReservationResponse
//	@Failure		404		{object}	httpx.ErrorResponse	"message"
//	@Failure		409		{object}	httpx.ErrorResponse	"message"
//	@Router			/v1/reservations [post].
func (h *ReservationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req dormsdk.ReserveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.RoomID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Room id is required")
		return
	}

	res, err := h.ReservationService.Reserve(r.Context(), req.RoomID, httpx.UserID(r.Context()), req.Note)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toReservationResponse(res))
}

// HandleListMine godoc
//
//	@Summary	List own reservations
//	@Tags		Reservations
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dormsdk.ReservationResponse
//	@Failure	401	{object}	httpx.ErrorResponse	"message"
//	@Router		/v1/reservations [get].
func (h *ReservationsHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	list, err := h.ReservationService.ListByTenant(r.Context(), httpx.UserID(r.Context()), parsePage(r))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeReservations(w, list)
}

// HandleListIncoming godoc
//
//	@Summary		List incoming reservations
//	@Description	Reservations against rooms in the caller's dorms.
//	@Tags			Reservations
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dormsdk.ReservationResponse
//	@Failure		403	{object}	httpx.ErrorResponse	"message"
//	@Router			/v1/reservations/incoming [get].
func (h *ReservationsHandler) HandleListIncoming(w http.ResponseWriter, r *http.Request) {
	list, err := h.ReservationService.ListByOwner(r.Context(), httpx.UserID(r.Context()), parsePage(r))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeReservations(w, list)
}

// HandleApprove godoc
//
//	@Summary		Approve reservation
//	@Description	Approves a pending reservation, creating an active contract with the room's current terms and marking the room occupied. All in one transaction.
//	@Tags			Reservations
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string								true	"Reservation id"
//	@Param			body	body		dormsdk.ApproveReservationRequest	true	"Contract terms"
//	@Success		201		{object}	dormsdk.ContractResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"message"
//	@Failure		403		{object}	httpx.ErrorResponse	"message"
//	@Failure		404		{object}	httpx.ErrorResponse	"message"
//	@Router			/v1/reservations/{id}/approve [post].
func (h *ReservationsHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	var req dormsdk.ApproveReservationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Months <= 0 {
		httpx.WriteError(w, http.StatusBadRequest, "Months must be positive")
		return
	}

	contract, err := h.ReservationService.Approve(r.Context(), r.PathValue("id"), httpx.UserID(r.Context()), service.ApproveParams{
		StartDate: req.StartDate,
		Months:    req.Months,
	})
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toContractResponse(contract))
}

// HandleReject godoc
//
//	@Summary	Reject reservation
//	@Tags		Reservations
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Reservation id"
//	@Success	204
//	@Failure	400	{object}	httpx.ErrorResponse	"message"
//	@Failure	403	{object}	httpx.ErrorResponse	"message"
//	@Router		/v1/reservations/{id}/reject [post].
func (h *ReservationsHandler) HandleReject(w http.ResponseWriter, r *http.Request) {
	if err := h.ReservationService.Reject(r.Context(), r.PathValue("id"), httpx.UserID(r.Context())); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleCancel godoc
//
//	@Summary	Cancel own reservation
//	@Tags		Reservations
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Reservation id"
//	@Success	204
//	@Failure	400	{object}	httpx.ErrorResponse	"message"
//	@Failure	403	{object}	httpx.ErrorResponse	"message"
//	@Router		/v1/reservations/{id}/cancel [post].
func (h *ReservationsHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	if err := h.ReservationService.Cancel(r.Context(), r.PathValue("id"), httpx.UserID(r.Context())); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeReservations(w http.ResponseWriter, list []domain.Reservation) {
	out := make([]dormsdk.ReservationResponse, 0, len(list))
	for _, res := range list {
		out = append(out, toReservationResponse(res))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
