package http

import (
	"net/http"
	"strings"

	"github.com/dormdesk/dormdesk/internal/domain"
	"github.com/dormdesk/dormdesk/internal/service"
	"github.com/dormdesk/dormdesk/pkg/dormsdk"
	"github.com/dormdesk/dormdesk/pkg/httpx"
)

// RepairsHandler serves maintenance requests. Tenants file them, owners
// drive the status.
type RepairsHandler struct {
	RepairService *service.RepairService
}

// HandleCreate godoc
//
//	@Summary		File repair request
//	@Description	Requires an active contract on the room.
//	@Tags			Repairs
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		dormsdk.RepairRequest	true	"Request"
//	@Success		201		{object}	dormsdk.RepairResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"message"
//	@Failure		401		{object}	httpx.ErrorResponse	"message"
//	@Router			/v1/repairs [post].
func (h *RepairsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req dormsdk.RepairRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.RoomID == "" || req.Title == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Room id and title are required")
		return
	}

	rep, err := h.RepairService.Create(r.Context(), req.RoomID, httpx.UserID(r.Context()), service.RepairParams{
		Title:       req.Title,
		Description: req.Description,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toRepairResponse(rep))
}

// HandleListMine godoc
//
//	@Summary	List own repair requests
//	@Tags		Repairs
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dormsdk.RepairResponse
//	@Failure	401	{object}	httpx.ErrorResponse	"message"
//	@Router		/v1/repairs [get].
func (h *RepairsHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	list, err := h.RepairService.ListByTenant(r.Context(), httpx.UserID(r.Context()), parsePage(r))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeRepairs(w, list)
}

// HandleListIncoming godoc
//
//	@Summary	List repair requests in owned dorms
//	@Tags		Repairs
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dormsdk.RepairResponse
//	@Failure	403	{object}	httpx.ErrorResponse	"message"
//	@Router		/v1/repairs/incoming [get].
func (h *RepairsHandler) HandleListIncoming(w http.ResponseWriter, r *http.Request) {
	list, err := h.RepairService.ListByOwner(r.Context(), httpx.UserID(r.Context()), parsePage(r))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeRepairs(w, list)
}

// HandleGet godoc
//
//	@Summary	Get repair request
//	@Tags		Repairs
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Repair id"
//	@Success	200	{object}	dormsdk.RepairResponse
//	@Failure	403	{object}	httpx.ErrorResponse	"message"
//	@Failure	404	{object}	httpx.ErrorResponse	"message"
//	@Router		/v1/repairs/{id} [get].
func (h *RepairsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	rep, err := h.RepairService.Get(r.Context(), r.PathValue("id"), httpx.UserID(r.Context()))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toRepairResponse(rep))
}

// HandleSetStatus godoc
//
//	@Summary		Update repair status
//	@Description	open moves to in_progress or declined; in_progress moves to done.
//	@Tags			Repairs
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Repair id"
//	@Param			body	body		dormsdk.RepairStatusRequest	true	"Target status"
//	@Success		200		{object}	dormsdk.RepairResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"message"
//	@Failure		403		{object}	httpx.ErrorResponse	"message"
//	@Router			/v1/repairs/{id}/status [post].
func (h *RepairsHandler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	var req dormsdk.RepairStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rep, err := h.RepairService.UpdateStatus(r.Context(), r.PathValue("id"), httpx.UserID(r.Context()), domain.RepairStatus(req.Status))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toRepairResponse(rep))
}

func writeRepairs(w http.ResponseWriter, list []domain.Repair) {
	out := make([]dormsdk.RepairResponse, 0, len(list))
	for _, rep := range list {
		out = append(out, toRepairResponse(rep))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
