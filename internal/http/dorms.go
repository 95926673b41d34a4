package http

import (
	"net/http"
	"strings"

	"github.com/dormdesk/dormdesk/internal/service"
	"github.com/dormdesk/dormdesk/pkg/dormsdk"
	"github.com/dormdesk/dormdesk/pkg/httpx"
)

// DormsHandler serves owner-side dorm management plus the public listing.
type DormsHandler struct {
	DormService *service.DormService
}

func (h *DormsHandler) validate(w http.ResponseWriter, req *dormsdk.DormRequest) bool {
	req.Name = strings.TrimSpace(req.Name)
	switch {
	case req.Name == "":
		httpx.WriteError(w, http.StatusBadRequest, "Dorm name is required")
	case req.WaterRate < 0 || req.ElectricityRate < 0:
		httpx.WriteError(w, http.StatusBadRequest, "Utility rates must not be negative")
	default:
		return true
	}
	return false
}

// HandleCreate godoc
//
//	@Summary	Create dorm
//	@Tags		Dorms
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		dormsdk.DormRequest	true	"Dorm"
//	@Success	201		{object}	dormsdk.DormResponse
//	@Failure	400		{object}	httpx.ErrorResponse	"message"
//	@Failure	403		{object}	httpx.ErrorResponse	"message"
//	@Router		/v1/dorms [post].
func (h *DormsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req dormsdk.DormRequest
	if !decodeJSON(w, r, &req) || !h.validate(w, &req) {
		return
	}

	d, err := h.DormService.Create(r.Context(), httpx.UserID(r.Context()), service.DormParams{
		Name:            req.Name,
		Address:         req.Address,
		Description:     req.Description,
		PhotoURL:        req.PhotoURL,
		WaterRate:       req.WaterRate,
		ElectricityRate: req.ElectricityRate,
	})
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toDormResponse(d))
}

// HandleList godoc
//
//	@Summary	List own dorms
//	@Tags		Dorms
//	@Produce	json
//	@Security	BearerAuth
//	@Param		limit	query		int	false	"Page size"
//	@Param		offset	query		int	false	"Page offset"
//	@Success	200		{array}		dormsdk.DormResponse
//	@Failure	401		{object}	httpx.ErrorResponse	"message"
//	@Router		/v1/dorms [get].
func (h *DormsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	dorms, err := h.DormService.ListByOwner(r.Context(), httpx.UserID(r.Context()), parsePage(r))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	out := make([]dormsdk.DormResponse, 0, len(dorms))
	for _, d := range dorms {
		out = append(out, toDormResponse(d))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary	Get dorm
//	@Tags		Dorms
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Dorm id"
//	@Success	200	{object}	dormsdk.DormResponse
//	@Failure	404	{object}	httpx.ErrorResponse	"message"
//	@Router		/v1/dorms/{id} [get].
func (h *DormsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	d, err := h.DormService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toDormResponse(d))
}

// HandleUpdate godoc
//
//	@Summary	Update dorm
//	@Tags		Dorms
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string				true	"Dorm id"
//	@Param		body	body		dormsdk.DormRequest	true	"Dorm"
//	@Success	200		{object}	dormsdk.DormResponse
//	@Failure	403		{object}	httpx.ErrorResponse	"message"
//	@Failure	404		{object}	httpx.ErrorResponse	"message"
//	@Router		/v1/dorms/{id} [put].
func (h *DormsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req dormsdk.DormRequest
	if !decodeJSON(w, r, &req) || !h.validate(w, &req) {
		return
	}

	d, err := h.DormService.Update(r.Context(), r.PathValue("id"), httpx.UserID(r.Context()), service.DormParams{
		Name:            req.Name,
		Address:         req.Address,
		Description:     req.Description,
		PhotoURL:        req.PhotoURL,
		WaterRate:       req.WaterRate,
		ElectricityRate: req.ElectricityRate,
	})
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toDormResponse(d))
}

// HandleDelete godoc
//
//	@Summary	Delete dorm
//	@Tags		Dorms
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Dorm id"
//	@Success	204
//	@Failure	403	{object}	httpx.ErrorResponse	"message"
//	@Failure	404	{object}	httpx.ErrorResponse	"message"
//	@Router		/v1/dorms/{id} [delete].
func (h *DormsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.DormService.Delete(r.Context(), r.PathValue("id"), httpx.UserID(r.Context())); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleListing godoc
//
//	@Summary		Public dorm listing
//	@Description	Unauthenticated listing with room availability counts and rent ranges.
//	@Tags			Dorms
//	@Produce		json
//	@Param			limit	query		int	false	"Page size"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{array}		dormsdk.ListingResponse
//	@Failure		429		{object}	httpx.ErrorResponse	"message"
//	@Router			/v1/listing [get].
func (h *DormsHandler) HandleListing(w http.ResponseWriter, r *http.Request) {
	listings, err := h.DormService.ListPublic(r.Context(), parsePage(r))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	out := make([]dormsdk.ListingResponse, 0, len(listings))
	for _, d := range listings {
		out = append(out, toListingResponse(d))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
