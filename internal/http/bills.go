package http

import (
	"net/http"

	"github.com/dormdesk/dormdesk/internal/domain"
	"github.com/dormdesk/dormdesk/internal/service"
	"github.com/dormdesk/dormdesk/pkg/dormsdk"
	"github.com/dormdesk/dormdesk/pkg/httpx"
)

// BillsHandler serves monthly billing: owners issue and settle, tenants view
// and submit payment evidence.
type BillsHandler struct {
	BillService *service.BillService
}

// HandleIssue godoc
//
//	@Summary		Issue bill
//	@Description	Creates an unpaid bill for a contract-month. Rent is frozen from the contract; water and electricity amounts are computed from the dorm's per-unit rates.
//	@Tags			Bills
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string					true	"Contract id"
//	@Param			body	body		dormsdk.IssueBillRequest	true	"Metered readings"
//	@Success		201		{object}	dormsdk.BillResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"message"
//	@Failure		403		{object}	httpx.ErrorResponse	"message"
//	@Failure		409		{object}	httpx.ErrorResponse	"message"
//	@Router			/v1/contracts/{id}/bills [post].
func (h *BillsHandler) HandleIssue(w http.ResponseWriter, r *http.Request) {
	var req dormsdk.IssueBillRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.WaterUnits < 0 || req.ElectricityUnits < 0 {
		httpx.WriteError(w, http.StatusBadRequest, "Metered units must not be negative")
		return
	}

	bill, err := h.BillService.Issue(r.Context(), r.PathValue("id"), httpx.UserID(r.Context()), service.IssueParams{
		Month:            req.Month,
		WaterUnits:       req.WaterUnits,
		ElectricityUnits: req.ElectricityUnits,
		DueDate:          req.DueDate,
	})
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toBillResponse(bill))
}

// HandleListByContract godoc
//
//	@Summary	List a contract's bills
//	@Tags		Bills
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Contract id"
//	@Success	200	{array}		dormsdk.BillResponse
//	@Failure	403	{object}	httpx.ErrorResponse	"message"
//	@Failure	404	{object}	httpx.ErrorResponse	"message"
//	@Router		/v1/contracts/{id}/bills [get].
func (h *BillsHandler) HandleListByContract(w http.ResponseWriter, r *http.Request) {
	list, err := h.BillService.ListByContract(r.Context(), r.PathValue("id"), httpx.UserID(r.Context()), parsePage(r))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeBills(w, list)
}

// HandleListMine godoc
//
//	@Summary	List own bills
//	@Tags		Bills
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dormsdk.BillResponse
//	@Failure	401	{object}	httpx.ErrorResponse	"message"
//	@Router		/v1/bills [get].
func (h *BillsHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	list, err := h.BillService.ListByTenant(r.Context(), httpx.UserID(r.Context()), parsePage(r))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeBills(w, list)
}

// HandleListOwned godoc
//
//	@Summary	List bills across owned dorms
//	@Tags		Bills
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dormsdk.BillResponse
//	@Failure	403	{object}	httpx.ErrorResponse	"message"
//	@Router		/v1/bills/owned [get].
func (h *BillsHandler) HandleListOwned(w http.ResponseWriter, r *http.Request) {
	list, err := h.BillService.ListByOwner(r.Context(), httpx.UserID(r.Context()), parsePage(r))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeBills(w, list)
}

// HandleGet godoc
//
//	@Summary	Get bill
//	@Tags		Bills
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Bill id"
//	@Success	200	{object}	dormsdk.BillResponse
//	@Failure	403	{object}	httpx.ErrorResponse	"message"
//	@Failure	404	{object}	httpx.ErrorResponse	"message"
//	@Router		/v1/bills/{id} [get].
func (h *BillsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	bill, err := h.BillService.Get(r.Context(), r.PathValue("id"), httpx.UserID(r.Context()))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toBillResponse(bill))
}

// HandleSubmit godoc
//
//	@Summary		Submit payment evidence
//	@Description	Moves an unpaid bill to submitted with a link to the uploaded payment slip.
//	@Tags			Bills
//	@Accept			json
//	@Security		BearerAuth
//	@Param			id		path	string							true	"Bill id"
//	@Param			body	body	dormsdk.SubmitPaymentRequest	true	"Evidence"
//	@Success		204
//	@Failure		400	{object}	httpx.ErrorResponse	"message"
//	@Failure		403	{object}	httpx.ErrorResponse	"message"
//	@Router			/v1/bills/{id}/submit [post].
func (h *BillsHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req dormsdk.SubmitPaymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.EvidenceURL == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Evidence URL is required")
		return
	}

	if err := h.BillService.SubmitPayment(r.Context(), r.PathValue("id"), httpx.UserID(r.Context()), req.EvidenceURL); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleConfirm godoc
//
//	@Summary	Confirm payment
//	@Tags		Bills
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Bill id"
//	@Success	204
//	@Failure	400	{object}	httpx.ErrorResponse	"message"
//	@Failure	403	{object}	httpx.ErrorResponse	"message"
//	@Router		/v1/bills/{id}/confirm [post].
func (h *BillsHandler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	if err := h.BillService.Confirm(r.Context(), r.PathValue("id"), httpx.UserID(r.Context())); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleVoid godoc
//
//	@Summary	Void bill
//	@Tags		Bills
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Bill id"
//	@Success	204
//	@Failure	400	{object}	httpx.ErrorResponse	"message"
//	@Failure	403	{object}	httpx.ErrorResponse	"message"
//	@Router		/v1/bills/{id}/void [post].
func (h *BillsHandler) HandleVoid(w http.ResponseWriter, r *http.Request) {
	if err := h.BillService.Void(r.Context(), r.PathValue("id"), httpx.UserID(r.Context())); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeBills(w http.ResponseWriter, list []domain.Bill) {
	out := make([]dormsdk.BillResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBillResponse(b))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
