package http

import (
	"net/http"

	"github.com/dormdesk/dormdesk/internal/domain"
	"github.com/dormdesk/dormdesk/internal/service"
	"github.com/dormdesk/dormdesk/pkg/dormsdk"
	"github.com/dormdesk/dormdesk/pkg/httpx"
)

// ContractsHandler serves contract reads and early termination.
type ContractsHandler struct {
	ContractService *service.ContractService
}

// HandleGet godoc
//
//	@Summary	Get contract
//	@Tags		Contracts
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Contract id"
//	@Success	200	{object}	dormsdk.ContractResponse
//	@Failure	403	{object}	httpx.ErrorResponse	"message"
//	@Failure	404	{object}	httpx.ErrorResponse	"message"
//	@Router		/v1/contracts/{id} [get].
func (h *ContractsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	c, err := h.ContractService.Get(r.Context(), r.PathValue("id"), httpx.UserID(r.Context()))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toContractResponse(c))
}

// HandleListMine godoc
//
//	@Summary	List own contracts
//	@Tags		Contracts
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dormsdk.ContractResponse
//	@Failure	401	{object}	httpx.ErrorResponse	"message"
//	@Router		/v1/contracts [get].
func (h *ContractsHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	list, err := h.ContractService.ListByTenant(r.Context(), httpx.UserID(r.Context()), parsePage(r))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeContracts(w, list)
}

// HandleListOwned godoc
//
//	@Summary		List contracts over owned dorms
//	@Tags			Contracts
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dormsdk.ContractResponse
//	@Failure		403	{object}	httpx.ErrorResponse	"message"
//	@Router			/v1/contracts/owned [get].
func (h *ContractsHandler) HandleListOwned(w http.ResponseWriter, r *http.Request) {
	list, err := h.ContractService.ListByOwner(r.Context(), httpx.UserID(r.Context()), parsePage(r))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeContracts(w, list)
}

// HandleTerminate godoc
//
//	@Summary		Terminate contract
//	@Description	Ends an active contract early and frees the room.
//	@Tags			Contracts
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Contract id"
//	@Success		204
//	@Failure		400	{object}	httpx.ErrorResponse	"message"
//	@Failure		403	{object}	httpx.ErrorResponse	"message"
//	@Failure		404	{object}	httpx.ErrorResponse	"message"
//	@Router			/v1/contracts/{id}/terminate [post].
func (h *ContractsHandler) HandleTerminate(w http.ResponseWriter, r *http.Request) {
	if err := h.ContractService.Terminate(r.Context(), r.PathValue("id"), httpx.UserID(r.Context())); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeContracts(w http.ResponseWriter, list []domain.Contract) {
	out := make([]dormsdk.ContractResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toContractResponse(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
