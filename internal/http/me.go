package http

import (
	"net/http"

	"github.com/dormdesk/dormdesk/internal/service"
	"github.com/dormdesk/dormdesk/pkg/dormsdk"
	"github.com/dormdesk/dormdesk/pkg/httpx"
)

// MeHandler serves the authenticated self-profile endpoints.
type MeHandler struct {
	UserService *service.UserService
}

// HandleGet godoc
//
//	@Summary	Current user profile
//	@Tags		Profile
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dormsdk.UserResponse
//	@Failure	401	{object}	httpx.ErrorResponse	"message"
//	@Failure	404	{object}	httpx.ErrorResponse	"message"
//	@Router		/v1/me [get].
func (h *MeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	u, err := h.UserService.Get(r.Context(), httpx.UserID(r.Context()))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
}

// HandlePatch godoc
//
//	@Summary		Update profile
//	@Description	Patches the caller's profile. Absent fields are left unchanged.
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		dormsdk.UpdateProfileRequest	true	"Fields to change"
//	@Success		200		{object}	dormsdk.UserResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"message"
//	@Failure		401		{object}	httpx.ErrorResponse	"message"
//	@Router			/v1/me [patch].
func (h *MeHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	var req dormsdk.UpdateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.UserService.UpdateProfile(r.Context(), httpx.UserID(r.Context()), service.UpdateProfileParams{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		PictureURL: req.PictureURL,
	})
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
}

// HandleChangePassword godoc
//
//	@Summary		Change password
//	@Description	Verifies the current password before setting the new one. All refresh tokens issued before the change stop working.
//	@Tags			Profile
//	@Accept			json
//	@Security		BearerAuth
//	@Param			body	body	dormsdk.ChangePasswordRequest	true	"Old and new password"
//	@Success		204
//	@Failure		400	{object}	httpx.ErrorResponse	"message"
//	@Failure		401	{object}	httpx.ErrorResponse	"message"
//	@Router			/v1/me/password [put].
func (h *MeHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req dormsdk.ChangePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.NewPassword) < minPasswordLength {
		httpx.WriteError(w, http.StatusBadRequest, "Password must be at least 8 characters")
		return
	}

	err := h.UserService.ChangePassword(r.Context(), httpx.UserID(r.Context()), req.OldPassword, req.NewPassword)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
