package http

import (
	"net/http"
	"net/mail"
	"strings"

	"github.com/dormdesk/dormdesk/internal/service"
	"github.com/dormdesk/dormdesk/pkg/dormsdk"
	"github.com/dormdesk/dormdesk/pkg/httpx"
)

const minPasswordLength = 8

// RegisterHandler serves POST /v1/auth/register.
type RegisterHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Register
//	@Description	Creates a new account. Role defaults to tenant; owner signup may be disabled per deployment.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dormsdk.RegisterRequest	true	"New account"
//	@Success		201		{object}	dormsdk.UserResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"message"
//	@Failure		403		{object}	httpx.ErrorResponse	"message"
//	@Failure		409		{object}	httpx.ErrorResponse	"message"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dormsdk.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	switch {
	case req.Username == "":
		httpx.WriteError(w, http.StatusBadRequest, "Username is required")
		return
	case len(req.Password) < minPasswordLength:
		httpx.WriteError(w, http.StatusBadRequest, "Password must be at least 8 characters")
		return
	case req.Email == "":
		httpx.WriteError(w, http.StatusBadRequest, "Email is required")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid email address")
		return
	}

	u, err := h.UserService.Register(r.Context(), service.RegisterParams{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		RoleName:  req.Role,
	})
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(u))
}
