package http

import (
	"net/http"
	"strings"

	"github.com/dormdesk/dormdesk/internal/service"
	"github.com/dormdesk/dormdesk/pkg/dormsdk"
	"github.com/dormdesk/dormdesk/pkg/httpx"
)

// AuthHandler serves the login and refresh endpoints.
type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleLogin godoc
//
//	@Summary		Login
//	@Description	Authenticates a username/password pair and returns a signed access/refresh token pair.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dormsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	dormsdk.TokenResponse	"accessToken, refreshToken"
//	@Failure		400		{object}	httpx.ErrorResponse		"message"
//	@Failure		401		{object}	httpx.ErrorResponse		"message"
//	@Failure		404		{object}	httpx.ErrorResponse		"message"
//	@Failure		429		{object}	httpx.ErrorResponse		"message"
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req dormsdk.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	pair, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, dormsdk.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// HandleRefresh godoc
//
//	@Summary		Refresh tokens
//	@Description	Exchanges a valid refresh token for a brand-new token pair. Tokens issued before a password change are rejected.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dormsdk.RefreshRequest	true	"Refresh token"
//	@Success		200		{object}	dormsdk.TokenResponse	"accessToken, refreshToken"
//	@Failure		400		{object}	httpx.ErrorResponse		"message"
//	@Failure		401		{object}	httpx.ErrorResponse		"message"
//	@Failure		404		{object}	httpx.ErrorResponse		"message"
//	@Router			/v1/auth/refresh [post].
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	var req dormsdk.RefreshRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.RefreshToken == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Refresh token is required")
		return
	}

	pair, err := h.AuthService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, dormsdk.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}
