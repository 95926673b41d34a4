package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/dormdesk/dormdesk/internal/service"
	"github.com/dormdesk/dormdesk/pkg/httpx"
	"github.com/dormdesk/dormdesk/pkg/slogx"
)

// writeServiceError maps service sentinel errors onto the HTTP error
// taxonomy. Anything unmapped is a 500 and gets logged with its cause; the
// cause never leaks to the client.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		httpx.WriteError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrDormNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Dorm not found")
	case errors.Is(err, service.ErrRoomNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Room not found")
	case errors.Is(err, service.ErrReservationNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Reservation not found")
	case errors.Is(err, service.ErrContractNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Contract not found")
	case errors.Is(err, service.ErrBillNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Bill not found")
	case errors.Is(err, service.ErrRepairNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Repair request not found")

	case errors.Is(err, service.ErrInvalidPassword):
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid password")
	case errors.Is(err, service.ErrInvalidToken):
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid token")
	case errors.Is(err, service.ErrTokenExpired):
		httpx.WriteError(w, http.StatusUnauthorized, "Token has expired")
	case errors.Is(err, service.ErrPasswordChanged):
		httpx.WriteError(w, http.StatusUnauthorized, "Password has changed, please login again")

	case errors.Is(err, service.ErrForbidden):
		httpx.WriteError(w, http.StatusForbidden, "Insufficient permissions")
	case errors.Is(err, service.ErrOwnerSignupOff):
		httpx.WriteError(w, http.StatusForbidden, "Owner signup is disabled")

	case errors.Is(err, service.ErrDuplicateUser):
		httpx.WriteError(w, http.StatusConflict, "Username or email already in use")
	case errors.Is(err, service.ErrRoomNameTaken):
		httpx.WriteError(w, http.StatusConflict, "Room name already exists")
	case errors.Is(err, service.ErrRoomNotAvailable):
		httpx.WriteError(w, http.StatusConflict, "Room is not available")
	case errors.Is(err, service.ErrDuplicateBill):
		httpx.WriteError(w, http.StatusConflict, "Bill already exists for this month")

	case errors.Is(err, service.ErrInvalidTransition):
		httpx.WriteError(w, http.StatusBadRequest, "Invalid status transition")
	case errors.Is(err, service.ErrInvalidMonth):
		httpx.WriteError(w, http.StatusBadRequest, "Invalid month format, expected YYYY-MM")
	case errors.Is(err, service.ErrNoActiveContract):
		httpx.WriteError(w, http.StatusBadRequest, "No active contract for this room")
	case errors.Is(err, service.ErrUnsupportedUpload):
		httpx.WriteError(w, http.StatusBadRequest, "Unsupported content type")

	default:
		slogx.FromContext(ctx).Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}
