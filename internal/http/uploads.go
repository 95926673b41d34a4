package http

import (
	"net/http"

	"github.com/dormdesk/dormdesk/internal/service"
	"github.com/dormdesk/dormdesk/pkg/dormsdk"
	"github.com/dormdesk/dormdesk/pkg/httpx"
)

// UploadsHandler hands out presigned S3 PUT URLs for image uploads (payment
// slips, repair photos, profile pictures).
type UploadsHandler struct {
	UploadService *service.UploadService
}

// ServeHTTP godoc
//
//	@Summary		Presign upload
//	@Description	Returns a time-limited URL the client PUTs the file to directly; the API never carries file bytes. Only image content types are accepted.
//	@Tags			Uploads
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		dormsdk.PresignUploadRequest	true	"Content type"
//	@Success		200		{object}	dormsdk.PresignUploadResponse	"key, url"
//	@Failure		400		{object}	httpx.ErrorResponse				"message"
//	@Failure		401		{object}	httpx.ErrorResponse				"message"
//	@Router			/v1/uploads/presign [post].
func (h *UploadsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dormsdk.PresignUploadRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	up, err := h.UploadService.PresignPut(r.Context(), httpx.UserID(r.Context()), req.ContentType)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, dormsdk.PresignUploadResponse{Key: up.Key, URL: up.URL})
}
