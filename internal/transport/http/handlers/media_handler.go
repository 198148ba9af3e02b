package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	mediasvc "github.com/AdonesMapula/atay/internal/services/media"
	"github.com/AdonesMapula/atay/internal/transport/http/dto"
	httperrors "github.com/AdonesMapula/atay/internal/transport/http/errors"
)

type MediaHandler struct {
	service        *mediasvc.Service
	maxUploadBytes int64
}

func NewMediaHandler(service *mediasvc.Service, maxUploadBytes int64) *MediaHandler {
	return &MediaHandler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
	}
}

// Upload accepts a multipart form with a single "file" part and stores it
// under the category named in the URL.
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "MEDIA_SERVICE_UNAVAILABLE", "media service is unavailable")
		return
	}

	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "multipart field \"file\" is required")
		return
	}
	defer file.Close()

	upload, err := h.service.Upload(
		r.Context(),
		chi.URLParam(r, "category"),
		header.Filename,
		header.Header.Get("Content-Type"),
		file,
		header.Size,
	)
	if err != nil {
		handleMediaError(w, err)
		return
	}

	httperrors.Write(w, http.StatusCreated, dto.MediaUploadResponse{
		Key: upload.Key,
		URL: upload.URL,
	})
}

// SignURL exchanges a stored object key for a short-lived download link.
func (h *MediaHandler) SignURL(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "MEDIA_SERVICE_UNAVAILABLE", "media service is unavailable")
		return
	}

	url, err := h.service.ResolveURL(r.Context(), r.URL.Query().Get("key"))
	if err != nil {
		handleMediaError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.MediaURLResponse{URL: url})
}

func (h *MediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "MEDIA_SERVICE_UNAVAILABLE", "media service is unavailable")
		return
	}

	if err := h.service.Delete(r.Context(), r.URL.Query().Get("key")); err != nil {
		handleMediaError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.DeleteResponse{OK: true})
}

func handleMediaError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, mediasvc.ErrTooLarge):
		httperrors.Write(w, http.StatusRequestEntityTooLarge, httperrors.APIError{
			Code:    "FILE_TOO_LARGE",
			Message: "file exceeds the upload limit",
		})
	case errors.Is(err, mediasvc.ErrUnsupportedType):
		httperrors.Write(w, http.StatusUnsupportedMediaType, httperrors.APIError{
			Code:    "UNSUPPORTED_MEDIA_TYPE",
			Message: "content type is not allowed",
		})
	case errors.Is(err, mediasvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", "invalid media request")
	default:
		writeInternal(w, "INTERNAL_ERROR", "media operation failed")
	}
}
