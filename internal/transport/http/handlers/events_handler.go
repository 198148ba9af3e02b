package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AdonesMapula/atay/internal/domain/model"
	catalogsvc "github.com/AdonesMapula/atay/internal/services/catalog"
	"github.com/AdonesMapula/atay/internal/transport/http/dto"
	httperrors "github.com/AdonesMapula/atay/internal/transport/http/errors"
)

type EventsHandler struct {
	service *catalogsvc.Service
}

func NewEventsHandler(service *catalogsvc.Service) *EventsHandler {
	return &EventsHandler{service: service}
}

func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CATALOG_SERVICE_UNAVAILABLE", "catalog service is unavailable")
		return
	}

	events, err := h.service.ListEvents(r.Context())
	if err != nil {
		handleCatalogError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, events)
}

func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CATALOG_SERVICE_UNAVAILABLE", "catalog service is unavailable")
		return
	}

	var req dto.EventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	created, err := h.service.CreateEvent(r.Context(), eventFromRequest("", req))
	if err != nil {
		handleCatalogError(w, err)
		return
	}

	httperrors.Write(w, http.StatusCreated, created)
}

func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CATALOG_SERVICE_UNAVAILABLE", "catalog service is unavailable")
		return
	}

	var req dto.EventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	if err := h.service.UpdateEvent(r.Context(), eventFromRequest(chi.URLParam(r, "id"), req)); err != nil {
		handleCatalogError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.DeleteResponse{OK: true})
}

func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CATALOG_SERVICE_UNAVAILABLE", "catalog service is unavailable")
		return
	}

	if err := h.service.DeleteEvent(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleCatalogError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.DeleteResponse{OK: true})
}

func eventFromRequest(id string, req dto.EventRequest) model.Event {
	return model.Event{
		ID:          id,
		Name:        req.Name,
		Date:        req.Date,
		Venue:       req.Venue,
		Description: req.Description,
		ImageKey:    req.ImageKey,
	}
}

func handleCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalogsvc.ErrInvalidInput):
		writeBadRequest(w, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, catalogsvc.ErrNotFound):
		writeNotFound(w, "NOT_FOUND", "catalog entry not found")
	default:
		writeInternal(w, "INTERNAL_ERROR", "catalog operation failed")
	}
}
