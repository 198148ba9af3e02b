package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AdonesMapula/atay/internal/domain/model"
	catalogsvc "github.com/AdonesMapula/atay/internal/services/catalog"
	"github.com/AdonesMapula/atay/internal/transport/http/dto"
	httperrors "github.com/AdonesMapula/atay/internal/transport/http/errors"
)

// TicketsHandler manages the sellable ticket types, not the sold-ticket
// purchases handled by the moderation endpoints.
type TicketsHandler struct {
	service *catalogsvc.Service
}

func NewTicketsHandler(service *catalogsvc.Service) *TicketsHandler {
	return &TicketsHandler{service: service}
}

func (h *TicketsHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CATALOG_SERVICE_UNAVAILABLE", "catalog service is unavailable")
		return
	}

	tickets, err := h.service.ListTicketTypes(r.Context())
	if err != nil {
		handleCatalogError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, tickets)
}

func (h *TicketsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CATALOG_SERVICE_UNAVAILABLE", "catalog service is unavailable")
		return
	}

	var req dto.TicketTypeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	created, err := h.service.CreateTicketType(r.Context(), ticketTypeFromRequest("", req))
	if err != nil {
		handleCatalogError(w, err)
		return
	}

	httperrors.Write(w, http.StatusCreated, created)
}

func (h *TicketsHandler) Update(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CATALOG_SERVICE_UNAVAILABLE", "catalog service is unavailable")
		return
	}

	var req dto.TicketTypeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	if err := h.service.UpdateTicketType(r.Context(), ticketTypeFromRequest(chi.URLParam(r, "id"), req)); err != nil {
		handleCatalogError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.DeleteResponse{OK: true})
}

func (h *TicketsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CATALOG_SERVICE_UNAVAILABLE", "catalog service is unavailable")
		return
	}

	if err := h.service.DeleteTicketType(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleCatalogError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.DeleteResponse{OK: true})
}

func ticketTypeFromRequest(id string, req dto.TicketTypeRequest) model.TicketType {
	return model.TicketType{
		ID:         id,
		EventName:  req.EventName,
		EventDate:  req.EventDate,
		Venue:      req.Venue,
		PriceCents: req.PriceCents,
		ImageKey:   req.ImageKey,
	}
}
