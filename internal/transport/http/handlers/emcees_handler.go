package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AdonesMapula/atay/internal/domain/model"
	catalogsvc "github.com/AdonesMapula/atay/internal/services/catalog"
	"github.com/AdonesMapula/atay/internal/transport/http/dto"
	httperrors "github.com/AdonesMapula/atay/internal/transport/http/errors"
)

type EmceesHandler struct {
	service *catalogsvc.Service
}

func NewEmceesHandler(service *catalogsvc.Service) *EmceesHandler {
	return &EmceesHandler{service: service}
}

func (h *EmceesHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CATALOG_SERVICE_UNAVAILABLE", "catalog service is unavailable")
		return
	}

	emcees, err := h.service.ListEmcees(r.Context())
	if err != nil {
		handleCatalogError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, emcees)
}

func (h *EmceesHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CATALOG_SERVICE_UNAVAILABLE", "catalog service is unavailable")
		return
	}

	var req dto.EmceeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	created, err := h.service.CreateEmcee(r.Context(), emceeFromRequest("", req))
	if err != nil {
		handleCatalogError(w, err)
		return
	}

	httperrors.Write(w, http.StatusCreated, created)
}

func (h *EmceesHandler) Update(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CATALOG_SERVICE_UNAVAILABLE", "catalog service is unavailable")
		return
	}

	var req dto.EmceeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	if err := h.service.UpdateEmcee(r.Context(), emceeFromRequest(chi.URLParam(r, "id"), req)); err != nil {
		handleCatalogError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.DeleteResponse{OK: true})
}

func (h *EmceesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CATALOG_SERVICE_UNAVAILABLE", "catalog service is unavailable")
		return
	}

	if err := h.service.DeleteEmcee(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleCatalogError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.DeleteResponse{OK: true})
}

func emceeFromRequest(id string, req dto.EmceeRequest) model.Emcee {
	return model.Emcee{
		ID:       id,
		Name:     req.Name,
		Bio:      req.Bio,
		Socials:  req.Socials,
		ImageKey: req.ImageKey,
	}
}
